// Package services implements the entity-mapping layer: DTO to entity
// conversion, existence checks on referenced rows, and the per-field update
// rules. Every write runs inside a single transaction.
package services

import (
	"errors"
	"strings"

	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

var userSortColumns = map[string]string{
	"id":       "id",
	"username": "username",
	"email":    "email",
	"role":     "role",
}

// Create always fails: the user base is abstract, rows are created through
// the admin or customer surface.
func (s *UserService) Create() (dto.UserResponse, error) {
	return dto.UserResponse{}, apperr.Unsupported("cannot create a generic user, use the admin or customer endpoints")
}

func (s *UserService) GetByID(id uint) (dto.UserResponse, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apperr.NotFound("User not found with id: %d", id)
		}
		return dto.UserResponse{}, err
	}
	return dto.UserToResponse(&user), nil
}

func (s *UserService) List() ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return dto.UsersToResponses(users), nil
}

func (s *UserService) Update(id uint, req dto.UserUpdateRequest) (dto.UserResponse, error) {
	var user models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("User not found with id: %d", id)
			}
			return err
		}
		if err := ensureUniqueCredentials(tx, req.Username, req.Email, id); err != nil {
			return err
		}

		user.Username = req.Username
		user.Email = req.Email
		user.Role = models.Role(req.Role)
		if err := applyPassword(&user, req.Password); err != nil {
			return err
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.UserToResponse(&user), nil
}

func (s *UserService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("User not found with id: %d", id)
			}
			return err
		}
		return deleteUserCascade(tx, user.ID)
	})
}

func (s *UserService) Page(q utils.PageQuery) (utils.PageResponse, error) {
	return pageUsers(s.DB.Model(&models.User{}), q, dtoUserMapper)
}

func (s *UserService) PageByRole(role string, q utils.PageQuery) (utils.PageResponse, error) {
	parsed, ok := models.ParseRole(strings.ToUpper(role))
	if !ok {
		return utils.PageResponse{}, apperr.BadRequest("Invalid role: %s", role)
	}
	return pageUsers(s.DB.Model(&models.User{}).Where("role = ?", parsed), q, dtoUserMapper)
}

func dtoUserMapper(users []models.User) interface{} {
	return dto.UsersToResponses(users)
}

func pageUsers(query *gorm.DB, q utils.PageQuery, mapper func([]models.User) interface{}) (utils.PageResponse, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PageResponse{}, err
	}
	var users []models.User
	if err := utils.ApplyPage(query, q, userSortColumns).Find(&users).Error; err != nil {
		return utils.PageResponse{}, err
	}
	return utils.NewPage(mapper(users), q, total), nil
}

// applyPassword hashes and stores the password only when one was supplied
// and is not blank.
func applyPassword(user *models.User, password *string) error {
	if password == nil || strings.TrimSpace(*password) == "" {
		return nil
	}
	hash, err := utils.HashPassword(*password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}

func ensureUniqueCredentials(tx *gorm.DB, username, email string, excludeID uint) error {
	query := tx.Model(&models.User{}).Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Username or email already in use")
	}
	return nil
}

// deleteUserCascade removes a user together with its scenes; each removed
// scene takes its design with it, mirroring the ownership chain.
func deleteUserCascade(tx *gorm.DB, userID uint) error {
	var scenes []models.Scene
	if err := tx.Where("owner_id = ?", userID).Find(&scenes).Error; err != nil {
		return err
	}
	for i := range scenes {
		if err := deleteSceneCascade(tx, &scenes[i]); err != nil {
			return err
		}
	}
	return tx.Delete(&models.User{}, userID).Error
}
