package services

import (
	"errors"

	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

var adminSortColumns = map[string]string{
	"id":         "id",
	"username":   "username",
	"email":      "email",
	"role":       "role",
	"adminLevel": "admin_level",
	"department": "department",
}

func (s *AdminService) Create(req dto.AdminCreateRequest) (dto.AdminResponse, error) {
	var admin models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueCredentials(tx, req.Username, req.Email, 0); err != nil {
			return err
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}

		role := models.RoleAdmin
		if req.Role != "" {
			role = models.Role(req.Role)
		}

		admin = models.User{
			Kind:               models.KindAdmin,
			Username:           req.Username,
			Email:              req.Email,
			PasswordHash:       hash,
			Role:               role,
			AdminLevel:         req.AdminLevel,
			Department:         toDepartment(req.Department),
			DepartmentImageURL: req.DepartmentImageURL,
			// lastLogin stays unset until the login flow stamps it.
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		return dto.AdminResponse{}, err
	}
	return dto.AdminToResponse(&admin), nil
}

func (s *AdminService) GetByID(id uint) (dto.AdminResponse, error) {
	admin, err := s.findAdmin(s.DB, id)
	if err != nil {
		return dto.AdminResponse{}, err
	}
	return dto.AdminToResponse(admin), nil
}

func (s *AdminService) List() ([]dto.AdminResponse, error) {
	var admins []models.User
	if err := s.DB.Where("kind = ?", models.KindAdmin).Find(&admins).Error; err != nil {
		return nil, err
	}
	return dto.AdminsToResponses(admins), nil
}

func (s *AdminService) Update(id uint, req dto.AdminUpdateRequest) (dto.AdminResponse, error) {
	var admin *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		admin, err = s.findAdmin(tx, id)
		if err != nil {
			return err
		}
		if err := ensureUniqueCredentials(tx, req.Username, req.Email, id); err != nil {
			return err
		}

		admin.Username = req.Username
		admin.Email = req.Email
		admin.Role = models.Role(req.Role)
		if err := applyPassword(admin, req.Password); err != nil {
			return err
		}
		// Variant fields are rewritten with the payload values, absent or
		// not. lastLogin is owned by the login flow.
		admin.AdminLevel = req.AdminLevel
		admin.Department = toDepartment(req.Department)
		admin.DepartmentImageURL = req.DepartmentImageURL
		return tx.Save(admin).Error
	})
	if err != nil {
		return dto.AdminResponse{}, err
	}
	return dto.AdminToResponse(admin), nil
}

func (s *AdminService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		admin, err := s.findAdmin(tx, id)
		if err != nil {
			return err
		}
		return deleteUserCascade(tx, admin.ID)
	})
}

func (s *AdminService) Page(q utils.PageQuery) (utils.PageResponse, error) {
	query := s.DB.Model(&models.User{}).Where("kind = ?", models.KindAdmin)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PageResponse{}, err
	}
	var admins []models.User
	if err := utils.ApplyPage(query, q, adminSortColumns).Find(&admins).Error; err != nil {
		return utils.PageResponse{}, err
	}
	return utils.NewPage(dto.AdminsToResponses(admins), q, total), nil
}

func (s *AdminService) findAdmin(tx *gorm.DB, id uint) (*models.User, error) {
	var admin models.User
	err := tx.Where("kind = ?", models.KindAdmin).First(&admin, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin not found with id: %d", id)
		}
		return nil, err
	}
	return &admin, nil
}

func toDepartment(value *string) *models.Department {
	if value == nil {
		return nil
	}
	department := models.Department(*value)
	return &department
}
