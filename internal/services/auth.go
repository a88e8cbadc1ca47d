package services

import (
	"errors"
	"time"

	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login verifies the credentials and issues a signed token. Admin logins
// stamp lastLogin; a wrong username and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(req dto.LoginRequest) (dto.LoginResponse, error) {
	var user models.User
	err := s.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, apperr.Unauthorized("Invalid username or password")
		}
		return dto.LoginResponse{}, err
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return dto.LoginResponse{}, apperr.Unauthorized("Invalid username or password")
	}

	if user.Kind == models.KindAdmin {
		now := time.Now().UTC()
		user.LastLogin = &now
		if err := s.DB.Model(&user).Update("last_login", &now).Error; err != nil {
			return dto.LoginResponse{}, err
		}
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{
		Token: token,
		User:  dto.UserToResponse(&user),
	}, nil
}
