package dto

import (
	"time"

	"github.com/sideforge/backend/internal/models"
)

type AdminCreateRequest struct {
	Username           string  `json:"username" validate:"required,min=3,max=20"`
	Email              string  `json:"email" validate:"required,email,max=100"`
	Password           string  `json:"password" validate:"required,min=8,max=64"`
	Role               string  `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
	AdminLevel         *int    `json:"adminLevel" validate:"omitempty,min=1"`
	Department         *string `json:"department" validate:"omitempty,oneof=IT HR SUPPORT SALES DESIGN"`
	DepartmentImageURL *string `json:"departmentImageUrl" validate:"omitempty,max=255"`
}

// AdminUpdateRequest overwrites every admin field with the payload value,
// present or not; only the password is skip-on-blank. lastLogin is owned by
// the login flow and never touched here.
type AdminUpdateRequest struct {
	Username           string  `json:"username" validate:"required,min=3,max=20"`
	Email              string  `json:"email" validate:"required,email,max=100"`
	Password           *string `json:"password" validate:"omitempty,min=8,max=64"`
	Role               string  `json:"role" validate:"required,oneof=ADMIN CUSTOMER"`
	AdminLevel         *int    `json:"adminLevel" validate:"omitempty,min=1"`
	Department         *string `json:"department" validate:"omitempty,oneof=IT HR SUPPORT SALES DESIGN"`
	DepartmentImageURL *string `json:"departmentImageUrl" validate:"omitempty,max=255"`
}

type AdminResponse struct {
	ID                 uint               `json:"id"`
	Username           string             `json:"username"`
	Email              string             `json:"email"`
	Role               models.Role        `json:"role"`
	AdminLevel         *int               `json:"adminLevel"`
	Department         *models.Department `json:"department"`
	DepartmentImageURL *string            `json:"departmentImageUrl"`
	LastLogin          *time.Time         `json:"lastLogin"`
}

func AdminToResponse(user *models.User) AdminResponse {
	return AdminResponse{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Role:               user.Role,
		AdminLevel:         user.AdminLevel,
		Department:         user.Department,
		DepartmentImageURL: user.DepartmentImageURL,
		LastLogin:          user.LastLogin,
	}
}

func AdminsToResponses(users []models.User) []AdminResponse {
	responses := make([]AdminResponse, 0, len(users))
	for i := range users {
		responses = append(responses, AdminToResponse(&users[i]))
	}
	return responses
}
