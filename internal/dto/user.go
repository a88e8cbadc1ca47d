// Package dto holds the request/response shapes of the HTTP surface and the
// mapping between them and the persisted entities. Entities never leave the
// service layer.
package dto

import "github.com/sideforge/backend/internal/models"

type UserResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// UserUpdateRequest rewrites username/email/role unconditionally; the
// password only applies when supplied and non-blank.
type UserUpdateRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=20"`
	Email    string  `json:"email" validate:"required,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8,max=64"`
	Role     string  `json:"role" validate:"required,oneof=ADMIN CUSTOMER"`
}

func UserToResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func UsersToResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return responses
}
