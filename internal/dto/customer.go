package dto

import "github.com/sideforge/backend/internal/models"

type CustomerCreateRequest struct {
	Username          string  `json:"username" validate:"required,min=3,max=20"`
	Email             string  `json:"email" validate:"required,email,max=100"`
	Password          string  `json:"password" validate:"required,min=8,max=64"`
	Role              string  `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
	ProfileImageURL   *string `json:"profileImageUrl" validate:"omitempty,max=255"`
	PreferredLanguage *string `json:"preferredLanguage" validate:"omitempty,oneof=ES EN FR DE IT"`
	IsVerified        *bool   `json:"isVerified"`
}

type CustomerUpdateRequest struct {
	Username          string  `json:"username" validate:"required,min=3,max=20"`
	Email             string  `json:"email" validate:"required,email,max=100"`
	Password          *string `json:"password" validate:"omitempty,min=8,max=64"`
	Role              string  `json:"role" validate:"required,oneof=ADMIN CUSTOMER"`
	ProfileImageURL   *string `json:"profileImageUrl" validate:"omitempty,max=255"`
	PreferredLanguage *string `json:"preferredLanguage" validate:"omitempty,oneof=ES EN FR DE IT"`
	IsVerified        *bool   `json:"isVerified"`
}

type CustomerResponse struct {
	ID                uint                      `json:"id"`
	Username          string                    `json:"username"`
	Email             string                    `json:"email"`
	Role              models.Role               `json:"role"`
	ProfileImageURL   *string                   `json:"profileImageUrl"`
	PreferredLanguage *models.PreferredLanguage `json:"preferredLanguage"`
	IsVerified        *bool                     `json:"isVerified"`
}

func CustomerToResponse(user *models.User) CustomerResponse {
	return CustomerResponse{
		ID:                user.ID,
		Username:          user.Username,
		Email:             user.Email,
		Role:              user.Role,
		ProfileImageURL:   user.ProfileImageURL,
		PreferredLanguage: user.PreferredLanguage,
		IsVerified:        user.IsVerified,
	}
}

func CustomersToResponses(users []models.User) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(users))
	for i := range users {
		responses = append(responses, CustomerToResponse(&users[i]))
	}
	return responses
}
