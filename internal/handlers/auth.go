package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/services"
	"github.com/sideforge/backend/pkg/logger"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{Service: services.NewAuthService(db)}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	resp, err := h.Service.Login(req)
	if err != nil {
		logger.Warn("login_failed", map[string]interface{}{
			"username": req.Username,
			"ip":       c.IP(),
		})
		return err
	}
	logger.Info("login_success", map[string]interface{}{
		"username": req.Username,
		"user_id":  resp.User.ID,
	})
	return c.JSON(resp)
}
