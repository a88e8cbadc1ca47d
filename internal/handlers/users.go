package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/services"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type UsersHandler struct {
	Service *services.UserService
}

func NewUsersHandler(db *gorm.DB) *UsersHandler {
	return &UsersHandler{Service: services.NewUserService(db)}
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.Service.List()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.Service.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UserUpdateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	user, err := h.Service.Update(id, req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UsersHandler) Page(c *fiber.Ctx) error {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		return err
	}
	page, err := h.Service.Page(q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *UsersHandler) PageByRole(c *fiber.Ctx) error {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		return err
	}
	page, err := h.Service.PageByRole(c.Params("role"), q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}
