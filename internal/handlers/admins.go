package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/services"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type AdminsHandler struct {
	Service *services.AdminService
}

func NewAdminsHandler(db *gorm.DB) *AdminsHandler {
	return &AdminsHandler{Service: services.NewAdminService(db)}
}

func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.AdminCreateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	admin, err := h.Service.Create(req)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/admins/%d", admin.ID), admin)
}

func (h *AdminsHandler) List(c *fiber.Ctx) error {
	admins, err := h.Service.List()
	if err != nil {
		return err
	}
	return c.JSON(admins)
}

func (h *AdminsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	admin, err := h.Service.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(admin)
}

func (h *AdminsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AdminUpdateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	admin, err := h.Service.Update(id, req)
	if err != nil {
		return err
	}
	return c.JSON(admin)
}

func (h *AdminsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminsHandler) Page(c *fiber.Ctx) error {
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
