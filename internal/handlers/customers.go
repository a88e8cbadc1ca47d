package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/services"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type CustomersHandler struct {
	Service *services.CustomerService
}

func NewCustomersHandler(db *gorm.DB) *CustomersHandler {
	return &CustomersHandler{Service: services.NewCustomerService(db)}
}

func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CustomerCreateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	customer, err := h.Service.Create(req)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/customers/%d", customer.ID), customer)
}

func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.Service.List()
	if err != nil {
		return err
	}
	return c.JSON(customers)
}

func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	customer, err := h.Service.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CustomerUpdateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	customer, err := h.Service.Update(id, req)
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomersHandler) Page(c *fiber.Ctx) error {
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
