package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/services"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type DesignsHandler struct {
	Service *services.DesignService
}

func NewDesignsHandler(db *gorm.DB) *DesignsHandler {
	return &DesignsHandler{Service: services.NewDesignService(db)}
}

func (h *DesignsHandler) Create(c *fiber.Ctx) error {
	var req dto.DesignCreateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	design, err := h.Service.Create(req)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/designs/%d", design.ID), design)
}

func (h *DesignsHandler) List(c *fiber.Ctx) error {
	designs, err := h.Service.List()
	if err != nil {
		return err
	}
	return c.JSON(designs)
}

func (h *DesignsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	design, err := h.Service.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(design)
}

func (h *DesignsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.DesignUpdateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	design, err := h.Service.Update(id, req)
	if err != nil {
		return err
	}
	return c.JSON(design)
}

func (h *DesignsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DesignsHandler) ByAsset(c *fiber.Ctx) error {
	assetID, err := parseID(c, "assetId")
	if err != nil {
		return err
	}
	design, err := h.Service.GetByAssetID(assetID)
	if err != nil {
		return err
	}
	return c.JSON(design)
}

func (h *DesignsHandler) Page(c *fiber.Ctx) error {
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

func (h *DesignsHandler) ByAssets(c *fiber.Ctx) error {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		return err
	}
	assetIDs, err := parseIDList(c.Query("assetIds"))
	if err != nil {
		return err
	}
	page, err := h.Service.PageByAssetIDs(assetIDs, q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func parseIDList(raw string) ([]uint, error) {
	invalid := apperr.Validation([]string{"assetIds must be a comma-separated list of positive integers"})
	if strings.TrimSpace(raw) == "" {
		return nil, invalid
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		parsed, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || parsed == 0 {
			return nil, invalid
		}
		ids = append(ids, uint(parsed))
	}
	return ids, nil
}
