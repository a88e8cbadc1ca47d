package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/services"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type ScenesHandler struct {
	Service *services.SceneService
}

func NewScenesHandler(db *gorm.DB) *ScenesHandler {
	return &ScenesHandler{Service: services.NewSceneService(db)}
}

func (h *ScenesHandler) Create(c *fiber.Ctx) error {
	var req dto.SceneCreateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	scene, err := h.Service.Create(req)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/api/scenes/%d", scene.ID), scene)
}

func (h *ScenesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	scene, err := h.Service.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(scene)
}

func (h *ScenesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.SceneUpdateRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	scene, err := h.Service.Update(id, req)
	if err != nil {
		return err
	}
	return c.JSON(scene)
}

func (h *ScenesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Service.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ScenesHandler) Page(c *fiber.Ctx) error {
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

func (h *ScenesHandler) ByOwner(c *fiber.Ctx) error {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		return err
	}
	ownerID, err := parseQueryID(c, "ownerId")
	if err != nil {
		return err
	}
	page, err := h.Service.PageByOwner(ownerID, q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *ScenesHandler) ByNameAndOwner(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return apperr.Validation([]string{"name is required"})
	}
	ownerID, err := parseQueryID(c, "ownerId")
	if err != nil {
		return err
	}
	scene, err := h.Service.GetByNameAndOwner(name, ownerID)
	if err != nil {
		return err
	}
	return c.JSON(scene)
}

// CreatedBetween pages scenes created inside the closed [start, end] range;
// both bounds arrive as RFC 3339 timestamps.
func (h *ScenesHandler) CreatedBetween(c *fiber.Ctx) error {
	q, err := utils.ParsePageQuery(c)
	if err != nil {
		return err
	}
	start, err := parseQueryTime(c, "start")
	if err != nil {
		return err
	}
	end, err := parseQueryTime(c, "end")
	if err != nil {
		return err
	}
	page, err := h.Service.PageCreatedBetween(start, end, q)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *ScenesHandler) CountByOwner(c *fiber.Ctx) error {
	ownerID, err := parseQueryID(c, "ownerId")
	if err != nil {
		return err
	}
	count, err := h.Service.CountByOwner(ownerID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}

func parseQueryID(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, apperr.Validation([]string{name + " must be a positive integer"})
	}
	return uint(parsed), nil
}

func parseQueryTime(c *fiber.Ctx, name string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperr.Validation([]string{name + " must be an RFC 3339 timestamp"})
	}
	return parsed, nil
}
