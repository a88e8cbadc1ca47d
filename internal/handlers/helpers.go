package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/apperr"
)

// parseID reads a positive-integer path identifier; anything else is a
// validation failure.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, apperr.Validation([]string{name + " must be a positive integer"})
	}
	return uint(parsed), nil
}

func decodeBody(c *fiber.Ctx, target interface{}) error {
	if err := c.BodyParser(target); err != nil {
		return apperr.BadRequest("Malformed request body")
	}
	return nil
}

func created(c *fiber.Ctx, location string, body interface{}) error {
	c.Set(fiber.HeaderLocation, location)
	return c.Status(fiber.StatusCreated).JSON(body)
}
