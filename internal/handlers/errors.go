// Package handlers wires the HTTP surface: route registration, request
// decoding, and the single error-to-response boundary.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sideforge/backend/internal/apperr"
)

// ApiErrorResponse is the JSON body for every failed request.
type ApiErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Details   []string  `json:"details,omitempty"`
}

// ErrorHandler is the app-level translation boundary. Typed failures carry
// their own status; fiber routing errors keep theirs; anything else is a 500
// with the raw message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var details []string

	if appErr, ok := apperr.As(err); ok {
		status = appErr.Status()
		details = appErr.Details
	} else {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}

	return c.Status(status).JSON(ApiErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   err.Error(),
		Path:      c.Path(),
		Details:   details,
	})
}
