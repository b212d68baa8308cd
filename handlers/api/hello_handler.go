package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
)

// HelloHandler serves the connectivity-check endpoint.
type HelloHandler struct{}

// NewHelloHandler creates a HelloHandler.
func NewHelloHandler() *HelloHandler {
	return &HelloHandler{}
}

// Hello handles GET /api/hello.
func (h *HelloHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(formschema.Message{
		Text:      "API response from Formulate!",
		Timestamp: time.Now().UTC(),
	})
}
