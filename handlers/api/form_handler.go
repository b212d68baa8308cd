package handlers // handlers/api package

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
	"github.com/M-Sanjay12o52o/formulate/services"
)

// FormHandler serves the public form API.
type FormHandler struct {
	service services.IFormService
}

// NewFormHandler creates a FormHandler on the default service.
func NewFormHandler() *FormHandler {
	return &FormHandler{service: services.NewFormService()}
}

// NewFormHandlerWithService creates a FormHandler on a caller-supplied
// service.
func NewFormHandlerWithService(service services.IFormService) *FormHandler {
	return &FormHandler{service: service}
}

// CreateForm handles POST /api/forms. Validation failures come back as
// a 400 with the structured issue list; everything else that goes wrong
// is logged and flattened into a generic 500, including a body that is
// not valid JSON.
func (h *FormHandler) CreateForm(c *fiber.Ctx) error {
	draft, err := formschema.Parse(c.Body())
	if err != nil {
		if iss, ok := formschema.AsIssues(err); ok {
			return validationFailed(c, iss)
		}
		configslog.Log.Error("API - CreateForm: body could not be decoded", zap.Error(err))
		return internalError(c)
	}

	created, err := h.service.CreateForm(c.UserContext(), draft)
	if err != nil {
		// The service re-validates; with Parse ahead of it this only
		// trips if the two rule paths ever drift.
		if iss, ok := formschema.AsIssues(err); ok {
			return validationFailed(c, iss)
		}
		configslog.Log.Error("API - CreateForm: create failed", zap.Error(err))
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetForm handles GET /api/forms/:formId.
func (h *FormHandler) GetForm(c *fiber.Ctx) error {
	formID := c.Params("formId")

	form, err := h.service.GetFormByPublicID(c.UserContext(), formID)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Form not found"})
		}
		configslog.Log.Error("API - GetForm: lookup failed", zap.String("form_id", formID), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(form)
}

func validationFailed(c *fiber.Ctx, iss formschema.Issues) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  iss,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal Server Error",
	})
}
