package services

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/models"
	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
	"github.com/M-Sanjay12o52o/formulate/repositories"
)

// FormServiceError is the service-level error type.
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound       FormServiceError = "form not found"
	ErrFormCreationFailed FormServiceError = "form could not be created"
)

// IFormService is the application-facing contract for form operations.
type IFormService interface {
	CreateForm(ctx context.Context, draft formschema.Draft) (*formschema.FormConfig, error)
	GetFormByPublicID(ctx context.Context, publicID string) (*formschema.FormConfig, error)
	GetFormCount(ctx context.Context) (int64, error)
}

// FormService implements IFormService.
type FormService struct {
	repo repositories.IFormRepository
}

// NewFormService creates a FormService on the default repository.
func NewFormService() IFormService {
	return &FormService{repo: repositories.NewFormRepository()}
}

// NewFormServiceWithRepository creates a FormService on a caller-supplied
// repository.
func NewFormServiceWithRepository(repo repositories.IFormRepository) IFormService {
	return &FormService{repo: repo}
}

// CreateForm validates the draft and persists it, returning the stored
// form in its public shape. A validation failure is returned as
// formschema.Issues untouched; storage failures are logged here and
// wrapped as ErrFormCreationFailed so no internal detail escapes.
func (s *FormService) CreateForm(ctx context.Context, draft formschema.Draft) (*formschema.FormConfig, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	form := models.FormConfig{
		Title:       draft.Title,
		Description: draft.Description,
		Fields:      make([]models.FormField, 0, len(draft.Fields)),
	}
	for i, fd := range draft.Fields {
		opts, err := encodeOptions(fd.Options)
		if err != nil {
			configslog.Log.Error("CreateForm: options could not be encoded",
				zap.Int("field_index", i), zap.Error(err))
			return nil, ErrFormCreationFailed
		}
		form.Fields = append(form.Fields, models.FormField{
			Name:     fd.Name,
			Type:     string(fd.Type),
			Options:  opts,
			Required: fd.Required,
			Position: i,
		})
	}

	if err := s.repo.Create(ctx, &form); err != nil {
		configslog.Log.Error("CreateForm: repository create failed",
			zap.String("title", draft.Title), zap.Error(err))
		return nil, ErrFormCreationFailed
	}

	result, err := toSchemaForm(&form)
	if err != nil {
		configslog.Log.Error("CreateForm: stored form could not be mapped",
			zap.String("public_id", form.PublicID), zap.Error(err))
		return nil, ErrFormCreationFailed
	}
	configslog.SLog.Infof("Form created: %s (%q, %d fields)", form.PublicID, form.Title, len(form.Fields))
	return result, nil
}

// GetFormByPublicID loads a stored form in its public shape.
func (s *FormService) GetFormByPublicID(ctx context.Context, publicID string) (*formschema.FormConfig, error) {
	form, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return toSchemaForm(form)
}

// GetFormCount returns the number of stored forms.
func (s *FormService) GetFormCount(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

// encodeOptions serializes the options list for storage. Absent and
// empty lists are stored as NULL; the wire shape treats both as absent.
func encodeOptions(options []string) (*string, error) {
	if len(options) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}
	encoded := string(raw)
	return &encoded, nil
}

// decodeOptions reverses encodeOptions on read.
func decodeOptions(encoded *string) ([]string, error) {
	if encoded == nil || *encoded == "" || *encoded == "null" {
		return nil, nil
	}
	var options []string
	if err := json.Unmarshal([]byte(*encoded), &options); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	return options, nil
}

// toSchemaForm maps a stored record to the public wire shape, dropping
// storage-only columns.
func toSchemaForm(form *models.FormConfig) (*formschema.FormConfig, error) {
	out := &formschema.FormConfig{
		FormID:      form.PublicID,
		Title:       form.Title,
		Description: form.Description,
		Fields:      make([]formschema.FieldDefinition, 0, len(form.Fields)),
	}
	for _, field := range form.Fields {
		options, err := decodeOptions(field.Options)
		if err != nil {
			return nil, err
		}
		out.Fields = append(out.Fields, formschema.FieldDefinition{
			ID:       field.PublicID,
			Name:     field.Name,
			Type:     formschema.FieldType(field.Type),
			Options:  options,
			Required: field.Required,
		})
	}
	return out, nil
}

var _ IFormService = (*FormService)(nil)
