// Package builder holds the form-builder editing state: an owned,
// session-scoped draft mutated by the UI handlers, plus the submitter
// that ships a validated draft to the create endpoint.
package builder

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
)

// Field is one draft field. TempID is generated client-side and only
// used for list keying and removal targeting; the server assigns the
// authoritative identifier on create.
type Field struct {
	TempID   string               `json:"id"`
	Name     string               `json:"name"`
	Type     formschema.FieldType `json:"type"`
	Options  []string             `json:"options,omitempty"`
	Required bool                 `json:"required"`
}

// Draft is the in-memory candidate form configuration being edited.
type Draft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{Fields: []Field{}}
}

// AddField appends a field with defaults and a fresh temporary
// identifier, which it returns.
func (d *Draft) AddField() string {
	field := Field{
		TempID:   "temp-" + uuid.NewString(),
		Name:     "",
		Type:     formschema.FieldTypeText,
		Required: false,
	}
	d.Fields = append(d.Fields, field)
	return field.TempID
}

// RemoveField deletes the field with the given temporary identifier.
func (d *Draft) RemoveField(tempID string) bool {
	for i, field := range d.Fields {
		if field.TempID == tempID {
			d.Fields = append(d.Fields[:i], d.Fields[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateField mutates one attribute of the named field. Changing type
// away from select clears options; changing it to select when options
// were absent initializes them to an empty sequence.
func (d *Draft) UpdateField(tempID, key string, value any) error {
	field := d.find(tempID)
	if field == nil {
		return fmt.Errorf("no draft field with id %q", tempID)
	}

	switch key {
	case "name":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field name must be a string, got %T", value)
		}
		field.Name = s
	case "type":
		var ft formschema.FieldType
		switch v := value.(type) {
		case formschema.FieldType:
			ft = v
		case string:
			ft = formschema.FieldType(v)
		default:
			return fmt.Errorf("field type must be a string, got %T", value)
		}
		field.Type = ft
		if ft != formschema.FieldTypeSelect {
			field.Options = nil
		} else if field.Options == nil {
			field.Options = []string{}
		}
	case "required":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field required must be a boolean, got %T", value)
		}
		field.Required = b
	default:
		return fmt.Errorf("unknown draft field attribute %q", key)
	}
	return nil
}

// UpdateFieldOptions parses a comma-separated string into trimmed,
// non-empty option entries. An empty result stores absent rather than
// an empty sequence.
func (d *Draft) UpdateFieldOptions(tempID, raw string) error {
	field := d.find(tempID)
	if field == nil {
		return fmt.Errorf("no draft field with id %q", tempID)
	}

	var options []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	field.Options = options
	return nil
}

// ToSchema converts the draft to its wire shape. Temporary identifiers
// ride along as ignorable extras; the server never treats them as
// authoritative.
func (d *Draft) ToSchema() formschema.Draft {
	out := formschema.Draft{
		Title:       d.Title,
		Description: d.Description,
		Fields:      make([]formschema.FieldDefinition, 0, len(d.Fields)),
	}
	for _, field := range d.Fields {
		out.Fields = append(out.Fields, formschema.FieldDefinition{
			ID:       field.TempID,
			Name:     field.Name,
			Type:     field.Type,
			Options:  field.Options,
			Required: field.Required,
		})
	}
	return out
}

// Reset clears the draft back to its initial state.
func (d *Draft) Reset() {
	d.Title = ""
	d.Description = ""
	d.Fields = []Field{}
}

func (d *Draft) find(tempID string) *Field {
	for i := range d.Fields {
		if d.Fields[i].TempID == tempID {
			return &d.Fields[i]
		}
	}
	return nil
}
