// Package formschema is the shared contract for form definitions: the
// typed shapes exchanged between the builder UI, the HTTP API and the
// persistence layer, and the validation rules applied identically on
// both sides of the wire.
package formschema

import "time"

// Message is the hello-endpoint payload.
type Message struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// FieldType enumerates the input kinds a user-defined field may take.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
)

// FieldTypes lists the recognized field types in display order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeNumber,
		FieldTypeCheckbox,
		FieldTypeDate,
		FieldTypeSelect,
	}
}

// Valid reports whether t is one of the recognized field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeCheckbox, FieldTypeDate, FieldTypeSelect:
		return true
	}
	return false
}

// FieldDefinition is one typed input specification within a form.
// ID is assigned by the repository on create; clients may send a
// temporary one, which the server ignores.
type FieldDefinition struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
}

// FormConfig is the public shape of a persisted form definition.
type FormConfig struct {
	FormID      string            `json:"formId"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields"`
}

// Draft is an unpersisted candidate form definition. It has no FormID;
// identifiers are assigned by the repository at creation time.
type Draft struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields"`
}
