package formschema

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Messages are shared by every validation entry point so client- and
// server-side reports are byte-identical.
const (
	msgPayloadObject  = "Form payload must be an object."
	msgTitleRequired  = "Title is required."
	msgTitleEmpty     = "Title cannot be empty."
	msgTitleType      = "Title must be a string."
	msgDescType       = "Description must be a string."
	msgFieldsRequired = "Fields are required."
	msgFieldsType     = "Fields must be a list."
	msgFieldObject    = "Field must be an object."
	msgNameRequired   = "Field name is required."
	msgNameEmpty      = "Field name cannot be empty."
	msgNameType       = "Field name must be a string."
	msgTypeRequired   = "Field type is required."
	msgTypeInvalid    = "Field type must be one of text, number, checkbox, date, select."
	msgOptionsType    = "Options must be a list of strings."
	msgRequiredType   = "Required must be a boolean."
)

// Parse decodes a raw JSON payload and validates it into a Draft.
// A JSON decode failure is returned as-is; it is a transport-level
// fault, not a validation outcome. Validation failures are returned as
// Issues.
func Parse(data []byte) (Draft, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Draft{}, fmt.Errorf("decoding form payload: %w", err)
	}
	return ParseValue(v)
}

// ParseValue validates a decoded, loosely-typed payload against the
// form-definition rules and produces a normalized Draft. All violations
// are collected; the result is either a usable Draft or the full list
// of Issues, never both.
func ParseValue(v any) (Draft, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Draft{}, Issues{{Path: "", Code: CodeInvalidType, Message: msgPayloadObject}}
	}

	var iss Issues
	var draft Draft

	switch title := obj["title"].(type) {
	case nil:
		iss = append(iss, Issue{Path: "title", Code: CodeRequired, Message: msgTitleRequired})
	case string:
		if title == "" {
			iss = append(iss, Issue{Path: "title", Code: CodeTooShort, Message: msgTitleEmpty})
		}
		draft.Title = title
	default:
		iss = append(iss, Issue{Path: "title", Code: CodeInvalidType, Message: msgTitleType})
	}

	if raw, present := obj["description"]; present && raw != nil {
		desc, ok := raw.(string)
		if !ok {
			iss = append(iss, Issue{Path: "description", Code: CodeInvalidType, Message: msgDescType})
		}
		draft.Description = desc
	}

	switch fields := obj["fields"].(type) {
	case nil:
		iss = append(iss, Issue{Path: "fields", Code: CodeRequired, Message: msgFieldsRequired})
	case []any:
		draft.Fields = make([]FieldDefinition, 0, len(fields))
		for i, rawField := range fields {
			fd, fieldIss := parseField(i, rawField)
			iss = append(iss, fieldIss...)
			draft.Fields = append(draft.Fields, fd)
		}
	default:
		iss = append(iss, Issue{Path: "fields", Code: CodeInvalidType, Message: msgFieldsType})
	}

	if len(iss) > 0 {
		return Draft{}, iss
	}
	if draft.Fields == nil {
		draft.Fields = []FieldDefinition{}
	}
	return draft, nil
}

// parseField validates one element of the fields sequence. The index is
// only used to build error paths.
func parseField(i int, v any) (FieldDefinition, Issues) {
	base := "fields." + strconv.Itoa(i)

	obj, ok := v.(map[string]any)
	if !ok {
		return FieldDefinition{}, Issues{{Path: base, Code: CodeInvalidType, Message: msgFieldObject}}
	}

	var iss Issues
	var fd FieldDefinition

	// Client-sent temporary identifiers ride along; anything non-string
	// is dropped rather than rejected, the server assigns real IDs.
	if id, ok := obj["id"].(string); ok {
		fd.ID = id
	}

	switch name := obj["name"].(type) {
	case nil:
		iss = append(iss, Issue{Path: base + ".name", Code: CodeRequired, Message: msgNameRequired})
	case string:
		if name == "" {
			iss = append(iss, Issue{Path: base + ".name", Code: CodeTooShort, Message: msgNameEmpty})
		}
		fd.Name = name
	default:
		iss = append(iss, Issue{Path: base + ".name", Code: CodeInvalidType, Message: msgNameType})
	}

	switch typ := obj["type"].(type) {
	case nil:
		iss = append(iss, Issue{Path: base + ".type", Code: CodeRequired, Message: msgTypeRequired})
	case string:
		ft := FieldType(typ)
		if !ft.Valid() {
			iss = append(iss, Issue{Path: base + ".type", Code: CodeInvalidEnum, Message: msgTypeInvalid})
		}
		fd.Type = ft
	default:
		iss = append(iss, Issue{Path: base + ".type", Code: CodeInvalidEnum, Message: msgTypeInvalid})
	}

	if raw, present := obj["options"]; present && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			iss = append(iss, Issue{Path: base + ".options", Code: CodeInvalidType, Message: msgOptionsType})
		} else {
			opts := make([]string, 0, len(list))
			for _, entry := range list {
				// Blank entries are allowed; only non-string structure
				// is rejected.
				s, ok := entry.(string)
				if !ok {
					iss = append(iss, Issue{Path: base + ".options", Code: CodeInvalidType, Message: msgOptionsType})
					opts = nil
					break
				}
				opts = append(opts, s)
			}
			fd.Options = opts
		}
	}

	if raw, present := obj["required"]; present && raw != nil {
		req, ok := raw.(bool)
		if !ok {
			iss = append(iss, Issue{Path: base + ".required", Code: CodeInvalidType, Message: msgRequiredType})
		}
		fd.Required = req
	}

	return fd, iss
}

// Validate applies the same rule set to an already-typed draft. The
// builder UI runs this before any network traffic; the service runs it
// again before persisting. Structural rules (string-ness, list-ness)
// are guaranteed by the type system here, so only value rules apply.
func (d Draft) Validate() error {
	var iss Issues

	if d.Title == "" {
		iss = append(iss, Issue{Path: "title", Code: CodeTooShort, Message: msgTitleEmpty})
	}
	for i, fd := range d.Fields {
		base := "fields." + strconv.Itoa(i)
		if fd.Name == "" {
			iss = append(iss, Issue{Path: base + ".name", Code: CodeTooShort, Message: msgNameEmpty})
		}
		if !fd.Type.Valid() {
			iss = append(iss, Issue{Path: base + ".type", Code: CodeInvalidEnum, Message: msgTypeInvalid})
		}
	}

	if len(iss) > 0 {
		return iss
	}
	return nil
}
