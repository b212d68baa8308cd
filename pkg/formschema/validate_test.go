package formschema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
)

func TestParseValidPayload(t *testing.T) {
	payload := []byte(`{
		"title": "Signup",
		"description": "Event signup form",
		"fields": [
			{"name": "Age", "type": "number"},
			{"name": "Color", "type": "select", "options": ["Red", "Blue"], "required": true}
		]
	}`)

	draft, err := formschema.Parse(payload)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := formschema.Draft{
		Title:       "Signup",
		Description: "Event signup form",
		Fields: []formschema.FieldDefinition{
			{Name: "Age", Type: formschema.FieldTypeNumber},
			{Name: "Color", Type: formschema.FieldTypeSelect, Options: []string{"Red", "Blue"}, Required: true},
		},
	}
	if diff := cmp.Diff(want, draft); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyFieldsIsValid(t *testing.T) {
	draft, err := formschema.Parse([]byte(`{"title": "T", "fields": []}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if draft.Fields == nil || len(draft.Fields) != 0 {
		t.Errorf("expected empty non-nil fields, got %#v", draft.Fields)
	}
}

func TestParseEmptyTitle(t *testing.T) {
	_, err := formschema.Parse([]byte(`{"title": "", "fields": []}`))
	iss, ok := formschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if got := iss.ByPath("title"); len(got) != 1 {
		t.Errorf("expected one title issue, got %v", iss)
	}
	if iss[0].Code != formschema.CodeTooShort {
		t.Errorf("expected code %q, got %q", formschema.CodeTooShort, iss[0].Code)
	}
}

func TestParseMissingTitle(t *testing.T) {
	_, err := formschema.Parse([]byte(`{"fields": []}`))
	iss, ok := formschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss.ByPath("title")) == 0 {
		t.Errorf("expected issue attributed to title, got %v", iss)
	}
}

func TestParseCollectsAllViolations(t *testing.T) {
	payload := []byte(`{
		"title": "",
		"fields": [
			{"name": "", "type": "text"},
			{"name": "Level", "type": "slider"},
			{"name": "Tags", "type": "select", "options": "a,b", "required": "yes"}
		]
	}`)

	_, err := formschema.Parse(payload)
	iss, ok := formschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}

	wantPaths := map[string]string{
		"title":             formschema.CodeTooShort,
		"fields.0.name":     formschema.CodeTooShort,
		"fields.1.type":     formschema.CodeInvalidEnum,
		"fields.2.options":  formschema.CodeInvalidType,
		"fields.2.required": formschema.CodeInvalidType,
	}
	if len(iss) != len(wantPaths) {
		t.Fatalf("expected %d issues, got %d: %v", len(wantPaths), len(iss), iss)
	}
	for _, it := range iss {
		code, ok := wantPaths[it.Path]
		if !ok {
			t.Errorf("unexpected issue path %q", it.Path)
			continue
		}
		if it.Code != code {
			t.Errorf("path %q: expected code %q, got %q", it.Path, code, it.Code)
		}
	}
}

func TestParseFieldStructure(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantPath string
		wantCode string
	}{
		{"field not an object", `{"title":"T","fields":["nope"]}`, "fields.0", formschema.CodeInvalidType},
		{"fields not a list", `{"title":"T","fields":"nope"}`, "fields", formschema.CodeInvalidType},
		{"fields missing", `{"title":"T"}`, "fields", formschema.CodeRequired},
		{"name missing", `{"title":"T","fields":[{"type":"text"}]}`, "fields.0.name", formschema.CodeRequired},
		{"name not a string", `{"title":"T","fields":[{"name":1,"type":"text"}]}`, "fields.0.name", formschema.CodeInvalidType},
		{"type missing", `{"title":"T","fields":[{"name":"A"}]}`, "fields.0.type", formschema.CodeRequired},
		{"type not a string", `{"title":"T","fields":[{"name":"A","type":7}]}`, "fields.0.type", formschema.CodeInvalidEnum},
		{"description not a string", `{"title":"T","description":3,"fields":[]}`, "description", formschema.CodeInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formschema.Parse([]byte(tt.payload))
			iss, ok := formschema.AsIssues(err)
			if !ok {
				t.Fatalf("expected Issues, got %v", err)
			}
			found := false
			for _, it := range iss {
				if it.Path == tt.wantPath && it.Code == tt.wantCode {
					found = true
				}
			}
			if !found {
				t.Errorf("expected issue %s at %s, got %v", tt.wantCode, tt.wantPath, iss)
			}
		})
	}
}

func TestParseAllowsBlankOptionEntries(t *testing.T) {
	payload := []byte(`{"title":"T","fields":[{"name":"C","type":"select","options":["", "A"]}]}`)
	draft, err := formschema.Parse(payload)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"", "A"}, draft.Fields[0].Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRequiredDefaultsToFalse(t *testing.T) {
	draft, err := formschema.Parse([]byte(`{"title":"T","fields":[{"name":"A","type":"text"}]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if draft.Fields[0].Required {
		t.Error("required should default to false")
	}
}

func TestParseNonObjectPayload(t *testing.T) {
	_, err := formschema.Parse([]byte(`[1,2,3]`))
	iss, ok := formschema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "" {
		t.Fatalf("expected a single top-level issue, got %v", err)
	}
}

func TestParseMalformedJSONIsNotIssues(t *testing.T) {
	_, err := formschema.Parse([]byte(`{"title": `))
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := formschema.AsIssues(err); ok {
		t.Errorf("malformed JSON must not surface as validation issues: %v", err)
	}
}

func TestDraftValidateMatchesParse(t *testing.T) {
	draft := formschema.Draft{
		Title: "",
		Fields: []formschema.FieldDefinition{
			{Name: "", Type: formschema.FieldTypeText},
			{Name: "X", Type: formschema.FieldType("bogus")},
		},
	}

	err := draft.Validate()
	iss, ok := formschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}

	wantPaths := []string{"title", "fields.0.name", "fields.1.type"}
	if len(iss) != len(wantPaths) {
		t.Fatalf("expected %d issues, got %v", len(wantPaths), iss)
	}
	for i, path := range wantPaths {
		if iss[i].Path != path {
			t.Errorf("issue %d: expected path %q, got %q", i, path, iss[i].Path)
		}
	}
}

func TestDraftValidateSuccess(t *testing.T) {
	draft := formschema.Draft{
		Title:  "T",
		Fields: []formschema.FieldDefinition{{Name: "Age", Type: formschema.FieldTypeNumber}},
	}
	if err := draft.Validate(); err != nil {
		t.Errorf("expected valid draft, got %v", err)
	}
}
