package formapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
)

func TestCreateFormDecodesCreated(t *testing.T) {
	want := formschema.FormConfig{
		FormID: "f-1",
		Title:  "T",
		Fields: []formschema.FieldDefinition{
			{ID: "fd-1", Name: "Color", Type: formschema.FieldTypeSelect, Options: []string{"A", "B"}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/forms" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var draft formschema.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			t.Errorf("request body could not be decoded: %v", err)
		}
		if draft.Title != "T" {
			t.Errorf("expected title T, got %q", draft.Title)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	got, err := client.CreateForm(context.Background(), formschema.Draft{
		Title:  "T",
		Fields: []formschema.FieldDefinition{{Name: "Color", Type: formschema.FieldTypeSelect, Options: []string{"A", "B"}}},
	})
	if err != nil {
		t.Fatalf("CreateForm returned error: %v", err)
	}
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Errorf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateFormDecodesValidationRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Validation failed","errors":[{"path":"title","code":"too_short","message":"Title cannot be empty."}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateForm(context.Background(), formschema.Draft{Title: "T"})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Message != "Validation failed" {
		t.Errorf("unexpected message %q", ve.Message)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Path != "title" {
		t.Errorf("unexpected issues %v", ve.Errors)
	}
}

func TestCreateFormGenericFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateForm(context.Background(), formschema.Draft{Title: "T"})
	if err == nil {
		t.Fatal("expected error")
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Error("a 500 must not decode as a validation error")
	}
}

func TestHello(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hello" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"API response from Formulate!","timestamp":"2024-05-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	msg, err := client.Hello(context.Background())
	if err != nil {
		t.Fatalf("Hello returned error: %v", err)
	}
	if msg.Text != "API response from Formulate!" {
		t.Errorf("unexpected text %q", msg.Text)
	}
	if msg.Timestamp.IsZero() {
		t.Error("expected a parsed timestamp")
	}
}
