// Package formapi is the HTTP client for the public form API. The
// builder UI submits drafts through it; it speaks the same wire
// contract the handlers serve.
package formapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
)

// ValidationError carries a server-side validation rejection: the same
// issue shape the local validator produces.
type ValidationError struct {
	Message string            `json:"message"`
	Errors  formschema.Issues `json:"errors"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Errors.Error())
}

// Client talks to a running form API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL, e.g.
// "http://localhost:3000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTPClient creates a Client with a caller-supplied
// *http.Client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// CreateForm posts a draft to POST /api/forms. A 201 yields the stored
// form; a 400 yields a *ValidationError; anything else yields a generic
// error carrying the server-provided message when there is one.
func (c *Client) CreateForm(ctx context.Context, draft formschema.Draft) (*formschema.FormConfig, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encoding draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/forms", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting form: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		var created formschema.FormConfig
		if err := json.Unmarshal(data, &created); err != nil {
			return nil, fmt.Errorf("decoding created form: %w", err)
		}
		return &created, nil
	case http.StatusBadRequest:
		var ve ValidationError
		if err := json.Unmarshal(data, &ve); err != nil {
			return nil, fmt.Errorf("decoding validation response: %w", err)
		}
		return nil, &ve
	default:
		return nil, genericError(resp.StatusCode, data)
	}
}

// GetForm fetches a stored form by its identifier.
func (c *Client) GetForm(ctx context.Context, formID string) (*formschema.FormConfig, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/forms/"+formID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching form: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, genericError(resp.StatusCode, data)
	}

	var form formschema.FormConfig
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("decoding form: %w", err)
	}
	return &form, nil
}

// Hello calls the utility endpoint.
func (c *Client) Hello(ctx context.Context) (*formschema.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/hello", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling hello: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, genericError(resp.StatusCode, data)
	}

	var msg formschema.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, fmt.Errorf("decoding hello response: %w", err)
	}
	return &msg, nil
}

func genericError(status int, data []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("server returned %d: %s", status, payload.Message)
	}
	return fmt.Errorf("server returned unexpected status %d", status)
}
