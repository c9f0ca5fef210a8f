// Package api is the storefront's HTTP adapter. It wraps every backend call,
// attaches the stored bearer token automatically, and normalizes catalog
// records into the canonical client shape right at the network boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hongminglow/shopfront/internal/client/models"
)

// TokenSource supplies the persisted bearer token, if any.
type TokenSource interface {
	Token() string
}

// Client talks to the shopfront backend. Calls are single-attempt: no
// retries, no backoff. Backend error payloads are surfaced unmodified
// as *Error.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// New creates a client for the given server base URL (scheme://host:port).
// The fixed /api prefix is appended here.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		httpc:   &http.Client{},
		tokens:  tokens,
	}
}

// Error is a backend failure payload paired with its HTTP status.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
}

// FieldError is one entry of a structured validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// AuthResponse is the register/login result. User is nil and Token empty
// when the backend returned a partial shape; the state store decides what
// to do with that.
type AuthResponse struct {
	Message string          `json:"message"`
	User    *models.Account `json:"user"`
	Token   string          `json:"token"`
}

// Register creates an account and returns the issued session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns the issued session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CatalogPage is a normalized page of catalog items.
type CatalogPage struct {
	Page       int
	Limit      int
	TotalPages int
	Total      int
	Items      []models.CatalogItem
}

// ListItems fetches one catalog page. The backend historically answered with
// a bare array, {items: [...]}, or {data: [...]}; all three are accepted and
// collapsed here so callers only ever see CatalogPage.
func (c *Client) ListItems(ctx context.Context, page, limit int, query string) (CatalogPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if query != "" {
		params.Set("q", query)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/items?"+params.Encode(), nil, &raw); err != nil {
		return CatalogPage{}, err
	}
	return parseCatalogPayload(raw)
}

// GetItem fetches a single item by id, normalized.
func (c *Client) GetItem(ctx context.Context, id string) (models.CatalogItem, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/items/"+url.PathEscape(id), nil, &raw); err != nil {
		return models.CatalogItem{}, err
	}
	return normalizeRecord(raw)
}

// CreateItemInput carries a new catalog entry for the protected create call.
type CreateItemInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CreateItem creates an item; requires a stored token.
func (c *Client) CreateItem(ctx context.Context, input CreateItemInput) (models.CatalogItem, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/items", input, &raw); err != nil {
		return models.CatalogItem{}, err
	}
	return normalizeRecord(raw)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func parseError(status int, data []byte) *Error {
	apiErr := &Error{Status: status}
	var payload struct {
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Fields = payload.Errors
	}
	return apiErr
}
