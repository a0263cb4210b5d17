// Package supabase talks to the wardrobe_items table through Supabase's PostgREST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/outfique/backend/internal/domain"
)

var _ domain.WardrobeRepository = (*Client)(nil)

const wardrobeTable = "wardrobe_items"

// Client issues PostgREST calls with the project's anon key.
// Row-level security on the table decides what the key may touch.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the project at baseURL (https://<ref>.supabase.co)
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// apiError is PostgREST's error body
type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

func (c *Client) tableURL(query url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, wardrobeTable)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, target string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("supabase: failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("supabase: failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("supabase: %s", apiErr.Message)
		}
		return fmt.Errorf("supabase: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("supabase: failed to decode response: %w", err)
	}
	return nil
}

// ListByUser returns the user's items, newest first
func (c *Client) ListByUser(ctx context.Context, userID string) ([]domain.WardrobeItem, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_id", "eq."+userID)
	query.Set("order", "created_at.desc")

	items := make([]domain.WardrobeItem, 0)
	if err := c.do(ctx, http.MethodGet, c.tableURL(query), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type insertRow struct {
	domain.NewWardrobeItem
	UserID string `json:"user_id"`
}

// Insert stores a new item and returns the created row
func (c *Client) Insert(ctx context.Context, userID string, item domain.NewWardrobeItem) (domain.WardrobeItem, error) {
	var created []domain.WardrobeItem
	if err := c.do(ctx, http.MethodPost, c.tableURL(nil), insertRow{NewWardrobeItem: item, UserID: userID}, &created); err != nil {
		return domain.WardrobeItem{}, err
	}
	if len(created) != 1 {
		return domain.WardrobeItem{}, fmt.Errorf("supabase: expected one created row, got %d", len(created))
	}
	return created[0], nil
}

// Delete removes an item by id
func (c *Client) Delete(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("id", "eq."+id)
	return c.do(ctx, http.MethodDelete, c.tableURL(query), nil, nil)
}

// Health asks PostgREST for a single row id
func (c *Client) Health(ctx context.Context) error {
	query := url.Values{}
	query.Set("select", "id")
	query.Set("limit", "1")
	var rows []json.RawMessage
	return c.do(ctx, http.MethodGet, c.tableURL(query), nil, &rows)
}
