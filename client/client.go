// Package client is the API-facing side of the tracker: a typed HTTP
// client plus a Session that mirrors server state locally with the
// same optimistic-update rules the web UI applies.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"habitmaster/backend/models"
	"habitmaster/backend/store"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Login resolves the username to a user record, creating it on first
// login.
func (c *Client) Login(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := c.doJSON(ctx, http.MethodPost, "/api/login", map[string]string{"username": username}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchMonth retrieves the month-scoped snapshot for the user.
func (c *Client) FetchMonth(ctx context.Context, userID uint, month, year int) ([]models.HabitWithDays, error) {
	path := fmt.Sprintf("/api/data?userId=%d&month=%d&year=%d", userID, month, year)
	habits := make([]models.HabitWithDays, 0)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// CreateHabit adds a habit and returns it with the server-assigned ID.
func (c *Client) CreateHabit(ctx context.Context, userID uint, name string) (*models.HabitWithDays, error) {
	body := map[string]interface{}{"userId": userID, "name": name}
	var habit models.HabitWithDays
	if err := c.doJSON(ctx, http.MethodPost, "/api/habits", body, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

// DeleteHabit removes a habit and its completions. Deleting an absent
// habit succeeds.
func (c *Client) DeleteHabit(ctx context.Context, habitID uint) error {
	path := fmt.Sprintf("/api/habits/%d", habitID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// Toggle flips one day's completion mark and reports the server's
// resulting status, store.StatusAdded or store.StatusRemoved.
func (c *Client) Toggle(ctx context.Context, habitID uint, day, month, year int) (string, error) {
	body := map[string]interface{}{"habitId": habitID, "day": day, "month": month, "year": year}
	var result struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/toggle", body, &result); err != nil {
		return "", err
	}
	switch result.Status {
	case store.StatusAdded, store.StatusRemoved:
		return result.Status, nil
	default:
		return "", fmt.Errorf("unexpected toggle status %q", result.Status)
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("api: %s: %s", resp.Status, apiErr.Message)
	}
	return fmt.Errorf("api: %s", resp.Status)
}
