// Package apiclient is the Go client for the event/user store HTTP API.
// The wallet and purchase logic consume the store exclusively through it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client talks to the backend. It caches the bearer token from Login and
// clears it on any 401, per the store's "invalid token means not
// authenticated" contract.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns the cached bearer token, empty when not authenticated.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// SetToken installs an externally obtained token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) clearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	return c.decode(resp.StatusCode, data, out)
}

func (c *Client) decode(status int, data []byte, out any) error {
	if status == http.StatusUnauthorized {
		c.clearToken()
		return ErrUnauthorized
	}
	if status == http.StatusNotFound {
		return ErrNotFound
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if status >= 400 || !env.Success {
		if env.Error != "" {
			return fmt.Errorf("store error %d: %s", status, env.Error)
		}
		return fmt.Errorf("store error %d: %s", status, env.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// --- Auth ---

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.doRequest(ctx, http.MethodPost, "/api/register",
		registerRequest{Username: username, Email: email, Password: password}, nil)
}

// Login authenticates and caches the bearer token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out loginResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/login",
		loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return err
	}
	c.SetToken(out.Token)
	return nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*UserRecord, error) {
	var out UserRecord
	if err := c.doRequest(ctx, http.MethodGet, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Events ---

func (c *Client) ListEvents(ctx context.Context) ([]EventRecord, error) {
	var out []EventRecord
	if err := c.doRequest(ctx, http.MethodGet, "/api/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*EventRecord, error) {
	var out EventRecord
	if err := c.doRequest(ctx, http.MethodGet, "/api/events/"+id, nil, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event record: %w", err)
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, event EventRecord) (*EventRecord, error) {
	var out EventRecord
	if err := c.doRequest(ctx, http.MethodPost, "/api/events", event, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, event EventRecord) (*EventRecord, error) {
	var out EventRecord
	if err := c.doRequest(ctx, http.MethodPut, "/api/events/"+id, event, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/events/"+id, nil, nil)
}

// --- Tickets ---

// RecordTicket reports a confirmed purchase so the backend can track seats.
func (c *Client) RecordTicket(ctx context.Context, receipt TicketReceipt) error {
	return c.doRequest(ctx, http.MethodPost, "/api/tickets", receipt, nil)
}

// --- Uploads ---

// UploadEventImage posts an image for the event and returns the static path.
func (c *Client) UploadEventImage(ctx context.Context, eventID, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/events/"+eventID+"/image", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var out EventRecord
	if err := c.decode(resp.StatusCode, data, &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}
