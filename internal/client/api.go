// Package client is the Go counterpart of the browser app's data layer: an
// API client, a localStorage-style cache, and the application-lifecycle
// tracker that decides "already applied" and drives status display.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hirebridge/hirebridge/internal/dtos"
	"github.com/hirebridge/hirebridge/internal/models"
)

var (
	ErrAlreadyApplied = errors.New("already applied for this job")
	ErrNotFound       = errors.New("not found")
)

// API is the data-access surface the tracker runs on. Two implementations:
// HTTPClient against the real backend, Simulated against the local store.
// Which one a program uses is decided once at startup, not per call site.
type API interface {
	Jobs(ctx context.Context) ([]models.Job, error)
	Applications(ctx context.Context) ([]models.Application, error)
	CreateApplication(ctx context.Context, req *dtos.ApplicationCreationRequest) (*models.Application, error)
	UpdateApplication(ctx context.Context, id string, patch map[string]any) (*models.Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
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

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError maps the server's error envelope back onto the client
// sentinels so callers can branch on the duplicate condition.
func apiError(resp *http.Response) error {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	msg := envelope.Error
	if msg == "" {
		msg = envelope.Message
	}
	switch {
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(msg), "already applied"):
		return ErrAlreadyApplied
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("api: %s (status %d)", msg, resp.StatusCode)
	}
}

func (c *HTTPClient) Jobs(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *HTTPClient) Applications(ctx context.Context) ([]models.Application, error) {
	apps := []models.Application{}
	if err := c.do(ctx, http.MethodGet, "/api/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *HTTPClient) CreateApplication(ctx context.Context, req *dtos.ApplicationCreationRequest) (*models.Application, error) {
	var out struct {
		Message     string              `json:"message"`
		Application *models.Application `json:"application"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/applications", req, &out); err != nil {
		return nil, err
	}
	return out.Application, nil
}

func (c *HTTPClient) UpdateApplication(ctx context.Context, id string, patch map[string]any) (*models.Application, error) {
	var out struct {
		Message     string              `json:"message"`
		Application *models.Application `json:"application"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/applications/"+id, patch, &out); err != nil {
		return nil, err
	}
	return out.Application, nil
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/applications/"+id, nil, nil)
}
