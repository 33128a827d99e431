// Package investapi is the typed HTTP client for the remote investments API.
// The API owns every invariant (balances, ledger consistency, identity); this
// client only shapes requests and decodes responses.
package investapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/investa-app/webclient/pkg/logger"
)

const requestTimeout = 30 * time.Second

// TokenSource supplies the bearer token for authenticated calls. The token is
// looked up at the point of use; a missing token is an error there, never a
// precondition checked up front.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is an HTTP client for the investments REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *logger.Logger
}

// NewClient creates a new API client. baseURL must be absolute.
func NewClient(baseURL string, tokens TokenSource, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		tokens: tokens,
		logger: log.WithField("component", "investapi"),
	}
}

// SetHTTPClient overrides the underlying HTTP client (useful for testing)
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into out (skipped when out is nil or the body is empty). Calls are
// never retried: a failure is reported to the caller as-is.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}, auth bool) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path, out, auth)
}

// doMultipart performs a multipart/form-data request (signup, picture upload).
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, file *Upload, out interface{}, auth bool) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("file", file.Filename)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("failed to copy upload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, path, out, auth)
}

func (c *Client) send(req *http.Request, path string, out interface{}, auth bool) error {
	if auth {
		token, err := c.tokens.Token(req.Context())
		if err != nil {
			return fmt.Errorf("no session token for %s %s: %w", req.Method, path, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.logger.Debug("API request", "method", req.Method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("failed to read response body: %w", readErr)
	}

	c.logger.Debug("API response",
		"method", req.Method,
		"path", path,
		"status_code", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename string
	Content  io.Reader
}
