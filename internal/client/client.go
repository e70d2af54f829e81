// Package client calls the chat API and falls back to the in-process
// assistant when the API cannot be reached
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/services/assistant"
)

// DefaultTimeout bounds a single remote request
const DefaultTimeout = 8 * time.Second

// ResolveBaseURL picks the API base for the deployment the client runs in
func ResolveBaseURL(host, env string) string {
	host = strings.ToLower(host)
	switch {
	case strings.Contains(host, "netlify"):
		return "/.netlify/functions"
	case strings.Contains(host, "vercel"):
		return "/api"
	case env == "development":
		return "http://localhost:5000/api"
	default:
		return "/api"
	}
}

// Client posts chat messages to a remote API
type Client struct {
	baseURL  string
	token    string
	timeout  time.Duration
	http     *http.Client
	fallback *assistant.Service
	logger   *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithToken sends a bearer token with every request
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger for fallback warnings
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for baseURL; fallback answers when the API fails
// and may be nil to disable the fallback
func New(baseURL string, fallback *assistant.Service, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  DefaultTimeout,
		http:     &http.Client{},
		fallback: fallback,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ask sends message to the API. On any transport error, timeout,
// non-200 status or undecodable body the local assistant answers
// instead and the envelope mode is set to local_fallback. There are no
// retries.
func (c *Client) Ask(ctx context.Context, message string) (*models.ResponseEnvelope, error) {
	env, err := c.remote(ctx, message)
	if err == nil {
		return env, nil
	}
	if c.fallback == nil {
		return nil, err
	}

	c.logger.Warn("chat API unavailable, answering locally", "error", err)
	env = c.fallback.Answer(message)
	env.Mode = assistant.ModeLocalFallback
	return env, nil
}

// Local answers without contacting the API
func (c *Client) Local(message string) (*models.ResponseEnvelope, error) {
	if c.fallback == nil {
		return nil, fmt.Errorf("no local assistant configured")
	}
	env := c.fallback.Answer(message)
	env.Mode = assistant.ModeLocalFallback
	return env, nil
}

func (c *Client) remote(ctx context.Context, message string) (*models.ResponseEnvelope, error) {
	if c.baseURL == "" || !strings.HasPrefix(c.baseURL, "http") {
		return nil, fmt.Errorf("no absolute API base URL configured: %q", c.baseURL)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var env models.ResponseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if env.Response == "" {
		return nil, fmt.Errorf("API returned an empty response")
	}
	return &env, nil
}
