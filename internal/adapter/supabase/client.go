// Package supabase talks to the hosted backend-as-a-service: the GoTrue auth
// API for sessions and the PostgREST API for table access.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"influence-nexus/internal/core/domain"
)

const maxErrorBodyBytes = 32 << 10

// Config holds client configuration. AnonKey is sent on auth calls,
// ServiceKey on table calls. JWTSecret enables local token verification.
type Config struct {
	URL        string
	AnonKey    string
	ServiceKey string
	JWTSecret  string
	HTTPClient *http.Client
}

// Client is a Supabase REST client.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	jwtSecret  []byte
	httpClient *http.Client
}

// New creates a new Supabase client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	if cfg.AnonKey == "" && cfg.ServiceKey == "" {
		return nil, fmt.Errorf("supabase anon key or service key is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		httpClient: httpClient,
	}
	if cfg.JWTSecret != "" {
		c.jwtSecret = []byte(cfg.JWTSecret)
	}
	if c.anonKey == "" {
		c.anonKey = c.serviceKey
	}
	if c.serviceKey == "" {
		c.serviceKey = c.anonKey
	}
	return c, nil
}

type request struct {
	method  string
	path    string
	query   string
	bearer  string
	apiKey  string
	headers map[string]string
	body    any
}

// do executes a request and returns the body of a successful response.
// Non-2xx responses become a RemoteError carrying the body.
func (c *Client) do(ctx context.Context, service string, r request) ([]byte, int, error) {
	url := c.baseURL + r.path
	if r.query != "" {
		url += "?" + r.query
	}

	var reqBody io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, url, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", r.apiKey)
	bearer := r.bearer
	if bearer == "" {
		bearer = r.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, resp.StatusCode, &domain.RemoteError{Service: service, StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// errorMessage picks the human readable part of a GoTrue or PostgREST error
// body.
func errorMessage(body string) string {
	for _, path := range []string{"error_description", "msg", "message", "error"} {
		if v := gjson.Get(body, path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return strings.TrimSpace(body)
}
