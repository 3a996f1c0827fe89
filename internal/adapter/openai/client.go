// Package openai is the chat completion transport behind the script widget.
package openai

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
	"influence-nexus/internal/core/port"
)

const (
	DefaultURL        = "https://api.openai.com/v1/chat/completions"
	maxErrorBodyBytes = 32 << 10
)

// Config configures the completions endpoint and HTTP behaviour.
type Config struct {
	URL        string
	HTTPClient *http.Client
}

// Client implements port.CompletionClient against the chat completions API.
type Client struct {
	cfg Config
}

// NewClient builds a client. An empty URL falls back to the public endpoint.
func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = DefaultURL
	}
	return &Client{cfg: cfg}
}

type chatRequest struct {
	Model       string         `json:"model"`
	Messages    []port.Message `json:"messages"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
}

// Complete sends one chat completion request. It does not retry.
func (c *Client) Complete(ctx context.Context, in port.CompletionRequest) (string, error) {
	raw, err := json.Marshal(chatRequest{
		Model:       in.Model,
		Messages:    in.Messages,
		Temperature: in.Temperature,
		MaxTokens:   in.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key only travels in the Authorization header.
	req.Header.Set("Authorization", "Bearer "+in.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return "", &domain.RemoteError{Service: "completion", StatusCode: res.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("decode completion response: invalid json")
	}
	return gjson.GetBytes(body, "choices.0.message.content").String(), nil
}
