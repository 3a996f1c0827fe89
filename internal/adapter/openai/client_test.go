package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
)

func testRequest() port.CompletionRequest {
	return port.CompletionRequest{
		APIKey: "sk-test",
		Model:  "gpt-3.5-turbo",
		Messages: []port.Message{
			{Role: "system", Content: "sys"},
			{Role: "user", Content: "usr"},
		},
		Temperature: 0.8,
		MaxTokens:   800,
	}
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-3.5-turbo", body["model"])
		assert.Equal(t, 0.8, body["temperature"])
		assert.Equal(t, 800.0, body["max_tokens"])
		assert.Len(t, body["messages"], 2)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Hello  "}}]}`))
	}))
	defer srv.Close()

	out, err := NewClient(Config{URL: srv.URL}).Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "  Hello  ", out)
}

func TestCompleteWithoutChoicesIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	out, err := NewClient(Config{URL: srv.URL}).Complete(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompleteNon2xx(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(Config{URL: srv.URL}).Complete(context.Background(), testRequest())
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusTooManyRequests, remote.StatusCode)
	assert.Equal(t, "completion", remote.Service)
	assert.Contains(t, remote.Body, "rate limited")
	assert.Equal(t, 1, calls)
}

func TestNewClientDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewClient(Config{}).cfg.URL)
}
