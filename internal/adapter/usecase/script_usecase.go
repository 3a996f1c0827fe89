package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"influence-nexus/internal/core/domain"
	"influence-nexus/internal/core/port"
	"influence-nexus/internal/metrics"
)

const (
	defaultScriptModel = "gpt-3.5-turbo"
	defaultLength      = "medium"
	defaultTone        = "friendly"
	defaultAudience    = "general"

	scriptTemperature = 0.8
	scriptMaxTokens   = 800

	scriptSystemPrompt = "You are an expert script writer for short creator videos."
	scriptUserPrompt   = "Write a creator-ready video script based on the details below. " +
		"Keep it organized, easy to read, and suitable for a short-form creator video. " +
		"Include short stage directions and an optional call-to-action at the end.\n\n" +
		"Topic: %s\nLength: %s\nTone: %s\nAudience: %s\n\nReturn only the script text."
)

// ScriptConfig holds the completion credential and model. An empty APIKey
// makes every Generate call fail with a ConfigurationError.
type ScriptConfig struct {
	APIKey string
	Model  string
}

// ScriptUseCase proxies a script brief to the completion endpoint.
type ScriptUseCase struct {
	client port.CompletionClient
	cfg    ScriptConfig
	logger *slog.Logger
}

// NewScriptUseCase creates a ScriptUseCase. An empty cfg.APIKey is allowed;
// Generate then fails with a ConfigurationError.
func NewScriptUseCase(client port.CompletionClient, cfg ScriptConfig, logger *slog.Logger) *ScriptUseCase {
	if cfg.Model == "" {
		cfg.Model = defaultScriptModel
	}
	return &ScriptUseCase{client: client, cfg: cfg, logger: logger}
}

// Generate returns the first completion choice, or "" when the endpoint sent
// none. Configuration and topic are checked before any network call.
func (u *ScriptUseCase) Generate(ctx context.Context, req port.ScriptRequest) (string, error) {
	if strings.TrimSpace(u.cfg.APIKey) == "" {
		metrics.RecordScript("unconfigured", 0)
		return "", &domain.ConfigurationError{Setting: "OPENAI_API_KEY"}
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		metrics.RecordScript("invalid", 0)
		return "", domain.NewValidationError("topic", "topic is required")
	}

	start := time.Now()
	script, err := u.client.Complete(ctx, port.CompletionRequest{
		APIKey: u.cfg.APIKey,
		Model:  u.cfg.Model,
		Messages: []port.Message{
			{Role: "system", Content: scriptSystemPrompt},
			{Role: "user", Content: scriptPrompt(topic, req)},
		},
		Temperature: scriptTemperature,
		MaxTokens:   scriptMaxTokens,
	})
	if err != nil {
		metrics.RecordScript("error", time.Since(start))
		u.logger.Error("script generation failed", slog.Any("error", err))
		return "", err
	}
	metrics.RecordScript("ok", time.Since(start))
	if script == "" {
		u.logger.Warn("completion returned no script content", slog.String("model", u.cfg.Model))
	}
	return script, nil
}

func scriptPrompt(topic string, req port.ScriptRequest) string {
	return fmt.Sprintf(scriptUserPrompt,
		topic,
		orDefault(req.Length, defaultLength),
		orDefault(req.Tone, defaultTone),
		orDefault(req.Audience, defaultAudience))
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
