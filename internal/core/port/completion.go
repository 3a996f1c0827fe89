package port

import "context"

// Message is a single chat message sent to the completion endpoint.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is one chat completion call.
type CompletionRequest struct {
	APIKey      string
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// CompletionClient calls a text-completion API. It returns the first choice's
// content, or "" when the response carries none. A non-success status is
// reported as *domain.RemoteError.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
