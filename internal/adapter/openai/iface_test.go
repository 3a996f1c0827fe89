package openai

import "influence-nexus/internal/core/port"

var _ port.CompletionClient = (*Client)(nil)
