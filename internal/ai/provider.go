package ai

import (
	"context"
)

// CompletionRequest is one prompt for a hosted model. ImageBase64, when set,
// attaches a base64-encoded JPEG to the message.
type CompletionRequest struct {
	Prompt       string
	ImageBase64  string
	MaxTokens    int
	JSONResponse bool
}

// Provider is a hosted large-language-model API. Providers are tried in
// order; an unconfigured provider fails per call so the chain can move on.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
