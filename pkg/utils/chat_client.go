package utils

import "context"

// ChatClientInterface is the contract the plan engines hold against the
// generative backend: one synchronous completion with a fixed system role.
// A non-nil error means the backend reported failure; the error text carries
// the backend's own message.
type ChatClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error)
}
