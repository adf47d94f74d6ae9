package openai

import "context"

// IOpenAI is a client for OpenAI-compatible chat completion APIs.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// CreateChatCompletion sends a chat completion request
	CreateChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Model returns the default model used when a request leaves it empty
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
