package llmprovider

import (
	"context"
	"encoding/json"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	// ToolChoice forces a call to the named tool when set
	ToolChoice  string
	Temperature float64
	MaxTokens   int
}

// Message represents a conversation message
type Message struct {
	Role         string // "user", "assistant", "system"
	Content      string
	FunctionCall *FunctionCall
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage // JSON Schema, sent verbatim
}

// FunctionCall represents a model's function call request
type FunctionCall struct {
	Name string
	Args json.RawMessage
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
