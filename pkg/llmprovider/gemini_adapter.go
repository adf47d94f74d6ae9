package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"project-planner/pkg/gemini"
)

const providerGemini = "gemini"

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Contents:      make([]gemini.Content, len(req.Messages)),
		Tools:         convertToGeminiTools(req.Tools),
		ForceFunction: req.ToolChoice,
		Temperature:   req.Temperature,
		MaxTokens:     req.MaxTokens,
	}
	if req.SystemInstruction != nil && req.SystemInstruction.Content != "" {
		geminiReq.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: req.SystemInstruction.Content}},
		}
	}
	for i, msg := range req.Messages {
		geminiReq.Contents[i] = convertToGeminiContent(msg)
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerGemini, err)
	}

	return convertFromGeminiResponse(a.client.Model(), resp), nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return providerGemini
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Gemini names the assistant role "model".
func convertToGeminiContent(msg Message) gemini.Content {
	role := gemini.RoleUser
	if msg.Role == "assistant" || msg.Role == gemini.RoleModel {
		role = gemini.RoleModel
	}

	part := gemini.Part{Text: msg.Content}
	if msg.FunctionCall != nil {
		part.FunctionCall = &gemini.FunctionCall{
			Name: msg.FunctionCall.Name,
			Args: msg.FunctionCall.Args,
		}
	}
	return gemini.Content{Role: role, Parts: []gemini.Part{part}}
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		out[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return out
}

func convertFromGeminiResponse(model string, resp *gemini.Response) *Response {
	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: providerGemini,
		ModelName:    model,
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	var text []string
	for _, part := range resp.Content.Parts {
		if part.Text != "" {
			text = append(text, part.Text)
		}
		if part.FunctionCall != nil && out.Content.FunctionCall == nil {
			out.Content.FunctionCall = &FunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}
		}
	}
	out.Content.Content = strings.Join(text, "")

	return out
}
