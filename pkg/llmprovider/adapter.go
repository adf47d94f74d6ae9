package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"project-planner/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. It serves every
// OpenAI-compatible backend; name tells them apart in logs.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openai.ChatRequest{
		Messages:    convertToOpenAIMessages(req.SystemInstruction, req.Messages),
		Tools:       convertToOpenAITools(req.Tools),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.ToolChoice != "" {
		chatReq.ToolChoice = &openai.ToolChoice{
			Type:     "function",
			Function: openai.ToolChoiceFunction{Name: req.ToolChoice},
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return convertFromOpenAIResponse(a.name, resp), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(system *Message, msgs []Message) []openai.ChatMessage {
	messages := make([]openai.ChatMessage, 0, len(msgs)+1)
	if system != nil && system.Content != "" {
		messages = append(messages, openai.ChatMessage{
			Role:    openai.RoleSystem,
			Content: system.Content,
		})
	}

	for _, msg := range msgs {
		m := openai.ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
		if msg.FunctionCall != nil {
			m.ToolCalls = []openai.ToolCall{{
				ID:   "call_" + msg.FunctionCall.Name,
				Type: "function",
				Function: openai.FunctionCall{
					Name:      msg.FunctionCall.Name,
					Arguments: string(msg.FunctionCall.Args),
				},
			}}
		}
		messages = append(messages, m)
	}
	return messages
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{
			Type: "function",
			Function: openai.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func convertFromOpenAIResponse(name string, resp *openai.ChatResponse) *Response {
	out := &Response{
		Content:      Message{Role: openai.RoleAssistant},
		ProviderName: name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]
	out.Content.Content = choice.Message.Content

	if len(choice.Message.ToolCalls) > 0 {
		tc := choice.Message.ToolCalls[0]
		out.Content.FunctionCall = &FunctionCall{
			Name: tc.Function.Name,
			Args: json.RawMessage(tc.Function.Arguments),
		}
	}

	return out
}
