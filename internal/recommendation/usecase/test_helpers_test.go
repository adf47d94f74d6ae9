package usecase

import (
	"context"
	"sync"

	"project-planner/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockLLM records requests and replies via fn.
type mockLLM struct {
	mu       sync.Mutex
	requests []*llmprovider.Request
	fn       func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.fn(ctx, req)
}

func (m *mockLLM) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockLLM) lastRequest() *llmprovider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

func textLLM(text string) *mockLLM {
	return &mockLLM{fn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		return &llmprovider.Response{
			Content:      llmprovider.Message{Role: "assistant", Content: text},
			ProviderName: "mock",
			Usage:        &llmprovider.Usage{},
		}, nil
	}}
}

func errLLM(err error) *mockLLM {
	return &mockLLM{fn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		return nil, err
	}}
}

func functionCallLLM(name, args string) *mockLLM {
	return &mockLLM{fn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		return &llmprovider.Response{
			Content: llmprovider.Message{
				Role:         "assistant",
				FunctionCall: &llmprovider.FunctionCall{Name: name, Args: []byte(args)},
			},
			ProviderName: "mock",
			Usage:        &llmprovider.Usage{},
		}, nil
	}}
}

const validPlanArgs = `{
	"project": {
		"name": "Kitchen Remodel",
		"description": "Full kitchen renovation",
		"start_date": "03/01/2025",
		"end_date": "06/30/2025",
		"phases": [{
			"name": "Phase 1: Design",
			"start_date": "03/01/2025",
			"end_date": "03/31/2025",
			"tasks": [{
				"name": "Hire designer",
				"start_date": "03/01/2025",
				"end_date": "03/07/2025",
				"team": "Project Manager"
			}]
		}]
	}
}`
