package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockHandler computes a response from the request. Used when calls are
// issued concurrently and FIFO order is not meaningful.
type MockHandler func(req Request) MockResponse

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order, or delegates to a handler,
// and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	handler   MockHandler
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewMockHandler creates a MockProvider that answers every request with h.
func NewMockHandler(h MockHandler) *MockProvider {
	return &MockProvider{handler: h}
}

// Generate returns the handler's response, or the next canned response, or
// ErrProviderUnavailable if the queue is empty.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	handler := m.handler

	var resp MockResponse
	switch {
	case handler != nil:
	case len(m.responses) == 0:
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{Err: nil}
	default:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	}
	m.mu.Unlock()

	if handler != nil {
		resp = handler(req)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
