package providers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

const MockClientName = "mock"

// MockLLM is an LLMClient for testing.
type MockLLM struct {
	// Configurable behavior
	Latency    time.Duration
	ShouldFail bool
	FailAfter  int // Fail after N requests (0 = never)

	// RewriteFunc, when set, computes the response from the last user
	// message. Otherwise ResponseText is returned.
	RewriteFunc  func(prompt string) string
	ResponseText string

	// State
	requestCount atomic.Int64
}

// NewMockLLM creates a new mock LLM client with sensible defaults.
func NewMockLLM() *MockLLM {
	return &MockLLM{
		ResponseText: "mock response",
	}
}

// Name returns the client identifier.
func (c *MockLLM) Name() string {
	return MockClientName
}

// RequestCount returns the number of Chat calls made.
func (c *MockLLM) RequestCount() int {
	return int(c.requestCount.Load())
}

// Chat sends a mock chat request.
func (c *MockLLM) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	if c.Latency > 0 {
		select {
		case <-time.After(c.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if c.ShouldFail || (c.FailAfter > 0 && int(count) > c.FailAfter) {
		return nil, fmt.Errorf("mock LLM failure on request %d", count)
	}

	content := c.ResponseText
	if c.RewriteFunc != nil && len(req.Messages) > 0 {
		content = c.RewriteFunc(req.Messages[len(req.Messages)-1].Content)
	}

	return &ChatResult{
		Content:       content,
		ExecutionTime: time.Since(start),
		Provider:      MockClientName,
		ModelUsed:     req.Model,
		RequestID:     fmt.Sprintf("mock-%d", count),
		Attempts:      1,
	}, nil
}

// MockTTS is a TTSProvider for testing.
type MockTTS struct {
	ShouldFail bool
	Audio      []byte

	requestCount atomic.Int64
}

// NewMockTTS creates a new mock TTS provider.
func NewMockTTS() *MockTTS {
	return &MockTTS{
		Audio: []byte("mock-audio"),
	}
}

// Name returns the provider identifier.
func (c *MockTTS) Name() string {
	return MockClientName
}

// RequestCount returns the number of Generate calls made.
func (c *MockTTS) RequestCount() int {
	return int(c.requestCount.Load())
}

// Generate returns canned audio bytes.
func (c *MockTTS) Generate(ctx context.Context, req *TTSRequest) (*TTSResult, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	if c.ShouldFail {
		err := fmt.Errorf("mock TTS failure on request %d", count)
		return &TTSResult{
			Success:       false,
			ErrorMessage:  err.Error(),
			CharCount:     len(req.Text),
			ExecutionTime: time.Since(start),
		}, err
	}

	return &TTSResult{
		Success:       true,
		Audio:         c.Audio,
		Format:        "mp3",
		CharCount:     len(req.Text),
		ExecutionTime: time.Since(start),
		RequestID:     fmt.Sprintf("mock-%d", count),
	}, nil
}

// Verify interfaces
var (
	_ LLMClient   = (*MockLLM)(nil)
	_ TTSProvider = (*MockTTS)(nil)
)
