package llm

import (
	"context"

	"github.com/castwave/castwave/domain/repositories"
)

// MockLLM is a scripted LargeLanguageModel for tests and local runs
// without an API key. It records every prompt it receives.
type MockLLM struct {
	Response string
	Err      error
	Prompts  []string
}

var _ repositories.LargeLanguageModel = (*MockLLM)(nil)

// NewMockLLM creates a mock that always replies with response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// Generate implements repositories.LargeLanguageModel
func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
