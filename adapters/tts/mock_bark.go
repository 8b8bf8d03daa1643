package tts

import (
	"context"
	"fmt"
	"sync"

	"github.com/castwave/castwave/domain/repositories"
)

// MockSynthesizer is a deterministic SpeechSynthesizer for tests. Each
// chunk's samples are derived from its bytes, so callers can tell
// segments apart and verify assembly order. Calls is safe to read once
// the pipeline under test has finished.
type MockSynthesizer struct {
	Rate        int
	Unavailable bool
	FailOnText  string

	mu    sync.Mutex
	Calls []string
}

var _ repositories.SpeechSynthesizer = (*MockSynthesizer)(nil)

// NewMockSynthesizer creates a mock producing audio at 24000 Hz.
func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{Rate: 24000}
}

// MockSamples returns the samples the mock produces for text.
func MockSamples(text string) []float32 {
	samples := make([]float32, len(text))
	for i := 0; i < len(text); i++ {
		samples[i] = float32(text[i]) / 256
	}
	return samples
}

// Ready implements repositories.SpeechSynthesizer
func (m *MockSynthesizer) Ready(ctx context.Context) error {
	if m.Unavailable {
		return fmt.Errorf("synthesizer is offline")
	}
	return nil
}

// Synthesize implements repositories.SpeechSynthesizer
func (m *MockSynthesizer) Synthesize(ctx context.Context, text string, voice repositories.VoiceConfig) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if m.FailOnText != "" && text == m.FailOnText {
		return nil, fmt.Errorf("synthesis failed for %q", text)
	}
	return MockSamples(text), nil
}

// SampleRate implements repositories.SpeechSynthesizer
func (m *MockSynthesizer) SampleRate() int {
	return m.Rate
}
