package repositories

import "context"

// LargeLanguageModel abstracts any text generation provider
type LargeLanguageModel interface {
	// Generate takes a prompt and returns the model's reply as plain text.
	// The call is bounded by ctx; implementations honor cancellation.
	Generate(ctx context.Context, prompt string) (string, error)
}
