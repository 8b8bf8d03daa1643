package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/castwave/castwave/domain/repositories"
)

const maxGenerateAttempts = 3

// Relaxed safety thresholds; narration scripts routinely trip the
// default blocking on crime, medical, or history topics.
var safetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
}

// GeminiConfig holds the settings for the Gemini text generation client.
type GeminiConfig struct {
	APIKey          string        `env:"GEMINI_API_KEY"`
	Model           string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	Temperature     float32       `env:"GEMINI_TEMPERATURE" envDefault:"0.7"`
	TopP            float32       `env:"GEMINI_TOP_P" envDefault:"0.95"`
	TopK            float32       `env:"GEMINI_TOP_K" envDefault:"40"`
	MaxOutputTokens int           `env:"GEMINI_MAX_OUTPUT_TOKENS" envDefault:"8192"`
	Timeout         time.Duration `env:"GEMINI_TIMEOUT" envDefault:"2m"`
}

// NewGeminiConfigFromEnv reads GEMINI_* settings from the environment.
func NewGeminiConfigFromEnv() (GeminiConfig, error) {
	config, err := env.ParseAs[GeminiConfig]()
	if err != nil {
		return GeminiConfig{}, fmt.Errorf("parsing gemini environment: %w", err)
	}
	return config, nil
}

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if config.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if config.Temperature < 0 || config.Temperature > 1 {
		return fmt.Errorf("temperature must be between 0 and 1, got %f", config.Temperature)
	}
	if config.TopP < 0 || config.TopP > 1 {
		return fmt.Errorf("topP must be between 0 and 1, got %f", config.TopP)
	}
	if config.TopK < 0 {
		return fmt.Errorf("topK must be positive, got %f", config.TopK)
	}
	if config.MaxOutputTokens <= 0 {
		return fmt.Errorf("maxOutputTokens must be positive, got %d", config.MaxOutputTokens)
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", config.Timeout)
	}
	return nil
}

// GeminiLLM implements the LargeLanguageModel interface using Google's Gemini API
type GeminiLLM struct {
	client *genai.Client
	config GeminiConfig
	logger *zap.Logger
}

var _ repositories.LargeLanguageModel = (*GeminiLLM)(nil)

// NewGeminiLLM creates a new Gemini LLM instance
func NewGeminiLLM(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiLLM, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiLLM{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// Generate sends a single prompt and returns the model's text reply.
func (g *GeminiLLM) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	generateConfig := &genai.GenerateContentConfig{
		SafetySettings:  safetySettings,
		Temperature:     genai.Ptr(g.config.Temperature),
		TopP:            genai.Ptr(g.config.TopP),
		TopK:            genai.Ptr(g.config.TopK),
		MaxOutputTokens: int32(g.config.MaxOutputTokens),
	}

	var response *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		response, err = g.client.Models.GenerateContent(ctx, g.config.Model, contents, generateConfig)
		if err == nil {
			break
		}

		g.logger.Warn("Failed to generate content, retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(err))

		if attempt < maxGenerateAttempts-1 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("generating content: %w", ctx.Err())
			case <-time.After(time.Duration(attempt+1) * time.Second):
			}
		}
	}
	if err != nil {
		return "", fmt.Errorf("generating content after %d attempts: %w", maxGenerateAttempts, err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no content")
	}

	var text string
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("model returned no text parts")
	}

	g.logger.Info("Generated text",
		zap.String("model", g.config.Model),
		zap.Int("prompt_length", len(prompt)),
		zap.Int("response_length", len(text)))

	return text, nil
}
