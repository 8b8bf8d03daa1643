package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/castwave/castwave/domain/repositories"
	"github.com/castwave/castwave/internal/audio"
)

const (
	synthesizePath = "/api/v1/synthesize"
	healthPath     = "/health"
)

// BarkConfig holds configuration for the BarkTTS adapter. The adapter
// talks to a Bark inference sidecar over HTTP; BaseURL points at it.
// Required fields:
// - BaseURL: where the sidecar listens (default: "http://localhost:5005")
// Optional fields with defaults:
// - VoicePreset: Bark speaker preset (default: "v2/en_speaker_6")
// - FineTemperature: fine sampling temperature (default: 0.4)
// - CoarseTemperature: coarse sampling temperature (default: 0.8)
// - SampleRate: sample rate of returned audio in Hz (default: 24000)
// - Timeout: per-request HTTP timeout (default: 2m)
type BarkConfig struct {
	BaseURL           string        `env:"BARK_SERVER_URL" envDefault:"http://localhost:5005"`
	VoicePreset       string        `env:"BARK_VOICE_PRESET" envDefault:"v2/en_speaker_6"`
	FineTemperature   float64       `env:"BARK_FINE_TEMPERATURE" envDefault:"0.4"`
	CoarseTemperature float64       `env:"BARK_COARSE_TEMPERATURE" envDefault:"0.8"`
	SampleRate        int           `env:"BARK_SAMPLE_RATE" envDefault:"24000"`
	Timeout           time.Duration `env:"BARK_TIMEOUT" envDefault:"2m"`
}

// NewBarkConfigFromEnv creates a BarkConfig from environment variables
func NewBarkConfigFromEnv() (BarkConfig, error) {
	config, err := env.ParseAs[BarkConfig]()
	if err != nil {
		return BarkConfig{}, fmt.Errorf("parsing bark environment: %w", err)
	}
	return config, nil
}

// ValidateBarkConfig validates the BarkConfig
func ValidateBarkConfig(config BarkConfig) error {
	if config.BaseURL == "" {
		return fmt.Errorf("bark server URL is required")
	}
	if config.VoicePreset == "" {
		return fmt.Errorf("voice preset is required")
	}
	if config.FineTemperature < 0 || config.FineTemperature > 1 {
		return fmt.Errorf("fine temperature must be between 0 and 1, got %f", config.FineTemperature)
	}
	if config.CoarseTemperature < 0 || config.CoarseTemperature > 1 {
		return fmt.Errorf("coarse temperature must be between 0 and 1, got %f", config.CoarseTemperature)
	}
	if config.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", config.SampleRate)
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", config.Timeout)
	}
	return nil
}

// barkSynthesisRequest is the payload for the synthesize endpoint.
type barkSynthesisRequest struct {
	Text              string  `json:"text"`
	VoicePreset       string  `json:"voice_preset"`
	FineTemperature   float64 `json:"fine_temperature"`
	CoarseTemperature float64 `json:"coarse_temperature"`
}

// barkHealthResponse mirrors the sidecar's health endpoint payload.
type barkHealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// BarkTTS implements the SpeechSynthesizer interface against a Bark
// inference sidecar. The sidecar responds with raw little-endian
// float32 mono PCM at the configured sample rate.
type BarkTTS struct {
	config BarkConfig
	client *http.Client
	logger *zap.Logger
}

// Ensure BarkTTS implements the SpeechSynthesizer interface
var _ repositories.SpeechSynthesizer = (*BarkTTS)(nil)

// NewBarkTTS creates a new Bark TTS instance
func NewBarkTTS(config BarkConfig, logger *zap.Logger) (*BarkTTS, error) {
	if err := ValidateBarkConfig(config); err != nil {
		return nil, err
	}

	return &BarkTTS{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}, nil
}

// DefaultVoice returns the voice the adapter is configured to speak with.
func (b *BarkTTS) DefaultVoice() repositories.VoiceConfig {
	return repositories.VoiceConfig{
		Preset:            b.config.VoicePreset,
		FineTemperature:   b.config.FineTemperature,
		CoarseTemperature: b.config.CoarseTemperature,
	}
}

// Ready checks the sidecar's health endpoint and verifies the model is
// loaded. Pipelines call it once before doing any work.
func (b *BarkTTS) Ready(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, b.config.BaseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("bark server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bark health check returned %d: %s", resp.StatusCode, string(errorBody))
	}

	var health barkHealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}
	if !health.ModelLoaded {
		return fmt.Errorf("bark model is not loaded (status %q)", health.Status)
	}
	return nil
}

// Synthesize renders one chunk of text into float32 samples.
func (b *BarkTTS) Synthesize(ctx context.Context, text string, voice repositories.VoiceConfig) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	requestBody, err := json.Marshal(barkSynthesisRequest{
		Text:              text,
		VoicePreset:       voice.Preset,
		FineTemperature:   voice.FineTemperature,
		CoarseTemperature: voice.CoarseTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.config.BaseURL+synthesizePath, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/octet-stream")

	b.logger.Debug("Sending request to bark server",
		zap.Int("text_length", len(text)),
		zap.String("voice_preset", voice.Preset))

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bark server returned %d: %s", resp.StatusCode, string(errorBody))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	samples, err := audio.DecodeFloat32LE(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pcm payload: %w", err)
	}

	b.logger.Info("Synthesized chunk",
		zap.Int("text_length", len(text)),
		zap.Int("samples", len(samples)),
		zap.String("voice_preset", voice.Preset))

	return samples, nil
}

// SampleRate returns the sample rate of synthesized audio in Hz.
func (b *BarkTTS) SampleRate() int {
	return b.config.SampleRate
}
