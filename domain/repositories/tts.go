package repositories

import "context"

// VoiceConfig selects the synthesis voice and sampling temperatures.
type VoiceConfig struct {
	Preset            string  `json:"preset"`
	FineTemperature   float64 `json:"fine_temperature"`
	CoarseTemperature float64 `json:"coarse_temperature"`
}

// SpeechSynthesizer abstracts a speech model that renders text into
// mono float32 samples. The handle is injected into the orchestrator;
// nothing in the pipeline reaches for a global model.
type SpeechSynthesizer interface {
	// Ready reports whether the underlying model can serve requests.
	// Callers check it once before starting a pipeline, not per chunk.
	Ready(ctx context.Context) error
	// Synthesize renders one chunk of text into samples at SampleRate.
	Synthesize(ctx context.Context, text string, voice VoiceConfig) ([]float32, error)
	// SampleRate returns the sample rate of synthesized audio in Hz.
	SampleRate() int
}
