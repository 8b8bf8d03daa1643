// Package config loads service-level settings from the environment.
// Adapter-specific settings (Gemini, Bark, GitHub) live next to their
// adapters and are parsed the same way.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP server and pipeline settings.
type Config struct {
	Port             string        `env:"PORT" envDefault:"8000"`
	StaticDir        string        `env:"STATIC_DIR" envDefault:"static"`
	SynthesisWorkers int           `env:"SYNTHESIS_WORKERS" envDefault:"1"`
	MaxChunkChars    int           `env:"MAX_CHUNK_CHARS" envDefault:"300"`
	PipelineTimeout  time.Duration `env:"PIPELINE_TIMEOUT" envDefault:"10m"`
	ChunkTimeout     time.Duration `env:"CHUNK_TIMEOUT" envDefault:"2m"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that the env parser cannot express.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR must not be empty")
	}
	if c.SynthesisWorkers < 1 {
		return fmt.Errorf("SYNTHESIS_WORKERS must be at least 1, got %d", c.SynthesisWorkers)
	}
	if c.MaxChunkChars < 1 {
		return fmt.Errorf("MAX_CHUNK_CHARS must be positive, got %d", c.MaxChunkChars)
	}
	if c.PipelineTimeout <= 0 {
		return fmt.Errorf("PIPELINE_TIMEOUT must be positive, got %s", c.PipelineTimeout)
	}
	if c.ChunkTimeout <= 0 {
		return fmt.Errorf("CHUNK_TIMEOUT must be positive, got %s", c.ChunkTimeout)
	}
	return nil
}
