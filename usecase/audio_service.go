package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/castwave/castwave/domain/repositories"
	"github.com/castwave/castwave/internal/audio"
	"github.com/castwave/castwave/internal/text"
)

// AudioServiceConfig bounds the narration pipeline. Zero values fall
// back to the defaults applied by NewAudioService.
type AudioServiceConfig struct {
	MaxChunkChars   int
	Workers         int
	ChunkTimeout    time.Duration
	PipelineTimeout time.Duration
	Voice           repositories.VoiceConfig
}

// AudioService drives a script through the narration pipeline:
// normalize, chunk, synthesize, assemble, persist.
type AudioService struct {
	synthesizer repositories.SpeechSynthesizer
	store       repositories.AudioStore
	config      AudioServiceConfig
	logger      *zap.Logger
}

// NewAudioService creates a new audio service
func NewAudioService(
	synthesizer repositories.SpeechSynthesizer,
	store repositories.AudioStore,
	config AudioServiceConfig,
	logger *zap.Logger,
) *AudioService {
	if config.MaxChunkChars <= 0 {
		config.MaxChunkChars = text.DefaultMaxChunkChars
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.ChunkTimeout <= 0 {
		config.ChunkTimeout = 2 * time.Minute
	}
	if config.PipelineTimeout <= 0 {
		config.PipelineTimeout = 10 * time.Minute
	}
	return &AudioService{
		synthesizer: synthesizer,
		store:       store,
		config:      config,
		logger:      logger,
	}
}

// GenerateNarration renders a raw script into a single WAV file and
// returns the URL path it is served under. The synthesizer readiness
// gate runs before any text processing so an unavailable model fails
// fast.
func (s *AudioService) GenerateNarration(ctx context.Context, rawScript string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.PipelineTimeout)
	defer cancel()

	// Step 1: Check the speech model is loaded and reachable
	if err := s.synthesizer.Ready(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesizerUnavailable, err)
	}

	// Step 2: Strip stage directions and markup from the script
	cleaned := text.Normalize(rawScript)
	if cleaned == "" {
		return "", ErrEmptyScript
	}

	// Step 3: Split into chunks the model can handle in one pass
	chunks := text.Chunk(cleaned, s.config.MaxChunkChars)
	if len(chunks) == 0 {
		return "", ErrEmptyScript
	}

	s.logger.Info("Starting narration synthesis",
		zap.Int("chunks", len(chunks)),
		zap.Int("workers", s.config.Workers),
		zap.Int("script_length", len(cleaned)))

	// Step 4: Synthesize every chunk
	segments, err := s.synthesizeChunks(ctx, chunks)
	if err != nil {
		return "", err
	}

	// Step 5: Assemble segments into one sample stream
	samples, err := audio.Concat(segments)
	if err != nil {
		return "", fmt.Errorf("assembling audio: %w", err)
	}

	// Step 6: Persist as WAV and hand back the serving URL
	name := uuid.NewString() + ".wav"
	url, err := s.store.Save(name, samples, s.synthesizer.SampleRate())
	if err != nil {
		return "", fmt.Errorf("saving audio: %w", err)
	}

	s.logger.Info("Narration complete",
		zap.String("file", name),
		zap.Int("samples", len(samples)),
		zap.Float64("duration_seconds", float64(len(samples))/float64(s.synthesizer.SampleRate())))

	return url, nil
}

// synthesizeChunks renders every chunk, at most Workers at a time.
// Each result lands in its chunk's slot so assembly order always
// matches chunk order regardless of completion order; the first
// failure cancels the remaining work.
func (s *AudioService) synthesizeChunks(ctx context.Context, chunks []string) ([][]float32, error) {
	segments := make([][]float32, len(chunks))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.Workers)

	for i, chunk := range chunks {
		group.Go(func() error {
			s.logger.Info("Synthesizing chunk",
				zap.Int("chunk", i+1),
				zap.Int("total", len(chunks)),
				zap.Int("length", len(chunk)))

			chunkCtx, cancel := context.WithTimeout(groupCtx, s.config.ChunkTimeout)
			defer cancel()

			segment, err := s.synthesizer.Synthesize(chunkCtx, chunk, s.config.Voice)
			if err != nil {
				return fmt.Errorf("synthesizing chunk %d/%d: %w", i+1, len(chunks), err)
			}
			segments[i] = segment
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return segments, nil
}
