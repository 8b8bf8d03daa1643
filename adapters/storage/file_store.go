// Package storage persists assembled audio on the local filesystem,
// under the directory the server exposes as /static.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/castwave/castwave/domain/repositories"
	"github.com/castwave/castwave/internal/audio"
)

// urlPrefix is where the HTTP layer mounts the storage directory.
const urlPrefix = "/static"

// FileStore implements the AudioStore interface on the local filesystem.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// Ensure FileStore implements the AudioStore interface
var _ repositories.AudioStore = (*FileStore)(nil)

// NewFileStore creates the storage directory if needed.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the directory files are saved into.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save encodes samples as a WAV file under name and returns the public
// URL path. The file is written to a temp name and renamed into place,
// so a concurrent download never sees a partial file.
func (s *FileStore) Save(name string, samples []float32, sampleRate int) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	tmp, err := os.CreateTemp(s.dir, "audio-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := audio.WriteWAV(tmp, samples, sampleRate); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encoding wav: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	target := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("publishing %s: %w", name, err)
	}

	s.logger.Info("Saved audio file",
		zap.String("path", target),
		zap.Int("samples", len(samples)),
		zap.Int("sample_rate", sampleRate))

	return urlPrefix + "/" + name, nil
}
