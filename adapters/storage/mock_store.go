package storage

import (
	"sync"

	"github.com/castwave/castwave/domain/repositories"
)

// SavedAudio captures one Save call made against MockAudioStore.
type SavedAudio struct {
	Name       string
	Samples    []float32
	SampleRate int
}

// MockAudioStore records saves in memory for tests.
type MockAudioStore struct {
	Err error

	mu    sync.Mutex
	Saves []SavedAudio
}

var _ repositories.AudioStore = (*MockAudioStore)(nil)

// NewMockAudioStore creates an empty in-memory store.
func NewMockAudioStore() *MockAudioStore {
	return &MockAudioStore{}
}

// Save implements repositories.AudioStore
func (m *MockAudioStore) Save(name string, samples []float32, sampleRate int) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves = append(m.Saves, SavedAudio{Name: name, Samples: samples, SampleRate: sampleRate})
	return urlPrefix + "/" + name, nil
}
