// Package audio assembles synthesized segments into a single sample
// sequence and encodes it as a mono float32 WAV stream.
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	wavHeaderSize   = 44
	formatIEEEFloat = 3
	bitsPerSample   = 32
	numChannels     = 1
	bytesPerSample  = bitsPerSample / 8
)

// ErrNoSegments is returned when there is nothing to assemble.
var ErrNoSegments = errors.New("no audio samples to assemble")

// Concat joins segments into one sample sequence in the order given.
// Assembling zero segments, or segments with no samples at all, is an
// error rather than a silent zero-length file.
func Concat(segments [][]float32) ([]float32, error) {
	total := 0
	for _, segment := range segments {
		total += len(segment)
	}
	if total == 0 {
		return nil, ErrNoSegments
	}

	samples := make([]float32, 0, total)
	for _, segment := range segments {
		samples = append(samples, segment...)
	}
	return samples, nil
}

// WriteWAV encodes mono float32 samples as a RIFF/WAVE stream with a
// 16-byte fmt chunk, format tag 3 (IEEE float), 32 bits per sample,
// little-endian throughout.
func WriteWAV(w io.Writer, samples []float32, sampleRate int) error {
	if len(samples) == 0 {
		return ErrNoSegments
	}
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	dataSize := len(samples) * bytesPerSample
	if _, err := w.Write(wavHeader(sampleRate, dataSize)); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	return nil
}

func wavHeader(sampleRate, dataSize int) []byte {
	byteRate := sampleRate * numChannels * bytesPerSample
	blockAlign := numChannels * bytesPerSample

	h := make([]byte, wavHeaderSize)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(36+dataSize)) // ChunkSize
	copy(h[8:12], "WAVE")
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16) // Subchunk1Size
	binary.LittleEndian.PutUint16(h[20:22], formatIEEEFloat)
	binary.LittleEndian.PutUint16(h[22:24], numChannels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(h[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataSize))
	return h
}

// DecodeFloat32LE interprets raw little-endian float32 PCM bytes as
// samples, the wire format the synthesis sidecar responds with.
func DecodeFloat32LE(data []byte) ([]float32, error) {
	if len(data) == 0 {
		return nil, errors.New("empty pcm payload")
	}
	if len(data)%bytesPerSample != 0 {
		return nil, fmt.Errorf("pcm payload length %d is not float32 aligned", len(data))
	}

	samples := make([]float32, len(data)/bytesPerSample)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*bytesPerSample:]))
	}
	return samples, nil
}
