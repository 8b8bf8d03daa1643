package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestConcatPreservesOrder(t *testing.T) {
	segments := [][]float32{{0.1}, {0.2, 0.3}, {0.4}}

	got, err := Concat(segments)
	if err != nil {
		t.Fatalf("Concat returned error: %v", err)
	}
	want := []float32{0.1, 0.2, 0.3, 0.4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Concat = %v, want %v", got, want)
	}
}

func TestConcatRejectsEmpty(t *testing.T) {
	if _, err := Concat(nil); !errors.Is(err, ErrNoSegments) {
		t.Errorf("Concat(nil) error = %v, want ErrNoSegments", err)
	}
	if _, err := Concat([][]float32{{}, {}}); !errors.Is(err, ErrNoSegments) {
		t.Errorf("Concat of empty segments error = %v, want ErrNoSegments", err)
	}
}

func TestWriteWAVHeader(t *testing.T) {
	samples := []float32{0.0, 0.5, -0.5}
	var buf bytes.Buffer

	if err := WriteWAV(&buf, samples, 24000); err != nil {
		t.Fatalf("WriteWAV returned error: %v", err)
	}

	b := buf.Bytes()
	dataSize := len(samples) * 4
	if len(b) != 44+dataSize {
		t.Fatalf("Expected %d bytes, got %d", 44+dataSize, len(b))
	}

	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		t.Error("Missing RIFF/WAVE markers")
	}
	if got := binary.LittleEndian.Uint32(b[4:8]); got != uint32(36+dataSize) {
		t.Errorf("ChunkSize = %d, want %d", got, 36+dataSize)
	}
	if string(b[12:16]) != "fmt " {
		t.Error("Missing fmt chunk marker")
	}
	if got := binary.LittleEndian.Uint16(b[20:22]); got != 3 {
		t.Errorf("AudioFormat = %d, want 3 (IEEE float)", got)
	}
	if got := binary.LittleEndian.Uint16(b[22:24]); got != 1 {
		t.Errorf("NumChannels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(b[24:28]); got != 24000 {
		t.Errorf("SampleRate = %d, want 24000", got)
	}
	if got := binary.LittleEndian.Uint32(b[28:32]); got != 24000*4 {
		t.Errorf("ByteRate = %d, want %d", got, 24000*4)
	}
	if got := binary.LittleEndian.Uint16(b[32:34]); got != 4 {
		t.Errorf("BlockAlign = %d, want 4", got)
	}
	if got := binary.LittleEndian.Uint16(b[34:36]); got != 32 {
		t.Errorf("BitsPerSample = %d, want 32", got)
	}
	if string(b[36:40]) != "data" {
		t.Error("Missing data chunk marker")
	}
	if got := binary.LittleEndian.Uint32(b[40:44]); got != uint32(dataSize) {
		t.Errorf("DataSize = %d, want %d", got, dataSize)
	}
}

func TestWriteWAVSampleRoundtrip(t *testing.T) {
	samples := []float32{0.0, 1.0, -1.0, 0.25}
	var buf bytes.Buffer

	if err := WriteWAV(&buf, samples, 24000); err != nil {
		t.Fatalf("WriteWAV returned error: %v", err)
	}

	got, err := DecodeFloat32LE(buf.Bytes()[44:])
	if err != nil {
		t.Fatalf("DecodeFloat32LE returned error: %v", err)
	}
	if !reflect.DeepEqual(got, samples) {
		t.Errorf("Decoded samples = %v, want %v", got, samples)
	}
}

func TestWriteWAVRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteWAV(&buf, nil, 24000); !errors.Is(err, ErrNoSegments) {
		t.Errorf("WriteWAV with no samples error = %v, want ErrNoSegments", err)
	}
	if err := WriteWAV(&buf, []float32{0.1}, 0); err == nil {
		t.Error("WriteWAV with zero sample rate should fail")
	}
}

func TestDecodeFloat32LE(t *testing.T) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint32(raw[0:4], math.Float32bits(0.75))
	binary.LittleEndian.PutUint32(raw[4:8], math.Float32bits(-0.25))

	got, err := DecodeFloat32LE(raw)
	if err != nil {
		t.Fatalf("DecodeFloat32LE returned error: %v", err)
	}
	want := []float32{0.75, -0.25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeFloat32LE = %v, want %v", got, want)
	}

	if _, err := DecodeFloat32LE(raw[:5]); err == nil {
		t.Error("Misaligned payload should fail")
	}
	if _, err := DecodeFloat32LE(nil); err == nil {
		t.Error("Empty payload should fail")
	}
}
