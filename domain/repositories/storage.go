package repositories

// AudioStore persists assembled audio and maps it to a public URL path.
type AudioStore interface {
	// Save encodes samples as a WAV file under the given name and
	// returns the URL path clients can fetch it from. Saving an empty
	// sample slice is an error.
	Save(name string, samples []float32, sampleRate int) (string, error)
}
