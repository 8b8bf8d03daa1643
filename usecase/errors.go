package usecase

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Adapter
// failures are wrapped and fall through as internal errors.
var (
	// ErrUnknownSourceType flags a source_type outside topic, github,
	// script, or file.
	ErrUnknownSourceType = errors.New("unknown source type")
	// ErrEmptyContent flags a request with no content to work from.
	ErrEmptyContent = errors.New("content is empty")
	// ErrInvalidRepoURL flags a github source whose URL carries no
	// owner/repo pair.
	ErrInvalidRepoURL = errors.New("invalid github repository url")
	// ErrEmptyScript flags a script with nothing left to narrate after
	// cleaning.
	ErrEmptyScript = errors.New("script is empty after cleaning")
	// ErrSynthesizerUnavailable flags an unreachable or unloaded speech
	// model.
	ErrSynthesizerUnavailable = errors.New("speech synthesizer is unavailable")
)
