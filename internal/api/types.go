package api

// GenerateScriptRequest represents the request payload for script generation
type GenerateScriptRequest struct {
	SourceType string `json:"source_type" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// GenerateScriptResponse represents the response payload for script generation.
// Description and Tags are omitted for sources that produce none.
type GenerateScriptResponse struct {
	Script      string   `json:"script"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// GenerateAudioRequest represents the request payload for narration synthesis
type GenerateAudioRequest struct {
	Script string `json:"script" validate:"required"`
}

// GenerateAudioResponse represents the response payload for narration synthesis
type GenerateAudioResponse struct {
	AudioURL string `json:"audio_url"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
