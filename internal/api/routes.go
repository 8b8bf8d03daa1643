package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/castwave/castwave/domain/entities"
	"github.com/castwave/castwave/usecase"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, scripts *usecase.ScriptService, narration *usecase.AudioService, staticDir string, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "castwave",
		})
	})

	e.POST("/generate-script", func(c echo.Context) error {
		return generateScript(c, scripts, logger)
	})
	e.POST("/generate-audio", func(c echo.Context) error {
		return generateAudio(c, narration, logger)
	})

	// Finished WAV files are served straight from disk.
	e.Static("/static", staticDir)
}

func generateScript(c echo.Context, scripts *usecase.ScriptService, logger *zap.Logger) error {
	var req GenerateScriptRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind generate-script request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	script, err := scripts.Generate(c.Request().Context(), entities.SourceType(req.SourceType), req.Content)
	if err != nil {
		return scriptError(c, err, logger)
	}

	return c.JSON(http.StatusOK, GenerateScriptResponse{
		Script:      script.Body,
		Title:       script.Title,
		Description: script.Description,
		Tags:        script.Tags,
	})
}

func generateAudio(c echo.Context, narration *usecase.AudioService, logger *zap.Logger) error {
	var req GenerateAudioRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind generate-audio request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	audioURL, err := narration.GenerateNarration(c.Request().Context(), req.Script)
	if err != nil {
		return audioError(c, err, logger)
	}

	logger.Info("Audio generated", zap.String("audio_url", audioURL))
	return c.JSON(http.StatusOK, GenerateAudioResponse{AudioURL: audioURL})
}

// scriptError maps script generation failures onto HTTP statuses.
// Anything outside the sentinel set is an internal failure.
func scriptError(c echo.Context, err error, logger *zap.Logger) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownSourceType):
		logger.Warn("Rejected generate-script request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "unknown_source_type",
			Message: "source_type must be one of topic, github, script, file",
		})
	case errors.Is(err, usecase.ErrEmptyContent):
		logger.Warn("Rejected generate-script request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "empty_content",
			Message: "content is required",
		})
	case errors.Is(err, usecase.ErrInvalidRepoURL):
		logger.Warn("Rejected generate-script request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_repo_url",
			Message: "content must be a github.com repository URL",
		})
	default:
		logger.Error("Script generation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "script_generation_failed",
			Message: "Script generation failed",
		})
	}
}

// audioError maps narration failures onto HTTP statuses.
func audioError(c echo.Context, err error, logger *zap.Logger) error {
	switch {
	case errors.Is(err, usecase.ErrSynthesizerUnavailable):
		logger.Error("Speech synthesizer unavailable", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "synthesizer_unavailable",
			Message: "Speech model is not available",
		})
	case errors.Is(err, usecase.ErrEmptyScript):
		logger.Warn("Rejected generate-audio request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "empty_script",
			Message: "Script is empty after cleaning",
		})
	default:
		logger.Error("Audio generation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "audio_generation_failed",
			Message: "Audio generation failed",
		})
	}
}
