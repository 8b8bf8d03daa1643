package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/castwave/castwave/adapters/github"
	"github.com/castwave/castwave/adapters/llm"
	"github.com/castwave/castwave/adapters/storage"
	"github.com/castwave/castwave/adapters/tts"
	"github.com/castwave/castwave/internal/api"
	"github.com/castwave/castwave/internal/config"
	"github.com/castwave/castwave/usecase"
)

func main() {
	// Pick up a local .env when present. Deployed environments set
	// variables directly.
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid server configuration", zap.Error(err))
	}

	ctx := context.Background()

	// Gemini script generation
	geminiConfig, err := llm.NewGeminiConfigFromEnv()
	if err != nil {
		logger.Fatal("Failed to read Gemini configuration", zap.Error(err))
	}
	if err := llm.ValidateGeminiConfig(geminiConfig); err != nil {
		logger.Fatal("Invalid Gemini configuration", zap.Error(err))
	}
	model, err := llm.NewGeminiLLM(ctx, geminiConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}

	// GitHub README retrieval
	githubConfig, err := github.NewConfigFromEnv()
	if err != nil {
		logger.Fatal("Failed to read GitHub configuration", zap.Error(err))
	}
	githubClient, err := github.NewClient(githubConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize GitHub client", zap.Error(err))
	}

	// Bark speech synthesis sidecar
	barkConfig, err := tts.NewBarkConfigFromEnv()
	if err != nil {
		logger.Fatal("Failed to read Bark configuration", zap.Error(err))
	}
	if err := tts.ValidateBarkConfig(barkConfig); err != nil {
		logger.Fatal("Invalid Bark configuration", zap.Error(err))
	}
	synthesizer, err := tts.NewBarkTTS(barkConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Bark client", zap.Error(err))
	}

	store, err := storage.NewFileStore(cfg.StaticDir, logger)
	if err != nil {
		logger.Fatal("Failed to prepare audio directory", zap.Error(err))
	}

	// Initialize usecase services
	scripts := usecase.NewScriptService(model, githubClient, logger)
	narration := usecase.NewAudioService(synthesizer, store, usecase.AudioServiceConfig{
		MaxChunkChars:   cfg.MaxChunkChars,
		Workers:         cfg.SynthesisWorkers,
		ChunkTimeout:    cfg.ChunkTimeout,
		PipelineTimeout: cfg.PipelineTimeout,
		Voice:           synthesizer.DefaultVoice(),
	}, logger)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize API routes
	api.InitRoutes(e, scripts, narration, store.Dir(), logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("static_dir", store.Dir()),
		zap.Int("synthesis_workers", cfg.SynthesisWorkers))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
