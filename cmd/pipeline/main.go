package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"audiobook-flow/internal/config"
	"audiobook-flow/internal/images"
	"audiobook-flow/internal/logger"
	"audiobook-flow/internal/processor"
	"audiobook-flow/internal/summarizer"
	"audiobook-flow/internal/tts"
	"audiobook-flow/internal/watcher"
	"audiobook-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load .env if present; real environment wins over file values
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audiobook Summary Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Summary ratio: %.2f (min %d sentences per section)", cfg.Summary.Ratio, cfg.Summary.MinSentences)
	log.Info(ctx, "TTS: %s, voice %s", cfg.TTS.Model, cfg.TTS.Voice)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	apiKeys := geminiAPIKeys()
	if len(apiKeys) == 0 {
		log.Error(ctx, "GEMINI_API_KEY (or GEMINI_API_KEYS) is required for narration")
		os.Exit(1)
	}
	log.Info(ctx, "Gemini API keys loaded: %d", len(apiKeys))

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	engine := summarizer.New()
	synth := tts.New(apiKeys, cfg.TTS.Model, cfg.TTS.Voice, cfg.TTS.Language, cfg.TTS.MaxChunkChars, log)
	fetcher := images.NewFetcher(log)
	ranker := images.NewRanker(engine)
	proc := processor.New(cfg, exec, engine, synth, fetcher, ranker, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Drop a .pdf or .txt book into the input folder to begin")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// geminiAPIKeys reads narration API keys from the environment.
// GEMINI_API_KEYS takes a comma-separated list for quota rotation.
func geminiAPIKeys() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
