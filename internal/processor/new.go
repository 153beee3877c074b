package processor

import (
	"audiobook-flow/internal/config"
	"audiobook-flow/internal/images"
	"audiobook-flow/internal/logger"
	"audiobook-flow/internal/summarizer"
	"audiobook-flow/internal/tts"
	"audiobook-flow/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	engine   summarizer.Engine
	synth    tts.Synthesizer
	fetcher  *images.Fetcher
	ranker   *images.Ranker
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, engine summarizer.Engine, synth tts.Synthesizer, fetcher *images.Fetcher, ranker *images.Ranker, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		engine:   engine,
		synth:    synth,
		fetcher:  fetcher,
		ranker:   ranker,
		logger:   log,
	}
}
