package tts

import (
	"audiobook-flow/internal/logger"
)

// DefaultMaxChunkChars bounds the text sent per TTS request.
const DefaultMaxChunkChars = 3500

type implSynthesizer struct {
	apiKeys       []string
	currentKey    int
	model         string
	voice         string
	language      string
	maxChunkChars int
	logger        logger.Logger
}

// New creates a Gemini-backed Synthesizer that rotates through the supplied
// API keys on quota errors.
func New(apiKeys []string, model, voice, language string, maxChunkChars int, log logger.Logger) Synthesizer {
	if maxChunkChars <= 0 {
		maxChunkChars = DefaultMaxChunkChars
	}
	return &implSynthesizer{
		apiKeys:       apiKeys,
		model:         model,
		voice:         voice,
		language:      language,
		maxChunkChars: maxChunkChars,
		logger:        log,
	}
}
