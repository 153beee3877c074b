package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// Synthesize narrates text chunk by chunk through Gemini TTS. Each chunk is
// written as its own audio file in destDir; raw PCM responses are wrapped
// into WAV containers. An empty synthesized chunk is fatal.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, destDir string) ([]string, error) {
	chunks := SplitForTTS(text, s.maxChunkChars)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no narratable text after normalization")
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create narration dir: %w", err)
	}

	paths := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Info(ctx, "Synthesizing narration chunk %d/%d (%d chars)", i+1, len(chunks), len([]rune(chunk)))

		data, mimeType, err := s.generateAudio(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("synthesize chunk %d: %w", i+1, err)
		}

		ext := extensionForMIME(mimeType)
		if ext == "" {
			data = wrapWAV(data, mimeType)
			ext = ".wav"
		}

		path := filepath.Join(destDir, fmt.Sprintf("chunk_%04d%s", i+1, ext))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write narration chunk: %w", err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// generateAudio sends one chunk to Gemini and returns the raw audio bytes
// and their mime type. Rotates API keys on 429 / quota errors.
func (s *implSynthesizer) generateAudio(ctx context.Context, chunk string) ([]byte, string, error) {
	if len(s.apiKeys) == 0 {
		return nil, "", fmt.Errorf("no Gemini API keys configured")
	}

	prompt := fmt.Sprintf("Read this in %s in a warm and friendly tone: %s", s.language, chunk)

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return nil, "", fmt.Errorf("generate audio: %w", err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return nil, "", fmt.Errorf("empty response from Gemini TTS")
		}

		var data []byte
		var mimeType string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			if mimeType == "" {
				mimeType = part.InlineData.MIMEType
			}
			data = append(data, part.InlineData.Data...)
		}

		if len(data) == 0 {
			return nil, "", fmt.Errorf("Gemini TTS returned empty audio data")
		}
		return data, mimeType, nil
	}

	return nil, "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSynthesizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
