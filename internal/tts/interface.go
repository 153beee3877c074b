package tts

import "context"

// Synthesizer turns summary text into narration audio. Synthesize writes
// one audio file per text chunk into destDir and returns the paths in
// narration order.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, destDir string) ([]string, error)
}
