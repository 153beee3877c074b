package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// assembleNarration turns the ordered narration chunk files into one MP3.
// A lone MP3 chunk is copied through; anything else goes through the
// ffmpeg concat demuxer with an MP3 re-encode (chunks may be WAV).
func (p *implProcessor) assembleNarration(ctx context.Context, chunkPaths []string, outputPath string) error {
	if len(chunkPaths) == 0 {
		return fmt.Errorf("no narration chunks to assemble")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if len(chunkPaths) == 1 && strings.ToLower(filepath.Ext(chunkPaths[0])) == ".mp3" {
		return p.copyFile(chunkPaths[0], outputPath)
	}

	listPath := filepath.Join(filepath.Dir(chunkPaths[0]), "concat.txt")
	if err := writeConcatList(listPath, chunkPaths, 0); err != nil {
		return err
	}

	p.logger.Info(ctx, "Concatenating %d narration chunks -> %s", len(chunkPaths), outputPath)

	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c:a", "libmp3lame",
		"-q:a", "2",
		outputPath,
	}
	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg concat narration: %w", err)
	}
	return nil
}

// probeDuration returns the audio duration in seconds via ffprobe.
func (p *implProcessor) probeDuration(ctx context.Context, audioPath string) (float64, error) {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}
	return duration, nil
}

// writeConcatList writes an ffmpeg concat demuxer file. A positive
// perFileDuration adds a duration directive after every entry and repeats
// the final entry, the concat demuxer convention for slideshow stills.
func writeConcatList(listPath string, paths []string, perFileDuration float64) error {
	var b strings.Builder
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
		if perFileDuration > 0 {
			fmt.Fprintf(&b, "duration %.2f\n", perFileDuration)
		}
	}
	if perFileDuration > 0 && len(paths) > 0 {
		abs, err := filepath.Abs(paths[len(paths)-1])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", paths[len(paths)-1], err)
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}

	if err := os.WriteFile(listPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	return nil
}
