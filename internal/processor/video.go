package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const minImageSeconds = 3.0

// buildSlideshow muxes the narration audio with a timed image sequence.
// Each image shows for an equal share of the audio, floored at three
// seconds; the last frame is repeated so the video never ends on a gap.
func (p *implProcessor) buildSlideshow(ctx context.Context, audioPath string, imagePaths []string, outputPath string) error {
	if len(imagePaths) == 0 {
		return fmt.Errorf("no images provided for video generation")
	}

	duration, err := p.probeDuration(ctx, audioPath)
	if err != nil {
		return err
	}

	imageDuration := duration / float64(len(imagePaths))
	if imageDuration < minImageSeconds {
		imageDuration = minImageSeconds
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	listPath := stem + "_images.txt"
	if err := writeConcatList(listPath, imagePaths, imageDuration); err != nil {
		return err
	}
	defer os.Remove(listPath)

	p.logger.Info(ctx, "Building slideshow: %d images, %.2fs each, audio %.2fs", len(imagePaths), imageDuration, duration)

	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-i", audioPath,
		"-c:v", p.cfg.FFmpeg.VideoEncoder,
		"-preset", p.cfg.FFmpeg.Preset,
		"-pix_fmt", "yuv420p",
		"-vf", "scale=1280:720:force_original_aspect_ratio=decrease,pad=1280:720:(ow-iw)/2:(oh-ih)/2",
		"-c:a", p.cfg.FFmpeg.AudioCodec,
		"-shortest",
		outputPath,
	}
	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg slideshow: %w", err)
	}

	p.logger.Info(ctx, "Slideshow created: %s", outputPath)
	return nil
}
