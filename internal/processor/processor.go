package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"audiobook-flow/internal/images"
)

// Process runs the whole document-to-video pipeline for one source file.
func (p *implProcessor) Process(ctx context.Context, docPath string) error {
	startTime := time.Now()
	docName := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting document processing: %s", docPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract plain text
	text, err := p.extractText(ctx, docPath)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	// Step 2: Summarize section by section
	blocks := p.summarizeDocument(text)
	summaryText := renderSummary(blocks)
	if summaryText == "" {
		return fmt.Errorf("summary is empty for %s", docPath)
	}
	p.logger.Info(ctx, "Summarized %d sections (ratio %.2f)", len(blocks), p.cfg.Summary.Ratio)

	// Step 3: Write summary artifacts
	txtPath, err := p.writeSummaryArtifacts(ctx, docName, summaryText, blocks)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	// Step 4: Narrate the summary
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	tempDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "narration-*")
	if err != nil {
		return fmt.Errorf("create narration temp dir: %w", err)
	}
	defer p.cleanupTempDir(ctx, tempDir)

	chunkPaths, err := p.synth.Synthesize(ctx, summaryText, tempDir)
	if err != nil {
		return fmt.Errorf("synthesize narration: %w", err)
	}

	audioPath := filepath.Join(p.cfg.Paths.Output, docName+".mp3")
	if err := p.assembleNarration(ctx, chunkPaths, audioPath); err != nil {
		return fmt.Errorf("assemble narration: %w", err)
	}

	// Step 5: Collect and rank slideshow images
	ranked, err := p.collectImages(ctx, summaryText, tempDir)
	if err != nil {
		return fmt.Errorf("collect images: %w", err)
	}

	// Step 6: Mux the slideshow video
	videoPath := filepath.Join(p.cfg.Paths.Output, docName+".mp4")
	if err := p.buildSlideshow(ctx, audioPath, ranked, videoPath); err != nil {
		return fmt.Errorf("build slideshow: %w", err)
	}

	// Step 7: Archive the source document
	if err := p.moveToArchived(ctx, docPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive source: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Summary: %s", txtPath)
	p.logger.Info(ctx, "Audio: %s", audioPath)
	p.logger.Info(ctx, "Video: %s", videoPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// collectImages gathers slideshow candidates from the configured local
// directory, or downloads them from Wikimedia Commons, then orders them by
// relevance to the summary keywords.
func (p *implProcessor) collectImages(ctx context.Context, summaryText, tempDir string) ([]string, error) {
	var candidates []string
	var err error

	if p.cfg.Images.Dir != "" {
		candidates, err = images.ScanDir(p.cfg.Images.Dir)
	} else {
		candidates, err = p.fetcher.Fetch(ctx, p.cfg.Images.Query, filepath.Join(tempDir, "images"), p.cfg.Images.Count)
	}
	if err != nil {
		return nil, err
	}

	return p.ranker.RankByRelevance(summaryText, candidates, p.cfg.Images.Count), nil
}
