package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// summarizeDocument sections the text and summarizes each section with the
// configured ratio and minimum-sentence floor. Frequency scope stays
// per-section; the blocks come back in document order.
func (p *implProcessor) summarizeDocument(text string) []sectionSummary {
	sections := p.engine.SplitSections(text)

	blocks := make([]sectionSummary, 0, len(sections))
	for _, sec := range sections {
		blocks = append(blocks, sectionSummary{
			Title:   sec.Title,
			Summary: p.engine.SummarizeText(sec.Content, p.cfg.Summary.Ratio, p.cfg.Summary.MinSentences),
		})
	}
	return blocks
}

// renderSummary assembles "{title}\n{summary}\n" blocks separated by blank
// lines, matching the narration text layout.
func renderSummary(blocks []sectionSummary) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, b.Title+"\n"+b.Summary+"\n")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// writeSummaryArtifacts writes the plain-text summary and a styled docx
// rendition next to it. The docx is best-effort; the text file is not.
func (p *implProcessor) writeSummaryArtifacts(ctx context.Context, docName, summaryText string, blocks []sectionSummary) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	txtPath := filepath.Join(p.cfg.Paths.Output, docName+"_summary.txt")
	if err := os.WriteFile(txtPath, []byte(summaryText+"\n"), 0644); err != nil {
		return "", fmt.Errorf("write summary text: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, docName+"_summary.docx")
	if err := summaryToDocx(docName, blocks, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write summary docx: %v", err)
	}

	return txtPath, nil
}
