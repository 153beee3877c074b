package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extractText pulls UTF-8 plain text out of the source document. PDFs go
// through the pdftotext binary; .txt files are read directly. A document
// with no recoverable text is an error.
func (p *implProcessor) extractText(ctx context.Context, docPath string) (string, error) {
	switch strings.ToLower(filepath.Ext(docPath)) {
	case ".pdf":
		p.logger.Info(ctx, "Extracting text from PDF: %s", docPath)

		// -q suppresses warnings, "-" writes to stdout.
		out, err := p.executor.Execute(ctx, p.cfg.Extract.PdftotextPath,
			"-enc", "UTF-8",
			"-q",
			docPath,
			"-",
		)
		if err != nil {
			return "", fmt.Errorf("pdftotext: %w", err)
		}

		text := strings.TrimSpace(out)
		if text == "" {
			return "", fmt.Errorf("no extractable text found in PDF: %s", docPath)
		}
		return text, nil

	case ".txt":
		data, err := os.ReadFile(docPath)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}

		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("text file is empty: %s", docPath)
		}
		return text, nil

	default:
		return "", fmt.Errorf("unsupported document type: %s", docPath)
	}
}
