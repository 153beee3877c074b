package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves the processed source document into the archive folder
func (p *implProcessor) moveToArchived(ctx context.Context, docPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(docPath))
	p.logger.Info(ctx, "Archiving source: %s -> %s", docPath, destPath)

	if err := os.Rename(docPath, destPath); err != nil {
		// Rename fails across filesystems; fall back to copy + remove.
		if copyErr := p.copyFile(docPath, destPath); copyErr != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
		if rmErr := os.Remove(docPath); rmErr != nil {
			p.logger.Warn(ctx, "Failed to remove source after copy: %v", rmErr)
		}
	}

	return nil
}

// cleanupTempDir removes a temporary directory, logs warning if fails
func (p *implProcessor) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}

// copyFile copies a file from src to dst
func (p *implProcessor) copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
