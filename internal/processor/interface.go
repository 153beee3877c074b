package processor

import "context"

// Processor defines the interface for the document-to-video pipeline
type Processor interface {
	Process(ctx context.Context, docPath string) error
}
