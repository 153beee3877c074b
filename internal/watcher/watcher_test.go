package watcher

import "testing"

func TestIsDocumentFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"book.pdf", true},
		{"book.PDF", true},
		{"notes.txt", true},
		{"image.jpg", false},
		{"video.mp4", false},
		{"archive.tar.gz", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := isDocumentFile(tt.path); got != tt.want {
			t.Errorf("isDocumentFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
