package images

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"audiobook-flow/internal/summarizer"
)

func TestRankByRelevance(t *testing.T) {
	r := NewRanker(summarizer.New())

	summary := "A growth mindset shapes daily habits. Good health and sleep support it."
	paths := []string{"mindset_growth.jpg", "health_sleep.png", "neutral.webp"}

	t.Run("keyword matches rank first", func(t *testing.T) {
		got := r.RankByRelevance(summary, paths, 3)
		if len(got) != 3 {
			t.Fatalf("returned %d paths, want 3", len(got))
		}

		top := map[string]bool{got[0]: true, got[1]: true}
		if !top["mindset_growth.jpg"] || !top["health_sleep.png"] {
			t.Errorf("top two = %v, want the two keyword-matching files", got[:2])
		}
		if got[2] != "neutral.webp" {
			t.Errorf("last = %q, want the zero-relevance file", got[2])
		}
	})

	t.Run("cap truncates", func(t *testing.T) {
		got := r.RankByRelevance(summary, paths, 1)
		if len(got) != 1 {
			t.Fatalf("returned %d paths, want 1", len(got))
		}
	})

	t.Run("no cap returns all", func(t *testing.T) {
		got := r.RankByRelevance(summary, paths, 0)
		if len(got) != 3 {
			t.Fatalf("returned %d paths, want 3", len(got))
		}
	})

	t.Run("zero relevance keeps input order", func(t *testing.T) {
		unrelated := []string{"one.jpg", "two.png", "three.webp"}
		got := r.RankByRelevance(summary, unrelated, 0)
		if !reflect.DeepEqual(got, unrelated) {
			t.Errorf("got %v, want input order %v", got, unrelated)
		}
	})

	t.Run("hyphens and directories handled", func(t *testing.T) {
		got := r.RankByRelevance(summary, []string{"assets/daily-habits.jpeg", "assets/blank.png"}, 0)
		if got[0] != "assets/daily-habits.jpeg" {
			t.Errorf("got %v, want the hyphenated match first", got)
		}
	})
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"photo.png", true},
		{"photo.webp", true},
		{"photo.gif", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.path); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "skip.txt", "c.gif"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}

	want := []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "b.png")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanDir() = %v, want %v", got, want)
	}
}

func TestScanDirEmpty(t *testing.T) {
	if _, err := ScanDir(t.TempDir()); err == nil {
		t.Error("ScanDir() on empty dir should return error")
	}
}
