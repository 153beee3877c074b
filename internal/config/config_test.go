package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
		Images: ImagesConfig{
			Query: "belief effect placebo psychology",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config with defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing input path",
			mutate:  func(c *Config) { c.Paths.Input = "" },
			wantErr: true,
		},
		{
			name:    "missing output path",
			mutate:  func(c *Config) { c.Paths.Output = "" },
			wantErr: true,
		},
		{
			name:    "no image source",
			mutate:  func(c *Config) { c.Images.Query = "" },
			wantErr: true,
		},
		{
			name:    "images dir alone is fine",
			mutate:  func(c *Config) { c.Images.Query = ""; c.Images.Dir = "assets/images" },
			wantErr: false,
		},
		{
			name:    "ratio above one",
			mutate:  func(c *Config) { c.Summary.Ratio = 1.5 },
			wantErr: true,
		},
		{
			name:    "negative ratio",
			mutate:  func(c *Config) { c.Summary.Ratio = -0.1 },
			wantErr: true,
		},
		{
			name:    "ratio of exactly one",
			mutate:  func(c *Config) { c.Summary.Ratio = 1.0 },
			wantErr: false,
		},
		{
			name:    "negative min sentences",
			mutate:  func(c *Config) { c.Summary.MinSentences = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Summary.Ratio != 0.3 {
		t.Errorf("Ratio default = %v, want 0.3", cfg.Summary.Ratio)
	}
	if cfg.Summary.MinSentences != 2 {
		t.Errorf("MinSentences default = %v, want 2", cfg.Summary.MinSentences)
	}
	if cfg.TTS.Model != "gemini-2.5-flash-preview-tts" {
		t.Errorf("TTS model default = %v", cfg.TTS.Model)
	}
	if cfg.TTS.Voice != "Kore" {
		t.Errorf("TTS voice default = %v", cfg.TTS.Voice)
	}
	if cfg.TTS.MaxChunkChars != 3500 {
		t.Errorf("MaxChunkChars default = %v", cfg.TTS.MaxChunkChars)
	}
	if cfg.Images.Count != 8 {
		t.Errorf("Images count default = %v", cfg.Images.Count)
	}
	if cfg.Extract.PdftotextPath != "pdftotext" {
		t.Errorf("PdftotextPath default = %v", cfg.Extract.PdftotextPath)
	}
	if cfg.FFmpeg.VideoEncoder != "libx264" {
		t.Errorf("VideoEncoder default = %v", cfg.FFmpeg.VideoEncoder)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent default = %v", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
summary:
  ratio: 0.4
  min_sentences: 3

tts:
  model: "gemini-2.5-flash-preview-tts"
  voice: "Puck"
  language: "Hindi"

images:
  query: "growth mindset psychology"
  count: 6

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Summary.Ratio != 0.4 {
		t.Errorf("Ratio = %v, want 0.4", cfg.Summary.Ratio)
	}
	if cfg.Summary.MinSentences != 3 {
		t.Errorf("MinSentences = %v, want 3", cfg.Summary.MinSentences)
	}
	if cfg.TTS.Voice != "Puck" {
		t.Errorf("Voice = %v, want Puck", cfg.TTS.Voice)
	}
	if cfg.Images.Count != 6 {
		t.Errorf("Images count = %v, want 6", cfg.Images.Count)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want data/input", cfg.Paths.Input)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadRejectsBadRatio(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
summary:
  ratio: 2.0
images:
  query: "anything"
paths:
  input: "data/input"
  output: "data/output"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpfile.Name()); err == nil {
		t.Error("Load() should reject ratio outside (0, 1]")
	}
}
