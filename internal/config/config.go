package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Summary     SummaryConfig     `yaml:"summary"`
	TTS         TTSConfig         `yaml:"tts"`
	Images      ImagesConfig      `yaml:"images"`
	Extract     ExtractConfig     `yaml:"extract"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type SummaryConfig struct {
	// Ratio is the fraction of sentences kept per section, in (0, 1].
	Ratio float64 `yaml:"ratio"`
	// MinSentences is the per-section keep-count floor.
	MinSentences int `yaml:"min_sentences"`
}

type TTSConfig struct {
	Model         string `yaml:"model"`
	Voice         string `yaml:"voice"`
	Language      string `yaml:"language"`
	MaxChunkChars int    `yaml:"max_chunk_chars"`
}

type ImagesConfig struct {
	// Dir holds pre-selected slideshow images. When empty, images are
	// downloaded from Wikimedia Commons using Query.
	Dir   string `yaml:"dir"`
	Query string `yaml:"query"`
	Count int    `yaml:"count"`
}

type ExtractConfig struct {
	PdftotextPath string `yaml:"pdftotext_path"`
}

type FFmpegConfig struct {
	VideoEncoder string `yaml:"video_encoder"`
	Preset       string `yaml:"preset"`
	AudioCodec   string `yaml:"audio_codec"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	// Zero means unset, like every other numeric field here; an explicit
	// ratio: 0 therefore falls back to the default rather than erroring.
	if c.Summary.Ratio == 0 {
		c.Summary.Ratio = 0.3
	}
	if c.Summary.Ratio < 0 || c.Summary.Ratio > 1 {
		return fmt.Errorf("summary.ratio must be within (0, 1], got %v", c.Summary.Ratio)
	}
	if c.Summary.MinSentences < 0 {
		return fmt.Errorf("summary.min_sentences must not be negative")
	}
	if c.Images.Dir == "" && c.Images.Query == "" {
		return fmt.Errorf("either images.dir or images.query is required")
	}

	if c.Summary.MinSentences == 0 {
		c.Summary.MinSentences = 2
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.TTS.Model == "" {
		c.TTS.Model = "gemini-2.5-flash-preview-tts"
	}
	if c.TTS.Voice == "" {
		c.TTS.Voice = "Kore"
	}
	if c.TTS.Language == "" {
		c.TTS.Language = "Hindi"
	}
	if c.TTS.MaxChunkChars == 0 {
		c.TTS.MaxChunkChars = 3500
	}
	if c.Images.Count == 0 {
		c.Images.Count = 8
	}
	if c.Extract.PdftotextPath == "" {
		c.Extract.PdftotextPath = "pdftotext"
	}
	if c.FFmpeg.VideoEncoder == "" {
		c.FFmpeg.VideoEncoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
