package tts

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitForTTSShortText(t *testing.T) {
	got := SplitForTTS("छोटा   पाठ।\nएक और   वाक्य।", 3500)
	if len(got) != 1 {
		t.Fatalf("got %d chunks, want 1", len(got))
	}
	if got[0] != "छोटा पाठ। एक और वाक्य।" {
		t.Errorf("chunk = %q, want whitespace-normalized text", got[0])
	}
}

func TestSplitForTTSEmpty(t *testing.T) {
	if got := SplitForTTS("   \n\t ", 3500); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestSplitForTTSPacksSentences(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("यह एक वाक्य है। ", 20))

	chunks := SplitForTTS(text, 60)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want several", len(chunks))
	}

	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 60 {
			t.Errorf("chunk %d has %d runes, want <= 60", i, n)
		}
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}

	if got := strings.Join(chunks, " "); got != text {
		t.Errorf("rejoined chunks differ from input:\n got %q\nwant %q", got, text)
	}
}

func TestSplitForTTSHardSplitsOversizedSentence(t *testing.T) {
	long := strings.Repeat("क", 150) // no terminators at all
	chunks := SplitForTTS(long, 60)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 60 {
			t.Errorf("chunk %d has %d runes, want <= 60", i, n)
		}
	}
	if strings.Join(chunks, "") != long {
		t.Error("hard split lost characters")
	}
}

func TestParseAudioMIME(t *testing.T) {
	tests := []struct {
		name     string
		mime     string
		wantBits int
		wantRate int
	}{
		{"typical gemini pcm", "audio/L16;rate=24000", 16, 24000},
		{"custom rate", "audio/L16; rate=44100", 16, 44100},
		{"24 bit", "audio/L24;rate=48000", 24, 48000},
		{"no params", "audio/mpeg", 16, 24000},
		{"malformed rate", "audio/L16;rate=abc", 16, 24000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAudioMIME(tt.mime)
			if got.BitsPerSample != tt.wantBits || got.Rate != tt.wantRate {
				t.Errorf("parseAudioMIME(%q) = %+v, want bits=%d rate=%d",
					tt.mime, got, tt.wantBits, tt.wantRate)
			}
		})
	}
}

func TestWrapWAV(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	wav := wrapWAV(data, "audio/L16;rate=24000")

	if len(wav) != 44+len(data) {
		t.Fatalf("wav length = %d, want %d", len(wav), 44+len(data))
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if string(wav[12:16]) != "fmt " || string(wav[36:40]) != "data" {
		t.Error("missing fmt/data chunk markers")
	}
	// data size field
	if got := uint32(wav[40]) | uint32(wav[41])<<8 | uint32(wav[42])<<16 | uint32(wav[43])<<24; got != uint32(len(data)) {
		t.Errorf("data size field = %d, want %d", got, len(data))
	}
	if string(wav[44:]) != string(data) {
		t.Error("payload not preserved")
	}
}

func TestExtensionForMIME(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"audio/mpeg", ".mp3"},
		{"audio/mp3;codec=x", ".mp3"},
		{"audio/wav", ".wav"},
		{"audio/ogg", ".ogg"},
		{"audio/L16;rate=24000", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extensionForMIME(tt.mime); got != tt.want {
			t.Errorf("extensionForMIME(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}
