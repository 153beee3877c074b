package tts

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	sentenceBoundary = regexp.MustCompile(`[।.!?]\s+`)
)

// SplitForTTS normalizes whitespace and packs sentences into chunks of at
// most maxChars runes. A single sentence longer than maxChars is hard-split
// on rune boundaries. Chunk boundaries follow the same terminators the
// summarizer recognizes, so narration never breaks mid-sentence when it can
// help it.
func SplitForTTS(text string, maxChars int) []string {
	clean := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	if clean == "" {
		return nil
	}
	if len([]rune(clean)) <= maxChars {
		return []string{clean}
	}

	var chunks []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.TrimSpace(strings.Join(current, " ")))
			current = nil
			currentLen = 0
		}
	}

	for _, sentence := range splitAfterTerminators(clean) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		runes := []rune(sentence)
		if len(runes) > maxChars {
			flush()
			for i := 0; i < len(runes); i += maxChars {
				end := min(i+maxChars, len(runes))
				chunks = append(chunks, string(runes[i:end]))
			}
			continue
		}

		projected := currentLen + len(runes)
		if currentLen > 0 {
			projected++ // joining space
		}
		if projected > maxChars {
			flush()
			current = []string{sentence}
			currentLen = len(runes)
		} else {
			current = append(current, sentence)
			currentLen = projected
		}
	}
	flush()

	out := chunks[:0]
	for _, c := range chunks {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// splitAfterTerminators cuts text after each terminator-plus-whitespace,
// keeping the terminator attached to the preceding piece.
func splitAfterTerminators(text string) []string {
	var parts []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		_, size := utf8.DecodeRuneInString(text[loc[0]:])
		parts = append(parts, text[start:loc[0]+size])
		start = loc[1]
	}
	parts = append(parts, text[start:])
	return parts
}
