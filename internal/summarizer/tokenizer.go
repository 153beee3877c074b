package summarizer

import (
	"strings"
	"unicode/utf8"
)

// Tokenize lower-cases the sentence and extracts content words: maximal runs
// of Devanagari or Latin letters, with stop-words and single-rune tokens
// dropped. Duplicates are retained because the result feeds frequency counts.
func (e *implEngine) Tokenize(sentence string) []string {
	runs := e.tokenPattern.FindAllString(strings.ToLower(sentence), -1)

	tokens := make([]string, 0, len(runs))
	for _, t := range runs {
		if _, stop := e.stopwords[t]; stop {
			continue
		}
		if utf8.RuneCountInString(t) <= 1 {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}
