package summarizer

import (
	"strings"
	"unicode/utf8"
)

// SplitSentences breaks a text block into ordered, trimmed, non-empty
// sentences. A sentence ends at a terminator (। . ! ?) followed by
// whitespace; the terminator stays attached to its sentence. A terminator
// not followed by whitespace does not split.
func (e *implEngine) SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range e.boundaryPattern.FindAllStringIndex(text, -1) {
		// Cut right after the terminator rune so it stays with the sentence.
		_, size := utf8.DecodeRuneInString(text[loc[0]:])
		end := loc[0] + size

		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}

	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// SplitSections scans the document for chapter-heading lines (अध्याय N ... or
// Chapter N ..., case-insensitive, full line) and returns the titled spans
// between them in document order. Headings whose body is empty after trimming
// are dropped. With no usable headings the whole trimmed document is returned
// as a single section titled WholeBookTitle.
func (e *implEngine) SplitSections(text string) []Section {
	matches := e.headingPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Section{{Title: WholeBookTitle, Content: strings.TrimSpace(text)}}
	}

	var sections []Section
	for i, m := range matches {
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		title := strings.TrimSpace(text[m[2]:m[3]])
		body := strings.TrimSpace(text[start:end])
		if body == "" {
			continue
		}
		sections = append(sections, Section{Title: title, Content: body})
	}

	if len(sections) == 0 {
		return []Section{{Title: WholeBookTitle, Content: strings.TrimSpace(text)}}
	}
	return sections
}
