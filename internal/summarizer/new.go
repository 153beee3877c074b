package summarizer

import "regexp"

// WholeBookTitle is the section title used when no chapter headings are found.
const WholeBookTitle = "संपूर्ण पुस्तक"

// DefaultMinSentences is the floor applied to the per-section keep count.
const DefaultMinSentences = 2

type implEngine struct {
	stopwords       map[string]struct{}
	headingPattern  *regexp.Regexp
	boundaryPattern *regexp.Regexp
	tokenPattern    *regexp.Regexp
}

// New creates an Engine with the default Hindi stop-word set.
func New() Engine {
	return NewWithStopwords(defaultStopwords())
}

// NewWithStopwords creates an Engine with a caller-supplied stop-word set.
// The set is copied; the Engine never mutates it.
func NewWithStopwords(stopwords map[string]struct{}) Engine {
	sw := make(map[string]struct{}, len(stopwords))
	for w := range stopwords {
		sw[w] = struct{}{}
	}

	return &implEngine{
		stopwords:       sw,
		headingPattern:  regexp.MustCompile(`(?im)^(अध्याय\s*\d+.*|Chapter\s*\d+.*)$`),
		boundaryPattern: regexp.MustCompile(`[।.!?]\s+`),
		tokenPattern:    regexp.MustCompile(`[\x{0900}-\x{097F}a-zA-Z]+`),
	}
}
