package summarizer

// Section is a titled contiguous span of the source document, delimited
// by chapter-heading lines. Sections are immutable and kept in document order.
type Section struct {
	Title   string
	Content string
}

// SentenceScore pairs a sentence with its normalized frequency score in [0, 1].
type SentenceScore struct {
	Sentence string
	Score    float64
}

// Engine defines the extractive summarization operations.
type Engine interface {
	SplitSections(text string) []Section
	SplitSentences(text string) []string
	Tokenize(sentence string) []string
	ScoreSentences(sentences []string) []SentenceScore
	SummarizeText(text string, ratio float64, minSentences int) string
	SummarizeSections(sections []Section, ratio float64) string
}
