package summarizer

import (
	"sort"
	"strings"
)

// SummarizeText selects the top-scoring sentences of a text block and joins
// them in original order. Sections at or below minSentences are returned
// whole, whatever the ratio. Otherwise keep = max(minSentences,
// floor(n*ratio)). The sort is stable, so tied scores resolve to document
// order. Membership is value-based: duplicate sentence texts keep or drop
// together.
func (e *implEngine) SummarizeText(text string, ratio float64, minSentences int) string {
	sentences := e.SplitSentences(text)
	if len(sentences) <= minSentences {
		return strings.Join(sentences, " ")
	}

	scored := e.ScoreSentences(sentences)

	keep := int(float64(len(sentences)) * ratio)
	if keep < minSentences {
		keep = minSentences
	}

	ranked := make([]SentenceScore, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	selected := make(map[string]struct{}, keep)
	for _, ss := range ranked[:keep] {
		selected[ss.Sentence] = struct{}{}
	}

	var out []string
	for _, s := range sentences {
		if _, ok := selected[s]; ok {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}

// SummarizeSections summarizes each section independently and assembles
// "{title}\n{summary}\n" blocks separated by blank lines.
func (e *implEngine) SummarizeSections(sections []Section, ratio float64) string {
	lines := make([]string, 0, len(sections))
	for _, sec := range sections {
		summary := e.SummarizeText(sec.Content, ratio, DefaultMinSentences)
		lines = append(lines, sec.Title+"\n"+summary+"\n")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
