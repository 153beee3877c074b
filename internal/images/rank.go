package images

import (
	"path/filepath"
	"sort"
	"strings"
)

// Tokenizer extracts content words from text. The summarizer engine
// satisfies this, so image ranking shares the summary's keyword rules.
type Tokenizer interface {
	Tokenize(sentence string) []string
}

// Ranker orders candidate images by how well their filenames match
// summary keywords.
type Ranker struct {
	tokenizer Tokenizer
}

// NewRanker creates a Ranker backed by the given tokenizer.
func NewRanker(tok Tokenizer) *Ranker {
	return &Ranker{tokenizer: tok}
}

// RankByRelevance orders paths descending by the overlap between the
// summary's keyword set and the filename stem's token set. Ties keep input
// order, and zero overlap only de-prioritizes a candidate, it never drops
// one. A maxCount <= 0 means no cap.
func (r *Ranker) RankByRelevance(summaryText string, paths []string, maxCount int) []string {
	keywords := make(map[string]struct{})
	for _, t := range r.tokenizer.Tokenize(summaryText) {
		keywords[t] = struct{}{}
	}

	type candidate struct {
		path      string
		relevance int
	}

	candidates := make([]candidate, 0, len(paths))
	for _, p := range paths {
		candidates = append(candidates, candidate{path: p, relevance: r.relevance(keywords, p)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].relevance > candidates[j].relevance
	})

	if maxCount > 0 && len(candidates) > maxCount {
		candidates = candidates[:maxCount]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.path
	}
	return out
}

// relevance counts distinct summary keywords present in the filename stem.
func (r *Ranker) relevance(keywords map[string]struct{}, path string) int {
	stem := filepath.Base(path)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	seen := make(map[string]struct{})
	count := 0
	for _, t := range r.tokenizer.Tokenize(stem) {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := keywords[t]; ok {
			count++
		}
	}
	return count
}
