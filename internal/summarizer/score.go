package summarizer

// ScoreSentences computes a normalized term-frequency score for every
// sentence, in input order. Frequencies are scoped to the given sentence
// collection only; callers pass one section at a time so a long chapter's
// vocabulary never skews a short one.
func (e *implEngine) ScoreSentences(sentences []string) []SentenceScore {
	if len(sentences) == 0 {
		return nil
	}

	freqs := make(map[string]int)
	for _, s := range sentences {
		for _, t := range e.Tokenize(s) {
			freqs[t]++
		}
	}

	scores := make([]SentenceScore, 0, len(sentences))
	if len(freqs) == 0 {
		for _, s := range sentences {
			scores = append(scores, SentenceScore{Sentence: s})
		}
		return scores
	}

	maxFreq := 0
	for _, c := range freqs {
		if c > maxFreq {
			maxFreq = c
		}
	}

	weights := make(map[string]float64, len(freqs))
	for t, c := range freqs {
		weights[t] = float64(c) / float64(maxFreq)
	}

	for _, s := range sentences {
		tokens := e.Tokenize(s)
		if len(tokens) == 0 {
			scores = append(scores, SentenceScore{Sentence: s})
			continue
		}

		sum := 0.0
		for _, t := range tokens {
			sum += weights[t]
		}
		scores = append(scores, SentenceScore{Sentence: s, Score: sum / float64(len(tokens))})
	}

	return scores
}
