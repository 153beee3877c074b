package summarizer

// defaultStopwords returns the built-in Hindi function-word set.
// These carry no topical weight and would otherwise dominate frequency counts.
func defaultStopwords() map[string]struct{} {
	words := []string{
		"और", "है", "हैं", "था", "थी", "थे",
		"को", "के", "का", "की", "में", "से", "पर",
		"यह", "वह", "तो", "भी", "एक", "कि", "या", "लिए", "तक",
	}

	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
