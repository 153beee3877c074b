package summarizer

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestTokenize(t *testing.T) {
	e := New()

	tests := []struct {
		name     string
		sentence string
		want     []string
	}{
		{
			// The danda is a Devanagari code point, so the final word
			// keeps it attached and is not the bare stopword "है".
			name:     "hindi with stopwords and terminator",
			sentence: "यह पहली कहानी है।",
			want:     []string{"पहली", "कहानी", "है।"},
		},
		{
			name:     "hindi with stopwords, no terminator",
			sentence: "यह पहली कहानी है",
			want:     []string{"पहली", "कहानी"},
		},
		{
			name:     "latin lowercased",
			sentence: "Growth Mindset MATTERS",
			want:     []string{"growth", "mindset", "matters"},
		},
		{
			name:     "single characters dropped",
			sentence: "a b सी word",
			want:     []string{"सी", "word"},
		},
		{
			name:     "digits and punctuation ignored",
			sentence: "1234 ... !!!",
			want:     []string{},
		},
		{
			name:     "duplicates retained",
			sentence: "नदी नदी बहती",
			want:     []string{"नदी", "नदी", "बहती"},
		},
		{
			name:     "empty input",
			sentence: "",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Tokenize(tt.sentence)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestTokenizeNeverEmitsStopwordsOrShortTokens(t *testing.T) {
	e := New()

	inputs := []string{
		"और है हैं का की के में से",
		"यह एक लंबा वाक्य है जिसमें कई शब्द हैं और कुछ रुकने वाले शब्द भी।",
		"Mixed देवनागरी and English words, with a b c noise.",
	}

	for _, in := range inputs {
		for _, tok := range e.Tokenize(in) {
			if utf8.RuneCountInString(tok) <= 1 {
				t.Errorf("Tokenize(%q) emitted short token %q", in, tok)
			}
			if _, ok := defaultStopwords()[tok]; ok {
				t.Errorf("Tokenize(%q) emitted stopword %q", in, tok)
			}
		}
	}
}

func TestNewWithStopwords(t *testing.T) {
	custom := map[string]struct{}{"नदी": {}}
	e := NewWithStopwords(custom)

	got := e.Tokenize("नदी बहती है")
	want := []string{"बहती", "है"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize with custom stopwords = %v, want %v", got, want)
	}

	// The engine copies the set; mutating the original must not leak in.
	custom["बहती"] = struct{}{}
	got = e.Tokenize("नदी बहती है")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize after external mutation = %v, want %v", got, want)
	}
}
