package fuzzy

import (
	"reflect"
	"testing"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/normalizer"
)

func words(ws ...string) []string { return ws }

func TestTokenize(t *testing.T) {
	tokenizer := NewTokenizer(normalizer.NewDefaultNormalizer())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "only stop words and short words", text: "a to the", want: []string{}},
		{name: "punctuation splits words", text: "hello, world!", want: words("hello", "world")},
		{name: "lowercases", text: "Quick Brown Fox", want: words("quick", "brown", "fox")},
		{name: "stop words compared after lowercasing", text: "The Quick", want: words("quick")},
		{name: "keeps duplicates and order", text: "apple apple banana", want: words("apple", "apple", "banana")},
		{name: "digits and underscores are word characters", text: "v2 snake_case x", want: words("v2", "snake_case")},
		{name: "hyphen separates", text: "state-of-the-art", want: words("state", "art")},
		{name: "non-ascii letters separate words", text: "Café crème", want: words("caf", "cr", "me")},
		{name: "accented word splits into ascii fragments", text: "résumé", want: words("sum")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenizer.Tokenize(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsValidWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"", false},
		{"a", false},
		{"é", false},
		{"ab", true},
		{"the", false},
		{"THE", false},
		{"too", false},
		{"toon", true},
	}

	for _, tc := range tests {
		if got := IsValidWord(tc.word); got != tc.want {
			t.Errorf("IsValidWord(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestPositionalScore(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		source []string
		want   float64
	}{
		{
			name:   "identical",
			input:  words("quick", "brown", "fox"),
			source: words("quick", "brown", "fox"),
			want:   1,
		},
		{
			name:   "empty source",
			input:  words("quick"),
			source: nil,
			want:   0,
		},
		{
			name:   "one third rounds to two decimals",
			input:  words("alpha", "beta", "gamma"),
			source: words("alpha", "delta", "epsilon"),
			want:   0.33,
		},
		{
			name:   "input longer than source skips extra indices",
			input:  words("alpha", "beta", "gamma", "delta"),
			source: words("alpha", "beta"),
			want:   1,
		},
		{
			name:   "input shorter than source",
			input:  words("alpha"),
			source: words("alpha", "beta", "gamma", "delta"),
			want:   0.25,
		},
		{
			// Index 1 mismatches; the only candidate that lines up is index 0,
			// which is never considered.
			name:   "index zero is never a previous candidate",
			input:  words("one", "two"),
			source: words("one", "six"),
			want:   0.5,
		},
		{
			// Candidates compare input[j] with source[j], so the aligned word at
			// index 2 credits indices 0 and 1 as well.
			name:   "fallback compares each candidate with itself",
			input:  words("one", "two", "six"),
			source: words("ten", "one", "six"),
			want:   1,
		},
		{
			name:   "aligned neighbour credits a mismatch",
			input:  words("alpha", "beta", "gamma"),
			source: words("alpha", "beta", "delta"),
			want:   1,
		},
		{
			name:   "no aligned words",
			input:  words("apple", "banana", "apple"),
			source: words("banana", "apple", "banana"),
			want:   0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PositionalScore(tc.input, tc.source); got != tc.want {
				t.Errorf("PositionalScore(%v, %v) = %v, want %v", tc.input, tc.source, got, tc.want)
			}
		})
	}
}

func TestAdjacentIndices(t *testing.T) {
	tests := []struct {
		i, limit int
		want     []int
	}{
		{i: 0, limit: 5, want: []int{1, 2}},
		{i: 1, limit: 5, want: []int{2, 3}},
		{i: 2, limit: 5, want: []int{1, 3, 4}},
		{i: 3, limit: 5, want: []int{1, 2, 4}},
		{i: 4, limit: 5, want: []int{2, 3}},
		{i: 0, limit: 1, want: []int{}},
	}

	for _, tc := range tests {
		got := adjacentIndices(tc.i, tc.limit)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("adjacentIndices(%d, %d) = %v, want %v", tc.i, tc.limit, got, tc.want)
		}
	}
}

func TestFrequencyScore(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		source []string
		want   float64
	}{
		{
			name:   "same counts",
			input:  words("apple", "apple", "banana"),
			source: words("apple", "banana", "apple"),
			want:   0.67,
		},
		{
			name:   "counts differ",
			input:  words("apple", "apple", "banana"),
			source: words("apple", "banana", "banana"),
			want:   0,
		},
		{
			name:   "higher side wins",
			input:  words("alpha"),
			source: words("alpha", "beta", "gamma", "delta"),
			want:   1,
		},
		{
			name:   "one third",
			input:  words("alpha", "beta", "gamma"),
			source: words("alpha", "delta", "epsilon"),
			want:   0.33,
		},
		{
			name:   "empty",
			input:  nil,
			source: words("alpha"),
			want:   0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FrequencyScore(tc.input, tc.source); got != tc.want {
				t.Errorf("FrequencyScore(%v, %v) = %v, want %v", tc.input, tc.source, got, tc.want)
			}
		})
	}
}

func TestWordCounts(t *testing.T) {
	got := WordCounts(words("apple", "banana", "apple"))
	want := map[string]int{"apple": 2, "banana": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordCounts = %v, want %v", got, want)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		source []string
		want   Breakdown
	}{
		{
			name:   "empty input",
			input:  nil,
			source: words("alpha"),
			want:   Breakdown{},
		},
		{
			name:   "empty source",
			input:  words("alpha"),
			source: []string{},
			want:   Breakdown{},
		},
		{
			name:   "longer input",
			input:  words("alpha", "beta", "gamma", "delta"),
			source: words("alpha", "beta"),
			want:   Breakdown{Forward: 1, Reverse: 0.5, Frequency: 1, Score: 1},
		},
		{
			name:   "shorter input",
			input:  words("alpha"),
			source: words("alpha", "beta", "gamma", "delta"),
			want:   Breakdown{Forward: 0.25, Reverse: 1, Frequency: 1, Score: 1},
		},
		{
			name:   "frequency only",
			input:  words("beta", "alpha"),
			source: words("gamma", "delta", "alpha", "beta"),
			want:   Breakdown{Forward: 0, Reverse: 0, Frequency: 1, Score: 1},
		},
		{
			name:   "nothing lines up",
			input:  words("apple", "banana", "apple"),
			source: words("banana", "apple", "banana"),
			want:   Breakdown{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.input, tc.source); got != tc.want {
				t.Errorf("Compare(%v, %v) = %+v, want %+v", tc.input, tc.source, got, tc.want)
			}
		})
	}
}
