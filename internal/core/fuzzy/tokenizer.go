package fuzzy

import (
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
)

// stopWords are short function words that never count as words.
var stopWords = map[string]struct{}{
	"and": {}, "be": {}, "but": {}, "by": {}, "do": {}, "for": {},
	"if": {}, "in": {}, "is": {}, "it": {}, "of": {}, "or": {},
	"so": {}, "that": {}, "the": {}, "this": {}, "to": {}, "too": {},
}

// IsStopWord reports whether word is in the fixed stop-word set.
// The comparison is case-insensitive.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// IsValidWord reports whether a fragment survives tokenization:
// longer than one rune and not a stop word.
func IsValidWord(word string) bool {
	return utf8.RuneCountInString(word) > 1 && !IsStopWord(word)
}

// Tokenizer turns raw text into an ordered sequence of lowercase words.
type Tokenizer struct {
	normalizer ports.Normalizer
}

// NewTokenizer creates a tokenizer that splits on the output of normalizer.
func NewTokenizer(normalizer ports.Normalizer) *Tokenizer {
	return &Tokenizer{normalizer: normalizer}
}

// Tokenize splits text into words, dropping fragments that are too short
// or are stop words. Order and duplicates are preserved.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(t.normalizer.Normalize(text))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.ToLower(field)
		if IsValidWord(word) {
			words = append(words, word)
		}
	}
	return words
}
