// fuzzy_similarity.go
// Package fuzzysimilarity computes a similarity score between two free-text strings.
// The score lies in [0,1] and is the highest of three measures computed on the
// word sequences of both texts:
//
//	forward   = share of source positions where the input has the same word nearby
//	reverse   = the same measure with input and source swapped
//	frequency = share of distinct words that occur equally often in both texts
//
// Words are lowercase runs of ASCII letters, digits and underscores longer
// than one character, excluding a small fixed set of stop words. Any other
// rune, accented letters included, separates words. Every score is rounded
// to two decimal places.
//
// For thresholds, logging and warm-up use the pkg/fuzzymatch package.
package fuzzysimilarity

import (
	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/core/fuzzy"
)

// Breakdown holds the component scores of a comparison.
type Breakdown = fuzzy.Breakdown

var tokenizer = fuzzy.NewTokenizer(normalizer.NewDefaultNormalizer())

// Similarity returns how similar input is to source, in [0,1].
// It returns 0 when either text has no words. Safe for concurrent use.
func Similarity(input, source string) float64 {
	return Explain(input, source).Score
}

// Explain returns the forward, reverse and frequency scores behind Similarity.
func Explain(input, source string) Breakdown {
	return fuzzy.Compare(tokenizer.Tokenize(input), tokenizer.Tokenize(source))
}

// Tokenize returns the words Similarity compares for text.
func Tokenize(text string) []string {
	return tokenizer.Tokenize(text)
}
