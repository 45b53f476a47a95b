// Package fuzzy scores how similar two free-text strings are.
//
// The score lies in [0,1] and is the maximum of three measures computed on
// the word sequences of both texts:
//
//	forward   = PositionalScore(input, source)
//	reverse   = PositionalScore(source, input)
//	frequency = FrequencyScore(input, source)
//
// Every intermediate value is rounded to two decimal places.
package fuzzy

import "math"

// scoreFactor rounds scores to two decimal places.
const scoreFactor = 100

// Breakdown holds the component scores of a comparison.
type Breakdown struct {
	Forward   float64
	Reverse   float64
	Frequency float64
	Score     float64
}

// Compare aggregates the positional and frequency scores of two word
// sequences. If either sequence is empty every score is 0.
func Compare(inputWords, sourceWords []string) Breakdown {
	if len(inputWords) == 0 || len(sourceWords) == 0 {
		return Breakdown{}
	}

	b := Breakdown{
		Forward:   PositionalScore(inputWords, sourceWords),
		Reverse:   PositionalScore(sourceWords, inputWords),
		Frequency: FrequencyScore(inputWords, sourceWords),
	}
	b.Score = max(b.Forward, b.Reverse, b.Frequency)
	return b
}

func round(v float64) float64 {
	return math.Round(v*scoreFactor) / scoreFactor
}
