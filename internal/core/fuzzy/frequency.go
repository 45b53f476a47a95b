package fuzzy

// WordCounts maps each word to the number of times it occurs in words.
func WordCounts(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, word := range words {
		counts[word]++
	}
	return counts
}

// FrequencyScore compares how often each word occurs in both sequences.
// Each side scores the distinct words whose count matches the other side,
// divided by its own total word count; the higher side wins.
func FrequencyScore(inputWords, sourceWords []string) float64 {
	if len(inputWords) == 0 || len(sourceWords) == 0 {
		return 0
	}

	inputCounts := WordCounts(inputWords)
	sourceCounts := WordCounts(sourceWords)

	inputPercent := round(float64(matchingCounts(inputCounts, sourceCounts)) / float64(len(inputWords)))
	sourcePercent := round(float64(matchingCounts(sourceCounts, inputCounts)) / float64(len(sourceWords)))

	return max(inputPercent, sourcePercent)
}

// matchingCounts counts keys of a whose count equals the count in b.
// Keys missing from b never match.
func matchingCounts(a, b map[string]int) int {
	matches := 0
	for word, count := range a {
		if other, ok := b[word]; ok && other == count {
			matches++
		}
	}
	return matches
}
