package fuzzy

// Precision is the number of adjacent positions checked on each side
// of an index during positional matching.
const Precision = 2

// PositionalScore returns the fraction of source positions for which the
// input has a word at the same position, or a nearby position that lines up.
//
// When inputWords[i] differs from sourceWords[i], the candidates
// i-Precision..i+Precision are scanned in increasing order and the first j
// with inputWords[j] == sourceWords[j] counts for i. Note that j is compared
// against itself in both sequences, not against i, and that index 0 is never
// a candidate. At most one match is counted per input index.
func PositionalScore(inputWords, sourceWords []string) float64 {
	if len(sourceWords) == 0 {
		return 0
	}

	matches := 0
	for i := range inputWords {
		if i >= len(sourceWords) {
			break
		}
		if inputWords[i] == sourceWords[i] {
			matches++
			continue
		}
		for _, j := range adjacentIndices(i, len(sourceWords)) {
			if j < len(inputWords) && inputWords[j] == sourceWords[j] {
				matches++
				break
			}
		}
	}

	return round(float64(matches) / float64(len(sourceWords)))
}

// adjacentIndices lists the candidate positions around i in increasing
// order. Previous positions must be strictly greater than 0; following
// positions must be below limit.
func adjacentIndices(i, limit int) []int {
	indices := make([]int, 0, 2*Precision)
	for d := Precision; d >= 1; d-- {
		if prev := i - d; prev > 0 {
			indices = append(indices, prev)
		}
	}
	for d := 1; d <= Precision; d++ {
		if next := i + d; next < limit {
			indices = append(indices, next)
		}
	}
	return indices
}
