package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
)

// IsWordRune reports whether r is an ASCII word character: [A-Za-z0-9_].
// Every other rune, accented letters included, separates words.
func IsWordRune(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

// toLowerASCII folds A-Z and leaves every other rune unchanged.
func toLowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// DefaultNormalizer implements the default text normalization strategy.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts the input text to lower case and replaces non-word characters with spaces.
func (n *DefaultNormalizer) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if IsWordRune(r) {
			sb.WriteRune(toLowerASCII(r))
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
