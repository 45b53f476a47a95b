package normalizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/pool"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
)

// ASCII decisions shared by the table-driven normalizers.
const (
	keepByte  byte = iota // word character, already lowercase
	spaceByte             // separator
	lowerByte             // uppercase letter
)

// asciiDecisions classifies every ASCII byte once.
func asciiDecisions() [utf8.RuneSelf]byte {
	var table [utf8.RuneSelf]byte
	for i := 0; i < utf8.RuneSelf; i++ {
		r := rune(i)
		switch {
		case !IsWordRune(r):
			table[i] = spaceByte
		case 'A' <= r && r <= 'Z':
			table[i] = lowerByte
		default:
			table[i] = keepByte
		}
	}
	return table
}

// OptimizedNormalizer implements an optimized text normalization strategy with buffer pooling.
// Runs of separators collapse into a single space.
type OptimizedNormalizer struct {
	asciiTable [utf8.RuneSelf]byte
	bytePool   *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer
func NewOptimizedNormalizer() ports.Normalizer {
	return &OptimizedNormalizer{
		asciiTable: asciiDecisions(),
		bytePool:   pool.NewBufferPool(8192),
	}
}

// Normalize lowercases text and replaces separators with single spaces.
func (n *OptimizedNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	var lastWasSpace bool
	for i := 0; i < len(text); {
		b := text[i]
		if b < utf8.RuneSelf {
			switch n.asciiTable[b] {
			case keepByte:
				*buffer = append(*buffer, b)
				lastWasSpace = false
			case spaceByte:
				if !lastWasSpace {
					*buffer = append(*buffer, ' ')
					lastWasSpace = true
				}
			case lowerByte:
				*buffer = append(*buffer, b+('a'-'A'))
				lastWasSpace = false
			}
			i++
			continue
		}

		// Multi-byte runes are never word characters.
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if !lastWasSpace {
			*buffer = append(*buffer, ' ')
			lastWasSpace = true
		}
	}

	return string(*buffer)
}

// FastNormalizer offers table-driven normalization for ASCII
// with a pooled string builder.
type FastNormalizer struct {
	asciiTable  [utf8.RuneSelf]byte
	builderPool *pool.StringBuilderPool
}

// NewFastNormalizer creates a new fast normalizer with precomputed tables
func NewFastNormalizer() ports.Normalizer {
	return &FastNormalizer{
		asciiTable:  asciiDecisions(),
		builderPool: pool.NewStringBuilderPool(),
	}
}

// Normalize performs fast normalization with pre-computed decisions for ASCII
func (n *FastNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	sb := n.builderPool.Get()
	defer n.builderPool.Put(sb)
	sb.Grow(len(text))

	for _, r := range text {
		if r < utf8.RuneSelf {
			switch n.asciiTable[r] {
			case keepByte:
				sb.WriteRune(r)
			case spaceByte:
				sb.WriteRune(' ')
			case lowerByte:
				sb.WriteRune(r + ('a' - 'A'))
			}
			continue
		}
		sb.WriteByte(' ')
	}

	return sb.String()
}

// NormalizerFactory creates the appropriate normalizer based on performance requirements
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects a normalizer implementation.
type NormalizerType int

const (
	// DefaultNormalizerType is the straightforward rune-by-rune normalizer
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType uses buffer pooling and an ASCII lookup table
	OptimizedNormalizerType
	// FastNormalizerType uses a pooled builder and is optimized for ASCII
	FastNormalizerType
)

// String returns the name accepted by ParseNormalizerType.
func (t NormalizerType) String() string {
	switch t {
	case OptimizedNormalizerType:
		return "optimized"
	case FastNormalizerType:
		return "fast"
	default:
		return "default"
	}
}

// ParseNormalizerType maps a configuration name to a NormalizerType.
// The empty string selects the default normalizer.
func ParseNormalizerType(name string) (NormalizerType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultNormalizerType, nil
	case "optimized":
		return OptimizedNormalizerType, nil
	case "fast":
		return FastNormalizerType, nil
	default:
		return DefaultNormalizerType, fmt.Errorf("unknown normalizer %q (want default, optimized or fast)", name)
	}
}

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	case FastNormalizerType:
		return NewFastNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
