package ports

// Normalizer defines the interface for text normalization.
// Implementations lowercase the text and turn every non-word character into a space.
type Normalizer interface {
	Normalize(text string) string
}
