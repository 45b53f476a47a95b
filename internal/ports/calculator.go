package ports

import (
	"context"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for computing similarity between texts.
type SimilarityCalculator interface {
	Compute(ctx context.Context, input, source string) domain.Result
}
