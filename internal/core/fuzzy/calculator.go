package fuzzy

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
)

// MetricName identifies results produced by the Calculator.
const MetricName = "fuzzy_similarity"

// SimilarityConfig holds configuration for the fuzzy similarity calculator.
type SimilarityConfig struct {
	Threshold float64
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Threshold: 0.7,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	return nil
}

// Calculator scores texts and reports whether they pass the threshold.
type Calculator struct {
	config    SimilarityConfig
	logger    ports.Logger
	tokenizer *Tokenizer
}

// NewCalculator creates a new fuzzy similarity calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}

	return &Calculator{
		config:    config,
		logger:    logger,
		tokenizer: NewTokenizer(normalizer),
	}, nil
}

// Threshold returns the configured pass threshold.
func (c *Calculator) Threshold() float64 {
	return c.config.Threshold
}

// Tokenize returns the word sequence the calculator scores for text.
func (c *Calculator) Tokenize(text string) []string {
	return c.tokenizer.Tokenize(text)
}

// Compute calculates the fuzzy similarity between input and source.
func (c *Calculator) Compute(ctx context.Context, input, source string) domain.Result {
	c.logger.Debug("Starting fuzzy similarity computation",
		"input", input,
		"source", source,
	)

	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:      MetricName,
			Threshold: c.config.Threshold,
			Details:   details,
		}
	default:
	}

	inputWords := c.tokenizer.Tokenize(input)
	sourceWords := c.tokenizer.Tokenize(source)

	c.logger.Debug("Tokenized texts",
		"input_words", inputWords,
		"source_words", sourceWords,
	)

	breakdown := Compare(inputWords, sourceWords)
	passed := breakdown.Score >= c.config.Threshold

	details["input_words"] = len(inputWords)
	details["source_words"] = len(sourceWords)
	details["forward_score"] = breakdown.Forward
	details["reverse_score"] = breakdown.Reverse
	details["frequency_score"] = breakdown.Frequency
	details["threshold"] = c.config.Threshold
	if len(inputWords) == 0 || len(sourceWords) == 0 {
		details["empty"] = true
	}

	c.logger.Debug("Computed fuzzy similarity",
		"score", breakdown.Score,
		"passed", passed,
		"details", details,
	)

	return domain.Result{
		Name:            MetricName,
		Score:           breakdown.Score,
		Passed:          passed,
		Threshold:       c.config.Threshold,
		ForwardScore:    breakdown.Forward,
		ReverseScore:    breakdown.Reverse,
		FrequencyScore:  breakdown.Frequency,
		InputWordCount:  len(inputWords),
		SourceWordCount: len(sourceWords),
		Details:         details,
	}
}
