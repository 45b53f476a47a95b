// Package fuzzymatch is the configurable entry point for scoring how similar
// a typed query is to a reference string.
package fuzzymatch

import (
	"context"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/core/fuzzy"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result is the outcome of a comparison.
type Result = domain.Result

// FuzzySimilarity computes fuzzy similarity scores with a pass threshold.
// It is safe for concurrent use.
type FuzzySimilarity struct {
	calculator *fuzzy.Calculator
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     bool
}

// Option defines a functional option for configuring FuzzySimilarity.
type Option func(*fuzzySimilarityConfig)

type fuzzySimilarityConfig struct {
	Threshold    float64
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithThreshold sets the minimum score for Result.Passed.
func WithThreshold(th float64) Option {
	return func(cfg *fuzzySimilarityConfig) {
		cfg.Threshold = th
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *fuzzySimilarityConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithCustomLogger sets any logger implementing the ports.Logger interface.
func WithCustomLogger(log ports.Logger) Option {
	return func(cfg *fuzzySimilarityConfig) {
		cfg.Logger = log
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(normalizer ports.Normalizer) Option {
	return func(cfg *fuzzySimilarityConfig) {
		cfg.Normalizer = normalizer
	}
}

// WithNormalizerType selects one of the built-in normalizers.
func WithNormalizerType(t normalizer.NormalizerType) Option {
	return func(cfg *fuzzySimilarityConfig) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(t)
	}
}

// WithFastNormalizer sets the optimized fast normalizer.
func WithFastNormalizer() Option {
	return WithNormalizerType(normalizer.FastNormalizerType)
}

// WithOptimizedNormalizer sets the optimized normalizer.
func WithOptimizedNormalizer() Option {
	return WithNormalizerType(normalizer.OptimizedNormalizerType)
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *fuzzySimilarityConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *fuzzySimilarityConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new FuzzySimilarity instance.
func New(opts ...Option) (*FuzzySimilarity, error) {
	config := &fuzzySimilarityConfig{
		Threshold:    fuzzy.DefaultConfig().Threshold,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	calculator, err := fuzzy.NewCalculator(fuzzy.SimilarityConfig{Threshold: config.Threshold}, config.Logger, config.Normalizer)
	if err != nil {
		return nil, err
	}

	fs := &FuzzySimilarity{
		calculator: calculator,
		logger:     config.Logger,
		normalizer: config.Normalizer,
	}

	if config.WarmUp {
		fs.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return fs, nil
}

// Compute scores input against source.
func (fs *FuzzySimilarity) Compute(ctx context.Context, input, source string) Result {
	return fs.calculator.Compute(ctx, input, source)
}

// Tokenize returns the words that Compute scores for text.
func (fs *FuzzySimilarity) Tokenize(text string) []string {
	return fs.calculator.Tokenize(text)
}

// Threshold returns the configured pass threshold.
func (fs *FuzzySimilarity) Threshold() float64 {
	return fs.calculator.Threshold()
}

// WarmUp performs system warm-up. It is not safe to call concurrently with itself.
func (fs *FuzzySimilarity) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if fs.warmed {
		fs.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(fs.logger, config)
	warmupMgr.RegisterCalculator(fs.calculator)
	warmupMgr.RegisterNormalizer(fs.normalizer)

	warmupMgr.WarmUp(ctx)
	fs.warmed = true
}

// Close releases the logger.
func (fs *FuzzySimilarity) Close() error {
	return fs.logger.Close()
}
