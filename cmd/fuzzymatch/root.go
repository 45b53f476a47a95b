package main

import (
	"fmt"
	"os"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/config"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/ports"
	"github.com/baditaflorin/go_fuzzy_similarity/pkg/fuzzymatch"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fuzzymatch",
		Short: "Score how similar two pieces of text are",
		Long: `fuzzymatch compares two free-text strings and prints a similarity
score between 0 and 1.

Words are compared by position (with a small tolerance window, in both
directions) and by how often each word occurs. The best of the three
measures is the score.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log computation steps to stderr")
	rootCmd.PersistentFlags().String("normalizer", "", "Normalizer: default, optimized or fast")
	rootCmd.PersistentFlags().Float64("threshold", config.Default().Scoring.Threshold, "Pass threshold (0.0-1.0)")

	rootCmd.AddCommand(
		newScoreCmd(),
		newTokenizeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// loadConfig reads --config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("normalizer") {
		cfg.Scoring.Normalizer, _ = cmd.Flags().GetString("normalizer")
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Scoring.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}

	return cfg, cfg.Validate()
}

// newSimilarity builds the scorer for a command invocation.
func newSimilarity(cmd *cobra.Command) (*fuzzymatch.FuzzySimilarity, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	var log ports.Logger = logger.NewNopLogger()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log, err = logger.New(logger.Options{Output: os.Stderr, File: cfg.Log.File, JSON: cfg.Log.JSON})
		if err != nil {
			return nil, err
		}
	}

	normType, err := normalizer.ParseNormalizerType(cfg.Scoring.Normalizer)
	if err != nil {
		log.Close()
		return nil, err
	}

	similarity, err := fuzzymatch.New(
		fuzzymatch.WithCustomLogger(log),
		fuzzymatch.WithThreshold(cfg.Scoring.Threshold),
		fuzzymatch.WithNormalizerType(normType),
	)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to initialize fuzzy similarity: %w", err)
	}
	return similarity, nil
}
