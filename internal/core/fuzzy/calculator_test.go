package fuzzy

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/normalizer"
)

func newTestCalculator(t *testing.T, threshold float64) *Calculator {
	t.Helper()
	calc, err := NewCalculator(SimilarityConfig{Threshold: threshold}, logger.NewNopLogger(), normalizer.NewDefaultNormalizer())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestSimilarityConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		wantErr   bool
	}{
		{name: "default", threshold: DefaultConfig().Threshold},
		{name: "zero", threshold: 0},
		{name: "one", threshold: 1},
		{name: "negative", threshold: -0.1, wantErr: true},
		{name: "above one", threshold: 1.5, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := SimilarityConfig{Threshold: tc.threshold}.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewCalculatorRequiresDependencies(t *testing.T) {
	if _, err := NewCalculator(DefaultConfig(), nil, normalizer.NewDefaultNormalizer()); err == nil {
		t.Error("expected error for nil logger")
	}
	if _, err := NewCalculator(DefaultConfig(), logger.NewNopLogger(), nil); err == nil {
		t.Error("expected error for nil normalizer")
	}
	if _, err := NewCalculator(SimilarityConfig{Threshold: 2}, logger.NewNopLogger(), normalizer.NewDefaultNormalizer()); err == nil {
		t.Error("expected error for invalid threshold")
	}
}

func TestCalculatorCompute(t *testing.T) {
	calc := newTestCalculator(t, 0.7)

	tests := []struct {
		name       string
		input      string
		source     string
		wantScore  float64
		wantPassed bool
		wantInput  int
		wantSource int
	}{
		{
			name:       "leading stop word ignored",
			input:      "the quick brown fox",
			source:     "quick brown fox",
			wantScore:  1,
			wantPassed: true,
			wantInput:  3,
			wantSource: 3,
		},
		{
			name:       "empty input",
			input:      "",
			source:     "quick brown fox",
			wantScore:  0,
			wantPassed: false,
			wantInput:  0,
			wantSource: 3,
		},
		{
			name:       "one third",
			input:      "alpha beta gamma",
			source:     "alpha delta epsilon",
			wantScore:  0.33,
			wantPassed: false,
			wantInput:  3,
			wantSource: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.Compute(context.Background(), tc.input, tc.source)
			if result.Name != MetricName {
				t.Errorf("Name = %q, want %q", result.Name, MetricName)
			}
			if result.Score != tc.wantScore {
				t.Errorf("Score = %v, want %v", result.Score, tc.wantScore)
			}
			if result.Passed != tc.wantPassed {
				t.Errorf("Passed = %v, want %v", result.Passed, tc.wantPassed)
			}
			if result.InputWordCount != tc.wantInput || result.SourceWordCount != tc.wantSource {
				t.Errorf("word counts = (%d, %d), want (%d, %d)",
					result.InputWordCount, result.SourceWordCount, tc.wantInput, tc.wantSource)
			}
			if result.Threshold != 0.7 {
				t.Errorf("Threshold = %v, want 0.7", result.Threshold)
			}
		})
	}
}

func TestCalculatorComputeBreakdown(t *testing.T) {
	calc := newTestCalculator(t, 0.5)

	result := calc.Compute(context.Background(), "alpha", "alpha beta gamma delta")
	if result.ForwardScore != 0.25 || result.ReverseScore != 1 || result.FrequencyScore != 1 {
		t.Errorf("breakdown = (%v, %v, %v), want (0.25, 1, 1)",
			result.ForwardScore, result.ReverseScore, result.FrequencyScore)
	}
	if got := result.Details["forward_score"]; got != 0.25 {
		t.Errorf("Details[forward_score] = %v, want 0.25", got)
	}
}

func TestCalculatorComputeCancelled(t *testing.T) {
	calc := newTestCalculator(t, 0.7)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := calc.Compute(ctx, "quick brown fox", "quick brown fox")
	if result.Score != 0 || result.Passed {
		t.Errorf("cancelled computation returned score=%v passed=%v", result.Score, result.Passed)
	}
	if result.Details["error"] != "computation cancelled" {
		t.Errorf("Details[error] = %v", result.Details["error"])
	}
}

func TestCalculatorTokenize(t *testing.T) {
	calc := newTestCalculator(t, 0.7)
	got := calc.Tokenize("Hello, World! It is me")
	if len(got) != 3 || got[0] != "hello" || got[1] != "world" || got[2] != "me" {
		t.Errorf("Tokenize = %v, want [hello world me]", got)
	}
}
