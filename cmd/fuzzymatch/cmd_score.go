package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// scoreOutput is the JSON shape of the score command.
type scoreOutput struct {
	Input           string  `json:"input"`
	Source          string  `json:"source"`
	Score           float64 `json:"score"`
	Passed          bool    `json:"passed"`
	Threshold       float64 `json:"threshold"`
	ForwardScore    float64 `json:"forward_score"`
	ReverseScore    float64 `json:"reverse_score"`
	FrequencyScore  float64 `json:"frequency_score"`
	InputWordCount  int     `json:"input_word_count"`
	SourceWordCount int     `json:"source_word_count"`
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <input> <source>",
		Short: "Score the similarity of two texts",
		Example: `  fuzzymatch score "the quick brown fox" "quick brown fox"
  fuzzymatch score --json --threshold 0.5 "hello, world" "hello there world"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			similarity, err := newSimilarity(cmd)
			if err != nil {
				return err
			}
			defer similarity.Close()

			result := similarity.Compute(cmd.Context(), args[0], args[1])
			out := cmd.OutOrStdout()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(scoreOutput{
					Input:           args[0],
					Source:          args[1],
					Score:           result.Score,
					Passed:          result.Passed,
					Threshold:       result.Threshold,
					ForwardScore:    result.ForwardScore,
					ReverseScore:    result.ReverseScore,
					FrequencyScore:  result.FrequencyScore,
					InputWordCount:  result.InputWordCount,
					SourceWordCount: result.SourceWordCount,
				})
			}

			verdict := "fail"
			if result.Passed {
				verdict = "pass"
			}
			fmt.Fprintf(out, "Score: %.2f (%s, threshold %.2f)\n", result.Score, verdict, result.Threshold)
			fmt.Fprintf(out, "  forward:   %.2f\n", result.ForwardScore)
			fmt.Fprintf(out, "  reverse:   %.2f\n", result.ReverseScore)
			fmt.Fprintf(out, "  frequency: %.2f\n", result.FrequencyScore)
			fmt.Fprintf(out, "  words:     %d input, %d source\n", result.InputWordCount, result.SourceWordCount)
			return nil
		},
	}
}
