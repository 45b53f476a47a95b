package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <text>",
		Short: "Print the words a text is compared by",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			similarity, err := newSimilarity(cmd)
			if err != nil {
				return err
			}
			defer similarity.Close()

			words := similarity.Tokenize(args[0])
			out := cmd.OutOrStdout()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"words": words,
					"count": len(words),
				})
			}

			if len(words) == 0 {
				fmt.Fprintln(out, "(no words)")
				return nil
			}
			fmt.Fprintln(out, strings.Join(words, " "))
			return nil
		},
	}
}
