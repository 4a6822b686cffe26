/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: score.go
Description: Score command implementation for Akaylee WordGen. Rates strings from
arguments or a file on the 0-100 strength scale and prints ratings, entropy, and
improvement feedback.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/scoring"
)

// RunScore rates string strength
func RunScore(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	words := args
	if input := viper.GetString("score_input"); input != "" {
		lines, err := readLines(input)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if w := strings.TrimRight(line, "\r\n"); w != "" {
				words = append(words, w)
			}
		}
	}
	if len(words) == 0 {
		return fmt.Errorf("nothing to score: pass words as arguments or --input")
	}

	scorer := scoring.NewScorer()
	verbose := viper.GetBool("score_verbose")

	for _, word := range words {
		score := scorer.Score(word)
		fmt.Printf("%-24s %6.1f  %s\n", word, score.Score, score.Rating())
		if verbose {
			fmt.Printf("  entropy: %.1f bits, types: %d, repeated: %d, sequential: %d\n",
				score.Entropy, score.CharTypes, score.RepeatedChars, score.SequentialChars)
			if score.CommonPattern != "" {
				fmt.Printf("  weak pattern: %s\n", score.CommonPattern)
			}
			for _, f := range score.Feedback {
				fmt.Printf("  - %s\n", f)
			}
		}
	}

	if len(words) > 1 {
		fmt.Printf("\naverage: %.1f\n", scorer.AverageScore(words))
	}
	return nil
}
