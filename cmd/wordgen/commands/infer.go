/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Infer command implementation for Akaylee WordGen. Trains the model
and derives best-effort regular expressions per length bucket plus the overall
frequency-ordered alternation.
*/

package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/inference"
)

// RunInfer derives regular expressions from the trained model
func RunInfer(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	model, err := trainModel()
	if err != nil {
		return err
	}

	builder := inference.NewBuilder(model, inference.Config{
		MinCharCount: viper.GetInt("min_char_count"),
	})
	result := builder.Infer()

	if viper.GetBool("per_length") {
		lengths := make([]int, 0, len(result.ByLength))
		for l := range result.ByLength {
			lengths = append(lengths, l)
		}
		sort.Ints(lengths)
		for _, l := range lengths {
			fmt.Printf("length %2d: %s\n", l, result.ByLength[l])
		}
		fmt.Println()
	}

	fmt.Println(result.Overall)

	logger.LogInference(len(result.ByLength), result.Overall, nil)
	return nil
}
