/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mutate.go
Description: Mutate command implementation for Akaylee WordGen. Resolves the
requested rule chain, wraps it in a composite mutator, and prints the transformed
words.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/generators"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/strategies"
)

// RunMutate applies a rule chain to input words
func RunMutate(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	words := args
	if input := viper.GetString("mutate_input"); input != "" {
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
		return fmt.Errorf("nothing to mutate: pass words as arguments or --input")
	}

	source := generators.NewTimeSource()
	if cmd.Flags().Changed("seed") {
		source = generators.NewSource(viper.GetInt64("mutate_seed"))
	}

	var mutators []interfaces.WordMutator
	rules := viper.GetStringSlice("mutate_rules")
	if len(rules) == 0 {
		mutators = strategies.DefaultMutators(source)
	} else {
		for _, rule := range rules {
			m, ok := strategies.MutatorByName(rule, source)
			if !ok {
				return fmt.Errorf("unknown mutation rule %q (see list-mutators)", rule)
			}
			mutators = append(mutators, m)
		}
	}

	composite := strategies.NewCompositeMutator(mutators, 0, viper.GetBool("mutate_random_order"), source)
	if err := composite.Init(); err != nil {
		return fmt.Errorf("failed to initialize mutators: %w", err)
	}

	for _, word := range words {
		mutated, err := composite.Mutate(word)
		if err != nil {
			return fmt.Errorf("mutation failed for %q: %w", word, err)
		}
		fmt.Println(mutated)
	}

	logger.LogMutation(composite.Name(), len(words), len(words), nil)
	return nil
}
