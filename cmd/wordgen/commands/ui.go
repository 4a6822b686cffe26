/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ui.go
Description: UI command implementation for Akaylee WordGen. Trains the model and
hands it to the interactive Bubble Tea interface.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/ui"
)

// RunUI launches the interactive terminal interface
func RunUI(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	model, err := trainModel()
	if err != nil {
		return err
	}

	config := interfaces.GeneratorConfig{
		MinLength: viper.GetInt("min_length"),
		MaxLength: viper.GetInt("max_length"),
	}
	if cmd.Flags().Changed("seed") {
		config.Seed = viper.GetInt64("ui_seed")
		config.Seeded = true
	}

	return ui.Run(model, config)
}
