/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate command implementation for Akaylee WordGen. Builds the
requested strategy, runs the batch, applies optional filtering, and exports the
wordlist as text, JSON, CSV, or JSON Lines with optional hashing.
*/

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/export"
	"github.com/kleascm/akaylee-wordgen/pkg/filters"
	"github.com/kleascm/akaylee-wordgen/pkg/generators"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
	"github.com/kleascm/akaylee-wordgen/pkg/utils"
)

// RunGenerate executes one generation batch
func RunGenerate(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	config, err := generatorConfig(cmd)
	if err != nil {
		return err
	}

	// Regex mode runs without a corpus; everything else trains first.
	var model *models.AnalysisResult
	if config.Mode != interfaces.ModeRegex {
		if model, err = trainModel(); err != nil {
			return err
		}
	}

	gen, err := generators.New(model, config)
	if err != nil {
		return err
	}

	start := time.Now()
	generated, err := gen.Generate(config.Count)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	words := make([]string, len(generated))
	for i, w := range generated {
		words[i] = w.Word
	}

	// Apply the optional post-generation filter.
	words, err = applyFilter(words)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	logger.LogGeneration(string(config.Mode), config.Count, len(words), duration, nil)

	if reportDir := viper.GetString("report_dir"); reportDir != "" {
		path, err := utils.WriteRunReport(reportDir, "generate", Version, runReport{
			Mode:      string(config.Mode),
			Requested: config.Count,
			Generated: len(words),
			Seeded:    config.Seeded,
			Seed:      config.Seed,
			Duration:  duration.String(),
			Words:     words,
		})
		if err != nil {
			return err
		}
		logrus.WithField("path", path).Debug("Run report written")
	}

	return writeWordlist(generated, words)
}

// runReport is the JSON shape written to the reports directory.
type runReport struct {
	Mode      string   `json:"mode"`
	Requested int      `json:"requested"`
	Generated int      `json:"generated"`
	Seeded    bool     `json:"seeded"`
	Seed      int64    `json:"seed,omitempty"`
	Duration  string   `json:"duration"`
	Words     []string `json:"words"`
}

// generatorConfig assembles the engine configuration from flags.
func generatorConfig(cmd *cobra.Command) (interfaces.GeneratorConfig, error) {
	mode := interfaces.Mode(viper.GetString("mode"))
	if !mode.Valid() {
		return interfaces.GeneratorConfig{}, fmt.Errorf("unknown generation mode %q", mode)
	}

	config := interfaces.GeneratorConfig{
		Mode:            mode,
		Count:           viper.GetInt("count"),
		Length:          viper.GetInt("length"),
		MinLength:       viper.GetInt("min_length"),
		MaxLength:       viper.GetInt("max_length"),
		TypePattern:     viper.GetString("pattern"),
		Expression:      viper.GetString("expression"),
		AllowDuplicates: viper.GetBool("allow_duplicates"),
		MaxAttempts:     viper.GetInt("max_attempts"),
		MaxRepeat:       viper.GetInt("max_repeat"),
		MarkovOrder:     viper.GetInt("markov_order"),
		HybridPreset:    viper.GetString("hybrid_preset"),
	}
	if config.Count <= 0 {
		return config, fmt.Errorf("count must be positive")
	}
	if mode == interfaces.ModeRegex && config.Expression == "" {
		return config, fmt.Errorf("regex mode requires --expression")
	}
	if cmd.Flags().Changed("seed") {
		config.Seed = viper.GetInt64("seed")
		config.Seeded = true
	}
	return config, nil
}

// applyFilter runs the preset and strength filters when configured.
func applyFilter(words []string) ([]string, error) {
	preset := viper.GetString("filter")
	minScore := viper.GetFloat64("min_score")
	if preset == "" && minScore <= 0 {
		return words, nil
	}

	var config filters.FilterConfig
	if preset != "" {
		var err error
		if config, err = filters.Preset(preset); err != nil {
			return nil, err
		}
	}
	if minScore > 0 {
		config.MinScore = &minScore
	}

	filter, err := filters.NewFilter(config)
	if err != nil {
		return nil, err
	}
	kept := filter.Filter(words)
	if len(kept) < len(words) {
		logrus.WithFields(logrus.Fields{
			"input":  len(words),
			"kept":   len(kept),
			"filter": preset,
		}).Debug("Filter applied")
	}
	return kept, nil
}

// writeWordlist exports the surviving words to stdout or the configured
// file. Show-weights is a plain-text convenience for smart mode.
func writeWordlist(generated []*interfaces.GeneratedWord, words []string) error {
	format, err := export.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	exporter, err := export.NewResultExporter(format, export.HashAlgorithm(viper.GetString("hash")))
	if err != nil {
		return err
	}

	if viper.GetBool("show_weights") && format == export.FormatText && viper.GetString("output") == "" {
		weights := make(map[string]*interfaces.GeneratedWord, len(generated))
		for _, w := range generated {
			weights[w.Word] = w
		}
		for _, word := range words {
			if w, ok := weights[word]; ok && w.HasWeight {
				fmt.Printf("%s\t%.6e\n", word, w.Weight)
			} else {
				fmt.Println(word)
			}
		}
		return nil
	}

	output := viper.GetString("output")
	if output == "" {
		return exporter.Export(os.Stdout, words)
	}
	if err := exporter.ExportToFile(words, output); err != nil {
		return err
	}
	logger.LogExport(string(format), len(words), output, nil)
	return nil
}
