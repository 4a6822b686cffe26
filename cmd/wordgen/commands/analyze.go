/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analyze command implementation for Akaylee WordGen. Trains the
statistical model from a corpus file, prints the learned summary, and optionally
exports the full statistics for downstream tooling.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/export"
)

// RunAnalyze trains the model and reports what it learned
func RunAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("📊 Akaylee WordGen - Corpus Analysis")
	fmt.Println("====================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	start := time.Now()
	result, err := trainModel()
	if err != nil {
		return err
	}

	fmt.Print(result.Summary())

	logger.LogAnalysis(result.TotalWords, result.UniqueWords, len(result.Charset), time.Since(start), nil)

	// Export full statistics if requested
	statsOutput := viper.GetString("stats_output")
	if statsOutput == "" {
		return nil
	}
	format, err := export.ParseFormat(viper.GetString("stats_format"))
	if err != nil {
		return err
	}
	if err := export.NewStatsExporter(result).ToFile(statsOutput, format); err != nil {
		return fmt.Errorf("failed to export statistics: %w", err)
	}
	fmt.Printf("\n💾 Full statistics written to %s\n", statsOutput)
	return nil
}
