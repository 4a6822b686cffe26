/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logs.go
Description: Log maintenance command for Akaylee WordGen. Rotates and cleans the
log directory per the retention policy and prints file statistics plus an event
summary extracted from the logs.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/logging"
)

// RunLogs rotates, cleans, and summarizes the log directory
func RunLogs(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logDir := viper.GetString("log_dir")
	manager := logging.NewLogManager(
		logDir,
		viper.GetInt("log_max_files"),
		viper.GetInt64("log_max_size"),
		viper.GetBool("log_compress"),
	)

	fmt.Println("🧹 Akaylee WordGen - Log Maintenance")
	fmt.Println("====================================")
	fmt.Println()

	if err := manager.RotateLogs(); err != nil {
		return fmt.Errorf("log rotation failed: %w", err)
	}
	if err := manager.CleanupOldLogs(); err != nil {
		return fmt.Errorf("log cleanup failed: %w", err)
	}

	stats, err := manager.GetLogStats()
	if err != nil {
		return fmt.Errorf("failed to collect log statistics: %w", err)
	}
	fmt.Printf("📁 Directory: %s\n", logDir)
	fmt.Printf("   Files: %d (%d compressed)\n", stats.TotalFiles, stats.CompressedFiles)
	fmt.Printf("   Total size: %d bytes\n", stats.TotalSize)
	fmt.Println()

	analysis, err := logging.NewLogAnalyzer(logDir).AnalyzeLogs()
	if err != nil {
		return fmt.Errorf("log analysis failed: %w", err)
	}
	fmt.Println(analysis.GetLogSummary())
	return nil
}
