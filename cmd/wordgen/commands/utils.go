/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee WordGen commands. Provides common
configuration loading, logging setup, corpus reading, and model training used
across all command implementations.
*/

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-wordgen/pkg/analysis"
	"github.com/kleascm/akaylee-wordgen/pkg/logging"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// Version is the release version reported by the CLI and embedded in run
// reports.
const Version = "1.0.0"

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AKAYLEE")
	viper.AutomaticEnv()

	return nil
}

// Global logger instance
var logger *logging.Logger

// SetupLogging configures the logging system
func SetupLogging() error {
	logLevel := viper.GetString("log_level")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(logLevel),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    !viper.GetBool("json_logs"),
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	if logger, err = logging.NewLogger(config); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	// Route the package-level logrus calls through the configured logger.
	std := logger.GetLogger()
	logrus.SetLevel(level)
	logrus.SetFormatter(std.Formatter)
	logrus.SetOutput(std.Out)

	return nil
}

// CloseLogging flushes and closes the log files. Safe to call when
// SetupLogging never ran.
func CloseLogging() error {
	if logger == nil {
		return nil
	}
	return logger.Close()
}

// readLines reads a file into lines, keeping empties for the analyzer to
// discard.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// trainModel reads the configured corpora and trains the statistical
// model with the configured length bounds. Multiple corpora are analyzed
// individually and merged into one model; any unreadable corpus fails
// the whole command.
func trainModel() (*models.AnalysisResult, error) {
	paths := viper.GetStringSlice("corpus_path")
	dir := viper.GetString("corpus_dir")
	if len(paths) == 0 && dir == "" {
		return nil, fmt.Errorf("a training corpus is required (--corpus or --corpus-dir)")
	}

	batch := analysis.NewBatchProcessor(viper.GetInt("min_length"), viper.GetInt("max_length"))
	progress := func(done, total int, path string) {
		if total > 1 {
			fmt.Fprintf(os.Stderr, "  corpus [%d/%d] %s\n", done, total, path)
		}
	}

	var results []analysis.BatchResult
	if dir != "" {
		var err error
		if results, err = batch.ProcessDirectory(dir, viper.GetString("corpus_glob"), progress); err != nil {
			return nil, err
		}
	} else {
		results = batch.ProcessFiles(paths, progress)
	}
	for _, r := range results {
		if r.Err != nil {
			return nil, fmt.Errorf("corpus analysis failed for %s: %w", r.Path, r.Err)
		}
	}

	result, err := analysis.MergeBatch(results)
	if err != nil {
		return nil, fmt.Errorf("corpus analysis failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"corpora":      len(results),
		"total_words":  result.TotalWords,
		"unique_words": result.UniqueWords,
		"charset_size": len(result.Charset),
	}).Debug("Model trained")

	return result, nil
}
