/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers configuration validation, the
custom and wordgen formatters, domain logging helpers, file output, and the log
manager's retention policy.
*/

package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string) *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  3,
		MaxSize:   1024 * 1024,
		Timestamp: true,
		Colors:    false,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	config := testConfig(t.TempDir())
	require.NoError(t, config.Validate())

	bad := *config
	bad.OutputDir = ""
	assert.Error(t, bad.Validate())

	bad = *config
	bad.MaxFiles = 0
	assert.Error(t, bad.Validate())

	bad = *config
	bad.Format = "yaml"
	assert.Error(t, bad.Validate())

	bad = *config
	bad.Level = "loud"
	assert.Error(t, bad.Validate())
}

func TestLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(testConfig(dir))
	require.NoError(t, err)

	logger.LogGeneration("smart", 10, 10, 5*time.Millisecond, nil)
	logger.LogAnalysis(100, 90, 42, 2*time.Millisecond, nil)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-wordgen_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Generation run complete")
	assert.Contains(t, string(data), "Corpus analysis complete")
}

// TestCustomFormatter tests the custom formatter
func TestCustomFormatter(t *testing.T) {
	formatter := &CustomFormatter{
		Timestamp: true,
		Colors:    false,
	}

	entry := &logrus.Entry{
		Time:    time.Now(),
		Level:   logrus.InfoLevel,
		Message: "test message",
		Data: logrus.Fields{
			"mode":     "smart",
			"duration": 150 * time.Millisecond,
		},
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "INFO")
	assert.Contains(t, string(out), "test message")
	assert.Contains(t, string(out), "mode=smart")
	assert.Contains(t, string(out), "duration=150ms")
}

// TestWordGenFormatter tests the wordgen-specific formatter
func TestWordGenFormatter(t *testing.T) {
	formatter := &WordGenFormatter{
		CustomFormatter: CustomFormatter{Colors: false},
		ShowWeights:     true,
	}

	entry := &logrus.Entry{
		Time:    time.Now(),
		Level:   logrus.InfoLevel,
		Message: "Generation run complete",
		Data: logrus.Fields{
			"weight": 0.000123456,
		},
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[GENERATE]")
	assert.Contains(t, string(out), "weight=0.000123456")

	entry.Message = "Regex inference complete"
	entry.Data = logrus.Fields{"overall_expression": "[a-z]{8}"}
	out, err = formatter.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[INFER]")
	assert.Contains(t, string(out), "[a-z]{8}")
}

func TestLogManagerCleanup(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, time.Now().Add(time.Duration(i)*time.Second).Format("akaylee-wordgen_2006-01-02_15-04-05")+".log")
		require.NoError(t, os.WriteFile(name, []byte("x\n"), 0644))
	}

	manager := NewLogManager(dir, 2, 1024*1024, false)
	require.NoError(t, manager.CleanupOldLogs())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-wordgen_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)

	stats, err := manager.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
}

func TestLogAnalyzer(t *testing.T) {
	dir := t.TempDir()
	content := "INFO Generation run complete\n" +
		"INFO Corpus analysis complete\n" +
		"DEBUG Mutation pass complete\n" +
		"ERROR something broke\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "akaylee-wordgen_2026.log"), []byte(content), 0644))

	analysis, err := NewLogAnalyzer(dir).AnalyzeLogs()
	require.NoError(t, err)

	assert.Equal(t, int64(4), analysis.TotalLines)
	assert.Equal(t, int64(1), analysis.GenerationCount)
	assert.Equal(t, int64(1), analysis.AnalysisCount)
	assert.Equal(t, int64(1), analysis.MutationCount)
	assert.Equal(t, int64(1), analysis.ErrorCount)
	assert.Contains(t, analysis.GetLogSummary(), "Generations: 1")
}
