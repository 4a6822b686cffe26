/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch corpus processing for Akaylee WordGen. Analyzes multiple
wordlist files with shared settings, reports per-file progress, and merges the
individual analyses into one combined model.
*/

package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// BatchResult holds the outcome for a single file in a batch.
type BatchResult struct {
	Path     string
	Analysis *models.AnalysisResult
	Err      error
}

// ProgressFunc is called after each file with the number of files done so
// far, the batch size, and the path just processed.
type ProgressFunc func(done, total int, path string)

// BatchProcessor analyzes multiple wordlist files with the same length
// bounds. A failing file records its error in the batch result instead of
// aborting the rest of the batch.
type BatchProcessor struct {
	analyzer *Analyzer
}

// NewBatchProcessor creates a batch processor with the given length filter.
func NewBatchProcessor(minLength, maxLength int) *BatchProcessor {
	return &BatchProcessor{analyzer: NewAnalyzer(minLength, maxLength)}
}

// ProcessFiles analyzes each file independently, in order.
func (b *BatchProcessor) ProcessFiles(paths []string, progress ProgressFunc) []BatchResult {
	results := make([]BatchResult, 0, len(paths))
	for i, path := range paths {
		results = append(results, b.processFile(path))
		if progress != nil {
			progress(i+1, len(paths), path)
		}
	}
	return results
}

// ProcessDirectory analyzes every file in the directory matching the glob
// pattern, in sorted path order.
func (b *BatchProcessor) ProcessDirectory(dir, pattern string, progress ProgressFunc) ([]BatchResult, error) {
	if pattern == "" {
		pattern = "*.txt"
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid corpus pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no corpus files match %s in %s", pattern, dir)
	}
	sort.Strings(paths)
	return b.ProcessFiles(paths, progress), nil
}

// ProcessAndMerge analyzes each file and merges the successful analyses
// into one combined model. The per-file results are returned alongside so
// callers can report individual failures.
func (b *BatchProcessor) ProcessAndMerge(paths []string, progress ProgressFunc) ([]BatchResult, *models.AnalysisResult, error) {
	results := b.ProcessFiles(paths, progress)
	merged, err := MergeBatch(results)
	return results, merged, err
}

// MergeBatch merges the successful analyses of a batch into one model.
func MergeBatch(results []BatchResult) (*models.AnalysisResult, error) {
	analyses := make([]*models.AnalysisResult, 0, len(results))
	for _, r := range results {
		if r.Err == nil && r.Analysis != nil {
			analyses = append(analyses, r.Analysis)
		}
	}
	return MergeResults(analyses...)
}

func (b *BatchProcessor) processFile(path string) BatchResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return BatchResult{Path: path, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	result, err := b.analyzer.Analyze(strings.Split(string(data), "\n"))
	if err != nil {
		return BatchResult{Path: path, Err: err}
	}
	return BatchResult{Path: path, Analysis: result}
}
