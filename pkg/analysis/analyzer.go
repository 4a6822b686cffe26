/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer.go
Description: Pattern analyzer implementation for Akaylee WordGen. Performs a single
pass over the training corpus and builds per-length position statistics, adjacent-pair
co-occurrence counts, character type skeleton frequencies, and aggregate statistics,
producing one immutable AnalysisResult.
*/

package analysis

import (
	"strings"

	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// Analyzer scans a corpus of strings and builds the statistical model
// consumed by every model-driven generator. Length bounds are inclusive;
// zero means unbounded.
type Analyzer struct {
	MinLength int
	MaxLength int
}

// NewAnalyzer creates an analyzer with the given length filter.
func NewAnalyzer(minLength, maxLength int) *Analyzer {
	return &Analyzer{MinLength: minLength, MaxLength: maxLength}
}

// Analyze performs one pass over raw corpus lines and returns the
// finished model. Line terminators are stripped and empty lines
// discarded before filtering. Returns *models.EmptyCorpusError when no
// usable words remain.
//
// Duplicate words are intentionally counted at full frequency; only the
// unique count deduplicates. Given the same filtered input sequence the
// result is bit-identical.
func (a *Analyzer) Analyze(lines []string) (*models.AnalysisResult, error) {
	result := &models.AnalysisResult{
		LengthHistogram: make(map[int]int),
		Charset:         make(map[rune]int),
		TypeFrequency:   make(map[models.CharType]int),
		Lengths:         make(map[int]*models.LengthStats),
		Cooccurrence:    models.NewCooccurrenceStats(),
		Words:           make(map[string]struct{}),
	}

	discarded := 0
	for _, line := range lines {
		word := strings.TrimRight(line, "\r\n")
		if word == "" {
			discarded++
			continue
		}
		runes := []rune(word)
		length := len(runes)
		if (a.MinLength > 0 && length < a.MinLength) || (a.MaxLength > 0 && length > a.MaxLength) {
			discarded++
			continue
		}
		a.processWord(result, word, runes)
	}

	if result.TotalWords == 0 {
		return nil, &models.EmptyCorpusError{Source: "corpus", Discarded: discarded}
	}

	result.UniqueWords = len(result.Words)
	for _, l := range result.SortedLengths() {
		if result.MinLength == 0 || l < result.MinLength {
			result.MinLength = l
		}
		if l > result.MaxLength {
			result.MaxLength = l
		}
	}
	return result, nil
}

// processWord updates every model with a single accepted word.
func (a *Analyzer) processWord(result *models.AnalysisResult, word string, runes []rune) {
	length := len(runes)
	result.TotalWords++
	result.LengthHistogram[length]++
	result.Words[word] = struct{}{}

	ls, ok := result.Lengths[length]
	if !ok {
		ls = models.NewLengthStats(length)
		result.Lengths[length] = ls
	}
	// AddWord cannot fail here: runes has the bucket's exact length.
	_ = ls.AddWord(runes)

	for i, r := range runes {
		result.Charset[r]++
		result.TypeFrequency[models.CharTypeOf(r)]++
		if i < length-1 {
			result.Cooccurrence.Add(i, r, runes[i+1])
		}
	}
}
