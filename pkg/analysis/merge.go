/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: merge.go
Description: Model merging for Akaylee WordGen. Combines independently trained
analysis results into one model equivalent to analyzing the corpora together.
*/

package analysis

import (
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// MergeResults combines independent corpus analyses into a single model.
// Every statistic is a sum of observation counts, so merging is
// commutative and order-independent, and the result is identical to
// analyzing the concatenated corpora in one pass. Nil inputs are
// skipped; merging nothing returns *models.EmptyCorpusError.
func MergeResults(results ...*models.AnalysisResult) (*models.AnalysisResult, error) {
	merged := &models.AnalysisResult{
		LengthHistogram: make(map[int]int),
		Charset:         make(map[rune]int),
		TypeFrequency:   make(map[models.CharType]int),
		Lengths:         make(map[int]*models.LengthStats),
		Cooccurrence:    models.NewCooccurrenceStats(),
		Words:           make(map[string]struct{}),
	}

	for _, result := range results {
		if result == nil {
			continue
		}
		merged.TotalWords += result.TotalWords
		for l, c := range result.LengthHistogram {
			merged.LengthHistogram[l] += c
		}
		for r, c := range result.Charset {
			merged.Charset[r] += c
		}
		for t, c := range result.TypeFrequency {
			merged.TypeFrequency[t] += c
		}
		for w := range result.Words {
			merged.Words[w] = struct{}{}
		}
		for l, ls := range result.Lengths {
			dst, ok := merged.Lengths[l]
			if !ok {
				dst = models.NewLengthStats(l)
				merged.Lengths[l] = dst
			}
			if err := dst.Merge(ls); err != nil {
				return nil, err
			}
		}
		merged.Cooccurrence.Merge(result.Cooccurrence)
	}

	if merged.TotalWords == 0 {
		return nil, &models.EmptyCorpusError{Source: "merge"}
	}

	merged.UniqueWords = len(merged.Words)
	for _, l := range merged.SortedLengths() {
		if merged.MinLength == 0 || l < merged.MinLength {
			merged.MinLength = l
		}
		if l > merged.MaxLength {
			merged.MaxLength = l
		}
	}
	return merged, nil
}
