/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: base.go
Description: Shared generator machinery for Akaylee WordGen. Provides length sampling
from the trained histogram, the duplicate-avoidance batch loop with a bounded retry
budget, and GeneratedWord construction.
*/

package generators

import (
	"time"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// DefaultMaxAttempts bounds the duplicate-avoidance retries spent per
// requested word before generation fails with GenerationExhaustedError.
// Override via GeneratorConfig.MaxAttempts.
const DefaultMaxAttempts = 100

// oneGenerator is the internal contract between the batch loop and each
// strategy: produce one candidate word. Returning an empty word with a
// nil error asks the loop to retry; a non-nil error aborts the batch.
type oneGenerator interface {
	generateOne() (string, error)
}

// lengthCount pairs a word length with its histogram count.
type lengthCount struct {
	length int
	count  int
}

// baseGenerator carries the state shared by every model-driven strategy.
type baseGenerator struct {
	model     *models.AnalysisResult
	source    *Source
	config    interfaces.GeneratorConfig
	generated map[string]struct{}
	lengths   []lengthCount
}

func newBaseGenerator(model *models.AnalysisResult, config interfaces.GeneratorConfig) baseGenerator {
	source := NewTimeSource()
	if config.Seeded {
		source = NewSource(config.Seed)
	}
	b := baseGenerator{
		model:     model,
		source:    source,
		config:    config,
		generated: make(map[string]struct{}),
	}
	if model != nil {
		for _, l := range model.SortedLengths() {
			b.lengths = append(b.lengths, lengthCount{length: l, count: model.LengthHistogram[l]})
		}
	}
	return b
}

// chooseLength returns the fixed target length when configured, otherwise
// samples one from the length histogram weighted by observed frequency.
// A fixed length outside the trained histogram fails with
// UnsupportedLengthError.
func (b *baseGenerator) chooseLength() (int, error) {
	if b.config.Length > 0 {
		if _, ok := b.model.LengthHistogram[b.config.Length]; !ok {
			return 0, &models.UnsupportedLengthError{
				Length:    b.config.Length,
				MinLength: b.model.MinLength,
				MaxLength: b.model.MaxLength,
			}
		}
		return b.config.Length, nil
	}

	total := b.model.TotalWords
	draw := b.source.Intn(total)
	cumulative := 0
	for _, lc := range b.lengths {
		cumulative += lc.count
		if draw < cumulative {
			return lc.length, nil
		}
	}
	return b.lengths[len(b.lengths)-1].length, nil
}

func (b *baseGenerator) maxAttempts() int {
	if b.config.MaxAttempts > 0 {
		return b.config.MaxAttempts
	}
	return DefaultMaxAttempts
}

// isDuplicate reports whether the word already exists in the training
// corpus or in the current batch.
func (b *baseGenerator) isDuplicate(word string) bool {
	if b.model != nil && b.model.HasWord(word) {
		return true
	}
	_, ok := b.generated[word]
	return ok
}

// collect runs the batch loop for one strategy. With duplicates
// disallowed each requested word gets a bounded retry budget; exhausting
// it escalates to GenerationExhaustedError with what was produced so far.
func (b *baseGenerator) collect(gen oneGenerator, count int, mode interfaces.Mode) ([]*interfaces.GeneratedWord, error) {
	results := make([]*interfaces.GeneratedWord, 0, count)
	for len(results) < count {
		attempts := 0
		accepted := false
		for attempts < b.maxAttempts() {
			attempts++
			word, err := gen.generateOne()
			if err != nil {
				return nil, err
			}
			if word == "" {
				continue
			}
			if !b.config.AllowDuplicates && b.isDuplicate(word) {
				continue
			}
			b.generated[word] = struct{}{}
			results = append(results, newGeneratedWord(word, mode))
			accepted = true
			break
		}
		if !accepted {
			return nil, &models.GenerationExhaustedError{
				Requested: count,
				Generated: len(results),
				Attempts:  attempts,
			}
		}
	}
	return results, nil
}

func newGeneratedWord(word string, mode interfaces.Mode) *interfaces.GeneratedWord {
	return &interfaces.GeneratedWord{
		ID:        uuid.New().String(),
		Word:      word,
		Mode:      mode,
		CreatedAt: time.Now(),
		Metadata:  make(map[string]interface{}),
	}
}
