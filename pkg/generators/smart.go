/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: smart.go
Description: Smart generation strategy for Akaylee WordGen. Draws position zero from
the weighted positional distribution and each subsequent position from the adjacent
co-occurrence distribution conditioned on the previous character, falling back to the
positional distribution when no transition was observed.
*/

package generators

import (
	"github.com/kleascm/akaylee-wordgen/pkg/analysis"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// SmartGenerator synthesizes strings that follow learned character
// transitions. Weighted draws use cumulative-frequency selection over a
// deterministic order (count descending, code point ascending).
type SmartGenerator struct {
	baseGenerator
	weights *analysis.WeightCalculator
}

// NewSmartGenerator creates a smart generator over a trained model.
func NewSmartGenerator(model *models.AnalysisResult, config interfaces.GeneratorConfig) *SmartGenerator {
	// Reported weights are purely positional: the string built from the
	// most frequent character at every position never scores below
	// another string of the same length. Co-occurrence conditioning is a
	// sampling policy only.
	return &SmartGenerator{
		baseGenerator: newBaseGenerator(model, config),
		weights:       analysis.NewWeightCalculator(model, analysis.WeightOptions{}),
	}
}

// Generate synthesizes count words. With duplicates disallowed (the
// default) no output equals a training word or another word in the same
// batch; the bounded per-word retry budget escalates to
// GenerationExhaustedError when a request is unsatisfiable.
func (g *SmartGenerator) Generate(count int) ([]*interfaces.GeneratedWord, error) {
	words, err := g.collect(g, count, interfaces.ModeSmart)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		w.Weight = g.weights.CalculateWeight(w.Word)
		w.HasWeight = true
	}
	return words, nil
}

func (g *SmartGenerator) generateOne() (string, error) {
	length, err := g.chooseLength()
	if err != nil {
		return "", err
	}
	ls, ok := g.model.Lengths[length]
	if !ok || ls.Count == 0 {
		return "", &models.UnsupportedLengthError{
			Length:    length,
			MinLength: g.model.MinLength,
			MaxLength: g.model.MaxLength,
		}
	}

	word := make([]rune, length)
	first, ok := g.source.WeightedRune(ls.Positions[0].WeightedChars())
	if !ok {
		return "", nil
	}
	word[0] = first

	for i := 1; i < length; i++ {
		r, ok := g.nextRune(ls, i, word[i-1])
		if !ok {
			return "", nil
		}
		word[i] = r
	}
	return string(word), nil
}

// nextRune prefers the observed transition distribution for the
// predecessor and falls back to the positional distribution when that
// context was never seen.
func (g *SmartGenerator) nextRune(ls *models.LengthStats, pos int, prev rune) (rune, bool) {
	if next, ok := g.model.Cooccurrence.Next(pos-1, prev); ok {
		if r, ok := g.source.WeightedRune(models.RuneCountsFromMap(next)); ok {
			return r, true
		}
	}
	return g.source.WeightedRune(ls.Positions[pos].WeightedChars())
}

// CalculateWeight scores a string as the product of its per-position
// observed frequencies. Characters never observed at a position score
// the configured floor instead of zero.
func (g *SmartGenerator) CalculateWeight(word string) float64 {
	return g.weights.CalculateWeight(word)
}

// Name returns the name of this generator.
func (g *SmartGenerator) Name() string {
	return "SmartGenerator"
}

// Description returns a description of this generator.
func (g *SmartGenerator) Description() string {
	return "Follows learned adjacent-character transitions with positional fallback"
}
