/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: weight.go
Description: Weight calculator for Akaylee WordGen. Scores an arbitrary string for
relative likelihood under a trained model using per-position conditional frequencies,
with an explicit floor for characters never observed in a context.
*/

package analysis

import (
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// DefaultMinWeight is the per-position floor applied when a character was
// never observed at a position or in a co-occurrence context. A non-zero
// floor keeps unseen words comparable instead of collapsing them all to
// zero.
const DefaultMinWeight = 1e-9

// WeightOptions configures the scoring policy.
type WeightOptions struct {
	// UseCooccurrence conditions positions i >= 1 on the preceding
	// character when a transition was observed. When false every position
	// is scored against its positional distribution alone. Conditioned
	// scores are not monotone in positional frequency, so reported
	// generator weights stay positional.
	UseCooccurrence bool

	// MinWeight overrides DefaultMinWeight when positive.
	MinWeight float64
}

// WeightCalculator scores strings against one AnalysisResult. Safe for
// concurrent use: the model is read-only.
type WeightCalculator struct {
	model *models.AnalysisResult
	opts  WeightOptions
}

// NewWeightCalculator creates a calculator over a trained model.
func NewWeightCalculator(model *models.AnalysisResult, opts WeightOptions) *WeightCalculator {
	if opts.MinWeight <= 0 {
		opts.MinWeight = DefaultMinWeight
	}
	return &WeightCalculator{model: model, opts: opts}
}

// CalculateWeight returns the product over positions of the conditional
// frequency of each character. Positions whose character was never
// observed in the scoring context contribute the configured floor. A
// length with no model support scores the floor at every position.
func (w *WeightCalculator) CalculateWeight(word string) float64 {
	runes := []rune(word)
	ls, ok := w.model.Lengths[len(runes)]
	if !ok {
		weight := 1.0
		for range runes {
			weight *= w.opts.MinWeight
		}
		return weight
	}

	weight := 1.0
	for i, r := range runes {
		weight *= w.positionFactor(ls, runes, i, r)
	}
	return weight
}

// positionFactor scores one character. Co-occurrence conditioning applies
// only when a transition table entry exists for the predecessor; an
// absent entry falls back to the positional distribution, never to zero.
func (w *WeightCalculator) positionFactor(ls *models.LengthStats, runes []rune, i int, r rune) float64 {
	if w.opts.UseCooccurrence && i > 0 {
		if next, ok := w.model.Cooccurrence.Next(i-1, runes[i-1]); ok {
			total := 0
			for _, c := range next {
				total += c
			}
			if count := next[r]; count > 0 && total > 0 {
				return float64(count) / float64(total)
			}
			return w.opts.MinWeight
		}
	}

	ps := ls.Positions[i]
	if count := ps.CharCounts[r]; count > 0 && ps.Total() > 0 {
		return float64(count) / float64(ps.Total())
	}
	return w.opts.MinWeight
}
