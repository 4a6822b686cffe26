/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pattern.go
Description: Type-pattern generation strategy for Akaylee WordGen. Samples a character
type skeleton weighted by observed frequency (or validates an explicit one) and fills
each position with a character observed at that length/position/type combination,
falling back to the global charset per type. The strictest mode.
*/

package generators

import (
	"fmt"

	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// PatternGenerator synthesizes strings anchored to observed character
// type skeletons.
type PatternGenerator struct {
	baseGenerator
	explicit []models.CharType
}

// NewPatternGenerator creates a pattern generator over a trained model.
// When config.TypePattern is set it is validated once up front: every
// code must map to a known CharType (U, l, n, @) or construction fails
// with InvalidPatternError.
func NewPatternGenerator(model *models.AnalysisResult, config interfaces.GeneratorConfig) (*PatternGenerator, error) {
	g := &PatternGenerator{baseGenerator: newBaseGenerator(model, config)}
	if config.TypePattern != "" {
		for i, code := range config.TypePattern {
			t, ok := models.CharTypeFromCode(code)
			if !ok {
				return nil, &models.InvalidPatternError{
					Pattern: config.TypePattern,
					Reason:  fmt.Sprintf("unknown type code %q at position %d", string(code), i),
				}
			}
			g.explicit = append(g.explicit, t)
		}
	}
	return g, nil
}

// Generate synthesizes count words. Fails with UnsatisfiablePatternError
// when a required type has no character anywhere in the model.
func (g *PatternGenerator) Generate(count int) ([]*interfaces.GeneratedWord, error) {
	return g.collect(g, count, interfaces.ModePattern)
}

func (g *PatternGenerator) generateOne() (string, error) {
	skeleton := g.explicit
	if skeleton == nil {
		sampled, err := g.sampleSkeleton()
		if err != nil {
			return "", err
		}
		skeleton = sampled
	}

	ls := g.model.Lengths[len(skeleton)]
	word := make([]rune, len(skeleton))
	for i, t := range skeleton {
		r, err := g.runeForType(ls, i, t, skeleton)
		if err != nil {
			return "", err
		}
		word[i] = r
	}
	return string(word), nil
}

// sampleSkeleton picks a length from the histogram and then a skeleton
// within that bucket, weighted by observed skeleton frequency.
func (g *PatternGenerator) sampleSkeleton() ([]models.CharType, error) {
	length, err := g.chooseLength()
	if err != nil {
		return nil, err
	}
	ls, ok := g.model.Lengths[length]
	if !ok || ls.Count == 0 {
		return nil, &models.UnsupportedLengthError{
			Length:    length,
			MinLength: g.model.MinLength,
			MaxLength: g.model.MaxLength,
		}
	}

	patterns := ls.WeightedPatterns()
	draw := g.source.Intn(ls.Count)
	cumulative := 0
	chosen := patterns[len(patterns)-1].Pattern
	for _, pc := range patterns {
		cumulative += pc.Count
		if draw < cumulative {
			chosen = pc.Pattern
			break
		}
	}

	skeleton := make([]models.CharType, 0, length)
	for _, code := range chosen {
		t, _ := models.CharTypeFromCode(code)
		skeleton = append(skeleton, t)
	}
	return skeleton, nil
}

// runeForType draws uniformly from the characters observed at this
// length/position/type combination. A combination never observed falls
// back to any charset character of the required type; a type absent from
// the whole charset makes the pattern unsatisfiable.
func (g *PatternGenerator) runeForType(ls *models.LengthStats, pos int, t models.CharType, skeleton []models.CharType) (rune, error) {
	var chars []rune
	if ls != nil {
		chars = ls.CharsOfType(pos, t)
	}
	if len(chars) == 0 {
		chars = g.model.CharsetOfType(t)
	}
	if len(chars) == 0 {
		return 0, &models.UnsatisfiablePatternError{
			Pattern:  skeletonString(skeleton),
			Position: pos,
			Type:     t,
		}
	}
	r, _ := g.source.Choice(chars)
	return r, nil
}

func skeletonString(skeleton []models.CharType) string {
	codes := make([]rune, len(skeleton))
	for i, t := range skeleton {
		codes[i] = t.Code()
	}
	return string(codes)
}

// Name returns the name of this generator.
func (g *PatternGenerator) Name() string {
	return "PatternGenerator"
}

// Description returns a description of this generator.
func (g *PatternGenerator) Description() string {
	return "Anchors both type skeleton and character identity to training observations; strictest mode"
}
