/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: random.go
Description: Random generation strategy for Akaylee WordGen. Draws each character
uniformly from the set of characters ever observed at that offset for the chosen
length, ignoring frequency weighting. The least strict and fastest mode.
*/

package generators

import (
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// RandomGenerator synthesizes strings anchored only to per-position
// observed character sets and the trained length distribution.
type RandomGenerator struct {
	baseGenerator
}

// NewRandomGenerator creates a random generator over a trained model.
func NewRandomGenerator(model *models.AnalysisResult, config interfaces.GeneratorConfig) *RandomGenerator {
	return &RandomGenerator{baseGenerator: newBaseGenerator(model, config)}
}

// Generate synthesizes count words. Fails with UnsupportedLengthError
// when a fixed length has no model support, and with
// GenerationExhaustedError when duplicate avoidance runs out of retries.
func (g *RandomGenerator) Generate(count int) ([]*interfaces.GeneratedWord, error) {
	return g.collect(g, count, interfaces.ModeRandom)
}

func (g *RandomGenerator) generateOne() (string, error) {
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
	for i := 0; i < length; i++ {
		r, ok := g.source.Choice(ls.Positions[i].Chars())
		if !ok {
			return "", nil
		}
		word[i] = r
	}
	return string(word), nil
}

// Name returns the name of this generator.
func (g *RandomGenerator) Name() string {
	return "RandomGenerator"
}

// Description returns a description of this generator.
func (g *RandomGenerator) Description() string {
	return "Draws characters uniformly from per-position observed sets; fastest, least strict mode"
}
