/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: markov.go
Description: Markov chain generation strategy for Akaylee WordGen. Learns order-n
rune transitions from the retained training set with start and end sentinels, then
walks the chain with weighted draws and context back-off.
*/

package generators

import (
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// DefaultMarkovOrder is the n-gram context size used when the
// configuration does not set one.
const DefaultMarkovOrder = 2

// Sentinel runes padding each training word.
const (
	markovStart = '\x00'
	markovEnd   = '\x01'
)

// MarkovGenerator synthesizes strings by following learned n-gram
// transitions. Output length is emergent; a fixed configured length is
// honored by rejecting words of other lengths inside the retry budget.
type MarkovGenerator struct {
	baseGenerator
	order       int
	transitions map[string]map[rune]int
	maxLen      int
}

// NewMarkovGenerator creates a markov generator and trains its transition
// table from the model's unique training words.
func NewMarkovGenerator(model *models.AnalysisResult, config interfaces.GeneratorConfig) *MarkovGenerator {
	order := config.MarkovOrder
	if order <= 0 {
		order = DefaultMarkovOrder
	}
	g := &MarkovGenerator{
		baseGenerator: newBaseGenerator(model, config),
		order:         order,
		transitions:   make(map[string]map[rune]int),
		maxLen:        model.MaxLength * 2,
	}
	g.train()
	return g
}

// train builds the transition table. Words are visited in sorted order so
// the table is identical across runs.
func (g *MarkovGenerator) train() {
	for _, word := range g.model.TrainingWords() {
		padded := make([]rune, 0, len(word)+g.order+1)
		for i := 0; i < g.order; i++ {
			padded = append(padded, markovStart)
		}
		padded = append(padded, []rune(word)...)
		padded = append(padded, markovEnd)

		// Record every suffix order down to 1 so back-off has somewhere
		// to land for contexts never seen at full order.
		for i := 0; i+g.order < len(padded); i++ {
			next := padded[i+g.order]
			for k := 1; k <= g.order; k++ {
				context := string(padded[i+g.order-k : i+g.order])
				m, ok := g.transitions[context]
				if !ok {
					m = make(map[rune]int)
					g.transitions[context] = m
				}
				m[next]++
			}
		}
	}
}

// Generate synthesizes count words by walking the chain.
func (g *MarkovGenerator) Generate(count int) ([]*interfaces.GeneratedWord, error) {
	return g.collect(g, count, interfaces.ModeMarkov)
}

func (g *MarkovGenerator) generateOne() (string, error) {
	context := make([]rune, g.order)
	for i := range context {
		context[i] = markovStart
	}

	var word []rune
	for len(word) < g.maxLen {
		next, ok := g.step(context)
		if !ok || next == markovEnd {
			break
		}
		word = append(word, next)
		context = append(context[1:], next)
	}

	if len(word) == 0 {
		return "", nil
	}
	if g.config.Length > 0 && len(word) != g.config.Length {
		return "", nil
	}
	return string(word), nil
}

// step draws the next rune for a context, backing off to shorter
// contexts when the full one was never observed.
func (g *MarkovGenerator) step(context []rune) (rune, bool) {
	for start := 0; start < len(context); start++ {
		if next, ok := g.transitions[string(context[start:])]; ok {
			return g.source.WeightedRune(models.RuneCountsFromMap(next))
		}
	}
	// No context matches at any order; draw from the global charset.
	return g.source.WeightedRune(models.RuneCountsFromMap(g.model.Charset))
}

// Name returns the name of this generator.
func (g *MarkovGenerator) Name() string {
	return "MarkovGenerator"
}

// Description returns a description of this generator.
func (g *MarkovGenerator) Description() string {
	return "Walks learned n-gram transitions with sentinel boundaries and context back-off"
}
