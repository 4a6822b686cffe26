/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hybrid.go
Description: Hybrid generation strategy for Akaylee WordGen. Mixes several strategies
by normalized weight, delegating each candidate word to one sub-generator. Ships with
balanced, strict, and creative presets.
*/

package generators

import (
	"fmt"

	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// HybridMix assigns a relative weight to one strategy.
type HybridMix struct {
	Mode   interfaces.Mode
	Weight float64
}

// Preset mixes mirroring the strictness ordering random < smart < pattern.
var (
	BalancedMix = []HybridMix{
		{Mode: interfaces.ModeSmart, Weight: 0.5},
		{Mode: interfaces.ModePattern, Weight: 0.3},
		{Mode: interfaces.ModeRandom, Weight: 0.2},
	}
	StrictMix = []HybridMix{
		{Mode: interfaces.ModePattern, Weight: 0.7},
		{Mode: interfaces.ModeSmart, Weight: 0.3},
	}
	CreativeMix = []HybridMix{
		{Mode: interfaces.ModeRandom, Weight: 0.5},
		{Mode: interfaces.ModeSmart, Weight: 0.3},
		{Mode: interfaces.ModePattern, Weight: 0.2},
	}
)

// MixPreset resolves a named preset.
func MixPreset(name string) ([]HybridMix, error) {
	switch name {
	case "", "balanced":
		return BalancedMix, nil
	case "strict":
		return StrictMix, nil
	case "creative":
		return CreativeMix, nil
	default:
		return nil, fmt.Errorf("unknown hybrid preset %q", name)
	}
}

type weightedSub struct {
	gen    oneGenerator
	weight float64
}

// HybridGenerator mixes sub-generators by weight. Each sub-generator gets
// its own source seeded seed+index so output stays reproducible under a
// fixed seed regardless of which strategy serves a draw.
type HybridGenerator struct {
	baseGenerator
	subs []weightedSub
}

// NewHybridGenerator builds sub-generators for the given mix over one
// shared model.
func NewHybridGenerator(model *models.AnalysisResult, config interfaces.GeneratorConfig, mix []HybridMix) (*HybridGenerator, error) {
	if len(mix) == 0 {
		return nil, fmt.Errorf("hybrid mix must name at least one strategy")
	}
	g := &HybridGenerator{baseGenerator: newBaseGenerator(model, config)}

	total := 0.0
	for _, m := range mix {
		total += m.Weight
	}
	if total <= 0 {
		return nil, fmt.Errorf("hybrid mix weights must sum to a positive value")
	}

	for i, m := range mix {
		subConfig := config
		if config.Seeded {
			subConfig.Seed = config.Seed + int64(i) + 1
		}
		sub, err := newSubGenerator(model, subConfig, m.Mode)
		if err != nil {
			return nil, err
		}
		g.subs = append(g.subs, weightedSub{gen: sub, weight: m.Weight / total})
	}
	return g, nil
}

func newSubGenerator(model *models.AnalysisResult, config interfaces.GeneratorConfig, mode interfaces.Mode) (oneGenerator, error) {
	switch mode {
	case interfaces.ModeRandom:
		return NewRandomGenerator(model, config), nil
	case interfaces.ModeSmart:
		return NewSmartGenerator(model, config), nil
	case interfaces.ModePattern:
		return NewPatternGenerator(model, config)
	case interfaces.ModeMarkov:
		return NewMarkovGenerator(model, config), nil
	default:
		return nil, fmt.Errorf("mode %q cannot participate in a hybrid mix", mode)
	}
}

// Generate synthesizes count words across the mix.
func (g *HybridGenerator) Generate(count int) ([]*interfaces.GeneratedWord, error) {
	return g.collect(g, count, interfaces.ModeHybrid)
}

func (g *HybridGenerator) generateOne() (string, error) {
	draw := g.source.Float64()
	cumulative := 0.0
	sub := g.subs[len(g.subs)-1].gen
	for _, ws := range g.subs {
		cumulative += ws.weight
		if draw < cumulative {
			sub = ws.gen
			break
		}
	}
	return sub.generateOne()
}

// Name returns the name of this generator.
func (g *HybridGenerator) Name() string {
	return "HybridGenerator"
}

// Description returns a description of this generator.
func (g *HybridGenerator) Description() string {
	return "Mixes several strategies by normalized weight for balanced output"
}
