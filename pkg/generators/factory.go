/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: factory.go
Description: Generator factory for Akaylee WordGen. Resolves a generation mode and
configuration into a constructed strategy, shared by the CLI and the TUI.
*/

package generators

import (
	"fmt"

	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// New constructs the generator for config.Mode. The regex mode needs no
// trained model; every other mode requires one.
func New(model *models.AnalysisResult, config interfaces.GeneratorConfig) (interfaces.Generator, error) {
	if config.Mode == interfaces.ModeRegex {
		return NewRegexGenerator(config.Expression, config)
	}
	if model == nil {
		return nil, fmt.Errorf("mode %q requires a trained model", config.Mode)
	}
	switch config.Mode {
	case interfaces.ModeRandom:
		return NewRandomGenerator(model, config), nil
	case interfaces.ModeSmart:
		return NewSmartGenerator(model, config), nil
	case interfaces.ModePattern:
		return NewPatternGenerator(model, config)
	case interfaces.ModeMarkov:
		return NewMarkovGenerator(model, config), nil
	case interfaces.ModeHybrid:
		mix, err := MixPreset(config.HybridPreset)
		if err != nil {
			return nil, err
		}
		return NewHybridGenerator(model, config, mix)
	}
	return nil, fmt.Errorf("unknown generation mode %q", config.Mode)
}
