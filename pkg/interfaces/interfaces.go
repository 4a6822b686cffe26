/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for Akaylee WordGen. Defines the core contracts
used across all packages to break import cycles and enable proper modular design:
generation modes, generator and mutator interfaces, and the GeneratedWord type.
*/

package interfaces

import (
	"time"
)

// Mode identifies one of the closed set of generation strategies.
type Mode string

const (
	ModeRandom  Mode = "random"
	ModeSmart   Mode = "smart"
	ModePattern Mode = "pattern"
	ModeRegex   Mode = "regex"
	ModeMarkov  Mode = "markov"
	ModeHybrid  Mode = "hybrid"
)

// Valid reports whether the mode names a known strategy.
func (m Mode) Valid() bool {
	switch m {
	case ModeRandom, ModeSmart, ModePattern, ModeRegex, ModeMarkov, ModeHybrid:
		return true
	}
	return false
}

// GeneratedWord is a single synthesized string plus its provenance.
// Ephemeral: owned by the caller that requested generation.
type GeneratedWord struct {
	ID        string
	Word      string
	Mode      Mode
	Weight    float64
	HasWeight bool
	CreatedAt time.Time
	Metadata  map[string]interface{}
}

// Generator produces synthesized strings from a trained model or a
// user-supplied expression. Implementations hold their own seeded random
// source and never mutate the model they consume.
type Generator interface {
	// Generate synthesizes count words. Implementations document which
	// typed errors from pkg/models they can return.
	Generate(count int) ([]*GeneratedWord, error)

	// Name returns the name of this generator.
	Name() string

	// Description returns a description of this generator.
	Description() string
}

// WeightScorer scores an arbitrary string for relative likelihood under
// a trained model.
type WeightScorer interface {
	CalculateWeight(word string) float64
}

// WordMutator applies a rule-based transformation to a generated word.
type WordMutator interface {
	// Mutate returns the transformed word.
	Mutate(word string) (string, error)

	// Name returns the name of this mutator.
	Name() string

	// Description returns a description of this mutator.
	Description() string

	// Init performs stateful setup.
	Init() error
}

// GeneratorConfig carries the configuration surface consumed by the
// engine. Values only; flag parsing lives in the CLI collaborator.
type GeneratorConfig struct {
	Mode            Mode
	Count           int
	Length          int // 0 = sample from the length histogram
	MinLength       int // analysis filter, 0 = unbounded
	MaxLength       int // analysis filter, 0 = unbounded
	TypePattern     string
	Expression      string
	Seed            int64
	Seeded          bool // absence of a seed means non-deterministic seeding
	AllowDuplicates bool
	MaxAttempts     int    // duplicate-avoidance retries per word, 0 = default
	MaxRepeat       int    // cap for unbounded regex quantifiers, 0 = default
	MarkovOrder     int    // n-gram order for the markov strategy, 0 = default
	HybridPreset    string // named mix for the hybrid strategy, "" = balanced
}
