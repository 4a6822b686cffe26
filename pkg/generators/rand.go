/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rand.go
Description: Seedable random source for Akaylee WordGen generators. Wraps math/rand
behind a small API so every generation call threads an explicit source instead of
touching global random state, keeping seeded runs reproducible.
*/

package generators

import (
	"math/rand"
	"time"

	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// Source is an explicitly seeded random source. One Source belongs to one
// generator; nothing in the engine uses a global generator.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a deterministic source from a seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSource creates a non-deterministic source seeded from the clock.
func NewTimeSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// Choice returns a uniformly drawn rune from a non-empty slice.
func (s *Source) Choice(runes []rune) (rune, bool) {
	if len(runes) == 0 {
		return 0, false
	}
	return runes[s.rng.Intn(len(runes))], true
}

// WeightedRune draws a rune by cumulative-frequency selection. The input
// must already be in deterministic order (models.SortRuneCounts); a
// uniform draw over the cumulative total selects the occupant interval.
func (s *Source) WeightedRune(counts []models.RuneCount) (rune, bool) {
	total := 0
	for _, rc := range counts {
		total += rc.Count
	}
	if total == 0 {
		if len(counts) == 0 {
			return 0, false
		}
		return counts[s.rng.Intn(len(counts))].Rune, true
	}
	draw := s.rng.Intn(total)
	cumulative := 0
	for _, rc := range counts {
		cumulative += rc.Count
		if draw < cumulative {
			return rc.Rune, true
		}
	}
	return counts[len(counts)-1].Rune, true
}
