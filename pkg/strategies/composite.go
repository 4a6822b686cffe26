/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: composite.go
Description: Composite mutator for Akaylee WordGen. Chains multiple word mutation
strategies into one pipeline, applied sequentially or in a seeded random order.
*/

package strategies

import (
	"github.com/kleascm/akaylee-wordgen/pkg/generators"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
)

// CompositeMutator composes multiple WordMutator instances for chained
// mutation. Supports both sequential and random chaining.
type CompositeMutator struct {
	mutators    []interfaces.WordMutator
	chainLength int
	randomOrder bool
	source      *generators.Source
}

// NewCompositeMutator creates a composite mutator.
// chainLength: number of mutators to apply per word (defaults to all when 0).
// randomOrder: shuffle the chain per word using the given source.
func NewCompositeMutator(mutators []interfaces.WordMutator, chainLength int, randomOrder bool, source *generators.Source) *CompositeMutator {
	if chainLength <= 0 || chainLength > len(mutators) {
		chainLength = len(mutators)
	}
	return &CompositeMutator{
		mutators:    mutators,
		chainLength: chainLength,
		randomOrder: randomOrder,
		source:      source,
	}
}

// Mutate applies the chain to one word.
func (c *CompositeMutator) Mutate(word string) (string, error) {
	if len(c.mutators) == 0 {
		return word, nil
	}

	order := make([]int, len(c.mutators))
	for i := range order {
		order[i] = i
	}
	if c.randomOrder {
		c.source.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	mutated := word
	for i := 0; i < c.chainLength; i++ {
		var err error
		mutated, err = c.mutators[order[i]].Mutate(mutated)
		if err != nil {
			return "", err
		}
	}
	return mutated, nil
}

// Name returns the name of this mutator.
func (c *CompositeMutator) Name() string {
	return "CompositeMutator"
}

// Description returns a description of this mutator.
func (c *CompositeMutator) Description() string {
	return "Chains multiple word mutators sequentially or in seeded random order"
}

// Init initializes every mutator in the chain.
func (c *CompositeMutator) Init() error {
	for _, m := range c.mutators {
		if err := m.Init(); err != nil {
			return err
		}
	}
	return nil
}
