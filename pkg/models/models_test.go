/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: models_test.go
Description: Tests for the core statistical model types. Covers character type
classification, skeleton rendering, deterministic rune ordering, and the position,
length, and co-occurrence accumulators.
*/

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharTypeOf(t *testing.T) {
	assert.Equal(t, Upper, CharTypeOf('A'))
	assert.Equal(t, Upper, CharTypeOf('Z'))
	assert.Equal(t, Lower, CharTypeOf('a'))
	assert.Equal(t, Lower, CharTypeOf('z'))
	assert.Equal(t, Digit, CharTypeOf('0'))
	assert.Equal(t, Digit, CharTypeOf('9'))
	assert.Equal(t, Symbol, CharTypeOf('!'))
	assert.Equal(t, Symbol, CharTypeOf(' '))
	// Multibyte code points classify as symbols.
	assert.Equal(t, Symbol, CharTypeOf('é'))
	assert.Equal(t, Symbol, CharTypeOf('語'))
}

func TestCharTypeCodeRoundTrip(t *testing.T) {
	for _, ct := range AllCharTypes {
		got, ok := CharTypeFromCode(ct.Code())
		require.True(t, ok)
		assert.Equal(t, ct, got)
	}

	_, ok := CharTypeFromCode('x')
	assert.False(t, ok)
}

func TestSkeleton(t *testing.T) {
	assert.Equal(t, "Ullnn@", Skeleton([]rune("Pas12!")))
	assert.Equal(t, "", Skeleton(nil))
	assert.Equal(t, "@@", Skeleton([]rune("é!")))
}

func TestSortRuneCountsDeterministic(t *testing.T) {
	counts := []RuneCount{
		{Rune: 'c', Count: 2},
		{Rune: 'a', Count: 5},
		{Rune: 'b', Count: 2},
		{Rune: 'd', Count: 7},
	}
	SortRuneCounts(counts)

	// Count descending, code point ascending on ties.
	assert.Equal(t, []RuneCount{
		{Rune: 'd', Count: 7},
		{Rune: 'a', Count: 5},
		{Rune: 'b', Count: 2},
		{Rune: 'c', Count: 2},
	}, counts)
}

func TestPositionStats(t *testing.T) {
	ps := NewPositionStats(0, 3)
	ps.AddRune('a')
	ps.AddRune('a')
	ps.AddRune('B')

	assert.Equal(t, 3, ps.Total())
	assert.Equal(t, []rune{'B', 'a'}, ps.Chars())
	assert.Equal(t, []rune{'a'}, ps.CharsOfType(Lower))
	assert.Equal(t, []rune{'B'}, ps.CharsOfType(Upper))
	assert.Empty(t, ps.CharsOfType(Digit))

	assert.InDelta(t, 2.0/3.0, ps.Probability('a'), 1e-12)
	assert.Zero(t, ps.Probability('z'))

	weighted := ps.WeightedChars()
	require.Len(t, weighted, 2)
	assert.Equal(t, RuneCount{Rune: 'a', Count: 2}, weighted[0])
}

func TestLengthStats(t *testing.T) {
	ls := NewLengthStats(3)
	require.NoError(t, ls.AddWord([]rune("Ab1")))
	require.NoError(t, ls.AddWord([]rune("Cd2")))
	require.NoError(t, ls.AddWord([]rune("ef!")))

	assert.Equal(t, 3, ls.Count)
	assert.Equal(t, 2, ls.Patterns["Uln"])
	assert.Equal(t, 1, ls.Patterns["ll@"])

	assert.Error(t, ls.AddWord([]rune("toolong")))

	patterns := ls.WeightedPatterns()
	require.Len(t, patterns, 2)
	assert.Equal(t, "Uln", patterns[0].Pattern)

	assert.ElementsMatch(t, []rune{'A', 'C'}, ls.CharsOfType(0, Upper))
	assert.ElementsMatch(t, []rune{'1', '2'}, ls.CharsOfType(2, Digit))
}

func TestCooccurrenceStats(t *testing.T) {
	cs := NewCooccurrenceStats()
	cs.Add(0, 'a', 'b')
	cs.Add(0, 'a', 'b')
	cs.Add(0, 'a', 'c')
	cs.Add(1, 'a', 'd')

	next, ok := cs.Next(0, 'a')
	require.True(t, ok)
	assert.Equal(t, map[rune]int{'b': 2, 'c': 1}, next)

	// Same character at a different position is a distinct context.
	next, ok = cs.Next(1, 'a')
	require.True(t, ok)
	assert.Equal(t, map[rune]int{'d': 1}, next)

	_, ok = cs.Next(2, 'a')
	assert.False(t, ok)
	assert.Equal(t, 2, cs.Size())
}
