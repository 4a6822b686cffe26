/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mutators_test.go
Description: Tests for the word mutation strategies. Covers every rule, name
resolution, and composite chaining in sequential and seeded random order.
*/

package strategies

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-wordgen/pkg/generators"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
)

func mustMutate(t *testing.T, m interfaces.WordMutator, word string) string {
	t.Helper()
	out, err := m.Mutate(word)
	require.NoError(t, err)
	return out
}

func TestCaseMutator(t *testing.T) {
	assert.Equal(t, "hello", mustMutate(t, NewCaseMutator(CaseLower), "HeLLo"))
	assert.Equal(t, "HELLO", mustMutate(t, NewCaseMutator(CaseUpper), "HeLLo"))
	assert.Equal(t, "Hello", mustMutate(t, NewCaseMutator(CaseCapitalize), "hELLO"))
	assert.Equal(t, "hEllO1!", mustMutate(t, NewCaseMutator(CaseSwap), "HeLLo1!"))
	assert.Equal(t, "", mustMutate(t, NewCaseMutator(CaseCapitalize), ""))
}

func TestReverseMutator(t *testing.T) {
	assert.Equal(t, "dcba", mustMutate(t, NewReverseMutator(), "abcd"))
	assert.Equal(t, "a", mustMutate(t, NewReverseMutator(), "a"))
	assert.Equal(t, "", mustMutate(t, NewReverseMutator(), ""))
	// Rune-safe, not byte-safe.
	assert.Equal(t, "cbé", mustMutate(t, NewReverseMutator(), "ébc"))
}

func TestRotateMutator(t *testing.T) {
	assert.Equal(t, "bcda", mustMutate(t, NewRotateMutator(true), "abcd"))
	assert.Equal(t, "dabc", mustMutate(t, NewRotateMutator(false), "abcd"))
	assert.Equal(t, "a", mustMutate(t, NewRotateMutator(true), "a"))
}

func TestDuplicateMutator(t *testing.T) {
	assert.Equal(t, "abab", mustMutate(t, NewDuplicateMutator(DuplicateWord), "ab"))
	assert.Equal(t, "aab", mustMutate(t, NewDuplicateMutator(DuplicateFirst), "ab"))
	assert.Equal(t, "abb", mustMutate(t, NewDuplicateMutator(DuplicateLast), "ab"))
	assert.Equal(t, "", mustMutate(t, NewDuplicateMutator(DuplicateWord), ""))
}

func TestLeetMutator(t *testing.T) {
	assert.Equal(t, "p455w0rd", mustMutate(t, NewLeetMutator(), "password"))
	assert.Equal(t, "L337", mustMutate(t, NewLeetMutator(), "Leet"))
	assert.Equal(t, "xyz", mustMutate(t, NewLeetMutator(), "xyz"))
}

func TestAffixDigitsMutator(t *testing.T) {
	digits := regexp.MustCompile(`^[0-9]{3}$`)

	appendM := NewAffixDigitsMutator(generators.NewSource(1), 3, false)
	out := mustMutate(t, appendM, "word")
	require.True(t, strings.HasPrefix(out, "word"))
	assert.True(t, digits.MatchString(strings.TrimPrefix(out, "word")))

	prependM := NewAffixDigitsMutator(generators.NewSource(1), 3, true)
	out = mustMutate(t, prependM, "word")
	require.True(t, strings.HasSuffix(out, "word"))
	assert.True(t, digits.MatchString(strings.TrimSuffix(out, "word")))

	// Same seed draws the same digits.
	a := mustMutate(t, NewAffixDigitsMutator(generators.NewSource(9), 4, false), "x")
	b := mustMutate(t, NewAffixDigitsMutator(generators.NewSource(9), 4, false), "x")
	assert.Equal(t, a, b)
}

func TestMutatorByName(t *testing.T) {
	source := generators.NewSource(0)
	names := []string{
		"lowercase", "uppercase", "capitalize", "swapcase",
		"reverse", "rotate-left", "rotate-right",
		"duplicate", "duplicate-first", "duplicate-last",
		"leet", "append-digits", "prepend-digits",
	}
	for _, name := range names {
		m, ok := MutatorByName(name, source)
		require.True(t, ok, "rule %q not resolved", name)
		assert.NotEmpty(t, m.Name())
		assert.NotEmpty(t, m.Description())
		require.NoError(t, m.Init())
	}

	_, ok := MutatorByName("nonsense", source)
	assert.False(t, ok)
}

func TestCompositeMutatorSequential(t *testing.T) {
	chain := []interfaces.WordMutator{
		NewCaseMutator(CaseCapitalize),
		NewLeetMutator(),
	}
	c := NewCompositeMutator(chain, 0, false, generators.NewSource(1))
	require.NoError(t, c.Init())

	// Capitalize first, then leet: the capital P survives substitution.
	assert.Equal(t, "P455w0rd", mustMutate(t, c, "pASSWORD"))
}

func TestCompositeMutatorChainLength(t *testing.T) {
	chain := []interfaces.WordMutator{
		NewReverseMutator(),
		NewDuplicateMutator(DuplicateWord),
	}
	c := NewCompositeMutator(chain, 1, false, generators.NewSource(1))
	assert.Equal(t, "cba", mustMutate(t, c, "abc"))
}

func TestCompositeMutatorRandomOrderDeterministic(t *testing.T) {
	build := func(seed int64) *CompositeMutator {
		source := generators.NewSource(seed)
		return NewCompositeMutator([]interfaces.WordMutator{
			NewReverseMutator(),
			NewDuplicateMutator(DuplicateFirst),
			NewCaseMutator(CaseUpper),
		}, 0, true, source)
	}

	a := build(42)
	b := build(42)
	for i := 0; i < 5; i++ {
		wa := mustMutate(t, a, "abc")
		wb := mustMutate(t, b, "abc")
		assert.Equal(t, wa, wb)
	}
}

func TestCompositeMutatorEmptyChain(t *testing.T) {
	c := NewCompositeMutator(nil, 0, false, generators.NewSource(1))
	assert.Equal(t, "abc", mustMutate(t, c, "abc"))
}
