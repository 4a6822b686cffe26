/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: weight_test.go
Description: Tests for the weight calculator. Covers positional scoring,
co-occurrence conditioning, the unseen character floor, and unsupported lengths.
*/

package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedModel(t *testing.T, lines ...string) *WeightCalculator {
	t.Helper()
	result, err := NewAnalyzer(0, 0).Analyze(lines)
	require.NoError(t, err)
	return NewWeightCalculator(result, WeightOptions{})
}

func TestCalculateWeightPositional(t *testing.T) {
	// Position 0: a=3/4, b=1/4. Position 1: b=2/4, c=1/4, d=1/4.
	result, err := NewAnalyzer(0, 0).Analyze([]string{"ab", "ab", "ac", "bd"})
	require.NoError(t, err)
	calc := NewWeightCalculator(result, WeightOptions{})

	assert.InDelta(t, 0.75*0.5, calc.CalculateWeight("ab"), 1e-12)
	assert.InDelta(t, 0.25*0.25, calc.CalculateWeight("bd"), 1e-12)

	// Frequent words outrank rare ones.
	assert.Greater(t, calc.CalculateWeight("ab"), calc.CalculateWeight("ac"))
	assert.Greater(t, calc.CalculateWeight("ac"), calc.CalculateWeight("bd")*0.999)
}

func TestCalculateWeightUnseenCharFloor(t *testing.T) {
	calc := trainedModel(t, "ab", "ab")

	// 'z' was never observed at position 1.
	got := calc.CalculateWeight("az")
	assert.InDelta(t, 1.0*DefaultMinWeight, got, 1e-21)
}

func TestCalculateWeightUnsupportedLength(t *testing.T) {
	calc := trainedModel(t, "abc", "abd")

	got := calc.CalculateWeight("ab")
	assert.InDelta(t, math.Pow(DefaultMinWeight, 2), got, 1e-24)

	assert.Equal(t, 1.0, calc.CalculateWeight(""))
}

func TestCalculateWeightMonotonicity(t *testing.T) {
	// Position 0: c=3/5, a=2/5. Position 1: b=3/5, a=1/5, c=1/5.
	result, err := NewAnalyzer(0, 0).Analyze([]string{"ca", "cb", "cc", "ab", "ab"})
	require.NoError(t, err)
	calc := NewWeightCalculator(result, WeightOptions{})

	// "cb" takes the most frequent character at every position, so no
	// other two-character string may outrank it.
	top := calc.CalculateWeight("cb")
	assert.InDelta(t, 0.6*0.6, top, 1e-12)
	for _, first := range []string{"a", "b", "c"} {
		for _, second := range []string{"a", "b", "c"} {
			word := first + second
			assert.GreaterOrEqual(t, top, calc.CalculateWeight(word),
				"%q outranks the per-position argmax", word)
		}
	}
}

func TestCalculateWeightCooccurrence(t *testing.T) {
	// After 'a' at position 0 the corpus always continues with 'b'.
	result, err := NewAnalyzer(0, 0).Analyze([]string{"ab", "ab", "cb"})
	require.NoError(t, err)
	calc := NewWeightCalculator(result, WeightOptions{UseCooccurrence: true})

	// P(a at 0) * P(b | a at 0) = 2/3 * 1.
	assert.InDelta(t, 2.0/3.0, calc.CalculateWeight("ab"), 1e-12)

	// 'c' after 'a' was never observed, so the transition floors.
	assert.InDelta(t, (2.0/3.0)*DefaultMinWeight, calc.CalculateWeight("ac"), 1e-18)
}

func TestCalculateWeightMinWeightOverride(t *testing.T) {
	result, err := NewAnalyzer(0, 0).Analyze([]string{"ab"})
	require.NoError(t, err)
	calc := NewWeightCalculator(result, WeightOptions{MinWeight: 0.5})

	assert.InDelta(t, 0.5, calc.CalculateWeight("zb"), 1e-12)
}
