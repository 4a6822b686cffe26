/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generators_test.go
Description: Tests for the generation strategies. Covers seeded determinism,
per-position conformance, duplicate avoidance, the typed error taxonomy, and the
strategy factory.
*/

package generators

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-wordgen/pkg/analysis"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

func testModel(t *testing.T, lines ...string) *models.AnalysisResult {
	t.Helper()
	if len(lines) == 0 {
		lines = []string{
			"Pass1!", "Word2@", "Cats3#", "Dogs4!", "Fish5@",
			"abc", "abd", "xyz", "qrs", "tuv",
		}
	}
	result, err := analysis.NewAnalyzer(0, 0).Analyze(lines)
	require.NoError(t, err)
	return result
}

func seededConfig(mode interfaces.Mode, seed int64) interfaces.GeneratorConfig {
	return interfaces.GeneratorConfig{Mode: mode, Seed: seed, Seeded: true}
}

func wordsOf(generated []*interfaces.GeneratedWord) []string {
	out := make([]string, len(generated))
	for i, w := range generated {
		out[i] = w.Word
	}
	return out
}

func TestRandomGeneratorConformance(t *testing.T) {
	model := testModel(t)
	g := NewRandomGenerator(model, seededConfig(interfaces.ModeRandom, 42))

	words, err := g.Generate(20)
	require.NoError(t, err)
	require.Len(t, words, 20)

	for _, w := range words {
		runes := []rune(w.Word)
		ls, ok := model.Lengths[len(runes)]
		require.True(t, ok, "length %d not in trained histogram", len(runes))
		for i, r := range runes {
			assert.Contains(t, ls.Positions[i].CharCounts, r,
				"rune %q never observed at position %d for length %d", r, i, len(runes))
		}
		assert.Equal(t, interfaces.ModeRandom, w.Mode)
		assert.NotEmpty(t, w.ID)
	}
}

func TestRandomGeneratorDeterministic(t *testing.T) {
	model := testModel(t)
	a, err := NewRandomGenerator(model, seededConfig(interfaces.ModeRandom, 7)).Generate(10)
	require.NoError(t, err)
	b, err := NewRandomGenerator(model, seededConfig(interfaces.ModeRandom, 7)).Generate(10)
	require.NoError(t, err)
	assert.Equal(t, wordsOf(a), wordsOf(b))
}

func TestRandomGeneratorNoDuplicates(t *testing.T) {
	model := testModel(t)
	words, err := NewRandomGenerator(model, seededConfig(interfaces.ModeRandom, 3)).Generate(15)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for _, w := range words {
		assert.False(t, model.HasWord(w.Word), "training word %q leaked into output", w.Word)
		_, dup := seen[w.Word]
		assert.False(t, dup, "duplicate %q within batch", w.Word)
		seen[w.Word] = struct{}{}
	}
}

func TestRandomGeneratorExhaustion(t *testing.T) {
	// A single training word leaves no novel string to produce.
	model := testModel(t, "ab")
	_, err := NewRandomGenerator(model, seededConfig(interfaces.ModeRandom, 1)).Generate(1)
	require.Error(t, err)

	var exhausted *models.GenerationExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, 1, exhausted.Requested)
	assert.Equal(t, 0, exhausted.Generated)
	assert.Equal(t, DefaultMaxAttempts, exhausted.Attempts)
}

func TestRandomGeneratorUnsupportedLength(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModeRandom, 1)
	config.Length = 99
	_, err := NewRandomGenerator(model, config).Generate(1)
	require.Error(t, err)

	var unsupported *models.UnsupportedLengthError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, 99, unsupported.Length)
}

func TestRandomGeneratorFixedLength(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModeRandom, 5)
	config.Length = 3
	words, err := NewRandomGenerator(model, config).Generate(8)
	require.NoError(t, err)
	for _, w := range words {
		assert.Len(t, []rune(w.Word), 3)
	}
}

func TestSmartGeneratorWeights(t *testing.T) {
	model := testModel(t)
	words, err := NewSmartGenerator(model, seededConfig(interfaces.ModeSmart, 11)).Generate(10)
	require.NoError(t, err)

	for _, w := range words {
		assert.True(t, w.HasWeight)
		assert.Greater(t, w.Weight, 0.0)
		assert.Equal(t, interfaces.ModeSmart, w.Mode)
	}
}

func TestSmartGeneratorWeightMonotonicity(t *testing.T) {
	// Position 0: c=3/5, a=2/5. Position 1: b=3/5, a=1/5, c=1/5. The
	// per-position argmax "cb" must be the highest weighted string even
	// though the corpus never continues 'c' with 'b'.
	model := testModel(t, "ca", "cb", "cc", "ab", "ab")
	g := NewSmartGenerator(model, seededConfig(interfaces.ModeSmart, 5))

	top := g.CalculateWeight("cb")
	assert.Greater(t, top, g.CalculateWeight("ab"))
	for _, first := range []string{"a", "b", "c"} {
		for _, second := range []string{"a", "b", "c"} {
			assert.GreaterOrEqual(t, top, g.CalculateWeight(first+second))
		}
	}
}

func TestSmartGeneratorDeterministic(t *testing.T) {
	model := testModel(t)
	a, err := NewSmartGenerator(model, seededConfig(interfaces.ModeSmart, 23)).Generate(10)
	require.NoError(t, err)
	b, err := NewSmartGenerator(model, seededConfig(interfaces.ModeSmart, 23)).Generate(10)
	require.NoError(t, err)
	assert.Equal(t, wordsOf(a), wordsOf(b))
}

func TestPatternGeneratorExplicit(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModePattern, 9)
	config.TypePattern = "Ulln"
	config.AllowDuplicates = true

	g, err := NewPatternGenerator(model, config)
	require.NoError(t, err)
	words, err := g.Generate(10)
	require.NoError(t, err)

	for _, w := range words {
		assert.Equal(t, "Ulln", models.Skeleton([]rune(w.Word)))
	}
}

func TestPatternGeneratorInvalidPattern(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModePattern, 1)
	config.TypePattern = "Ulx"

	_, err := NewPatternGenerator(model, config)
	require.Error(t, err)

	var invalid *models.InvalidPatternError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Ulx", invalid.Pattern)
}

func TestPatternGeneratorUnsatisfiable(t *testing.T) {
	// Corpus has no symbols anywhere, so @ cannot be filled.
	model := testModel(t, "abc", "def")
	config := seededConfig(interfaces.ModePattern, 1)
	config.TypePattern = "ll@"

	g, err := NewPatternGenerator(model, config)
	require.NoError(t, err)
	_, err = g.Generate(1)
	require.Error(t, err)

	var unsat *models.UnsatisfiablePatternError
	require.True(t, errors.As(err, &unsat))
	assert.Equal(t, 2, unsat.Position)
	assert.Equal(t, models.Symbol, unsat.Type)
}

func TestPatternGeneratorSampledSkeletons(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModePattern, 17)
	config.AllowDuplicates = true

	g, err := NewPatternGenerator(model, config)
	require.NoError(t, err)
	words, err := g.Generate(20)
	require.NoError(t, err)

	for _, w := range words {
		runes := []rune(w.Word)
		ls := model.Lengths[len(runes)]
		require.NotNil(t, ls)
		assert.Contains(t, ls.Patterns, models.Skeleton(runes),
			"skeleton of %q never observed at length %d", w.Word, len(runes))
	}
}

func TestRegexGeneratorMatches(t *testing.T) {
	config := seededConfig(interfaces.ModeRegex, 42)
	g, err := NewRegexGenerator(`[a-c]{2}[0-9]`, config)
	require.NoError(t, err)

	words, err := g.Generate(25)
	require.NoError(t, err)
	require.Len(t, words, 25)

	matcher := regexp.MustCompile(`^[a-c]{2}[0-9]$`)
	for _, w := range words {
		assert.True(t, matcher.MatchString(w.Word), "output %q does not match", w.Word)
	}
}

func TestRegexGeneratorDeterministic(t *testing.T) {
	config := seededConfig(interfaces.ModeRegex, 99)
	a, err := NewRegexGenerator(`(foo|bar)-\d{2,4}`, config)
	require.NoError(t, err)
	b, err := NewRegexGenerator(`(foo|bar)-\d{2,4}`, config)
	require.NoError(t, err)

	wa, err := a.Generate(10)
	require.NoError(t, err)
	wb, err := b.Generate(10)
	require.NoError(t, err)
	assert.Equal(t, wordsOf(wa), wordsOf(wb))
}

func TestRegexGeneratorMaxRepeat(t *testing.T) {
	config := seededConfig(interfaces.ModeRegex, 5)
	config.MaxRepeat = 3
	g, err := NewRegexGenerator(`a+`, config)
	require.NoError(t, err)

	words, err := g.Generate(20)
	require.NoError(t, err)
	for _, w := range words {
		assert.GreaterOrEqual(t, len(w.Word), 1)
		assert.LessOrEqual(t, len(w.Word), 3)
	}
}

func TestRegexGeneratorUnsupportedConstructs(t *testing.T) {
	config := seededConfig(interfaces.ModeRegex, 1)

	for _, expr := range []string{`(?=a)b`, `(?!a)b`, `(?<=a)b`, `(?<!a)b`, `(a)\1`} {
		_, err := NewRegexGenerator(expr, config)
		require.Error(t, err, "expression %q should be rejected", expr)
		var unsupported *models.UnsupportedRegexError
		assert.True(t, errors.As(err, &unsupported))
	}

	// Named capture groups are plain groups, not look-behind.
	g, err := NewRegexGenerator(`(?<word>[a-c]{2})[0-9]`, config)
	require.NoError(t, err)
	named, err := g.Generate(5)
	require.NoError(t, err)
	pattern := regexp.MustCompile(`^[a-c]{2}[0-9]$`)
	for _, w := range named {
		assert.Regexp(t, pattern, w.Word)
	}

	// Word boundaries parse but cannot be generated.
	g, err = NewRegexGenerator(`\bfoo`, config)
	require.NoError(t, err)
	_, err = g.Generate(1)
	require.Error(t, err)
	var unsupported *models.UnsupportedRegexError
	require.True(t, errors.As(err, &unsupported))
	assert.Contains(t, unsupported.Construct, "word boundary")
}

func TestMarkovGeneratorFollowsTransitions(t *testing.T) {
	model := testModel(t, "abcde", "abcdf")
	config := seededConfig(interfaces.ModeMarkov, 13)
	config.AllowDuplicates = true

	words, err := NewMarkovGenerator(model, config).Generate(20)
	require.NoError(t, err)

	// Order-2 transitions over this corpus only ever reproduce its words.
	for _, w := range words {
		assert.Contains(t, []string{"abcde", "abcdf"}, w.Word)
	}
}

func TestMarkovGeneratorDeterministic(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModeMarkov, 31)
	config.AllowDuplicates = true

	a, err := NewMarkovGenerator(model, config).Generate(10)
	require.NoError(t, err)
	b, err := NewMarkovGenerator(model, config).Generate(10)
	require.NoError(t, err)
	assert.Equal(t, wordsOf(a), wordsOf(b))
}

func TestMarkovGeneratorFixedLength(t *testing.T) {
	model := testModel(t, "abcde", "abcdf", "vwxyz")
	config := seededConfig(interfaces.ModeMarkov, 2)
	config.AllowDuplicates = true
	config.Length = 5

	words, err := NewMarkovGenerator(model, config).Generate(5)
	require.NoError(t, err)
	for _, w := range words {
		assert.Len(t, []rune(w.Word), 5)
	}
}

func TestHybridGeneratorMixes(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModeHybrid, 77)
	config.AllowDuplicates = true

	g, err := NewHybridGenerator(model, config, BalancedMix)
	require.NoError(t, err)
	words, err := g.Generate(15)
	require.NoError(t, err)
	require.Len(t, words, 15)
	for _, w := range words {
		assert.Equal(t, interfaces.ModeHybrid, w.Mode)
	}
}

func TestHybridGeneratorDeterministic(t *testing.T) {
	model := testModel(t)
	config := seededConfig(interfaces.ModeHybrid, 55)
	config.AllowDuplicates = true

	a, err := NewHybridGenerator(model, config, StrictMix)
	require.NoError(t, err)
	b, err := NewHybridGenerator(model, config, StrictMix)
	require.NoError(t, err)

	wa, err := a.Generate(10)
	require.NoError(t, err)
	wb, err := b.Generate(10)
	require.NoError(t, err)
	assert.Equal(t, wordsOf(wa), wordsOf(wb))
}

func TestMixPreset(t *testing.T) {
	mix, err := MixPreset("")
	require.NoError(t, err)
	assert.Equal(t, BalancedMix, mix)

	mix, err = MixPreset("strict")
	require.NoError(t, err)
	assert.Equal(t, StrictMix, mix)

	_, err = MixPreset("nope")
	assert.Error(t, err)
}

func TestFactory(t *testing.T) {
	model := testModel(t)

	for _, mode := range []interfaces.Mode{
		interfaces.ModeRandom, interfaces.ModeSmart, interfaces.ModePattern,
		interfaces.ModeMarkov, interfaces.ModeHybrid,
	} {
		g, err := New(model, seededConfig(mode, 1))
		require.NoError(t, err, "mode %q", mode)
		assert.NotEmpty(t, g.Name())

		_, err = New(nil, seededConfig(mode, 1))
		assert.Error(t, err, "mode %q should require a model", mode)
	}

	config := seededConfig(interfaces.ModeRegex, 1)
	config.Expression = `[a-z]{3}`
	g, err := New(nil, config)
	require.NoError(t, err)
	assert.Equal(t, "RegexGenerator", g.Name())

	_, err = New(model, seededConfig(interfaces.Mode("bogus"), 1))
	assert.Error(t, err)
}

func TestSourceWeightedRune(t *testing.T) {
	source := NewSource(1)
	counts := []models.RuneCount{{Rune: 'a', Count: 3}, {Rune: 'b', Count: 1}}

	seen := make(map[rune]int)
	for i := 0; i < 200; i++ {
		r, ok := source.WeightedRune(counts)
		require.True(t, ok)
		seen[r]++
	}
	assert.Greater(t, seen['a'], seen['b'])
	assert.Zero(t, seen['c'])

	_, ok := source.WeightedRune(nil)
	assert.False(t, ok)
}
