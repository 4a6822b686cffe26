/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyzer_test.go
Description: Tests for the corpus analyzer. Covers line cleanup, length filtering,
histogram accounting, duplicate handling, co-occurrence recording, and the empty
corpus failure mode.
*/

package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

func TestAnalyzeBasicCounts(t *testing.T) {
	analyzer := NewAnalyzer(0, 0)
	result, err := analyzer.Analyze([]string{"abc", "abd", "xy", "abc"})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalWords)
	assert.Equal(t, 3, result.UniqueWords)
	assert.Equal(t, 2, result.MinLength)
	assert.Equal(t, 3, result.MaxLength)
	assert.Equal(t, map[int]int{2: 1, 3: 3}, result.LengthHistogram)

	// Duplicates count at full frequency.
	assert.Equal(t, 3, result.Charset['a'])
	assert.Equal(t, 3, result.Charset['b'])
	assert.Equal(t, 2, result.Charset['c'])

	// Histogram sums to the total.
	sum := 0
	for _, c := range result.LengthHistogram {
		sum += c
	}
	assert.Equal(t, result.TotalWords, sum)
}

func TestAnalyzeLineCleanup(t *testing.T) {
	analyzer := NewAnalyzer(0, 0)
	result, err := analyzer.Analyze([]string{"abc\r\n", "def\n", "", "   "})
	require.NoError(t, err)

	// CRLF is stripped, blank lines discarded, interior whitespace kept.
	assert.True(t, result.HasWord("abc"))
	assert.True(t, result.HasWord("def"))
	assert.True(t, result.HasWord("   "))
	assert.Equal(t, 3, result.TotalWords)
}

func TestAnalyzeLengthFilter(t *testing.T) {
	analyzer := NewAnalyzer(3, 4)
	result, err := analyzer.Analyze([]string{"ab", "abc", "abcd", "abcde"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalWords)
	assert.False(t, result.HasWord("ab"))
	assert.False(t, result.HasWord("abcde"))
	assert.Equal(t, 3, result.MinLength)
	assert.Equal(t, 4, result.MaxLength)
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	analyzer := NewAnalyzer(5, 0)
	_, err := analyzer.Analyze([]string{"ab", "", "abc"})
	require.Error(t, err)

	var empty *models.EmptyCorpusError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, 3, empty.Discarded)
}

func TestAnalyzeCooccurrence(t *testing.T) {
	analyzer := NewAnalyzer(0, 0)
	result, err := analyzer.Analyze([]string{"abc", "abd"})
	require.NoError(t, err)

	next, ok := result.Cooccurrence.Next(0, 'a')
	require.True(t, ok)
	assert.Equal(t, map[rune]int{'b': 2}, next)

	next, ok = result.Cooccurrence.Next(1, 'b')
	require.True(t, ok)
	assert.Equal(t, map[rune]int{'c': 1, 'd': 1}, next)

	// No transition is recorded out of the final position.
	_, ok = result.Cooccurrence.Next(2, 'c')
	assert.False(t, ok)
}

func TestAnalyzeTypeSkeletons(t *testing.T) {
	analyzer := NewAnalyzer(0, 0)
	result, err := analyzer.Analyze([]string{"Ab1", "Cd2", "zz!"})
	require.NoError(t, err)

	ls := result.Lengths[3]
	require.NotNil(t, ls)
	assert.Equal(t, 2, ls.Patterns["Uln"])
	assert.Equal(t, 1, ls.Patterns["ll@"])

	assert.Equal(t, 2, result.TypeFrequency[models.Upper])
	assert.Equal(t, 2, result.TypeFrequency[models.Digit])
	assert.Equal(t, 1, result.TypeFrequency[models.Symbol])
}

func TestAnalyzeDeterministic(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma", "alpha"}
	a, err := NewAnalyzer(0, 0).Analyze(lines)
	require.NoError(t, err)
	b, err := NewAnalyzer(0, 0).Analyze(lines)
	require.NoError(t, err)

	assert.Equal(t, a.TotalWords, b.TotalWords)
	assert.Equal(t, a.LengthHistogram, b.LengthHistogram)
	assert.Equal(t, a.Charset, b.Charset)
	assert.Equal(t, a.TrainingWords(), b.TrainingWords())
}
