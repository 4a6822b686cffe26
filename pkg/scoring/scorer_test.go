/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer_test.go
Description: Tests for strength scoring. Covers character classification, weak
pattern precedence, repeated and sequential run counting, entropy, rating bands,
and batch helpers.
*/

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEmpty(t *testing.T) {
	s := NewScorer().Score("")
	assert.Zero(t, s.Score)
	assert.Equal(t, "empty", s.CommonPattern)
	assert.Equal(t, "Very Weak", s.Rating())
	assert.Contains(t, s.Feedback, "Password is empty")
}

func TestScoreCharTypes(t *testing.T) {
	s := NewScorer().Score("Ab1!")
	assert.True(t, s.HasUpper)
	assert.True(t, s.HasLower)
	assert.True(t, s.HasDigit)
	assert.True(t, s.HasSymbol)
	assert.Equal(t, 4, s.CharTypes)
	assert.Equal(t, 4, s.Length)

	s = NewScorer().Score("abcd")
	assert.Equal(t, 1, s.CharTypes)
	assert.False(t, s.HasUpper)
}

func TestScoreWeakPatterns(t *testing.T) {
	sc := NewScorer()

	cases := map[string]string{
		"abcdef":     "lowercase only",
		"QRSTUV":     "uppercase only",
		"857204":     "digits only",
		"123main":    "starts with sequential digits",
		"MyPassword": "contains 'password'",
		"Qwerty!9":   "keyboard pattern",
		"Xyz!9000":   "alphabetic sequence",
		"hello42":    "simple word+numbers",
		"Hello42":    "capitalized word+numbers",
	}
	for input, want := range cases {
		assert.Equal(t, want, sc.Score(input).CommonPattern, "input %q", input)
	}

	// Single-class checks outrank the repeated-character check.
	assert.Equal(t, "lowercase only", sc.Score("aaaa").CommonPattern)
	assert.Equal(t, "repeated single character", sc.Score("!!!!").CommonPattern)

	assert.Empty(t, sc.Score("Tr0ub4dor&Zx").CommonPattern)
}

func TestScoreRepeatedAndSequential(t *testing.T) {
	sc := NewScorer()

	s := sc.Score("aabbb")
	assert.Equal(t, 3, s.RepeatedChars)

	// "abcd" contains the windows abc and bcd; "cba" counts via the
	// reversed sequence.
	assert.Equal(t, 2, sc.Score("Wabcd!").SequentialChars)
	assert.Equal(t, 1, sc.Score("Wcba!!").SequentialChars)
	assert.Zero(t, sc.Score("W!x9ym").SequentialChars)
}

func TestScoreEntropy(t *testing.T) {
	sc := NewScorer()

	// 4 lowercase runes over a 26-character set.
	assert.InDelta(t, 4*4.700439718141092, sc.Score("wxqj").Entropy, 1e-9)

	// All four types widen the effective charset to 94.
	s := sc.Score("Ab1!")
	assert.InDelta(t, 4*6.554588851677638, s.Entropy, 1e-9)
}

func TestScoreOrdering(t *testing.T) {
	sc := NewScorer()

	weak := sc.Score("abc").Score
	moderate := sc.Score("hello42").Score
	strong := sc.Score("K9#mQ2$vX7@wP4!z").Score

	assert.Less(t, weak, moderate)
	assert.Less(t, moderate, strong)
	assert.Equal(t, "Very Strong", sc.Score("K9#mQ2$vX7@wP4!z").Rating())
}

func TestScoreClamped(t *testing.T) {
	// Heavy penalties cannot push the score below zero.
	s := NewScorer().Score("aaa")
	assert.GreaterOrEqual(t, s.Score, 0.0)
	assert.LessOrEqual(t, s.Score, 100.0)
}

func TestRatingBands(t *testing.T) {
	for _, tc := range []struct {
		score float64
		want  string
	}{
		{85, "Very Strong"},
		{80, "Very Strong"},
		{60, "Strong"},
		{40, "Moderate"},
		{20, "Weak"},
		{19.9, "Very Weak"},
	} {
		s := &StrengthScore{Score: tc.score}
		assert.Equal(t, tc.want, s.Rating(), "score %v", tc.score)
	}
}

func TestScoreFeedback(t *testing.T) {
	sc := NewScorer()

	s := sc.Score("abc")
	assert.Contains(t, s.Feedback, "Use at least 8 characters")
	assert.Contains(t, s.Feedback, "Add uppercase letters")
	assert.Contains(t, s.Feedback, "Add numbers")

	s = sc.Score("K9#mQ2$vX7@wP4!z")
	assert.Equal(t, []string{"Good password strength!"}, s.Feedback)
}

func TestScoreManyAndAverage(t *testing.T) {
	sc := NewScorer()

	scores := sc.ScoreMany([]string{"abc", "K9#mQ2$vX7@wP4!z"})
	require.Len(t, scores, 2)
	assert.Less(t, scores[0].Score, scores[1].Score)

	avg := sc.AverageScore([]string{"abc", "K9#mQ2$vX7@wP4!z"})
	assert.InDelta(t, (scores[0].Score+scores[1].Score)/2, avg, 1e-9)

	assert.Zero(t, sc.AverageScore(nil))
}

func TestFilterByStrength(t *testing.T) {
	sc := NewScorer()
	words := []string{"abc", "hello42", "K9#mQ2$vX7@wP4!z"}

	strong := sc.FilterByStrength(words, 80, 100)
	assert.Equal(t, []string{"K9#mQ2$vX7@wP4!z"}, strong)

	all := sc.FilterByStrength(words, 0, 100)
	assert.Equal(t, words, all)
}
