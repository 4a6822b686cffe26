/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference_test.go
Description: Tests for regex inference. Covers class collapse, run merging, the
rare-character threshold, known class detection, and the overall alternation order.
*/

package inference

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-wordgen/pkg/analysis"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

func infer(t *testing.T, config Config, lines ...string) (*Result, *models.AnalysisResult) {
	t.Helper()
	model, err := analysis.NewAnalyzer(0, 0).Analyze(lines)
	require.NoError(t, err)
	return NewBuilder(model, config).Infer(), model
}

func TestInferEnumeratedClasses(t *testing.T) {
	result, _ := infer(t, Config{}, "Aa1", "Bb2")

	assert.Equal(t, "[AB][ab][12]", result.ByLength[3])
	assert.Equal(t, "[AB][ab][12]", result.Overall)
}

func TestInferLiteralPositions(t *testing.T) {
	// A position with a single observed character becomes a literal.
	result, _ := infer(t, Config{}, "a1x", "a2y")
	assert.Equal(t, "a[12][xy]", result.ByLength[3])
}

func TestInferRunMerging(t *testing.T) {
	// Identical adjacent classes collapse into a quantifier.
	result, _ := infer(t, Config{}, "abab", "baba")
	assert.Equal(t, "[ab]{4}", result.ByLength[4])
}

func TestInferRangeCompression(t *testing.T) {
	// Three or more consecutive code points render as a range.
	result, _ := infer(t, Config{}, "a", "b", "c", "d", "x")
	assert.Equal(t, "[a-dx]", result.ByLength[1])
}

func TestInferKnownClasses(t *testing.T) {
	lines := make([]string, 0, 10)
	for d := '0'; d <= '9'; d++ {
		lines = append(lines, string(d))
	}
	result, _ := infer(t, Config{}, lines...)
	assert.Equal(t, "[0-9]", result.ByLength[1])
}

func TestInferMinCharCount(t *testing.T) {
	// 'z' appears once and drops below the threshold.
	result, _ := infer(t, Config{MinCharCount: 2}, "ab", "ab", "zb")
	assert.Equal(t, "ab", result.ByLength[2])

	// Dropping everything keeps the full observation set instead.
	result, _ = infer(t, Config{MinCharCount: 5}, "ab", "cb")
	assert.Equal(t, "[ac]b", result.ByLength[2])
}

func TestInferOverallAlternation(t *testing.T) {
	// Length 2 dominates, so its branch leads the alternation.
	result, _ := infer(t, Config{}, "ab", "cd", "ef", "xyz", "xwz")
	assert.Equal(t, "(?:[ace][bdf])|(?:x[wy]z)", result.Overall)
}

func TestInferEscapesMetacharacters(t *testing.T) {
	result, _ := infer(t, Config{}, "a-b", "a^b", "a]b")
	assert.Equal(t, `a[\-\]\^]b`, result.ByLength[3])

	// The rendered class must compile and match the corpus.
	re, err := regexp.Compile("^" + result.ByLength[3] + "$")
	require.NoError(t, err)
	assert.True(t, re.MatchString("a-b"))
	assert.True(t, re.MatchString("a^b"))
	assert.True(t, re.MatchString("a]b"))
}

func TestInferredExpressionsMatchCorpus(t *testing.T) {
	lines := []string{"Pass1!", "Word2@", "abc", "abd"}
	result, _ := infer(t, Config{}, lines...)

	re, err := regexp.Compile("^(?:" + result.Overall + ")$")
	require.NoError(t, err)
	for _, line := range lines {
		assert.True(t, re.MatchString(line), "corpus word %q does not match %q", line, result.Overall)
	}
}
