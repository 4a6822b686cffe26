/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inference.go
Description: Regex inference for Akaylee WordGen. Collapses per-position character
observations into the narrowest supported character class per length bucket, merges
adjacent identical classes into quantified repetitions, and joins buckets into one
overall alternation ordered by observed frequency.
*/

package inference

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// Config controls the lossy collapse. Inference summarizes the corpus; it
// does not reconstruct it.
type Config struct {
	// MinCharCount drops characters observed fewer times than this from
	// a position's class before collapsing. 1 keeps every observation
	// (lossless classes). If dropping would empty a class the full
	// observation set is kept instead.
	MinCharCount int
}

// Result holds the inferred expressions.
type Result struct {
	// ByLength maps each observed length to its inferred expression.
	ByLength map[int]string

	// Overall alternates the per-length expressions, ordered by
	// descending bucket frequency (ties by ascending length).
	Overall string
}

// Builder derives best-effort regular expressions from a trained model.
type Builder struct {
	model  *models.AnalysisResult
	config Config
}

// NewBuilder creates a builder over a trained model.
func NewBuilder(model *models.AnalysisResult, config Config) *Builder {
	if config.MinCharCount <= 0 {
		config.MinCharCount = 1
	}
	return &Builder{model: model, config: config}
}

// Infer derives an expression for every length bucket plus the overall
// alternation.
func (b *Builder) Infer() *Result {
	result := &Result{ByLength: make(map[int]string)}
	for _, length := range b.model.SortedLengths() {
		if expr, ok := b.InferLength(length); ok {
			result.ByLength[length] = expr
		}
	}

	lengths := make([]int, 0, len(result.ByLength))
	for l := range result.ByLength {
		lengths = append(lengths, l)
	}
	sort.Slice(lengths, func(i, j int) bool {
		ci, cj := b.model.LengthHistogram[lengths[i]], b.model.LengthHistogram[lengths[j]]
		if ci != cj {
			return ci > cj
		}
		return lengths[i] < lengths[j]
	})

	parts := make([]string, 0, len(lengths))
	for _, l := range lengths {
		if len(lengths) > 1 {
			parts = append(parts, "(?:"+result.ByLength[l]+")")
		} else {
			parts = append(parts, result.ByLength[l])
		}
	}
	result.Overall = strings.Join(parts, "|")
	return result
}

// InferLength derives the expression for one length bucket.
func (b *Builder) InferLength(length int) (string, bool) {
	ls, ok := b.model.Lengths[length]
	if !ok || ls.Count == 0 {
		return "", false
	}

	classes := make([]string, length)
	for i := 0; i < length; i++ {
		classes[i] = b.classFor(ls.Positions[i])
	}

	// Merge runs of identical classes into quantified repetitions.
	var expr strings.Builder
	for i := 0; i < length; {
		run := 1
		for i+run < length && classes[i+run] == classes[i] {
			run++
		}
		expr.WriteString(classes[i])
		if run > 1 {
			fmt.Fprintf(&expr, "{%d}", run)
		}
		i += run
	}
	return expr.String(), true
}

// classFor collapses one position's observations into the narrowest
// supported description: a literal, a well-known class, or an enumerated
// class with range compression.
func (b *Builder) classFor(ps *models.PositionStats) string {
	chars := b.filteredChars(ps)
	if len(chars) == 1 {
		return regexp.QuoteMeta(string(chars[0]))
	}
	if known, ok := knownClass(chars); ok {
		return known
	}
	return enumeratedClass(chars)
}

// filteredChars applies the rare-character threshold, keeping the full
// set when the threshold would discard everything.
func (b *Builder) filteredChars(ps *models.PositionStats) []rune {
	if b.config.MinCharCount <= 1 {
		return ps.Chars()
	}
	var kept []rune
	for _, r := range ps.Chars() {
		if ps.CharCounts[r] >= b.config.MinCharCount {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return ps.Chars()
	}
	return kept
}

// knownClass matches the observed set exactly against well-known classes.
func knownClass(chars []rune) (string, bool) {
	switch {
	case coversExactly(chars, "0123456789"):
		return "[0-9]", true
	case coversExactly(chars, "abcdefghijklmnopqrstuvwxyz"):
		return "[a-z]", true
	case coversExactly(chars, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"):
		return "[A-Z]", true
	case coversExactly(chars, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"):
		return "[a-zA-Z]", true
	case coversExactly(chars, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"):
		return "[a-zA-Z0-9]", true
	}
	return "", false
}

// coversExactly reports whether chars (sorted, unique) equals the
// reference set (sorted).
func coversExactly(chars []rune, reference string) bool {
	ref := []rune(reference)
	if len(chars) != len(ref) {
		return false
	}
	for i, r := range ref {
		if chars[i] != r {
			return false
		}
	}
	return true
}

// enumeratedClass renders sorted chars as [..] with runs of three or more
// consecutive code points compressed into ranges.
func enumeratedClass(chars []rune) string {
	var body strings.Builder
	for i := 0; i < len(chars); {
		run := 1
		for i+run < len(chars) && chars[i+run] == chars[i]+rune(run) {
			run++
		}
		if run >= 3 {
			body.WriteString(escapeClassRune(chars[i]))
			body.WriteByte('-')
			body.WriteString(escapeClassRune(chars[i+run-1]))
		} else {
			for j := 0; j < run; j++ {
				body.WriteString(escapeClassRune(chars[i+j]))
			}
		}
		i += run
	}
	return "[" + body.String() + "]"
}

// escapeClassRune escapes the metacharacters meaningful inside [...].
func escapeClassRune(r rune) string {
	switch r {
	case '\\', ']', '^', '-', '[':
		return "\\" + string(r)
	}
	return string(r)
}
