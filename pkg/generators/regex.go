/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: regex.go
Description: Regex generation strategy for Akaylee WordGen. Compiles a restricted
regular expression grammar into a generative walk over the regexp/syntax parse tree,
producing strings that match the expression instead of only matching against it.
Independent of any trained model.
*/

package generators

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// DefaultMaxRepeat caps quantifiers without an explicit upper bound
// (* + {n,}) so generation stays finite. Explicit {n,m} bounds are never
// truncated. Override via GeneratorConfig.MaxRepeat.
const DefaultMaxRepeat = 10

// printable ASCII range used to narrow huge character classes (negated
// classes and the any-character operator) during generation.
const (
	printableLo = 0x20
	printableHi = 0x7e
)

// RegexGenerator synthesizes strings matching a user-supplied expression.
// It consumes no AnalysisResult; reproducibility comes from the seeded
// source alone. Duplicates are always permitted since a finite-language
// expression smaller than the requested count cannot yield novelty.
type RegexGenerator struct {
	expression  string
	tree        *syntax.Regexp
	matcher     *regexp.Regexp
	source      *Source
	maxRepeat   int
	maxAttempts int
}

// NewRegexGenerator compiles the expression. Back-references and
// look-around fail fast with UnsupportedRegexError naming the construct.
func NewRegexGenerator(expression string, config interfaces.GeneratorConfig) (*RegexGenerator, error) {
	if construct := unsupportedConstruct(expression); construct != "" {
		return nil, &models.UnsupportedRegexError{Expression: expression, Construct: construct}
	}

	tree, err := syntax.Parse(expression, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("parse expression %q: %w", expression, err)
	}
	matcher, err := regexp.Compile("^(?:" + expression + ")$")
	if err != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expression, err)
	}

	source := NewTimeSource()
	if config.Seeded {
		source = NewSource(config.Seed)
	}
	maxRepeat := config.MaxRepeat
	if maxRepeat <= 0 {
		maxRepeat = DefaultMaxRepeat
	}
	maxAttempts := config.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &RegexGenerator{
		expression:  expression,
		tree:        tree,
		matcher:     matcher,
		source:      source,
		maxRepeat:   maxRepeat,
		maxAttempts: maxAttempts,
	}, nil
}

// unsupportedConstruct scans for grammar the generator rejects before
// parsing: look-ahead, look-behind, and back-references.
func unsupportedConstruct(expression string) string {
	if strings.Contains(expression, "(?=") {
		return "look-ahead (?=...)"
	}
	if strings.Contains(expression, "(?!") {
		return "negative look-ahead (?!...)"
	}
	// "(?<" alone is a named capture group, not look-behind.
	if strings.Contains(expression, "(?<=") {
		return "look-behind (?<=...)"
	}
	if strings.Contains(expression, "(?<!") {
		return "negative look-behind (?<!...)"
	}
	escaped := false
	for _, r := range expression {
		if escaped {
			if r >= '1' && r <= '9' {
				return fmt.Sprintf("back-reference \\%c", r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
		}
	}
	return ""
}

// Generate synthesizes count matching strings. The same seed and
// expression always produce the same sequence.
func (g *RegexGenerator) Generate(count int) ([]*interfaces.GeneratedWord, error) {
	results := make([]*interfaces.GeneratedWord, 0, count)
	for len(results) < count {
		attempts := 0
		accepted := false
		for attempts < g.maxAttempts {
			attempts++
			var b strings.Builder
			if err := g.genNode(g.tree, &b); err != nil {
				return nil, err
			}
			word := b.String()
			if !g.matcher.MatchString(word) {
				continue
			}
			results = append(results, newGeneratedWord(word, interfaces.ModeRegex))
			accepted = true
			break
		}
		if !accepted {
			return nil, &models.GenerationExhaustedError{
				Requested: count,
				Generated: len(results),
				Attempts:  attempts,
			}
		}
	}
	return results, nil
}

// genNode emits one realization of a parse tree node.
func (g *RegexGenerator) genNode(re *syntax.Regexp, b *strings.Builder) error {
	switch re.Op {
	case syntax.OpLiteral:
		b.WriteString(string(re.Rune))
	case syntax.OpCharClass:
		r, ok := g.classRune(re.Rune)
		if !ok {
			return &models.UnsupportedRegexError{Expression: g.expression, Construct: "empty character class"}
		}
		b.WriteRune(r)
	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		b.WriteRune(rune(printableLo + g.source.Intn(printableHi-printableLo+1)))
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if err := g.genNode(sub, b); err != nil {
				return err
			}
		}
	case syntax.OpAlternate:
		return g.genNode(re.Sub[g.source.Intn(len(re.Sub))], b)
	case syntax.OpCapture:
		return g.genNode(re.Sub[0], b)
	case syntax.OpStar:
		return g.repeat(re.Sub[0], g.source.Intn(g.maxRepeat+1), b)
	case syntax.OpPlus:
		return g.repeat(re.Sub[0], 1+g.source.Intn(g.maxRepeat), b)
	case syntax.OpQuest:
		return g.repeat(re.Sub[0], g.source.Intn(2), b)
	case syntax.OpRepeat:
		min, max := re.Min, re.Max
		if max < 0 {
			// {n,} keeps its lower bound; only the open end is capped.
			max = min + g.maxRepeat
		}
		return g.repeat(re.Sub[0], min+g.source.Intn(max-min+1), b)
	case syntax.OpEmptyMatch, syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText:
		// Anchors constrain matching, not generation.
	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return &models.UnsupportedRegexError{Expression: g.expression, Construct: "word boundary \\b"}
	default:
		return &models.UnsupportedRegexError{Expression: g.expression, Construct: re.Op.String()}
	}
	return nil
}

func (g *RegexGenerator) repeat(sub *syntax.Regexp, n int, b *strings.Builder) error {
	for i := 0; i < n; i++ {
		if err := g.genNode(sub, b); err != nil {
			return err
		}
	}
	return nil
}

// classRune draws uniformly from a character class. Classes covering a
// printable ASCII subset draw from that subset; classes entirely outside
// it (explicit multibyte ranges) draw from their own ranges.
func (g *RegexGenerator) classRune(ranges []rune) (rune, bool) {
	narrowed := intersectPrintable(ranges)
	if len(narrowed) == 0 {
		narrowed = ranges
	}
	total := 0
	for i := 0; i < len(narrowed); i += 2 {
		total += int(narrowed[i+1]-narrowed[i]) + 1
	}
	if total <= 0 {
		return 0, false
	}
	idx := g.source.Intn(total)
	for i := 0; i < len(narrowed); i += 2 {
		span := int(narrowed[i+1]-narrowed[i]) + 1
		if idx < span {
			return narrowed[i] + rune(idx), true
		}
		idx -= span
	}
	return 0, false
}

// intersectPrintable clips class ranges to printable ASCII.
func intersectPrintable(ranges []rune) []rune {
	var out []rune
	for i := 0; i < len(ranges); i += 2 {
		lo, hi := ranges[i], ranges[i+1]
		if lo < printableLo {
			lo = printableLo
		}
		if hi > printableHi {
			hi = printableHi
		}
		if lo <= hi {
			out = append(out, lo, hi)
		}
	}
	return out
}

// Name returns the name of this generator.
func (g *RegexGenerator) Name() string {
	return "RegexGenerator"
}

// Description returns a description of this generator.
func (g *RegexGenerator) Description() string {
	return "Produces strings matching a user-supplied restricted regular expression"
}
