/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mutators.go
Description: Rule-based word mutation strategies for Akaylee WordGen. Implements case
transformations, reversal and rotation, duplication, leet substitution, and digit
affixing to expand generated wordlists with common human variations.
*/

package strategies

import (
	"strings"
	"unicode"

	"github.com/kleascm/akaylee-wordgen/pkg/generators"
	"github.com/kleascm/akaylee-wordgen/pkg/interfaces"
)

// CaseRule names one case transformation.
type CaseRule string

const (
	CaseLower      CaseRule = "lowercase"
	CaseUpper      CaseRule = "uppercase"
	CaseCapitalize CaseRule = "capitalize"
	CaseSwap       CaseRule = "swapcase"
)

// CaseMutator applies a fixed case transformation.
type CaseMutator struct {
	rule CaseRule
}

// NewCaseMutator creates a case mutator for the given rule.
func NewCaseMutator(rule CaseRule) *CaseMutator {
	return &CaseMutator{rule: rule}
}

// Mutate applies the configured case rule.
func (m *CaseMutator) Mutate(word string) (string, error) {
	switch m.rule {
	case CaseLower:
		return strings.ToLower(word), nil
	case CaseUpper:
		return strings.ToUpper(word), nil
	case CaseCapitalize:
		runes := []rune(word)
		if len(runes) == 0 {
			return word, nil
		}
		runes[0] = unicode.ToUpper(runes[0])
		for i := 1; i < len(runes); i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
		return string(runes), nil
	case CaseSwap:
		return strings.Map(swapCase, word), nil
	}
	return word, nil
}

func swapCase(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	}
	return r
}

// Name returns the name of this mutator.
func (m *CaseMutator) Name() string {
	return "CaseMutator(" + string(m.rule) + ")"
}

// Description returns a description of this mutator.
func (m *CaseMutator) Description() string {
	return "Applies a fixed case transformation to the word"
}

// Init performs any setup required by this mutator.
func (m *CaseMutator) Init() error { return nil }

// ReverseMutator reverses the word.
type ReverseMutator struct{}

// NewReverseMutator creates a reverse mutator.
func NewReverseMutator() *ReverseMutator {
	return &ReverseMutator{}
}

// Mutate returns the word with its runes in reverse order.
func (m *ReverseMutator) Mutate(word string) (string, error) {
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

// Name returns the name of this mutator.
func (m *ReverseMutator) Name() string {
	return "ReverseMutator"
}

// Description returns a description of this mutator.
func (m *ReverseMutator) Description() string {
	return "Reverses the word"
}

// Init performs any setup required by this mutator.
func (m *ReverseMutator) Init() error { return nil }

// RotateMutator rotates the word left or right by one rune.
type RotateMutator struct {
	left bool
}

// NewRotateMutator creates a rotate mutator; left selects the direction.
func NewRotateMutator(left bool) *RotateMutator {
	return &RotateMutator{left: left}
}

// Mutate rotates the word by one position. Words shorter than two runes
// pass through unchanged.
func (m *RotateMutator) Mutate(word string) (string, error) {
	runes := []rune(word)
	if len(runes) < 2 {
		return word, nil
	}
	if m.left {
		return string(runes[1:]) + string(runes[0]), nil
	}
	return string(runes[len(runes)-1]) + string(runes[:len(runes)-1]), nil
}

// Name returns the name of this mutator.
func (m *RotateMutator) Name() string {
	if m.left {
		return "RotateMutator(left)"
	}
	return "RotateMutator(right)"
}

// Description returns a description of this mutator.
func (m *RotateMutator) Description() string {
	return "Rotates the word by one character"
}

// Init performs any setup required by this mutator.
func (m *RotateMutator) Init() error { return nil }

// DuplicateMode selects what DuplicateMutator doubles.
type DuplicateMode string

const (
	DuplicateWord  DuplicateMode = "word"
	DuplicateFirst DuplicateMode = "first"
	DuplicateLast  DuplicateMode = "last"
)

// DuplicateMutator doubles the word or one of its edge characters.
type DuplicateMutator struct {
	mode DuplicateMode
}

// NewDuplicateMutator creates a duplicate mutator.
func NewDuplicateMutator(mode DuplicateMode) *DuplicateMutator {
	return &DuplicateMutator{mode: mode}
}

// Mutate duplicates according to the configured mode.
func (m *DuplicateMutator) Mutate(word string) (string, error) {
	if word == "" {
		return word, nil
	}
	runes := []rune(word)
	switch m.mode {
	case DuplicateFirst:
		return string(runes[0]) + word, nil
	case DuplicateLast:
		return word + string(runes[len(runes)-1]), nil
	default:
		return word + word, nil
	}
}

// Name returns the name of this mutator.
func (m *DuplicateMutator) Name() string {
	return "DuplicateMutator(" + string(m.mode) + ")"
}

// Description returns a description of this mutator.
func (m *DuplicateMutator) Description() string {
	return "Duplicates the whole word or one of its edge characters"
}

// Init performs any setup required by this mutator.
func (m *DuplicateMutator) Init() error { return nil }

// leetTable maps letters to their common digit substitutions.
var leetTable = map[rune]rune{
	'a': '4', 'A': '4',
	'e': '3', 'E': '3',
	'i': '1', 'I': '1',
	'o': '0', 'O': '0',
	's': '5', 'S': '5',
	't': '7', 'T': '7',
}

// LeetMutator substitutes letters with leetspeak digits.
type LeetMutator struct{}

// NewLeetMutator creates a leet mutator.
func NewLeetMutator() *LeetMutator {
	return &LeetMutator{}
}

// Mutate replaces every substitutable letter.
func (m *LeetMutator) Mutate(word string) (string, error) {
	return strings.Map(func(r rune) rune {
		if sub, ok := leetTable[r]; ok {
			return sub
		}
		return r
	}, word), nil
}

// Name returns the name of this mutator.
func (m *LeetMutator) Name() string {
	return "LeetMutator"
}

// Description returns a description of this mutator.
func (m *LeetMutator) Description() string {
	return "Substitutes letters with common leetspeak digits"
}

// Init performs any setup required by this mutator.
func (m *LeetMutator) Init() error { return nil }

// AffixDigitsMutator appends or prepends a short random digit string.
// It draws from an explicit source so seeded runs stay reproducible.
type AffixDigitsMutator struct {
	source  *generators.Source
	digits  int
	prepend bool
}

// NewAffixDigitsMutator creates an affix mutator. A non-positive digit
// count defaults to 2.
func NewAffixDigitsMutator(source *generators.Source, digits int, prepend bool) *AffixDigitsMutator {
	if digits <= 0 {
		digits = 2
	}
	return &AffixDigitsMutator{source: source, digits: digits, prepend: prepend}
}

// Mutate attaches the digit string.
func (m *AffixDigitsMutator) Mutate(word string) (string, error) {
	var b strings.Builder
	for i := 0; i < m.digits; i++ {
		b.WriteRune(rune('0' + m.source.Intn(10)))
	}
	if m.prepend {
		return b.String() + word, nil
	}
	return word + b.String(), nil
}

// Name returns the name of this mutator.
func (m *AffixDigitsMutator) Name() string {
	if m.prepend {
		return "AffixDigitsMutator(prepend)"
	}
	return "AffixDigitsMutator(append)"
}

// Description returns a description of this mutator.
func (m *AffixDigitsMutator) Description() string {
	return "Attaches a short random digit string to the word"
}

// Init performs any setup required by this mutator.
func (m *AffixDigitsMutator) Init() error { return nil }

// MutatorByName resolves a rule name to its mutator. Names accepted are
// the case rules, "reverse", "rotate-left", "rotate-right", the
// duplicate modes ("duplicate", "duplicate-first", "duplicate-last"),
// "leet", "append-digits", and "prepend-digits".
func MutatorByName(name string, source *generators.Source) (interfaces.WordMutator, bool) {
	switch name {
	case string(CaseLower), string(CaseUpper), string(CaseCapitalize), string(CaseSwap):
		return NewCaseMutator(CaseRule(name)), true
	case "reverse":
		return NewReverseMutator(), true
	case "rotate-left":
		return NewRotateMutator(true), true
	case "rotate-right":
		return NewRotateMutator(false), true
	case "duplicate":
		return NewDuplicateMutator(DuplicateWord), true
	case "duplicate-first":
		return NewDuplicateMutator(DuplicateFirst), true
	case "duplicate-last":
		return NewDuplicateMutator(DuplicateLast), true
	case "leet":
		return NewLeetMutator(), true
	case "append-digits":
		return NewAffixDigitsMutator(source, 2, false), true
	case "prepend-digits":
		return NewAffixDigitsMutator(source, 2, true), true
	}
	return nil, false
}

// DefaultMutators returns the standard rule chain used by the CLI when no
// explicit rules are requested.
func DefaultMutators(source *generators.Source) []interfaces.WordMutator {
	return []interfaces.WordMutator{
		NewCaseMutator(CaseCapitalize),
		NewLeetMutator(),
		NewAffixDigitsMutator(source, 2, false),
	}
}
