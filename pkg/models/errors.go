/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Typed error taxonomy for the Akaylee WordGen engine. Every error carries
the offending value and the relevant limit so callers can present actionable messages.
The engine itself never logs or prints.
*/

package models

import "fmt"

// EmptyCorpusError reports that no usable training words remained after
// length filtering. Fatal to analysis.
type EmptyCorpusError struct {
	Source    string
	Discarded int
}

func (e *EmptyCorpusError) Error() string {
	return fmt.Sprintf("no usable words in %s after filtering (%d lines discarded)", e.Source, e.Discarded)
}

// UnsupportedLengthError reports a requested generation length with no
// support in the trained model.
type UnsupportedLengthError struct {
	Length    int
	MinLength int
	MaxLength int
}

func (e *UnsupportedLengthError) Error() string {
	return fmt.Sprintf("length %d has no model support (trained range %d-%d)", e.Length, e.MinLength, e.MaxLength)
}

// InvalidPatternError reports a malformed explicit type pattern.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid type pattern %q: %s", e.Pattern, e.Reason)
}

// UnsatisfiablePatternError reports an explicit type pattern that cannot
// be realized because the model contains no character of a required type.
type UnsatisfiablePatternError struct {
	Pattern  string
	Position int
	Type     CharType
}

func (e *UnsatisfiablePatternError) Error() string {
	return fmt.Sprintf("pattern %q unsatisfiable: no %s character in model (position %d)", e.Pattern, e.Type, e.Position)
}

// UnsupportedRegexError reports a regular expression construct the
// generator cannot produce strings for.
type UnsupportedRegexError struct {
	Expression string
	Construct  string
}

func (e *UnsupportedRegexError) Error() string {
	return fmt.Sprintf("expression %q uses unsupported construct: %s", e.Expression, e.Construct)
}

// GenerationExhaustedError reports that the duplicate-avoidance retry
// budget ran out before the requested count was satisfied.
type GenerationExhaustedError struct {
	Requested int
	Generated int
	Attempts  int
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("generation exhausted after %d attempts: produced %d of %d requested words", e.Attempts, e.Generated, e.Requested)
}
