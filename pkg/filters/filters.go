/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: filters.go
Description: Post-generation filtering for Akaylee WordGen. Applies length, character
type, strength, regex, substring, and charset criteria to generated wordlists, with
named presets for common policies.
*/

package filters

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/kleascm/akaylee-wordgen/pkg/scoring"
)

// FilterConfig configures every supported criterion. Zero values and nil
// pointers mean "not applied".
type FilterConfig struct {
	// Length filters. ExactLength wins over the min/max pair.
	MinLength   int
	MaxLength   int
	ExactLength int

	// Character type requirements.
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
	MinCharTypes  int

	// Strength filters, applied via the scoring package.
	MinScore   *float64
	MaxScore   *float64
	MinEntropy *float64

	// Pattern filters.
	MustMatch      string
	MustNotMatch   string
	MustContain    string
	MustNotContain string

	// Charset filters.
	AllowedChars   map[rune]struct{}
	ForbiddenChars map[rune]struct{}

	// ExcludeWords drops these exact words.
	ExcludeWords map[string]struct{}
}

// Filter checks strings against a FilterConfig.
type Filter struct {
	config       FilterConfig
	scorer       *scoring.Scorer
	mustMatch    *regexp.Regexp
	mustNotMatch *regexp.Regexp
}

// NewFilter compiles the configured patterns. Invalid regexps fail here,
// not per word.
func NewFilter(config FilterConfig) (*Filter, error) {
	f := &Filter{config: config, scorer: scoring.NewScorer()}
	var err error
	if config.MustMatch != "" {
		if f.mustMatch, err = regexp.Compile(config.MustMatch); err != nil {
			return nil, fmt.Errorf("compile must-match pattern: %w", err)
		}
	}
	if config.MustNotMatch != "" {
		if f.mustNotMatch, err = regexp.Compile(config.MustNotMatch); err != nil {
			return nil, fmt.Errorf("compile must-not-match pattern: %w", err)
		}
	}
	return f, nil
}

// Passes reports whether one string satisfies every configured criterion.
func (f *Filter) Passes(s string) bool {
	if _, excluded := f.config.ExcludeWords[s]; excluded {
		return false
	}

	runes := []rune(s)
	if f.config.ExactLength > 0 {
		if len(runes) != f.config.ExactLength {
			return false
		}
	} else {
		if f.config.MinLength > 0 && len(runes) < f.config.MinLength {
			return false
		}
		if f.config.MaxLength > 0 && len(runes) > f.config.MaxLength {
			return false
		}
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if f.config.RequireUpper && !hasUpper {
		return false
	}
	if f.config.RequireLower && !hasLower {
		return false
	}
	if f.config.RequireDigit && !hasDigit {
		return false
	}
	if f.config.RequireSymbol && !hasSymbol {
		return false
	}
	charTypes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			charTypes++
		}
	}
	if charTypes < f.config.MinCharTypes {
		return false
	}

	if f.config.MinScore != nil || f.config.MaxScore != nil || f.config.MinEntropy != nil {
		score := f.scorer.Score(s)
		if f.config.MinScore != nil && score.Score < *f.config.MinScore {
			return false
		}
		if f.config.MaxScore != nil && score.Score > *f.config.MaxScore {
			return false
		}
		if f.config.MinEntropy != nil && score.Entropy < *f.config.MinEntropy {
			return false
		}
	}

	if f.mustMatch != nil && !f.mustMatch.MatchString(s) {
		return false
	}
	if f.mustNotMatch != nil && f.mustNotMatch.MatchString(s) {
		return false
	}
	if f.config.MustContain != "" && !strings.Contains(s, f.config.MustContain) {
		return false
	}
	if f.config.MustNotContain != "" && strings.Contains(s, f.config.MustNotContain) {
		return false
	}

	if f.config.AllowedChars != nil {
		for _, r := range runes {
			if _, ok := f.config.AllowedChars[r]; !ok {
				return false
			}
		}
	}
	if f.config.ForbiddenChars != nil {
		for _, r := range runes {
			if _, ok := f.config.ForbiddenChars[r]; ok {
				return false
			}
		}
	}

	return true
}

// Filter keeps the words that pass.
func (f *Filter) Filter(words []string) []string {
	var kept []string
	for _, s := range words {
		if f.Passes(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

// CountPassing counts the words that pass.
func (f *Filter) CountPassing(words []string) int {
	count := 0
	for _, s := range words {
		if f.Passes(s) {
			count++
		}
	}
	return count
}

func floatPtr(v float64) *float64 { return &v }

// Preset resolves a named filter policy.
func Preset(name string) (FilterConfig, error) {
	switch name {
	case "strong":
		return FilterConfig{MinLength: 12, MinCharTypes: 3, MinScore: floatPtr(60)}, nil
	case "very-strong":
		return FilterConfig{MinLength: 16, MinCharTypes: 4, MinScore: floatPtr(80)}, nil
	case "alphanumeric":
		return FilterConfig{RequireUpper: true, RequireLower: true, RequireDigit: true}, nil
	case "complex":
		return FilterConfig{
			MinLength:     10,
			RequireUpper:  true,
			RequireLower:  true,
			RequireDigit:  true,
			RequireSymbol: true,
		}, nil
	case "short":
		return FilterConfig{MaxLength: 8}, nil
	case "medium":
		return FilterConfig{MinLength: 8, MaxLength: 12}, nil
	case "long":
		return FilterConfig{MinLength: 16}, nil
	}
	return FilterConfig{}, fmt.Errorf("unknown filter preset %q", name)
}
