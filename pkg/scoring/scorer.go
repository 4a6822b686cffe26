/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scorer.go
Description: Strength scoring for Akaylee WordGen. Rates generated or supplied strings
on a 0-100 scale from length, character diversity, Shannon entropy, repeated and
sequential runs, and a catalogue of common weak patterns, with improvement feedback.
*/

package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
)

// StrengthScore is the result of strength analysis for one string.
type StrengthScore struct {
	Score           float64  `json:"score"`
	Entropy         float64  `json:"entropy"`
	Length          int      `json:"length"`
	HasUpper        bool     `json:"has_upper"`
	HasLower        bool     `json:"has_lower"`
	HasDigit        bool     `json:"has_digit"`
	HasSymbol       bool     `json:"has_symbol"`
	CharTypes       int      `json:"char_types"`
	RepeatedChars   int      `json:"repeated_chars"`
	SequentialChars int      `json:"sequential_chars"`
	CommonPattern   string   `json:"common_pattern,omitempty"`
	Feedback        []string `json:"feedback"`
}

// Rating maps the numeric score onto a human-readable band.
func (s *StrengthScore) Rating() string {
	switch {
	case s.Score >= 80:
		return "Very Strong"
	case s.Score >= 60:
		return "Strong"
	case s.Score >= 40:
		return "Moderate"
	case s.Score >= 20:
		return "Weak"
	}
	return "Very Weak"
}

type weakPattern struct {
	re   *regexp.Regexp
	desc string
}

// weakPatterns are checked in order; the first hit wins.
var weakPatterns = []weakPattern{
	{regexp.MustCompile(`^[a-z]+$`), "lowercase only"},
	{regexp.MustCompile(`^[A-Z]+$`), "uppercase only"},
	{regexp.MustCompile(`^[0-9]+$`), "digits only"},
	{regexp.MustCompile(`^(12|123|1234|12345|123456)`), "starts with sequential digits"},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)`), "contains 'password'"},
	{regexp.MustCompile(`(?i)(qwerty|asdf|zxcv)`), "keyboard pattern"},
	{regexp.MustCompile(`(?i)(abc|xyz)`), "alphabetic sequence"},
	{regexp.MustCompile(`^[a-z]+[0-9]+$`), "simple word+numbers"},
	{regexp.MustCompile(`^[A-Z][a-z]+[0-9]+$`), "capitalized word+numbers"},
}

// sequences used for sequential-run detection, scanned forwards and
// backwards.
const sequences = "abcdefghijklmnopqrstuvwxyz0123456789"

var reversedSequences = reverse(sequences)

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Scorer rates string strength.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score rates one string.
func (sc *Scorer) Score(password string) *StrengthScore {
	if password == "" {
		return &StrengthScore{
			CommonPattern: "empty",
			Feedback:      []string{"Password is empty"},
		}
	}

	runes := []rune(password)
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
	charTypes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			charTypes++
		}
	}

	repeated := countRepeated(runes)
	sequential := countSequential(password)
	pattern := sc.checkPatterns(password)
	entropy := calculateEntropy(runes, hasUpper, hasLower, hasDigit, hasSymbol)
	score := calculateScore(runes, charTypes, entropy, repeated, sequential, pattern)

	return &StrengthScore{
		Score:           score,
		Entropy:         entropy,
		Length:          len(runes),
		HasUpper:        hasUpper,
		HasLower:        hasLower,
		HasDigit:        hasDigit,
		HasSymbol:       hasSymbol,
		CharTypes:       charTypes,
		RepeatedChars:   repeated,
		SequentialChars: sequential,
		CommonPattern:   pattern,
		Feedback: feedback(len(runes), hasUpper, hasLower, hasDigit, hasSymbol,
			repeated, sequential, pattern, entropy),
	}
}

// ScoreMany rates a batch.
func (sc *Scorer) ScoreMany(passwords []string) []*StrengthScore {
	scores := make([]*StrengthScore, len(passwords))
	for i, p := range passwords {
		scores[i] = sc.Score(p)
	}
	return scores
}

// AverageScore returns the mean score across a batch, 0 for an empty one.
func (sc *Scorer) AverageScore(passwords []string) float64 {
	if len(passwords) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range sc.ScoreMany(passwords) {
		total += s.Score
	}
	return total / float64(len(passwords))
}

// FilterByStrength keeps strings whose score falls in [minScore, maxScore].
func (sc *Scorer) FilterByStrength(passwords []string, minScore, maxScore float64) []string {
	var kept []string
	for _, p := range passwords {
		if s := sc.Score(p).Score; s >= minScore && s <= maxScore {
			kept = append(kept, p)
		}
	}
	return kept
}

// checkPatterns returns the first weak pattern description matching the
// string, or "". Single-class checks run first, then the
// repeated-single-character case by hand (Go regexps have no
// back-references), then the remaining catalogue.
func (sc *Scorer) checkPatterns(s string) string {
	for _, wp := range weakPatterns[:3] {
		if wp.re.MatchString(s) {
			return wp.desc
		}
	}
	if runes := []rune(s); len(runes) > 1 {
		same := true
		for _, r := range runes[1:] {
			if r != runes[0] {
				same = false
				break
			}
		}
		if same {
			return "repeated single character"
		}
	}
	for _, wp := range weakPatterns[3:] {
		if wp.re.MatchString(s) {
			return wp.desc
		}
	}
	return ""
}

// countRepeated counts consecutive identical runes.
func countRepeated(runes []rune) int {
	count := 0
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			count++
		}
	}
	return count
}

// countSequential counts 3-rune windows that appear in the alphabet or
// digit sequence, in either direction.
func countSequential(s string) int {
	lower := []rune(strings.ToLower(s))
	if len(lower) < 3 {
		return 0
	}
	count := 0
	for i := 0; i+3 <= len(lower); i++ {
		window := string(lower[i : i+3])
		if strings.Contains(sequences, window) || strings.Contains(reversedSequences, window) {
			count++
		}
	}
	return count
}

// calculateEntropy estimates Shannon entropy in bits as length times
// log2 of the effective charset size implied by the types present.
func calculateEntropy(runes []rune, hasUpper, hasLower, hasDigit, hasSymbol bool) float64 {
	charsetSize := 0
	if hasLower {
		charsetSize += 26
	}
	if hasUpper {
		charsetSize += 26
	}
	if hasDigit {
		charsetSize += 10
	}
	if hasSymbol {
		charsetSize += 32
	}
	if charsetSize == 0 {
		return 0
	}
	return float64(len(runes)) * math.Log2(float64(charsetSize))
}

// calculateScore combines the signals into a clamped 0-100 score.
func calculateScore(runes []rune, charTypes int, entropy float64, repeated, sequential int, pattern string) float64 {
	score := 0.0

	// Length contributes up to 30 points.
	score += math.Min(30, float64(len(runes))*2)

	// Character diversity contributes up to 25 points.
	score += float64(charTypes) * 6.25

	// Entropy contributes up to 25 points.
	score += math.Min(25, entropy/3.2)

	// Unique-character ratio contributes up to 10 points.
	unique := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		unique[r] = struct{}{}
	}
	score += float64(len(unique)) / float64(len(runes)) * 10

	if pattern != "" {
		score -= 20
	}
	score -= float64(repeated) * 2
	score -= float64(sequential) * 3

	return math.Max(0, math.Min(100, score))
}

// feedback produces improvement suggestions.
func feedback(length int, hasUpper, hasLower, hasDigit, hasSymbol bool, repeated, sequential int, pattern string, entropy float64) []string {
	var out []string

	if length < 8 {
		out = append(out, "Use at least 8 characters")
	} else if length < 12 {
		out = append(out, "Consider using 12+ characters for better security")
	}

	if !hasUpper {
		out = append(out, "Add uppercase letters")
	}
	if !hasLower {
		out = append(out, "Add lowercase letters")
	}
	if !hasDigit {
		out = append(out, "Add numbers")
	}
	if !hasSymbol {
		out = append(out, "Add symbols (!@#$%^&*)")
	}

	if repeated > 2 {
		out = append(out, "Avoid repeated characters")
	}
	if sequential > 1 {
		out = append(out, "Avoid sequential characters (abc, 123)")
	}
	if pattern != "" {
		out = append(out, fmt.Sprintf("Avoid common pattern: %s", pattern))
	}
	if entropy < 40 {
		out = append(out, "Increase randomness/complexity")
	}

	if len(out) == 0 {
		out = append(out, "Good password strength!")
	}
	return out
}
