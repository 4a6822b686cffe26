/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: models.go
Description: Statistical data models for the Akaylee WordGen engine. Defines character
type classification, per-position frequency statistics, adjacent-pair co-occurrence
counts, character type skeletons, and the immutable AnalysisResult aggregate shared
read-only by every generator.
*/

package models

import (
	"fmt"
	"sort"
	"strings"
)

// CharType is the closed classification of a single character.
type CharType int

const (
	Upper CharType = iota
	Lower
	Digit
	Symbol
)

// AllCharTypes lists every CharType in declaration order.
var AllCharTypes = []CharType{Upper, Lower, Digit, Symbol}

// String returns the human-readable name of the character type.
func (t CharType) String() string {
	switch t {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	case Digit:
		return "Digit"
	default:
		return "Symbol"
	}
}

// Code returns the single-rune shorthand used in type skeletons and
// explicit pattern strings: U, l, n, @.
func (t CharType) Code() rune {
	switch t {
	case Upper:
		return 'U'
	case Lower:
		return 'l'
	case Digit:
		return 'n'
	default:
		return '@'
	}
}

// CharTypeOf classifies a rune. Classification is locale-independent
// ASCII: everything outside A-Z, a-z, 0-9 (including multibyte code
// points) lands in the Symbol bucket.
func CharTypeOf(r rune) CharType {
	switch {
	case r >= 'A' && r <= 'Z':
		return Upper
	case r >= 'a' && r <= 'z':
		return Lower
	case r >= '0' && r <= '9':
		return Digit
	default:
		return Symbol
	}
}

// CharTypeFromCode maps a skeleton shorthand rune back to its CharType.
func CharTypeFromCode(code rune) (CharType, bool) {
	switch code {
	case 'U':
		return Upper, true
	case 'l':
		return Lower, true
	case 'n':
		return Digit, true
	case '@':
		return Symbol, true
	default:
		return Symbol, false
	}
}

// Skeleton returns the character type skeleton of a word, e.g. "Ullnn@".
func Skeleton(word []rune) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		b.WriteRune(CharTypeOf(r).Code())
	}
	return b.String()
}

// RuneCount pairs a rune with an occurrence count for weighted sampling.
type RuneCount struct {
	Rune  rune
	Count int
}

// SortRuneCounts orders counts descending, ties broken by ascending code
// point. Every weighted draw in the engine iterates this order so that a
// fixed seed reproduces the same output.
func SortRuneCounts(counts []RuneCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Rune < counts[j].Rune
	})
}

// RuneCountsFromMap flattens a frequency map into deterministic order.
func RuneCountsFromMap(m map[rune]int) []RuneCount {
	counts := make([]RuneCount, 0, len(m))
	for r, c := range m {
		counts = append(counts, RuneCount{Rune: r, Count: c})
	}
	SortRuneCounts(counts)
	return counts
}

// PositionStats holds observation counts for one zero-based offset within
// words of a specific length.
type PositionStats struct {
	Position   int
	Length     int
	CharCounts map[rune]int
	TypeCounts map[CharType]int
	total      int
}

// NewPositionStats creates empty statistics for one offset.
func NewPositionStats(position, length int) *PositionStats {
	return &PositionStats{
		Position:   position,
		Length:     length,
		CharCounts: make(map[rune]int),
		TypeCounts: make(map[CharType]int),
	}
}

// AddRune records one observation of r at this offset.
func (p *PositionStats) AddRune(r rune) {
	p.CharCounts[r]++
	p.TypeCounts[CharTypeOf(r)]++
	p.total++
}

// Total returns the number of observations recorded at this offset. It
// equals the number of training words of this length.
func (p *PositionStats) Total() int {
	return p.total
}

// Merge folds another offset's observations into this one.
func (p *PositionStats) Merge(other *PositionStats) {
	for r, c := range other.CharCounts {
		p.CharCounts[r] += c
	}
	for t, c := range other.TypeCounts {
		p.TypeCounts[t] += c
	}
	p.total += other.total
}

// Chars returns every rune observed at this offset in ascending code
// point order.
func (p *PositionStats) Chars() []rune {
	chars := make([]rune, 0, len(p.CharCounts))
	for r := range p.CharCounts {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// WeightedChars returns observed runes in deterministic weighted order.
func (p *PositionStats) WeightedChars() []RuneCount {
	return RuneCountsFromMap(p.CharCounts)
}

// CharsOfType returns observed runes of the given type at this offset in
// ascending code point order.
func (p *PositionStats) CharsOfType(t CharType) []rune {
	var chars []rune
	for r := range p.CharCounts {
		if CharTypeOf(r) == t {
			chars = append(chars, r)
		}
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// Probability returns the observed frequency of r at this offset.
func (p *PositionStats) Probability(r rune) float64 {
	if p.total == 0 {
		return 0
	}
	return float64(p.CharCounts[r]) / float64(p.total)
}

// LengthStats aggregates every per-position and per-skeleton observation
// for words of one length.
type LengthStats struct {
	Length    int
	Count     int
	Positions []*PositionStats
	Patterns  map[string]int
}

// NewLengthStats creates empty statistics for one word length.
func NewLengthStats(length int) *LengthStats {
	positions := make([]*PositionStats, length)
	for i := range positions {
		positions[i] = NewPositionStats(i, length)
	}
	return &LengthStats{
		Length:    length,
		Positions: positions,
		Patterns:  make(map[string]int),
	}
}

// AddWord records a word of this exact length.
func (l *LengthStats) AddWord(word []rune) error {
	if len(word) != l.Length {
		return fmt.Errorf("word length %d does not match bucket length %d", len(word), l.Length)
	}
	l.Count++
	for i, r := range word {
		l.Positions[i].AddRune(r)
	}
	l.Patterns[Skeleton(word)]++
	return nil
}

// Merge folds another bucket of the same length into this one. Counts
// sum, so merging is commutative.
func (l *LengthStats) Merge(other *LengthStats) error {
	if other.Length != l.Length {
		return fmt.Errorf("bucket length %d does not match bucket length %d", other.Length, l.Length)
	}
	l.Count += other.Count
	for i, ps := range other.Positions {
		l.Positions[i].Merge(ps)
	}
	for pattern, c := range other.Patterns {
		l.Patterns[pattern] += c
	}
	return nil
}

// PatternCount pairs a type skeleton with its observation count.
type PatternCount struct {
	Pattern string
	Count   int
}

// WeightedPatterns returns observed skeletons ordered by count descending,
// ties broken lexicographically, for deterministic weighted sampling.
func (l *LengthStats) WeightedPatterns() []PatternCount {
	patterns := make([]PatternCount, 0, len(l.Patterns))
	for p, c := range l.Patterns {
		patterns = append(patterns, PatternCount{Pattern: p, Count: c})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].Pattern < patterns[j].Pattern
	})
	return patterns
}

// CharsOfType returns the concrete runes of the given type observed at a
// position within this length bucket.
func (l *LengthStats) CharsOfType(position int, t CharType) []rune {
	if position < 0 || position >= len(l.Positions) {
		return nil
	}
	return l.Positions[position].CharsOfType(t)
}

// TransitionKey identifies a conditioning context for co-occurrence: the
// character observed at a position.
type TransitionKey struct {
	Position int
	Char     rune
}

// CooccurrenceStats counts which characters follow a given character at
// the next position. Entries exist only for positions i < L-1 of each
// training word; an absent entry means no transition was observed, not a
// zero probability.
type CooccurrenceStats struct {
	transitions map[TransitionKey]map[rune]int
}

// NewCooccurrenceStats creates an empty transition table.
func NewCooccurrenceStats() *CooccurrenceStats {
	return &CooccurrenceStats{transitions: make(map[TransitionKey]map[rune]int)}
}

// Add records that next followed cur at position pos.
func (c *CooccurrenceStats) Add(pos int, cur, next rune) {
	key := TransitionKey{Position: pos, Char: cur}
	m, ok := c.transitions[key]
	if !ok {
		m = make(map[rune]int)
		c.transitions[key] = m
	}
	m[next]++
}

// Next returns the successor counts for a context, or false when the
// context was never observed. Callers must fall back to the positional
// distribution in that case.
func (c *CooccurrenceStats) Next(pos int, cur rune) (map[rune]int, bool) {
	m, ok := c.transitions[TransitionKey{Position: pos, Char: cur}]
	return m, ok
}

// Merge folds another transition table into this one.
func (c *CooccurrenceStats) Merge(other *CooccurrenceStats) {
	for key, next := range other.transitions {
		m, ok := c.transitions[key]
		if !ok {
			m = make(map[rune]int, len(next))
			c.transitions[key] = m
		}
		for r, count := range next {
			m[r] += count
		}
	}
}

// Size returns the number of distinct conditioning contexts.
func (c *CooccurrenceStats) Size() int {
	return len(c.transitions)
}

// AnalysisResult is the immutable aggregate produced by one corpus scan.
// It is shared read-only by every generator; no generator mutates it.
type AnalysisResult struct {
	TotalWords      int
	UniqueWords     int
	LengthHistogram map[int]int
	Charset         map[rune]int
	TypeFrequency   map[CharType]int
	MinLength       int
	MaxLength       int
	Lengths         map[int]*LengthStats
	Cooccurrence    *CooccurrenceStats

	// Words retains the training set for duplicate exclusion and for
	// transition training by the Markov generator.
	Words map[string]struct{}
}

// SortedLengths returns every observed length in ascending order.
func (a *AnalysisResult) SortedLengths() []int {
	lengths := make([]int, 0, len(a.LengthHistogram))
	for l := range a.LengthHistogram {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// LengthDistribution returns the observed probability of each length.
func (a *AnalysisResult) LengthDistribution() map[int]float64 {
	dist := make(map[int]float64, len(a.LengthHistogram))
	if a.TotalWords == 0 {
		return dist
	}
	for l, c := range a.LengthHistogram {
		dist[l] = float64(c) / float64(a.TotalWords)
	}
	return dist
}

// CharsetOfType returns every charset rune of the given type in ascending
// code point order.
func (a *AnalysisResult) CharsetOfType(t CharType) []rune {
	var chars []rune
	for r := range a.Charset {
		if CharTypeOf(r) == t {
			chars = append(chars, r)
		}
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// HasWord reports whether the exact string appeared in the training
// corpus.
func (a *AnalysisResult) HasWord(word string) bool {
	_, ok := a.Words[word]
	return ok
}

// TrainingWords returns the unique training strings in ascending order.
func (a *AnalysisResult) TrainingWords() []string {
	words := make([]string, 0, len(a.Words))
	for w := range a.Words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Summary renders a human-readable overview of the analysis.
func (a *AnalysisResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total words analyzed: %d\n", a.TotalWords)
	fmt.Fprintf(&b, "Unique words: %d\n", a.UniqueWords)
	fmt.Fprintf(&b, "Length range: %d - %d\n", a.MinLength, a.MaxLength)
	fmt.Fprintf(&b, "Charset size: %d\n", len(a.Charset))
	b.WriteString("\nLength distribution:\n")
	dist := a.LengthDistribution()
	for _, l := range a.SortedLengths() {
		bar := strings.Repeat("#", int(dist[l]*50))
		fmt.Fprintf(&b, "  %3d: %s (%d words, %.1f%%)\n", l, bar, a.LengthHistogram[l], dist[l]*100)
	}
	b.WriteString("\nCharacter type frequency:\n")
	totalChars := 0
	for _, c := range a.TypeFrequency {
		totalChars += c
	}
	for _, t := range AllCharTypes {
		count := a.TypeFrequency[t]
		pct := 0.0
		if totalChars > 0 {
			pct = float64(count) / float64(totalChars) * 100
		}
		fmt.Fprintf(&b, "  %-8s: %6d (%.1f%%)\n", t, count, pct)
	}
	return b.String()
}
