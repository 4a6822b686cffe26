/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: stats.go
Description: Analysis statistics exporter for Akaylee WordGen. Serializes a trained
model's summary, charset, length distribution, and per-position statistics as JSON,
CSV, or summary text for inspection and downstream tooling.
*/

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/kleascm/akaylee-wordgen/pkg/models"
)

// StatsExporter serializes an analysis result.
type StatsExporter struct {
	result *models.AnalysisResult
}

// NewStatsExporter creates an exporter over a trained model.
func NewStatsExporter(result *models.AnalysisResult) *StatsExporter {
	return &StatsExporter{result: result}
}

// statsDocument is the JSON shape.
type statsDocument struct {
	Summary            statsSummary                 `json:"summary"`
	Charset            []string                     `json:"charset"`
	CharsetByType      map[string][]string          `json:"charset_by_type"`
	LengthDistribution map[string]lengthBucketStats `json:"length_distribution"`
	PositionStats      map[string]map[string]posOut `json:"position_stats"`
	TypeFrequency      map[string]int               `json:"type_frequency"`
}

type statsSummary struct {
	TotalWords  int `json:"total_words"`
	UniqueWords int `json:"unique_words"`
	MinLength   int `json:"min_length"`
	MaxLength   int `json:"max_length"`
	CharsetSize int `json:"charset_size"`
}

type lengthBucketStats struct {
	Count      int            `json:"count"`
	Percentage float64        `json:"percentage"`
	Patterns   map[string]int `json:"patterns"`
}

type posOut struct {
	TotalChars  int            `json:"total_chars"`
	UniqueChars int            `json:"unique_chars"`
	TopChars    map[string]int `json:"top_chars"`
	TypeCounts  map[string]int `json:"type_distribution"`
}

// topPatterns keeps the 10 most frequent skeletons per bucket in the
// JSON document.
const topPatterns = 10

// document builds the serializable view.
func (e *StatsExporter) document() *statsDocument {
	r := e.result

	doc := &statsDocument{
		Summary: statsSummary{
			TotalWords:  r.TotalWords,
			UniqueWords: r.UniqueWords,
			MinLength:   r.MinLength,
			MaxLength:   r.MaxLength,
			CharsetSize: len(r.Charset),
		},
		CharsetByType:      make(map[string][]string),
		LengthDistribution: make(map[string]lengthBucketStats),
		PositionStats:      make(map[string]map[string]posOut),
		TypeFrequency:      make(map[string]int),
	}

	for _, c := range sortedCharset(r.Charset) {
		doc.Charset = append(doc.Charset, string(c))
	}

	for _, t := range models.AllCharTypes {
		chars := make([]string, 0)
		for _, c := range r.CharsetOfType(t) {
			chars = append(chars, string(c))
		}
		doc.CharsetByType[t.String()] = chars
		doc.TypeFrequency[t.String()] = r.TypeFrequency[t]
	}

	for _, length := range r.SortedLengths() {
		ls := r.Lengths[length]
		key := strconv.Itoa(length)

		percentage := 0.0
		if r.TotalWords > 0 {
			percentage = float64(ls.Count) / float64(r.TotalWords) * 100
		}
		doc.LengthDistribution[key] = lengthBucketStats{
			Count:      ls.Count,
			Percentage: percentage,
			Patterns:   topN(ls.Patterns, topPatterns),
		}

		positions := make(map[string]posOut, len(ls.Positions))
		for pos, ps := range ls.Positions {
			typeCounts := make(map[string]int, len(ps.TypeCounts))
			for t, count := range ps.TypeCounts {
				typeCounts[t.String()] = count
			}
			positions[strconv.Itoa(pos)] = posOut{
				TotalChars:  ps.Total(),
				UniqueChars: len(ps.CharCounts),
				TopChars:    topRunes(ps.CharCounts, topPatterns),
				TypeCounts:  typeCounts,
			}
		}
		doc.PositionStats[key] = positions
	}

	return doc
}

// ToJSON serializes the statistics as an indented JSON document.
func (e *StatsExporter) ToJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e.document())
}

// ToCSV writes per-length rows: length, count, percentage, top pattern.
func (e *StatsExporter) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"length", "count", "percentage", "top_pattern"}); err != nil {
		return err
	}
	r := e.result
	for _, length := range r.SortedLengths() {
		ls := r.Lengths[length]
		percentage := 0.0
		if r.TotalWords > 0 {
			percentage = float64(ls.Count) / float64(r.TotalWords) * 100
		}
		top := ""
		if patterns := ls.WeightedPatterns(); len(patterns) > 0 {
			top = patterns[0].Pattern
		}
		row := []string{
			strconv.Itoa(length),
			strconv.Itoa(ls.Count),
			strconv.FormatFloat(percentage, 'f', 2, 64),
			top,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToSummary writes the human-readable summary.
func (e *StatsExporter) ToSummary(w io.Writer) error {
	_, err := io.WriteString(w, e.result.Summary())
	return err
}

// ToFile writes the statistics to a file in the given format. Formats
// accepted are json, csv, and text.
func (e *StatsExporter) ToFile(path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stats file %s: %w", path, err)
	}
	defer f.Close()
	switch format {
	case FormatJSON:
		return e.ToJSON(f)
	case FormatCSV:
		return e.ToCSV(f)
	case FormatText:
		return e.ToSummary(f)
	}
	return fmt.Errorf("unsupported stats format %q", format)
}

func sortedCharset(charset map[rune]int) []rune {
	runes := make([]rune, 0, len(charset))
	for r := range charset {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// topN keeps the n highest-count entries of a string-keyed counter.
func topN(counts map[string]int, n int) map[string]int {
	type kv struct {
		key   string
		count int
	}
	entries := make([]kv, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, kv{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.key] = e.count
	}
	return out
}

// topRunes keeps the n highest-count entries of a rune-keyed counter.
func topRunes(counts map[rune]int, n int) map[string]int {
	weighted := models.RuneCountsFromMap(counts)
	if len(weighted) > n {
		weighted = weighted[:n]
	}
	out := make(map[string]int, len(weighted))
	for _, rc := range weighted {
		out[string(rc.Rune)] = rc.Count
	}
	return out
}
