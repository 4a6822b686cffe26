/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: exporters.go
Description: Wordlist exporters for Akaylee WordGen. Renders generated wordlists as
plain text, JSON, CSV, or JSON Lines, with optional per-word hashing applied before
formatting.
*/

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Format names one output format.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
)

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatText, FormatJSON, FormatCSV, FormatJSONL:
		return Format(strings.ToLower(name)), nil
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Exporter renders a wordlist in one format.
type Exporter interface {
	Export(w io.Writer, words []string) error
}

// TextExporter writes one word per line.
type TextExporter struct{}

// Export writes the list.
func (e *TextExporter) Export(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}

// JSONExporter writes the list as an indented JSON document. When
// IncludeStats is set the document wraps the list with its count.
type JSONExporter struct {
	IncludeStats bool
}

// Export writes the document.
func (e *JSONExporter) Export(w io.Writer, words []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if e.IncludeStats {
		return enc.Encode(struct {
			Count int      `json:"count"`
			Items []string `json:"items"`
		}{Count: len(words), Items: words})
	}
	return enc.Encode(words)
}

// CSVExporter writes value rows with optional index and hash columns.
type CSVExporter struct {
	IncludeIndex bool
	Hasher       *Hasher
}

// Export writes header and rows.
func (e *CSVExporter) Export(w io.Writer, words []string) error {
	cw := csv.NewWriter(w)

	header := []string{"value"}
	if e.IncludeIndex {
		header = append([]string{"index"}, header...)
	}
	if e.Hasher != nil {
		header = append(header, string(e.Hasher.Algorithm())+"_hash")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, word := range words {
		row := []string{word}
		if e.IncludeIndex {
			row = append([]string{strconv.Itoa(i)}, row...)
		}
		if e.Hasher != nil {
			row = append(row, e.Hasher.Hash(word))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONLExporter writes one JSON object per line. IncludeMetadata adds
// index and length fields.
type JSONLExporter struct {
	IncludeMetadata bool
}

// Export writes the lines.
func (e *JSONLExporter) Export(w io.Writer, words []string) error {
	enc := json.NewEncoder(w)
	for i, word := range words {
		var obj any
		if e.IncludeMetadata {
			obj = struct {
				Index  int    `json:"index"`
				Value  string `json:"value"`
				Length int    `json:"length"`
			}{Index: i, Value: word, Length: len([]rune(word))}
		} else {
			obj = struct {
				Value string `json:"value"`
			}{Value: word}
		}
		if err := enc.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// ResultExporter combines format selection with optional hashing.
type ResultExporter struct {
	exporter Exporter
	hasher   *Hasher
}

// NewResultExporter builds an exporter for the format, hashing each word
// first when algorithm is non-empty. CSV keeps the plain value and adds
// the hash as a column instead.
func NewResultExporter(format Format, algorithm HashAlgorithm) (*ResultExporter, error) {
	var hasher *Hasher
	if algorithm != "" {
		var err error
		if hasher, err = NewHasher(algorithm); err != nil {
			return nil, err
		}
	}

	re := &ResultExporter{}
	switch format {
	case FormatText:
		re.exporter = &TextExporter{}
		re.hasher = hasher
	case FormatJSON:
		re.exporter = &JSONExporter{IncludeStats: true}
		re.hasher = hasher
	case FormatCSV:
		re.exporter = &CSVExporter{IncludeIndex: true, Hasher: hasher}
	case FormatJSONL:
		re.exporter = &JSONLExporter{IncludeMetadata: true}
		re.hasher = hasher
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return re, nil
}

// Export renders the wordlist to the writer.
func (re *ResultExporter) Export(w io.Writer, words []string) error {
	if re.hasher != nil {
		words = re.hasher.HashMany(words)
	}
	return re.exporter.Export(w, words)
}

// ExportToFile renders the wordlist to a file.
func (re *ResultExporter) ExportToFile(words []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}
	defer f.Close()
	return re.Export(f, words)
}
