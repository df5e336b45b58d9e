package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/freefire/pkg/engine"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// exportPerms is applied after an atomic write, which creates files 0600.
const exportPerms = 0o644

// SortReport is the serializable form of one timed sort.
type SortReport struct {
	Algorithm   string          `json:"algorithm"   yaml:"algorithm"`
	Key         string          `json:"key"         yaml:"key"`
	Comparisons int             `json:"comparisons" yaml:"comparisons"`
	Seconds     float64         `json:"seconds"     yaml:"seconds"`
	Items       []engine.Record `json:"items"       yaml:"items"`
}

// BenchReport is the serializable form of a benchmark run.
type BenchReport struct {
	Profile string          `json:"profile" yaml:"profile"`
	Source  []engine.Record `json:"source"  yaml:"source"`
	Results []SortReport    `json:"results" yaml:"results"`
}

// SearchReport is the serializable form of a search.
type SearchReport struct {
	Name        string         `json:"name"             yaml:"name"`
	Method      string         `json:"method"           yaml:"method"`
	Index       int            `json:"index"            yaml:"index"`
	Comparisons int            `json:"comparisons"      yaml:"comparisons"`
	Item        *engine.Record `json:"item,omitempty"   yaml:"item,omitempty"`
}

// NewSortReport converts a sort result and the sorted items.
func NewSortReport(res engine.SortResult, items []engine.Record) SortReport {
	return SortReport{
		Algorithm:   res.Algorithm.String(),
		Key:         res.Key.String(),
		Comparisons: res.Comparisons,
		Seconds:     res.Seconds(),
		Items:       nonNil(items),
	}
}

// NewBenchReport converts benchmark results. source is the untouched input.
func NewBenchReport(profile string, source []engine.Record, results []engine.BenchResult) BenchReport {
	out := BenchReport{Profile: profile, Source: nonNil(source)}

	for _, res := range results {
		out.Results = append(out.Results, NewSortReport(res.SortResult, res.Items))
	}

	return out
}

// NewSearchReport converts a search result. rec is ignored on a miss.
func NewSearchReport(name string, res engine.SearchResult, rec engine.Record) SearchReport {
	out := SearchReport{
		Name:        name,
		Method:      res.Method.String(),
		Index:       res.Index,
		Comparisons: res.Comparisons,
	}

	if res.Found() {
		out.Item = &rec
	}

	return out
}

func nonNil(items []engine.Record) []engine.Record {
	if items == nil {
		return []engine.Record{}
	}

	return items
}

// Encode writes v as indented JSON or YAML. Text is not handled here; callers
// use the Write* functions for it.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		err := enc.Encode(v)
		if err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("cannot encode %q", format)
	}
}

// Export writes content to path atomically: readers see either the old file
// or the complete new one.
func Export(path string, content []byte) error {
	err := atomic.WriteFile(path, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	err = os.Chmod(path, exportPerms)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	return nil
}
