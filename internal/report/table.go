// Package report renders records and engine results as text tables, JSON or
// YAML, and exports them to files.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/calvinalkan/freefire/pkg/engine"
)

// columnGap separates table columns.
const columnGap = "  "

// width measures display columns with East Asian ambiguous runes as narrow,
// so output does not depend on the user's locale.
var width = &runewidth.Condition{EastAsianWidth: false}

// writeTable writes rows under header, left-aligned. The last column is not
// padded, so lines carry no trailing spaces.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))

	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], width.StringWidth(cell))
		}
	}

	var b strings.Builder

	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			b.WriteString(cell)

			if i == len(row)-1 {
				break
			}

			b.WriteString(strings.Repeat(" ", widths[i]-width.StringWidth(cell)))
			b.WriteString(columnGap)
		}

		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteRecords writes items as an indexed table. label names the numeric
// column ("quantity" or "priority").
func WriteRecords(w io.Writer, items []engine.Record, label string) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")

		return err
	}

	header := []string{"#", "NAME", "CATEGORY", strings.ToUpper(label)}
	rows := make([][]string, len(items))

	for i, it := range items {
		rows[i] = []string{strconv.Itoa(i), it.Name, it.Category, strconv.Itoa(it.Quantity)}
	}

	return writeTable(w, header, rows)
}

// Listing is an inventory snapshot for display.
type Listing struct {
	Title    string
	Label    string
	Capacity int
	Order    engine.Key
	Items    []engine.Record
}

// WriteListing writes a one-line summary followed by the record table.
func WriteListing(w io.Writer, l Listing) error {
	order := "unordered"
	if l.Order != engine.KeyNone {
		order = "sorted by " + l.Order.String()
	}

	_, err := fmt.Fprintf(w, "%s: %d/%d items, %s\n", l.Title, len(l.Items), l.Capacity, order)
	if err != nil {
		return err
	}

	return WriteRecords(w, l.Items, l.Label)
}

// Seconds formats a duration in seconds with six decimals.
func Seconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 6, 64)
}

// WriteSort writes the one-line outcome of a sort.
func WriteSort(w io.Writer, res engine.SortResult) error {
	_, err := fmt.Fprintf(w, "%s sort by %s: %d comparisons in %s s\n",
		res.Algorithm, res.Key, res.Comparisons, Seconds(res.Seconds()))

	return err
}

// WriteSearch writes the outcome of a search for name. rec is the hit, if any.
func WriteSearch(w io.Writer, name string, res engine.SearchResult, rec engine.Record, label string) error {
	var err error

	if res.Found() {
		_, err = fmt.Fprintf(w, "found %q at index %d: %s | %s | %s %d (%s search, %d comparisons)\n",
			name, res.Index, rec.Name, rec.Category, label, rec.Quantity, res.Method, res.Comparisons)
	} else {
		_, err = fmt.Fprintf(w, "%q not found (%s search, %d comparisons)\n", name, res.Method, res.Comparisons)
	}

	return err
}

// WriteBench writes the side-by-side benchmark table followed by each
// algorithm's sorted copy.
func WriteBench(w io.Writer, results []engine.BenchResult, label string) error {
	header := []string{"ALGORITHM", "KEY", "COMPARISONS", "SECONDS"}
	rows := make([][]string, len(results))

	for i, res := range results {
		rows[i] = []string{
			res.Algorithm.String(),
			res.Key.String(),
			strconv.Itoa(res.Comparisons),
			Seconds(res.Seconds()),
		}
	}

	err := writeTable(w, header, rows)
	if err != nil {
		return err
	}

	for _, res := range results {
		_, err = fmt.Fprintf(w, "\n%s (by %s):\n", res.Algorithm, res.Key)
		if err != nil {
			return err
		}

		err = WriteRecords(w, res.Items, label)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, "\n(sorted copies; the inventory was not modified)")

	return err
}
