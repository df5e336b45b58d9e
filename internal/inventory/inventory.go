// Package inventory holds the bounded, session-owned sequence of records that
// the engine sorts and searches.
package inventory

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/calvinalkan/freefire/pkg/engine"
)

// Inventory is a fixed-capacity, order-significant sequence of records plus
// the key it is currently sorted by.
//
// Not safe for concurrent use.
type Inventory struct {
	limits Limits
	items  []engine.Record
	order  engine.Key
}

// New returns an empty inventory bounded by limits.
func New(limits Limits) *Inventory {
	return &Inventory{
		limits: limits,
		items:  make([]engine.Record, 0, min(max(limits.Capacity, 0), MaxCapacity)),
	}
}

// Limits returns the inventory's bounds.
func (inv *Inventory) Limits() Limits { return inv.limits }

// Len returns the number of records.
func (inv *Inventory) Len() int { return len(inv.items) }

// Cap returns the capacity.
func (inv *Inventory) Cap() int { return inv.limits.Capacity }

// Order returns the key the records are sorted by, or KeyNone.
func (inv *Inventory) Order() engine.Key { return inv.order }

// Items returns a copy of the records in their current order.
func (inv *Inventory) Items() []engine.Record {
	return engine.CloneRecords(inv.items)
}

// NormalizeName trims surrounding space and converts s to NFC, so that
// precomposed and decomposed accents compare equal byte-wise.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Validate normalizes rec and checks it against the limits.
func (l Limits) Validate(rec engine.Record) (engine.Record, error) {
	rec.Name = NormalizeName(rec.Name)
	rec.Category = NormalizeName(rec.Category)

	if rec.Name == "" {
		return engine.Record{}, ErrNameRequired
	}

	if strings.IndexFunc(rec.Name, unicode.IsControl) >= 0 {
		return engine.Record{}, fmt.Errorf("%w in name %q", ErrInvalidCharacter, rec.Name)
	}

	if n := utf8.RuneCountInString(rec.Name); n > l.NameMaxLen {
		return engine.Record{}, fmt.Errorf("%w: %d > %d characters", ErrNameTooLong, n, l.NameMaxLen)
	}

	if rec.Category == "" {
		return engine.Record{}, ErrCategoryRequired
	}

	if strings.IndexFunc(rec.Category, unicode.IsControl) >= 0 {
		return engine.Record{}, fmt.Errorf("%w in category %q", ErrInvalidCharacter, rec.Category)
	}

	if n := utf8.RuneCountInString(rec.Category); n > l.CategoryMaxLen {
		return engine.Record{}, fmt.Errorf("%w: %d > %d characters", ErrCategoryTooLong, n, l.CategoryMaxLen)
	}

	if rec.Quantity < l.MinQuantity || rec.Quantity > l.MaxQuantity {
		return engine.Record{}, fmt.Errorf("%w: %s must be %d-%d, got %d",
			ErrQuantityOutOfRange, l.AttributeLabel, l.MinQuantity, l.MaxQuantity, rec.Quantity)
	}

	return rec, nil
}

// Insert appends rec after validation and marks the inventory unordered.
//
// Returns the stored (normalized) record and whether its name was already
// present. Duplicate names are accepted.
func (inv *Inventory) Insert(rec engine.Record) (engine.Record, bool, error) {
	if len(inv.items) >= inv.limits.Capacity {
		return engine.Record{}, false, fmt.Errorf("%w (%d items)", ErrFull, inv.limits.Capacity)
	}

	rec, err := inv.limits.Validate(rec)
	if err != nil {
		return engine.Record{}, false, err
	}

	idx, _ := engine.LinearSearch(inv.items, rec.Name)
	duplicate := idx != engine.NotFound

	inv.items = append(inv.items, rec)
	inv.order = engine.KeyNone

	return rec, duplicate, nil
}

// Remove deletes the first record named name, shifting later records left.
// Relative order is preserved, so the sort key stays valid.
func (inv *Inventory) Remove(name string) (engine.Record, error) {
	name = NormalizeName(name)

	idx, _ := engine.LinearSearch(inv.items, name)
	if idx == engine.NotFound {
		return engine.Record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	removed := inv.items[idx]

	copy(inv.items[idx:], inv.items[idx+1:])
	inv.items[len(inv.items)-1] = engine.Record{}
	inv.items = inv.items[:len(inv.items)-1]

	return removed, nil
}

// Clear removes every record.
func (inv *Inventory) Clear() {
	clear(inv.items)
	inv.items = inv.items[:0]
	inv.order = engine.KeyNone
}

// Find runs a linear search for name. The result is returned even on a miss
// so callers can report the comparison count.
func (inv *Inventory) Find(name string) (engine.Record, engine.SearchResult, error) {
	return inv.find(name, engine.Linear)
}

// BinaryFind runs a binary search for name. It refuses with
// [ErrNotSortedByName] unless the last sort was by name and no insert
// happened since.
func (inv *Inventory) BinaryFind(name string) (engine.Record, engine.SearchResult, error) {
	if inv.order != engine.KeyName {
		return engine.Record{}, engine.SearchResult{Method: engine.Binary, Index: engine.NotFound}, ErrNotSortedByName
	}

	return inv.find(name, engine.Binary)
}

func (inv *Inventory) find(name string, method engine.Method) (engine.Record, engine.SearchResult, error) {
	name = NormalizeName(name)

	res, err := engine.Search(inv.items, name, method)
	if err != nil {
		return engine.Record{}, res, err
	}

	if !res.Found() {
		return engine.Record{}, res, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return inv.items[res.Index], res, nil
}

// Sort sorts the records in place with alg and records the resulting order.
func (inv *Inventory) Sort(eng *engine.Engine, alg engine.Algorithm) (engine.SortResult, error) {
	res, err := eng.Sort(inv.items, alg)
	if err != nil {
		return engine.SortResult{}, err
	}

	inv.order = res.Key

	return res, nil
}

// Benchmark runs every algorithm on copies. The inventory is not modified.
func (inv *Inventory) Benchmark(eng *engine.Engine) []engine.BenchResult {
	return eng.Benchmark(inv.items)
}
