package engine

import "strings"

// Record is one inventory entry.
//
// Name identifies the record. Uniqueness is expected but not enforced here.
// Quantity holds the profile's numeric attribute (quantity or priority).
type Record struct {
	Name     string `json:"name"     yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Key names the record field a sequence is ordered by.
type Key int

// Keys. KeyNone marks an unordered sequence.
const (
	KeyNone Key = iota
	KeyName
	KeyCategory
	KeyQuantity
)

// String returns the key's lowercase name.
func (k Key) String() string {
	switch k {
	case KeyName:
		return "name"
	case KeyCategory:
		return "category"
	case KeyQuantity:
		return "quantity"
	case KeyNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseKey parses a key name. Returns KeyNone and false for anything else.
func ParseKey(s string) (Key, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return KeyName, true
	case "category", "type":
		return KeyCategory, true
	case "quantity", "priority":
		return KeyQuantity, true
	default:
		return KeyNone, false
	}
}

// CloneRecords returns an independent copy of items.
// Record holds only value fields, so a slice copy is a deep copy.
func CloneRecords(items []Record) []Record {
	if items == nil {
		return nil
	}

	out := make([]Record, len(items))
	copy(out, items)

	return out
}
