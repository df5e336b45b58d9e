package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/freefire/pkg/engine"
)

// itemFile is the on-disk shape of an item file:
//
//	// starting kit
//	{
//	  "items": [
//	    {"name": "Bandage", "category": "cura", "quantity": 3},
//	  ],
//	}
type itemFile struct {
	Items []engine.Record `json:"items"`
}

// ParseItems decodes a JSONC item file. Unknown fields are rejected.
func ParseItems(data []byte) ([]engine.Record, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	var file itemFile

	err = dec.Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	return file.Items, nil
}

// LoadFile reads and parses an item file.
func LoadFile(path string) ([]engine.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: file does not exist", ErrItemFileRead, path)
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrItemFileRead, path, err)
	}

	items, err := ParseItems(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrItemFileInvalid, path, err)
	}

	return items, nil
}

// Rejected is an item InsertAll could not insert.
type Rejected struct {
	Index int
	Name  string
	Err   error
}

// LoadReport summarizes an InsertAll call.
type LoadReport struct {
	Inserted   int
	Duplicates []string
	Rejected   []Rejected
}

// InsertAll inserts items in order, continuing past rejected ones.
func (inv *Inventory) InsertAll(items []engine.Record) LoadReport {
	var report LoadReport

	for i, item := range items {
		stored, duplicate, err := inv.Insert(item)
		if err != nil {
			report.Rejected = append(report.Rejected, Rejected{Index: i, Name: item.Name, Err: err})

			continue
		}

		report.Inserted++

		if duplicate {
			report.Duplicates = append(report.Duplicates, stored.Name)
		}
	}

	return report
}
