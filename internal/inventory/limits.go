package inventory

import (
	"fmt"
	"slices"
	"strings"
)

// Profile names.
const (
	ProfileBackpack = "backpack"
	ProfileTower    = "tower"
)

// Field bounds shared by every profile, in runes.
const (
	NameMaxLen     = 29
	CategoryMaxLen = 19
)

// MaxCapacity bounds capacity overrides.
const MaxCapacity = 1000

// Limits bounds an inventory's size and record fields.
type Limits struct {
	Profile        string
	Capacity       int
	NameMaxLen     int
	CategoryMaxLen int
	MinQuantity    int
	MaxQuantity    int

	// AttributeLabel names the numeric field for display ("quantity" or "priority").
	AttributeLabel string
	// Title heads listings.
	Title string
}

var profiles = map[string]Limits{
	ProfileBackpack: {
		Profile:        ProfileBackpack,
		Capacity:       10,
		NameMaxLen:     NameMaxLen,
		CategoryMaxLen: CategoryMaxLen,
		MinQuantity:    0,
		MaxQuantity:    999999,
		AttributeLabel: "quantity",
		Title:          "Backpack",
	},
	ProfileTower: {
		Profile:        ProfileTower,
		Capacity:       20,
		NameMaxLen:     NameMaxLen,
		CategoryMaxLen: CategoryMaxLen,
		MinQuantity:    1,
		MaxQuantity:    10,
		AttributeLabel: "priority",
		Title:          "Rescue tower components",
	},
}

// Profiles returns the known profile names, sorted.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// LimitsFor returns the limits of a named profile. capacity overrides the
// profile default when positive and must not exceed [MaxCapacity].
func LimitsFor(profile string, capacity int) (Limits, error) {
	limits, ok := profiles[strings.ToLower(strings.TrimSpace(profile))]
	if !ok {
		return Limits{}, fmt.Errorf("%w: %q (want %s)", ErrUnknownProfile, profile, strings.Join(Profiles(), "|"))
	}

	if capacity < 0 || capacity > MaxCapacity {
		return Limits{}, fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidCapacity, capacity, MaxCapacity)
	}

	if capacity > 0 {
		limits.Capacity = capacity
	}

	return limits, nil
}
