// Package timeslot provides the fixed-granularity catalog of times of day.
// Every ordering question about a time of day is answered by comparing catalog indexes.
package timeslot

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// NotFound is returned by IndexOf for values outside the catalog
const NotFound = -1

// DefaultGranularityMinutes is the slot interval used by the editor
const DefaultGranularityMinutes = 30

// ErrInvalidGranularity is returned by Build for an unusable granularity
var ErrInvalidGranularity = errors.New("timeslot: invalid granularity")

// Catalog is an immutable ordered sequence of all slots of a day
type Catalog struct {
	granularity int
	slots       []types.TimeString
	index       map[types.TimeString]int
}

// Build creates the catalog 00:00 … (24:00 - granularity).
// The granularity must divide a day and leave at least two slots.
func Build(granularityMinutes int) (*Catalog, error) {
	if granularityMinutes <= 0 || types.MinutesPerDay%granularityMinutes != 0 ||
		types.MinutesPerDay/granularityMinutes < 2 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidGranularity, granularityMinutes)
	}

	count := types.MinutesPerDay / granularityMinutes
	c := &Catalog{
		granularity: granularityMinutes,
		slots:       make([]types.TimeString, 0, count),
		index:       make(map[types.TimeString]int, count),
	}

	slot := types.TimeString("00:00")
	for {
		c.index[slot] = len(c.slots)
		c.slots = append(c.slots, slot)

		next, err := slot.AddMinutes(granularityMinutes)
		if err != nil {
			break
		}
		slot = next
	}

	return c, nil
}

// MustBuild is Build for package-level catalogs with known-good granularity
func MustBuild(granularityMinutes int) *Catalog {
	c, err := Build(granularityMinutes)
	if err != nil {
		panic(err)
	}
	return c
}

// IndexOf returns the position of slot or NotFound
func (c *Catalog) IndexOf(slot types.TimeString) int {
	if i, ok := c.index[slot]; ok {
		return i
	}
	return NotFound
}

// IsValid reports catalog membership
func (c *Catalog) IsValid(slot types.TimeString) bool {
	_, ok := c.index[slot]
	return ok
}

// At returns the slot at index i. i must be within [0, LastIndex()].
func (c *Catalog) At(i int) types.TimeString {
	return c.slots[i]
}

func (c *Catalog) Len() int {
	return len(c.slots)
}

func (c *Catalog) LastIndex() int {
	return len(c.slots) - 1
}

func (c *Catalog) Granularity() int {
	return c.granularity
}

// Slots returns a copy of all slots
func (c *Catalog) Slots() []types.TimeString {
	return c.Range(0, len(c.slots))
}

// Range returns a copy of slots[from:to], bounds clamped to the catalog
func (c *Catalog) Range(from, to int) []types.TimeString {
	from = max(from, 0)
	to = min(to, len(c.slots))
	if from >= to {
		return []types.TimeString{}
	}
	out := make([]types.TimeString, to-from)
	copy(out, c.slots[from:to])
	return out
}
