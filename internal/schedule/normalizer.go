// Package schedule canonicalizes persisted working-hours data into a WeekSchedule
// and edits it without ever leaving the DayConfig invariants:
//
//	index(start) < index(end)
//	breakEnabled  => index(start) <= index(breakStart) < index(breakEnd) <= index(end)
//	!breakEnabled => breakStart/breakEnd hold the default placeholders
//
// All operations are pure and total: malformed input degrades to defaults.
package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/timeslot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Normalizer is safe for concurrent use
type Normalizer struct {
	catalog  *timeslot.Catalog
	defaults Defaults

	startIdx      int
	endIdx        int
	breakStartIdx int
	breakEndIdx   int
}

// NewNormalizer checks the defaults against the catalog
func NewNormalizer(catalog *timeslot.Catalog, defaults Defaults) (*Normalizer, error) {
	n := &Normalizer{
		catalog:       catalog,
		defaults:      defaults,
		startIdx:      catalog.IndexOf(defaults.Start),
		endIdx:        catalog.IndexOf(defaults.End),
		breakStartIdx: catalog.IndexOf(defaults.BreakStart),
		breakEndIdx:   catalog.IndexOf(defaults.BreakEnd),
	}

	for name, idx := range map[string]int{
		"start":      n.startIdx,
		"end":        n.endIdx,
		"breakStart": n.breakStartIdx,
		"breakEnd":   n.breakEndIdx,
	} {
		if idx == timeslot.NotFound {
			return nil, fmt.Errorf("%w: %s is not a %d-minute slot", ErrInvalidDefaults, name, catalog.Granularity())
		}
	}

	if n.startIdx >= n.endIdx {
		return nil, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidDefaults, defaults.Start, defaults.End)
	}
	if n.breakStartIdx >= n.breakEndIdx {
		return nil, fmt.Errorf("%w: break start %s must be before break end %s",
			ErrInvalidDefaults, defaults.BreakStart, defaults.BreakEnd)
	}

	return n, nil
}

func (n *Normalizer) Catalog() *timeslot.Catalog {
	return n.catalog
}

func (n *Normalizer) Defaults() Defaults {
	return n.defaults
}

// DefaultDay returns the default config of a day with the given enabled flag
func (n *Normalizer) DefaultDay(enabled bool) domain.DayConfig {
	return domain.DayConfig{
		Enabled:      enabled,
		Start:        n.defaults.Start,
		End:          n.defaults.End,
		BreakEnabled: false,
		BreakStart:   n.defaults.BreakStart,
		BreakEnd:     n.defaults.BreakEnd,
	}
}

// NormalizeDay turns any partial day into a DayConfig satisfying the invariants
func (n *Normalizer) NormalizeDay(patch domain.DayPatch, fallbackEnabled bool) domain.DayConfig {
	day := n.DefaultDay(fallbackEnabled)
	if patch.Enabled != nil {
		day.Enabled = *patch.Enabled
	}

	start := n.resolve(patch.Start, n.startIdx)
	end := n.resolve(patch.End, n.endIdx)

	// Окно нулевой или отрицательной ширины расширяем до одного слота.
	// Если начало стоит на последнем слоте, сдвигаем его на слот раньше.
	if end <= start {
		last := n.catalog.LastIndex()
		if start >= last {
			start = last - 1
		}
		end = start + 1
	}

	day.Start = n.catalog.At(start)
	day.End = n.catalog.At(end)

	if patch.BreakEnabled == nil || !*patch.BreakEnabled {
		return day
	}

	// Порядок важен: сначала начало перерыва, затем конец относительно уже зажатого начала
	breakStart := clamp(n.resolve(patch.BreakStart, n.breakStartIdx), start, end)
	breakEnd := clamp(n.resolve(patch.BreakEnd, n.breakEndIdx), breakStart, end)

	if breakEnd <= breakStart {
		return day
	}

	day.BreakEnabled = true
	day.BreakStart = n.catalog.At(breakStart)
	day.BreakEnd = n.catalog.At(breakEnd)

	return day
}

// resolve returns the catalog index of value, or fallback when value is absent or not a slot
func (n *Normalizer) resolve(value *types.TimeString, fallback int) int {
	if value == nil {
		return fallback
	}
	if idx := n.catalog.IndexOf(*value); idx != timeslot.NotFound {
		return idx
	}
	return fallback
}

// indexOf is resolve for stored values
func (n *Normalizer) indexOf(value types.TimeString, fallback int) int {
	return n.resolve(&value, fallback)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
