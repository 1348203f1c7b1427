package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UpdateDay merges patch onto the stored day and re-normalizes it.
// An unknown weekday leaves the week unchanged.
func (n *Normalizer) UpdateDay(week domain.WeekSchedule, day time.Weekday, patch domain.DayPatch) domain.WeekSchedule {
	if day < domain.MinWeekday || day > domain.MaxWeekday {
		return week
	}
	current := week.Days[day]
	week.Days[day] = n.NormalizeDay(current.Patch().Merge(patch), current.Enabled)
	return week
}

// DayOptions are the values the editor may offer for each selector of a day
type DayOptions struct {
	Start      []types.TimeString `json:"start"`
	End        []types.TimeString `json:"end"`
	BreakStart []types.TimeString `json:"breakStart"`
	BreakEnd   []types.TimeString `json:"breakEnd"`
}

// Options derives the selector lists from the current start/end/breakStart of a day
func (n *Normalizer) Options(day domain.DayConfig) DayOptions {
	start := n.indexOf(day.Start, n.startIdx)
	end := n.indexOf(day.End, n.endIdx)
	breakStart := n.indexOf(day.BreakStart, n.breakStartIdx)

	return DayOptions{
		Start:      n.catalog.Range(0, n.catalog.LastIndex()),
		End:        n.catalog.Range(start+1, n.catalog.Len()),
		BreakStart: n.catalog.Range(start, end),
		BreakEnd:   n.catalog.Range(max(breakStart, start)+1, end+1),
	}
}

// WeekOptions returns Options for every day of the week
func (n *Normalizer) WeekOptions(week domain.WeekSchedule) [domain.DaysPerWeek]DayOptions {
	var opts [domain.DaysPerWeek]DayOptions
	for day, cfg := range week.Days {
		opts[day] = n.Options(cfg)
	}
	return opts
}

// Validate is the save-time check
func Validate(week domain.WeekSchedule) error {
	if !week.HasEnabledDay() {
		return ErrNoEnabledDay
	}
	return nil
}

// Canonical returns the write-path representation of the week
func Canonical(week domain.WeekSchedule) domain.CanonicalSchedule {
	return domain.CanonicalSchedule{
		WorkingDays:  week.EnabledDays(),
		WorkingHours: week,
	}
}
