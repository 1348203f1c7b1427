package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// WorkingSlot represents a catalog slot inside the working window of a date
type WorkingSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// WorkingDay is the working window of a concrete date
type WorkingDay struct {
	Date    time.Time
	Weekday time.Weekday
	Config  DayConfig
	Slots   []WorkingSlot
}

// IsOpen returns true if the date has at least one working slot
func (d *WorkingDay) IsOpen() bool {
	return d.Config.Enabled && len(d.Slots) > 0
}

// TotalMinutes returns the sum of slot durations of the day
func (d *WorkingDay) TotalMinutes() int {
	total := 0
	for _, s := range d.Slots {
		total += s.DurationMinutes
	}
	return total
}
