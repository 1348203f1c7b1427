package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// DayFor returns the config of the weekday of date
func (n *Normalizer) DayFor(week domain.WeekSchedule, date time.Time) domain.DayConfig {
	return week.Day(date.Weekday())
}

// WorkingSlots lists the catalog slots of date inside [start, end) and outside [breakStart, breakEnd).
// Bookings, lead time and buffers are applied downstream.
func (n *Normalizer) WorkingSlots(week domain.WeekSchedule, date time.Time) domain.WorkingDay {
	cfg := n.DayFor(week, date)
	result := domain.WorkingDay{
		Date:    date,
		Weekday: date.Weekday(),
		Config:  cfg,
		Slots:   []domain.WorkingSlot{},
	}
	if !cfg.Enabled {
		return result
	}

	start := n.indexOf(cfg.Start, n.startIdx)
	end := n.indexOf(cfg.End, n.endIdx)
	breakStart, breakEnd := end, end
	if cfg.BreakEnabled {
		breakStart = n.indexOf(cfg.BreakStart, n.breakStartIdx)
		breakEnd = n.indexOf(cfg.BreakEnd, n.breakEndIdx)
	}

	for i := start; i < end; i++ {
		if i >= breakStart && i < breakEnd {
			continue
		}
		result.Slots = append(result.Slots, domain.WorkingSlot{
			StartTime:       n.catalog.At(i),
			DurationMinutes: n.catalog.Granularity(),
		})
	}

	return result
}
