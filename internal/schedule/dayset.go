package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// DaySet is a set of weekdays indexed by time.Weekday
type DaySet [domain.DaysPerWeek]bool

// NewDaySet builds a set from weekday numbers, values outside 0..6 are ignored
func NewDaySet(days ...int) DaySet {
	var s DaySet
	for _, d := range days {
		if d >= domain.MinWeekday && d <= domain.MaxWeekday {
			s[d] = true
		}
	}
	return s
}

// Has reports whether the weekday is in the set
func (s DaySet) Has(day time.Weekday) bool {
	if day < domain.MinWeekday || day > domain.MaxWeekday {
		return false
	}
	return s[day]
}

// Days returns the sorted weekday numbers of the set
func (s DaySet) Days() []int {
	days := make([]int, 0, domain.DaysPerWeek)
	for i, ok := range s {
		if ok {
			days = append(days, i)
		}
	}
	return days
}

func (s DaySet) Len() int {
	return len(s.Days())
}

// Weekdays is Monday–Friday
var Weekdays = NewDaySet(1, 2, 3, 4, 5)

// EveryDay is Sunday–Saturday
var EveryDay = NewDaySet(0, 1, 2, 3, 4, 5, 6)

// MondayToSaturday is the default set of working days
var MondayToSaturday = NewDaySet(1, 2, 3, 4, 5, 6)
