package schedule

import (
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Defaults holds the values substituted for missing or invalid input.
// It is passed to the Normalizer by value and never changes after construction.
type Defaults struct {
	Start       types.TimeString
	End         types.TimeString
	BreakStart  types.TimeString
	BreakEnd    types.TimeString
	WorkingDays DaySet
}

// StandardDefaults returns 08:00–18:00 with a 12:00–13:00 break placeholder, Monday–Saturday
func StandardDefaults() Defaults {
	return Defaults{
		Start:       "08:00",
		End:         "18:00",
		BreakStart:  "12:00",
		BreakEnd:    "13:00",
		WorkingDays: MondayToSaturday,
	}
}
