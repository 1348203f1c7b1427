package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Preset names
const (
	PresetWeekdays = "weekdays"
	PresetEveryday = "everyday"
	PresetClear    = "clear"
)

// Preset is a bulk edit: days in EnabledDays get Overrides and are enabled,
// every other day is disabled with its hours kept.
type Preset struct {
	Name        string
	EnabledDays DaySet
	Overrides   domain.DayPatch
}

func nineToSix() domain.DayPatch {
	return domain.DayPatch{
		Start:        ptr.Ptr(types.TimeString("09:00")),
		End:          ptr.Ptr(types.TimeString("18:00")),
		BreakEnabled: ptr.Ptr(false),
	}
}

// Presets returns the standard presets in display order
func Presets() []Preset {
	return []Preset{
		{Name: PresetWeekdays, EnabledDays: Weekdays, Overrides: nineToSix()},
		{Name: PresetEveryday, EnabledDays: EveryDay, Overrides: nineToSix()},
		{Name: PresetClear},
	}
}

// LookupPreset finds a standard preset by name
func LookupPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply applies a preset to the week
func (n *Normalizer) Apply(week domain.WeekSchedule, preset Preset) domain.WeekSchedule {
	return n.ApplyPreset(week, preset.EnabledDays, preset.Overrides)
}

// ApplyPreset enables exactly the days of the set, merging overrides onto them.
// Days outside the set only get enabled=false so re-enabling restores their hours.
// Unlike a merge onto every day, the stored hours of disabled days stay untouched.
func (n *Normalizer) ApplyPreset(week domain.WeekSchedule, enabled DaySet, overrides domain.DayPatch) domain.WeekSchedule {
	for day := range week.Days {
		candidate := week.Days[day].Patch()
		if enabled.Has(time.Weekday(day)) {
			candidate = candidate.Merge(overrides)
			candidate.Enabled = ptr.Ptr(true)
		} else {
			candidate.Enabled = ptr.Ptr(false)
		}
		week.Days[day] = n.NormalizeDay(candidate, false)
	}
	return week
}
