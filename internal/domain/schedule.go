package domain

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DayConfig represents the working hours of a single weekday
type DayConfig struct {
	Enabled      bool             `json:"enabled"`
	Start        types.TimeString `json:"start"`
	End          types.TimeString `json:"end"`
	BreakEnabled bool             `json:"breakEnabled"`
	BreakStart   types.TimeString `json:"breakStart"`
	BreakEnd     types.TimeString `json:"breakEnd"`
}

// Patch returns a DayPatch with every field of the config set
func (d DayConfig) Patch() DayPatch {
	return DayPatch{
		Enabled:      &d.Enabled,
		Start:        &d.Start,
		End:          &d.End,
		BreakEnabled: &d.BreakEnabled,
		BreakStart:   &d.BreakStart,
		BreakEnd:     &d.BreakEnd,
	}
}

// HasBreak returns true if the day has an active break
func (d DayConfig) HasBreak() bool {
	return d.BreakEnabled
}

// DayPatch is a partial DayConfig: nil fields are absent.
// Raw persisted entries and editor updates are both decoded into it.
type DayPatch struct {
	Enabled      *bool             `json:"enabled,omitempty"`
	Start        *types.TimeString `json:"start,omitempty"`
	End          *types.TimeString `json:"end,omitempty"`
	BreakEnabled *bool             `json:"breakEnabled,omitempty"`
	BreakStart   *types.TimeString `json:"breakStart,omitempty"`
	BreakEnd     *types.TimeString `json:"breakEnd,omitempty"`
}

// UnmarshalJSON decodes a patch leniently: a field with the wrong JSON type is treated as absent,
// a non-object payload yields an empty patch. It never returns an error.
func (p *DayPatch) UnmarshalJSON(data []byte) error {
	*p = DayPatch{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	p.Enabled = decodeBool(fields["enabled"])
	p.Start = decodeTime(fields["start"])
	p.End = decodeTime(fields["end"])
	p.BreakEnabled = decodeBool(fields["breakEnabled"])
	p.BreakStart = decodeTime(fields["breakStart"])
	p.BreakEnd = decodeTime(fields["breakEnd"])

	return nil
}

// Merge returns p with every field set in over replacing the value of p
func (p DayPatch) Merge(over DayPatch) DayPatch {
	if over.Enabled != nil {
		p.Enabled = over.Enabled
	}
	if over.Start != nil {
		p.Start = over.Start
	}
	if over.End != nil {
		p.End = over.End
	}
	if over.BreakEnabled != nil {
		p.BreakEnabled = over.BreakEnabled
	}
	if over.BreakStart != nil {
		p.BreakStart = over.BreakStart
	}
	if over.BreakEnd != nil {
		p.BreakEnd = over.BreakEnd
	}
	return p
}

// IsEmpty returns true if no field is set
func (p DayPatch) IsEmpty() bool {
	return p == DayPatch{}
}

func decodeBool(raw json.RawMessage) *bool {
	if raw == nil || string(raw) == "null" {
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func decodeTime(raw json.RawMessage) *types.TimeString {
	if raw == nil || string(raw) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	ts := types.TimeString(v)
	return &ts
}

// WeekSchedule represents the canonical weekly working hours, indexed by time.Weekday
type WeekSchedule struct {
	Days [DaysPerWeek]DayConfig
}

// Day returns the config of the given weekday
func (w WeekSchedule) Day(day time.Weekday) DayConfig {
	return w.Days[day]
}

// EnabledDays returns the sorted weekday numbers that are enabled
func (w WeekSchedule) EnabledDays() []int {
	days := make([]int, 0, DaysPerWeek)
	for i, d := range w.Days {
		if d.Enabled {
			days = append(days, i)
		}
	}
	return days
}

// HasEnabledDay returns true if at least one weekday is enabled
func (w WeekSchedule) HasEnabledDay() bool {
	for _, d := range w.Days {
		if d.Enabled {
			return true
		}
	}
	return false
}

// MarshalJSON writes the structured persisted shape {"days":{"0":{…},…,"6":{…}}}
func (w WeekSchedule) MarshalJSON() ([]byte, error) {
	days := make(map[string]DayConfig, DaysPerWeek)
	for i, d := range w.Days {
		days[strconv.Itoa(i)] = d
	}
	return json.Marshal(struct {
		Days map[string]DayConfig `json:"days"`
	}{Days: days})
}

// CanonicalSchedule is the write-path shape persisted and returned to clients
type CanonicalSchedule struct {
	WorkingDays  []int        `json:"workingDays"`
	WorkingHours WeekSchedule `json:"workingHours"`
}
