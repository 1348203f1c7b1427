package schedule

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// RawShape identifies which generation of the persisted working-hours format a value uses
type RawShape int

const (
	// ShapeAbsent NULL, empty or unrecognized value
	ShapeAbsent RawShape = iota
	// ShapeLegacyArray flat list of "HH:MM" slots that were ever in use
	ShapeLegacyArray
	// ShapeStructured {"days": {"0": {...}, ..., "6": {...}}}
	ShapeStructured
)

func (s RawShape) String() string {
	switch s {
	case ShapeLegacyArray:
		return "legacy_array"
	case ShapeStructured:
		return "structured"
	default:
		return "absent"
	}
}

// maxUnwrapDepth limits how many times a JSON string holding JSON is unwrapped
const maxUnwrapDepth = 2

// RawWorkingHours is the persisted working-hours value resolved into one of the three shapes
type RawWorkingHours struct {
	Shape RawShape
	Slots []string                             // ShapeLegacyArray
	Days  [domain.DaysPerWeek]*domain.DayPatch // ShapeStructured, nil = no entry for the weekday
}

// ParseRawWorkingHours resolves the shape of a persisted value. It never fails:
// anything that is not a recognized shape is ShapeAbsent.
func ParseRawWorkingHours(data []byte) RawWorkingHours {
	return parseRawWorkingHours(data, 0)
}

func parseRawWorkingHours(data []byte, depth int) RawWorkingHours {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return RawWorkingHours{Shape: ShapeAbsent}
	}

	switch data[0] {
	case '"':
		// Старые записи хранили JSON строкой
		var inner string
		if depth >= maxUnwrapDepth || json.Unmarshal(data, &inner) != nil {
			return RawWorkingHours{Shape: ShapeAbsent}
		}
		return parseRawWorkingHours([]byte(inner), depth+1)

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return RawWorkingHours{Shape: ShapeAbsent}
		}
		slots := make([]string, 0, len(items))
		for _, item := range items {
			var s string
			if json.Unmarshal(item, &s) == nil {
				slots = append(slots, s)
			}
		}
		return RawWorkingHours{Shape: ShapeLegacyArray, Slots: slots}

	case '{':
		var obj struct {
			Days json.RawMessage `json:"days"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return RawWorkingHours{Shape: ShapeAbsent}
		}
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(obj.Days, &entries); err != nil || entries == nil {
			return RawWorkingHours{Shape: ShapeAbsent}
		}
		return RawWorkingHours{Shape: ShapeStructured, Days: parseDayEntries(entries)}
	}

	return RawWorkingHours{Shape: ShapeAbsent}
}

// parseDayEntries maps weekday keys to patches. Canonical keys ("0".."6") win over
// other integer spellings ("01", " 1") of the same weekday.
func parseDayEntries(entries map[string]json.RawMessage) [domain.DaysPerWeek]*domain.DayPatch {
	var days [domain.DaysPerWeek]*domain.DayPatch

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := isCanonicalDayKey(keys[i]), isCanonicalDayKey(keys[j])
		if ci != cj {
			return ci
		}
		return keys[i] < keys[j]
	})

	for _, key := range keys {
		day, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || day < domain.MinWeekday || day > domain.MaxWeekday || days[day] != nil {
			continue
		}
		var patch domain.DayPatch
		_ = json.Unmarshal(entries[key], &patch)
		days[day] = &patch
	}

	return days
}

func isCanonicalDayKey(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '6'
}

// ParseEnabledDays resolves the legacy workingDays list. ok is false when the value is
// absent, not a list or has no weekday left after filtering, in which case the caller
// falls back to its default set.
// Accepted: a JSON array of integers or numeric strings, the same array stringified,
// or a comma separated string ("1,2,3"). Elements outside 0..6 are dropped.
func ParseEnabledDays(data []byte) (DaySet, bool) {
	return parseEnabledDays(data, 0)
}

func parseEnabledDays(data []byte, depth int) (DaySet, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return DaySet{}, false
	}

	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return DaySet{}, false
		}
		var set DaySet
		for _, item := range items {
			if day, ok := parseDayNumber(item); ok {
				set[day] = true
			}
		}
		return set, set.Len() > 0

	case '"':
		var inner string
		if depth >= maxUnwrapDepth || json.Unmarshal(data, &inner) != nil {
			return DaySet{}, false
		}
		inner = strings.TrimSpace(inner)
		if strings.HasPrefix(inner, "[") || strings.HasPrefix(inner, "\"") {
			return parseEnabledDays([]byte(inner), depth+1)
		}
		if inner == "" {
			return DaySet{}, false
		}
		var set DaySet
		for _, part := range strings.Split(inner, ",") {
			day, err := strconv.Atoi(strings.TrimSpace(part))
			if err == nil && day >= domain.MinWeekday && day <= domain.MaxWeekday {
				set[day] = true
			}
		}
		return set, set.Len() > 0
	}

	return DaySet{}, false
}

// parseDayNumber accepts 3, 3.0 and "3"
func parseDayNumber(raw json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		f = float64(n)
	}
	if f < domain.MinWeekday || f > domain.MaxWeekday || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}
