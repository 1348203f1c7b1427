package schedule

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/timeslot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ResolveEnabledDays parses the legacy workingDays list, falling back to the default set
func (n *Normalizer) ResolveEnabledDays(rawWorkingDays []byte) DaySet {
	if set, ok := ParseEnabledDays(rawWorkingDays); ok {
		return set
	}
	return n.defaults.WorkingDays
}

// NormalizeRaw canonicalizes persisted workingHours/workingDays values of any generation
func (n *Normalizer) NormalizeRaw(rawWorkingHours, rawWorkingDays []byte) domain.WeekSchedule {
	return n.NormalizeWeek(ParseRawWorkingHours(rawWorkingHours), n.ResolveEnabledDays(rawWorkingDays))
}

// NormalizeWeek always returns seven days satisfying the DayConfig invariants
func (n *Normalizer) NormalizeWeek(raw RawWorkingHours, enabled DaySet) domain.WeekSchedule {
	switch raw.Shape {
	case ShapeStructured:
		return n.normalizeStructured(raw, enabled)
	case ShapeLegacyArray:
		if week, ok := n.normalizeLegacyArray(raw.Slots, enabled); ok {
			return week
		}
	}
	return n.DefaultWeek(enabled)
}

// DefaultWeek returns default hours for every day, enabled from the set
func (n *Normalizer) DefaultWeek(enabled DaySet) domain.WeekSchedule {
	var week domain.WeekSchedule
	for day := range week.Days {
		week.Days[day] = n.DefaultDay(enabled[day])
	}
	return week
}

func (n *Normalizer) normalizeStructured(raw RawWorkingHours, enabled DaySet) domain.WeekSchedule {
	var week domain.WeekSchedule
	for day := range week.Days {
		var patch domain.DayPatch
		if raw.Days[day] != nil {
			patch = *raw.Days[day]
		}
		week.Days[day] = n.NormalizeDay(patch, enabled[day])
	}
	return week
}

// normalizeLegacyArray derives one window from the slots that were ever in use:
// start is the earliest slot, end is one slot past the latest.
// ok is false when no catalog slot survives filtering.
func (n *Normalizer) normalizeLegacyArray(slots []string, enabled DaySet) (domain.WeekSchedule, bool) {
	seen := make(map[int]struct{}, len(slots))
	indexes := make([]int, 0, len(slots))
	for _, s := range slots {
		idx := n.catalog.IndexOf(types.TimeString(s))
		if idx == timeslot.NotFound {
			continue
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		indexes = append(indexes, idx)
	}
	if len(indexes) == 0 {
		return domain.WeekSchedule{}, false
	}
	sort.Ints(indexes)

	start := indexes[0]
	end := min(indexes[len(indexes)-1]+1, n.catalog.LastIndex())

	patch := domain.DayPatch{
		Start:        ptr.Ptr(n.catalog.At(start)),
		End:          ptr.Ptr(n.catalog.At(end)),
		BreakEnabled: ptr.Ptr(false),
	}

	var week domain.WeekSchedule
	for day := range week.Days {
		week.Days[day] = n.NormalizeDay(patch, enabled[day])
	}
	return week, true
}
