package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestUpdateDay_DisableEnableRoundTrip(t *testing.T) {
	n := newTestNormalizer(t)
	week := n.DefaultWeek(MondayToSaturday)
	week = n.UpdateDay(week, 2, domain.DayPatch{
		Start: tp("07:30"), End: tp("16:00"),
		BreakEnabled: ptr.Ptr(true), BreakStart: tp("11:00"), BreakEnd: tp("11:30"),
	})
	before := week.Day(2)
	require.True(t, before.BreakEnabled)

	disabled := n.UpdateDay(week, 2, domain.DayPatch{Enabled: ptr.Ptr(false)})
	assert.False(t, disabled.Day(2).Enabled)

	enabled := n.UpdateDay(disabled, 2, domain.DayPatch{Enabled: ptr.Ptr(true)})
	assert.Equal(t, before, enabled.Day(2))
}

func TestUpdateDay_ShrinkingWindowReclampsBreak(t *testing.T) {
	n := newTestNormalizer(t)
	week := n.UpdateDay(n.DefaultWeek(MondayToSaturday), 1, domain.DayPatch{
		BreakEnabled: ptr.Ptr(true), BreakStart: tp("12:00"), BreakEnd: tp("14:00"),
	})

	week = n.UpdateDay(week, 1, domain.DayPatch{End: tp("13:00")})
	assert.Equal(t, domain.DayConfig{Enabled: true, Start: "08:00", End: "13:00", BreakEnabled: true, BreakStart: "12:00", BreakEnd: "13:00"}, week.Day(1))

	week = n.UpdateDay(week, 1, domain.DayPatch{End: tp("12:00")})
	assert.Equal(t, domain.DayConfig{Enabled: true, Start: "08:00", End: "12:00", BreakStart: "12:00", BreakEnd: "13:00"}, week.Day(1))
}

func TestUpdateDay_StartPastEnd(t *testing.T) {
	n := newTestNormalizer(t)

	week := n.UpdateDay(n.DefaultWeek(MondayToSaturday), 4, domain.DayPatch{Start: tp("19:00")})
	assert.Equal(t, types.TimeString("19:00"), week.Day(4).Start)
	assert.Equal(t, types.TimeString("19:30"), week.Day(4).End)
}

func TestUpdateDay_InvalidInputIgnored(t *testing.T) {
	n := newTestNormalizer(t)
	week := n.DefaultWeek(MondayToSaturday)

	assert.Equal(t, week, n.UpdateDay(week, 7, domain.DayPatch{Enabled: ptr.Ptr(false)}))
	assert.Equal(t, week, n.UpdateDay(week, -1, domain.DayPatch{Enabled: ptr.Ptr(false)}))

	got := n.UpdateDay(week, 1, domain.DayPatch{Start: tp("late")})
	assert.Equal(t, week, got, "invalid value falls back to the default start")
}

func TestUpdateDay_LenientPatchDecoding(t *testing.T) {
	n := newTestNormalizer(t)
	week := n.DefaultWeek(MondayToSaturday)

	var patch domain.DayPatch
	require.NoError(t, json.Unmarshal([]byte(`{"start":"10:00","end":17,"enabled":"no"}`), &patch))

	got := n.UpdateDay(week, 1, patch)
	assert.Equal(t, domain.DayConfig{Enabled: true, Start: "10:00", End: "18:00", BreakStart: "12:00", BreakEnd: "13:00"}, got.Day(1))
}

func TestOptions(t *testing.T) {
	n := newTestNormalizer(t)

	opts := n.Options(domain.DayConfig{
		Enabled: true, Start: "09:00", End: "18:00",
		BreakEnabled: true, BreakStart: "12:00", BreakEnd: "13:00",
	})

	assert.Len(t, opts.Start, 47)
	assert.Equal(t, types.TimeString("23:00"), opts.Start[len(opts.Start)-1])

	assert.Equal(t, types.TimeString("09:30"), opts.End[0])
	assert.Equal(t, types.TimeString("23:30"), opts.End[len(opts.End)-1])

	assert.Len(t, opts.BreakStart, 18)
	assert.Equal(t, types.TimeString("09:00"), opts.BreakStart[0])
	assert.Equal(t, types.TimeString("17:30"), opts.BreakStart[len(opts.BreakStart)-1])

	assert.Equal(t, types.TimeString("12:30"), opts.BreakEnd[0])
	assert.Equal(t, types.TimeString("18:00"), opts.BreakEnd[len(opts.BreakEnd)-1])
}

func TestOptions_FollowStart(t *testing.T) {
	n := newTestNormalizer(t)
	week := n.UpdateDay(n.DefaultWeek(MondayToSaturday), 1, domain.DayPatch{Start: tp("14:00")})

	opts := n.Options(week.Day(1))
	assert.Equal(t, types.TimeString("14:30"), opts.End[0])
	assert.Equal(t, types.TimeString("14:00"), opts.BreakStart[0])
	assert.Equal(t, types.TimeString("14:30"), opts.BreakEnd[0], "placeholder before start is ignored")

	all := n.WeekOptions(week)
	assert.Equal(t, opts, all[1])
}

func TestValidate(t *testing.T) {
	n := newTestNormalizer(t)

	assert.NoError(t, Validate(n.DefaultWeek(NewDaySet(0))))
	assert.ErrorIs(t, Validate(n.DefaultWeek(DaySet{})), ErrNoEnabledDay)
}

func TestCanonical_JSON(t *testing.T) {
	n := newTestNormalizer(t)
	week := n.UpdateDay(n.DefaultWeek(NewDaySet(1, 2)), 1, domain.DayPatch{
		BreakEnabled: ptr.Ptr(true), BreakStart: tp("12:00"), BreakEnd: tp("12:30"),
	})

	data, err := json.Marshal(Canonical(week))
	require.NoError(t, err)

	var decoded struct {
		WorkingDays  []int `json:"workingDays"`
		WorkingHours struct {
			Days map[string]map[string]any `json:"days"`
		} `json:"workingHours"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []int{1, 2}, decoded.WorkingDays)
	require.Len(t, decoded.WorkingHours.Days, 7)
	for _, key := range []string{"0", "1", "2", "3", "4", "5", "6"} {
		assert.Contains(t, decoded.WorkingHours.Days, key)
	}
	assert.JSONEq(t,
		`{"enabled":true,"start":"08:00","end":"18:00","breakEnabled":true,"breakStart":"12:00","breakEnd":"12:30"}`,
		mustJSON(t, decoded.WorkingHours.Days["1"]),
	)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
