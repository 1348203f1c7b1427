package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestParseRawWorkingHours_Shapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want RawShape
	}{
		{"nil", "", ShapeAbsent},
		{"null", "null", ShapeAbsent},
		{"number", "42", ShapeAbsent},
		{"bool", "true", ShapeAbsent},
		{"object without days", `{"monday":{"start":"09:00"}}`, ShapeAbsent},
		{"days is not an object", `{"days":[1,2]}`, ShapeAbsent},
		{"days is null", `{"days":null}`, ShapeAbsent},
		{"broken json", `{"days":`, ShapeAbsent},
		{"plain string", `"hello"`, ShapeAbsent},
		{"legacy array", `["09:00","09:30"]`, ShapeLegacyArray},
		{"empty legacy array", `[]`, ShapeLegacyArray},
		{"structured", `{"days":{"1":{"enabled":true}}}`, ShapeStructured},
		{"stringified structured", `"{\"days\":{\"1\":{\"enabled\":true}}}"`, ShapeStructured},
		{"stringified array", `"[\"09:00\"]"`, ShapeLegacyArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRawWorkingHours([]byte(tt.raw))
			assert.Equal(t, tt.want, got.Shape)
		})
	}
}

func TestParseRawWorkingHours_DayKeys(t *testing.T) {
	raw := `{"days":{
		"01":{"start":"07:00"},
		"1":{"start":"09:00"},
		" 2 ":{"start":"10:00"},
		"7":{"start":"11:00"},
		"-1":{"start":"11:00"},
		"x":{"start":"11:00"},
		"3":"not an object",
		"4":{"start":930,"enabled":"yes","end":"17:00"}
	}}`

	got := ParseRawWorkingHours([]byte(raw))
	require.Equal(t, ShapeStructured, got.Shape)

	assert.Nil(t, got.Days[0])
	require.NotNil(t, got.Days[1])
	assert.Equal(t, types.TimeString("09:00"), *got.Days[1].Start, "canonical key wins")
	require.NotNil(t, got.Days[2])
	assert.Equal(t, types.TimeString("10:00"), *got.Days[2].Start)
	require.NotNil(t, got.Days[3])
	assert.True(t, got.Days[3].IsEmpty())
	require.NotNil(t, got.Days[4])
	assert.Nil(t, got.Days[4].Start, "wrongly typed field is absent")
	assert.Nil(t, got.Days[4].Enabled)
	assert.Equal(t, types.TimeString("17:00"), *got.Days[4].End)
	assert.Nil(t, got.Days[5])
	assert.Nil(t, got.Days[6])
}

func TestParseEnabledDays(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []int
		wantOK bool
	}{
		{"absent", "", nil, false},
		{"null", "null", nil, false},
		{"object", `{"1":true}`, nil, false},
		{"number", `3`, nil, false},
		{"array", `[1,2,3]`, []int{1, 2, 3}, true},
		{"duplicates and order", `[5,1,5,1]`, []int{1, 5}, true},
		{"out of range dropped", `[0,7,-1,6,2.5,3.0]`, []int{0, 3, 6}, true},
		{"numeric strings", `["1","2"," 3"]`, []int{1, 2, 3}, true},
		{"empty array", `[]`, nil, false},
		{"nothing in range", `[7,8]`, nil, false},
		{"comma string out of range", `"9"`, nil, false},
		{"stringified array", `"[0,6]"`, []int{0, 6}, true},
		{"comma string", `"1, 2,x,9"`, []int{1, 2}, true},
		{"empty string", `""`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEnabledDays([]byte(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Days())
			}
		})
	}
}

func TestNormalizeRaw_Absent(t *testing.T) {
	n := newTestNormalizer(t)

	for _, raw := range []string{"", "null", "42", `{"foo":1}`, `"not json"`} {
		week := n.NormalizeRaw([]byte(raw), nil)

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, week.EnabledDays(), "raw %s", raw)
		for _, day := range week.Days {
			assert.Equal(t, types.TimeString("08:00"), day.Start)
			assert.Equal(t, types.TimeString("18:00"), day.End)
			assert.False(t, day.BreakEnabled)
		}
	}
}

func TestNormalizeRaw_AbsentWithEnabledDays(t *testing.T) {
	n := newTestNormalizer(t)

	week := n.NormalizeRaw(nil, []byte(`[0,3]`))
	assert.Equal(t, []int{0, 3}, week.EnabledDays())
}

func TestNormalizeRaw_EnabledDaysWithoutWeekday(t *testing.T) {
	n := newTestNormalizer(t)

	for _, raw := range []string{`[7,8]`, `[]`, `"9"`, `"[]"`, `["x",-1]`} {
		week := n.NormalizeRaw(nil, []byte(raw))
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, week.EnabledDays(), "workingDays %s", raw)
	}

	week := n.NormalizeRaw([]byte(`["10:00","10:30"]`), []byte(`[7]`))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, week.EnabledDays())
	assert.Equal(t, types.TimeString("10:00"), week.Day(1).Start)
}

func TestNormalizeRaw_LegacyArray(t *testing.T) {
	n := newTestNormalizer(t)

	week := n.NormalizeRaw([]byte(`["09:00","09:30","10:00"]`), nil)

	for i, day := range week.Days {
		assert.Equal(t, types.TimeString("09:00"), day.Start, "day %d", i)
		assert.Equal(t, types.TimeString("10:30"), day.End, "day %d", i)
		assert.False(t, day.BreakEnabled)
		assert.Equal(t, i != 0, day.Enabled, "day %d", i)
	}
}

func TestNormalizeRaw_LegacyArrayDirty(t *testing.T) {
	n := newTestNormalizer(t)

	week := n.NormalizeRaw([]byte(`["10:00","x",5,"09:15","09:00","10:00",null]`), []byte(`[1]`))

	monday := week.Day(1)
	assert.True(t, monday.Enabled)
	assert.Equal(t, types.TimeString("09:00"), monday.Start)
	assert.Equal(t, types.TimeString("10:30"), monday.End)
	assert.False(t, week.Day(2).Enabled)
}

func TestNormalizeRaw_LegacyArrayLastSlot(t *testing.T) {
	n := newTestNormalizer(t)

	week := n.NormalizeRaw([]byte(`["23:30"]`), nil)
	assert.Equal(t, types.TimeString("23:00"), week.Day(1).Start)
	assert.Equal(t, types.TimeString("23:30"), week.Day(1).End)

	week = n.NormalizeRaw([]byte(`["22:00","23:30"]`), nil)
	assert.Equal(t, types.TimeString("22:00"), week.Day(1).Start)
	assert.Equal(t, types.TimeString("23:30"), week.Day(1).End)
}

func TestNormalizeRaw_LegacyArrayWithoutValidSlots(t *testing.T) {
	n := newTestNormalizer(t)

	week := n.NormalizeRaw([]byte(`["x","25:00"]`), nil)
	assert.Equal(t, n.DefaultWeek(MondayToSaturday), week)
}

func TestNormalizeRaw_Structured(t *testing.T) {
	n := newTestNormalizer(t)

	raw := `{"days":{
		"0":{"enabled":false},
		"1":{"enabled":true,"start":"09:00","end":"17:00","breakEnabled":true,"breakStart":"12:00","breakEnd":"12:30"},
		"2":{"start":"10:00","end":"09:00"},
		"6":null
	}}`
	week := n.NormalizeRaw([]byte(raw), []byte(`[2,3]`))

	assert.Equal(t, domain.DayConfig{Enabled: false, Start: "08:00", End: "18:00", BreakStart: "12:00", BreakEnd: "13:00"}, week.Day(0))
	assert.Equal(t, domain.DayConfig{Enabled: true, Start: "09:00", End: "17:00", BreakEnabled: true, BreakStart: "12:00", BreakEnd: "12:30"}, week.Day(1))
	assert.Equal(t, domain.DayConfig{Enabled: true, Start: "10:00", End: "10:30", BreakStart: "12:00", BreakEnd: "13:00"}, week.Day(2))
	assert.True(t, week.Day(3).Enabled, "missing entry falls back to the enabled set")
	assert.False(t, week.Day(4).Enabled)
	assert.False(t, week.Day(6).Enabled)
}

var rawCorpus = []struct{ hours, days string }{
	{"", ""},
	{"null", "null"},
	{`["09:00","09:30","10:00"]`, ""},
	{`["23:30","00:00","bad"]`, `[0,6]`},
	{`{"days":{"0":{"enabled":true,"start":"23:30","end":"01:00"}}}`, `[]`},
	{`["08:00","08:30"]`, `[7,8]`},
	{`{"days":{"1":{"breakEnabled":true,"breakStart":"19:00","breakEnd":"07:00"}}}`, `"1,2"`},
	{`{"days":{"2":{"enabled":"y","start":12,"breakEnabled":1}}}`, `{"x":1}`},
	{`{"days":{"3":{"enabled":true,"start":"09:00","end":"18:00","breakEnabled":true,"breakStart":"12:00","breakEnd":"20:00"}}}`, `[3]`},
	{`"{\"days\":{\"4\":{\"start\":\"06:30\",\"end\":\"06:00\"}}}"`, `"[4]"`},
	{`{"days":"oops"}`, `[9,-2]`},
}

func TestNormalizeRaw_InvariantsAndIdempotence(t *testing.T) {
	n := newTestNormalizer(t)

	for _, tc := range rawCorpus {
		week := n.NormalizeRaw([]byte(tc.hours), []byte(tc.days))
		require.Len(t, week.Days, domain.DaysPerWeek)
		for _, day := range week.Days {
			requireInvariants(t, n, day)
		}

		canonical := Canonical(week)
		hours, err := json.Marshal(canonical.WorkingHours)
		require.NoError(t, err)
		days, err := json.Marshal(canonical.WorkingDays)
		require.NoError(t, err)

		again := n.NormalizeRaw(hours, days)
		assert.Equal(t, week, again, "raw hours=%s days=%s", tc.hours, tc.days)
	}
}
