package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/timeslot"
)

func newTestContext(t *testing.T, input string) (*Context, *bytes.Buffer) {
	t.Helper()
	n, err := schedule.NewNormalizer(timeslot.MustBuild(timeslot.DefaultGranularityMinutes), schedule.StandardDefaults())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &Context{Normalizer: n, In: strings.NewReader(input), Out: out}, out
}

type canonicalOutput struct {
	WorkingDays  []int `json:"workingDays"`
	WorkingHours struct {
		Days map[string]domain.DayConfig `json:"days"`
	} `json:"workingHours"`
}

func TestNormalizeCmd_Stdin(t *testing.T) {
	ctx, out := newTestContext(t, `{"workingDays":"1,2","workingHours":["09:00","09:30"]}`)

	require.NoError(t, (&NormalizeCmd{File: "-"}).Run(ctx))

	var got canonicalOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []int{1, 2}, got.WorkingDays)
	require.Len(t, got.WorkingHours.Days, domain.DaysPerWeek)
	assert.Equal(t, "09:00", got.WorkingHours.Days["1"].Start.String())
	assert.Equal(t, "10:00", got.WorkingHours.Days["1"].End.String())
}

func TestNormalizeCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "row.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"workingDays":null,"workingHours":null}`), 0o644))

	ctx, out := newTestContext(t, "")
	require.NoError(t, (&NormalizeCmd{File: path}).Run(ctx))

	var got canonicalOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got.WorkingDays)
}

func TestNormalizeCmd_Errors(t *testing.T) {
	ctx, _ := newTestContext(t, `not json`)
	assert.Error(t, (&NormalizeCmd{}).Run(ctx))

	ctx, _ = newTestContext(t, `{"workingDays":[]}`)
	assert.ErrorIs(t, (&NormalizeCmd{Validate: true}).Run(ctx), schedule.ErrNoEnabledDay)

	ctx, _ = newTestContext(t, "")
	assert.Error(t, (&NormalizeCmd{File: filepath.Join(t.TempDir(), "missing.json")}).Run(ctx))
}

func TestPresetCmd(t *testing.T) {
	ctx, out := newTestContext(t, `{}`)
	require.NoError(t, (&PresetCmd{Name: schedule.PresetWeekdays}).Run(ctx))

	var got canonicalOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.WorkingDays)
	assert.Equal(t, "18:00", got.WorkingHours.Days["5"].End.String())

	ctx, _ = newTestContext(t, `{}`)
	err := (&PresetCmd{Name: "weekends"}).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weekdays, everyday, clear")
}

func TestSlotsCmd(t *testing.T) {
	row := `{"workingDays":[1],"workingHours":{"days":{"1":{"enabled":true,"start":"09:00","end":"10:30","breakEnabled":true,"breakStart":"09:30","breakEnd":"10:00"}}}}`

	ctx, out := newTestContext(t, row)
	require.NoError(t, (&SlotsCmd{Date: "2025-03-10"}).Run(ctx))
	assert.Equal(t, "2025-03-10 (Monday)\n  09:00  30m\n  10:00  30m\ntotal: 2 slots, 60 minutes\n", out.String())

	ctx, out = newTestContext(t, row)
	require.NoError(t, (&SlotsCmd{Date: "2025-03-11"}).Run(ctx))
	assert.Equal(t, "2025-03-11 (Tuesday)\n  closed\n", out.String())

	ctx, _ = newTestContext(t, row)
	assert.Error(t, (&SlotsCmd{Date: "11/03/2025"}).Run(ctx))
}
