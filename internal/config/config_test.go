package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Schedule.SlotIntervalMinutes)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cfg.Schedule.DefaultWorkingDays)

	n, err := cfg.Schedule.NewNormalizer()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:00"), n.Defaults().Start)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
[server]
http_port = 9090

[database]
host = "db"
port = 6432
user = "smc"
password = "secret"
dbname = "schedule"
sslmode = "require"

[metrics]
enabled = true
path = "/metrics"
service_name = "schedule"

[schedule]
slot_interval_minutes = 15
day_start = "09:00"
day_end = "17:45"
default_working_days = [0, 1, 2, 3, 4, 5, 6]
session_ttl_minutes = 5
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db port=6432 user=smc password=secret dbname=schedule sslmode=require", cfg.Database.DSN())
	assert.True(t, cfg.Metrics.Enabled)

	defaults, err := cfg.Schedule.Defaults()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("17:45"), defaults.End)
	assert.Equal(t, 7, defaults.WorkingDays.Len())
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad toml":         `[server`,
		"bad port":         "[server]\nhttp_port = 0",
		"off grid default": "[schedule]\nday_start = \"08:10\"",
		"bad time":         "[schedule]\nbreak_end = \"1pm\"",
		"bad interval":     "[schedule]\nslot_interval_minutes = 7",
		"bad weekday":      "[schedule]\ndefault_working_days = [1, 9]",
		"bad lead time":    "[schedule]\ndefault_lead_time_minutes = -5",
		"no session ttl":   "[schedule]\nsession_ttl_minutes = 0",
		"start after end":  "[schedule]\nday_start = \"19:00\"",
		"no metrics path":  "[metrics]\nenabled = true\npath = \"\"",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logs]\nlevel = \"debug\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logs.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
