package cli

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

type PresetCmd struct {
	Name string `arg:"" help:"Preset name: weekdays, everyday or clear."`
	File string `arg:"" optional:"" help:"JSON row file ('-' or empty for stdin)."`
}

func (c *PresetCmd) Run(ctx *Context) error {
	preset, ok := schedule.LookupPreset(c.Name)
	if !ok {
		names := make([]string, 0, 3)
		for _, p := range schedule.Presets() {
			names = append(names, p.Name)
		}
		return fmt.Errorf("unknown preset %q, available: %s", c.Name, strings.Join(names, ", "))
	}

	row, err := ctx.readRow(c.File)
	if err != nil {
		return err
	}

	week := ctx.Normalizer.NormalizeRaw(row.WorkingHours, row.WorkingDays)
	return ctx.printJSON(schedule.Canonical(ctx.Normalizer.Apply(week, preset)))
}
