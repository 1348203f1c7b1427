package cli

import (
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

type NormalizeCmd struct {
	File     string `arg:"" optional:"" help:"JSON row file ('-' or empty for stdin)."`
	Validate bool   `help:"Fail if no working day is enabled."`
}

func (c *NormalizeCmd) Run(ctx *Context) error {
	row, err := ctx.readRow(c.File)
	if err != nil {
		return err
	}

	week := ctx.Normalizer.NormalizeRaw(row.WorkingHours, row.WorkingDays)
	if c.Validate {
		if err := schedule.Validate(week); err != nil {
			return err
		}
	}
	return ctx.printJSON(schedule.Canonical(week))
}
