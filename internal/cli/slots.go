package cli

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type SlotsCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD)."`
	File string `arg:"" optional:"" help:"JSON row file ('-' or empty for stdin)."`
}

func (c *SlotsCmd) Run(ctx *Context) error {
	date, err := time.Parse(domain.DateFormat, c.Date)
	if err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}

	row, err := ctx.readRow(c.File)
	if err != nil {
		return err
	}

	week := ctx.Normalizer.NormalizeRaw(row.WorkingHours, row.WorkingDays)
	day := ctx.Normalizer.WorkingSlots(week, date)

	fmt.Fprintf(ctx.Out, "%s (%s)\n", date.Format(domain.DateFormat), day.Weekday)
	if !day.IsOpen() {
		fmt.Fprintln(ctx.Out, "  closed")
		return nil
	}

	for _, s := range day.Slots {
		fmt.Fprintf(ctx.Out, "  %s  %dm\n", s.StartTime, s.DurationMinutes)
	}
	fmt.Fprintf(ctx.Out, "total: %d slots, %d minutes\n", len(day.Slots), day.TotalMinutes())
	return nil
}
