package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/m04kA/SMC-ScheduleService/internal/cli"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Service config file; [schedule] defaults are taken from it." type:"existingfile"`

	Normalize cli.NormalizeCmd `cmd:"" help:"Print the canonical form of a stored schedule row."`
	Preset    cli.PresetCmd    `cmd:"" help:"Apply a standard preset to a stored schedule row."`
	Slots     cli.SlotsCmd     `cmd:"" help:"List working slots of a date."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("schedulectl"),
		kong.Description("Working-hours canonicalization tool for schedule_settings rows"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg := config.Default()
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	normalizer, err := cfg.Schedule.NewNormalizer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = ctx.Run(&cli.Context{
		Normalizer: normalizer,
		In:         os.Stdin,
		Out:        os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
