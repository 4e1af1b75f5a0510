package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/timeutil"
)

const defaultStatsPeriod = string(timeutil.Period7Days)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	levelsFileFlag = &cli.BoolFlag{
		Name:  "levels",
		Usage: "Edit the levels file instead of the config file",
	}
)

func trainFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "Train at this level instead of the current one (must be unlocked)",
		},
		&cli.BoolFlag{
			Name:    "disable-notification",
			Aliases: []string{"d"},
			Usage:   "Disable the desktop notifications and chime on phase changes",
		},
		&cli.StringFlag{
			Name:    "session-cmd",
			Aliases: []string{"cmd"},
			Usage:   "Execute an arbitrary command after each saved session",
		},
	}
}

func rangeFlags(defaultPeriod string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "period",
			Aliases: []string{"p"},
			Usage:   "Time period (today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time)",
			Value:   defaultPeriod,
		},
		&cli.StringFlag{
			Name:    "start",
			Aliases: []string{"s"},
			Usage:   "Start date (e.g. '2025-03-01' or '2 weeks ago'). Ignored when --period is set",
		},
		&cli.StringFlag{
			Name:    "end",
			Aliases: []string{"e"},
			Usage:   "End date (e.g. 'yesterday'). Ignored when --period is set",
		},
	}
}
