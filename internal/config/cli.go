package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Period        string
	Start         string
	End           string
	SessionCmd    string
	Level         int
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		period := ctx.String("period")

		// An explicit range replaces the command's default period
		if !ctx.IsSet("period") && (ctx.IsSet("start") || ctx.IsSet("end")) {
			period = ""
		}

		opts := CLIOptions{
			Period:        period,
			Start:         ctx.String("start"),
			End:           ctx.String("end"),
			SessionCmd:    ctx.String("session-cmd"),
			Level:         ctx.Int("level"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if opts.DisableNotify {
		c.Notifications.Enabled = false
		c.Notifications.Sound = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.CLI.Level = opts.Level

	return applyCLIRange(c, opts, now)
}

// applyCLIRange sets the reporting period from --period or --start/--end.
// --period wins when both are given.
func applyCLIRange(c *Config, opts CLIOptions, now time.Time) error {
	period := timeutil.Period(strings.TrimSpace(opts.Period))

	if period != "" {
		if !slices.Contains(timeutil.PeriodCollection, period) {
			valid := make([]string, len(timeutil.PeriodCollection))
			for i, p := range timeutil.PeriodCollection {
				valid[i] = string(p)
			}

			return errInvalidPeriod.Fmt(period, strings.Join(valid, ", "))
		}

		c.CLI.StartTime, c.CLI.EndTime = timeutil.TimeRange(period, now)

		return nil
	}

	if opts.Start != "" {
		start, err := timeutil.FromStrRelativeTo(opts.Start, now)
		if err != nil {
			return errInvalidDate.Fmt("start", opts.Start).Wrap(err)
		}

		c.CLI.StartTime = start
	}

	c.CLI.EndTime = timeutil.RoundToEnd(now)

	if opts.End != "" {
		end, err := timeutil.FromStrRelativeTo(opts.End, now)
		if err != nil {
			return errInvalidDate.Fmt("end", opts.End).Wrap(err)
		}

		c.CLI.EndTime = end
	}

	if !c.CLI.StartTime.IsZero() && c.CLI.EndTime.Before(c.CLI.StartTime) {
		return errInvalidDateRange
	}

	return nil
}
