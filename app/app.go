// Package app wires the command-line interface to the training, storage and
// reporting packages
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the mmo app instance.
func Get() *cli.App {
	// --help is handled before the Before hook runs
	cli.AppHelpTemplate = helpText()

	mmoApp := &cli.App{
		Name: "mmo",
		Usage: `
		mmo is a level-based edge training tracker for the command-line. Sessions
		alternate stroke and rest phases, edges are logged with their outcome,
		and each level unlocks once the previous one is mastered.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "train",
				Usage:  "Start a training session",
				Flags:  trainFlags(),
				Action: trainAction,
			},
			{
				Name:   "levels",
				Usage:  "List the levels and their requirements",
				Flags:  []cli.Flag{jsonFlag},
				Action: levelsAction,
			},
			{
				Name:   "progress",
				Usage:  "Show progress towards mastering each level",
				Flags:  []cli.Flag{jsonFlag},
				Action: progressAction,
			},
			{
				Name:  "sessions",
				Usage: "Inspect and manage recorded sessions",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List sessions in a time period (default: all time)",
						Flags:  append(rangeFlags(""), jsonFlag),
						Action: listAction,
					},
					{
						Name:      "show",
						Usage:     "Show the phases and edges of a session",
						ArgsUsage: "<id>",
						Flags:     []cli.Flag{jsonFlag},
						Action:    showAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete one or more sessions",
						ArgsUsage: "<id>...",
						Flags:     []cli.Flag{yesFlag},
						Action:    deleteAction,
					},
					{
						Name:   "clear",
						Usage:  "Delete every session",
						Flags:  []cli.Flag{yesFlag},
						Action: clearAction,
					},
					{
						Name:      "notes",
						Usage:     "Set the notes of a session",
						ArgsUsage: "<id> <text>",
						Action:    notesAction,
					},
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with statistics reporting. Defaults to a
				reporting period of 7 days`,
				Flags:  append(rangeFlags(defaultStatsPeriod), jsonFlag),
				Action: statsAction,
			},
			{
				Name:  "settings",
				Usage: "Show or change the current level and arousal check interval",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Print the current settings",
						Flags:  []cli.Flag{jsonFlag},
						Action: settingsShowAction,
					},
					{
						Name:      "level",
						Usage:     "Select the level to train at (must be unlocked)",
						ArgsUsage: "<level>",
						Action:    settingsLevelAction,
					},
					{
						Name:      "interval",
						Usage:     "Set the fallback arousal check interval in seconds",
						ArgsUsage: "<seconds>",
						Action:    settingsIntervalAction,
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Export every session to a compressed archive",
				ArgsUsage: "<file>",
				Action:    exportAction,
			},
			{
				Name:      "import",
				Usage:     "Import sessions from a directory of JSON files or an exported archive",
				ArgsUsage: "<dir|file>",
				Action:    importAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Flags:  []cli.Flag{levelsFileFlag},
				Action: editConfigAction,
			},
		},
		Flags:  append(trainFlags(), noColorFlag),
		Action: trainAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return mmoApp
}
