package app

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/config"
	"github.com/ayoisaiah/mmo/internal/ui"
	"github.com/ayoisaiah/mmo/progress"
)

func intArg(ctx *cli.Context, name string) (int, error) {
	s := ctx.Args().First()
	if s == "" {
		return 0, errMissingArg.Fmt(name)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidNumber.Fmt(s)
	}

	return n, nil
}

func settingsShowAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	s, err := db.Settings(ctx.Context)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(s)
	}

	def := cfg.Ladder.ByID(s.CurrentLevel)

	push := "not set"
	if len(s.PushSubscription) > 0 {
		push = "set"
	}

	ui.PrintTable([][]string{
		{"SETTING", "VALUE"},
		{"Current level", fmt.Sprintf("%d (%s)", def.ID, def.Name)},
		{"Arousal check interval", fmt.Sprintf("%ds", s.ArousalCheckInterval)},
		{"Push subscription", push},
	}, config.Stdout)

	return nil
}

// settingsLevelAction selects the level future sessions train at. Only
// unlocked levels can be selected.
func settingsLevelAction(ctx *cli.Context) error {
	id, err := intArg(ctx, "level")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	def, ok := cfg.Ladder.Lookup(id)
	if !ok {
		return errUnknownLevel.Fmt(id)
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	sessions, err := db.ListAll(ctx.Context)
	if err != nil {
		return err
	}

	if !progress.Unlocked(progress.Compute(cfg.Ladder, sessions), id) {
		return errLevelLocked.Fmt(id, id-1)
	}

	s, err := db.Settings(ctx.Context)
	if err != nil {
		return err
	}

	s.CurrentLevel = id

	if err := db.SaveSettings(ctx.Context, s); err != nil {
		return err
	}

	pterm.Success.Printfln("Current level set to %d (%s)", def.ID, def.Name)

	return nil
}

func settingsIntervalAction(ctx *cli.Context) error {
	secs, err := intArg(ctx, "seconds")
	if err != nil {
		return err
	}

	if secs < 1 {
		return errInvalidInterval
	}

	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	s, err := db.Settings(ctx.Context)
	if err != nil {
		return err
	}

	s.ArousalCheckInterval = secs

	if err := db.SaveSettings(ctx.Context, s); err != nil {
		return err
	}

	pterm.Success.Printfln("Arousal check interval set to %ds", secs)

	return nil
}
