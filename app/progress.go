package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/config"
	"github.com/ayoisaiah/mmo/internal/ui"
	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/progress"
)

// levelReport is the JSON form of one row of the progress command.
type levelReport struct {
	Name    string                  `json:"name"`
	Details progress.MasteryDetails `json:"details"`
	progress.LevelProgress
	Percent int `json:"percent"`
}

func levelsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(cfg.Ladder)
	}

	printLevels(cfg.Ladder)

	return nil
}

func printLevels(ladder level.Ladder) {
	data := [][]string{
		{"#", "NAME", "STROKE", "REST", "CHECK", "SESSIONS", "MINUTES", "EDGES", "CLIMAX RATE", "MIN CLIMAXES"},
	}

	for _, d := range ladder {
		r := d.Requirements

		climaxes := "-"
		if r.MinClimaxes > 0 {
			climaxes = fmt.Sprint(r.MinClimaxes)
		}

		data = append(data, []string{
			fmt.Sprint(d.ID),
			d.Name,
			fmt.Sprintf("%ds", d.StrokeSeconds),
			fmt.Sprintf("%ds", d.RestSeconds),
			fmt.Sprintf("%ds", d.ArousalCheckIntervalSeconds),
			fmt.Sprint(r.MinSessions),
			fmt.Sprint(r.MinTotalMinutes),
			fmt.Sprint(r.MinEdges),
			fmt.Sprintf("%v%%", r.MinClimaxRate),
			climaxes,
		})
	}

	ui.PrintTable(data, config.Stdout)
}

func progressAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
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

	table := progress.Compute(cfg.Ladder, sessions)

	if ctx.Bool("json") {
		reports := make([]levelReport, len(table))

		for i := range table {
			reports[i] = levelReport{
				Name:          cfg.Ladder[i].Name,
				LevelProgress: table[i],
				Percent:       progress.Percent(cfg.Ladder, &table[i]),
				Details:       progress.Details(cfg.Ladder, &table[i]),
			}
		}

		return printJSON(reports)
	}

	printProgress(cfg.Ladder, table)

	return nil
}

func printProgress(ladder level.Ladder, table []progress.LevelProgress) {
	data := [][]string{
		{"#", "NAME", "SESSIONS", "MINUTES", "EDGES", "CLIMAX RATE", "MASTERY", "STATUS"},
	}

	ratio := func(c progress.Criterion, suffix string) string {
		s := fmt.Sprintf("%v/%v%s", c.Current, c.Required, suffix)
		if c.Met {
			return ui.Green(s)
		}

		return s
	}

	for i := range table {
		p := &table[i]
		d := progress.Details(ladder, p)

		status := ui.Red("locked")

		switch {
		case p.Mastered:
			status = ui.Green("mastered")
		case p.Unlocked:
			status = ui.Cyan("unlocked")
		}

		data = append(data, []string{
			fmt.Sprint(p.Level),
			ladder[i].Name,
			ratio(d.Sessions, ""),
			ratio(d.Minutes, ""),
			ratio(d.Edges, ""),
			ratio(d.ClimaxRate, "%"),
			fmt.Sprintf("%d%%", progress.Percent(ladder, p)),
			status,
		})
	}

	ui.PrintTable(data, config.Stdout)
}
