package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/config"
	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/stats"
)

// listAction prints the sessions started within the selected period.
func listAction(ctx *cli.Context) error {
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

	sessions = stats.Filter(sessions, cfg.CLI.StartTime, cfg.CLI.EndTime)

	if ctx.Bool("json") {
		if sessions == nil {
			sessions = []models.Session{}
		}

		return printJSON(sessions)
	}

	stats.PrintSessions(config.Stdout, sessions)

	return nil
}

func showAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingArg.Fmt("session id")
	}

	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	sess, err := db.Get(ctx.Context, id)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(sess)
	}

	stats.PrintSession(config.Stdout, sess)

	return nil
}

// deleteAction deletes the sessions named on the command line after
// confirmation.
func deleteAction(ctx *cli.Context) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		return errMissingArg.Fmt("session id")
	}

	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	sessions := make([]models.Session, 0, len(ids))

	for _, id := range ids {
		sess, err := db.Get(ctx.Context, id)
		if err != nil {
			return err
		}

		sessions = append(sessions, *sess)
	}

	stats.PrintSessions(config.Stdout, sessions)

	ok, err := confirmed(ctx, "The above sessions will be deleted permanently. Proceed?")
	if err != nil {
		return err
	}

	if !ok {
		return errAborted
	}

	for _, id := range ids {
		if _, err := db.Delete(ctx.Context, id); err != nil {
			return err
		}
	}

	pterm.Success.Printfln("Deleted %d session(s)", len(ids))

	return nil
}

func clearAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	ok, err := confirmed(ctx, "Every session will be deleted permanently. Proceed?")
	if err != nil {
		return err
	}

	if !ok {
		return errAborted
	}

	if err := db.Clear(ctx.Context); err != nil {
		return err
	}

	pterm.Success.Println("All sessions deleted")

	return nil
}

// notesAction replaces the notes of a session. An empty text clears them.
func notesAction(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) == 0 {
		return errMissingArg.Fmt("session id")
	}

	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	sess, err := db.Get(ctx.Context, args[0])
	if err != nil {
		return err
	}

	sess.Notes = strings.TrimSpace(strings.Join(args[1:], " "))

	if err := db.Put(ctx.Context, sess); err != nil {
		return err
	}

	pterm.Success.Println(fmt.Sprintf("Notes updated for %s", sess.ID))

	return nil
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
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

	opts := stats.Opts{
		StartTime: cfg.CLI.StartTime,
		EndTime:   cfg.CLI.EndTime,
	}

	if ctx.Bool("json") {
		b, err := stats.New(sessions, opts).ToJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	return stats.Show(config.Stdout, sessions, opts)
}
