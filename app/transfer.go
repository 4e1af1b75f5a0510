package app

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/store"
)

func exportAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("file")
	}

	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	n, err := db.Export(ctx.Context, f)
	if err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	pterm.Success.Printfln("Exported %d session(s) to %s", n, path)

	return nil
}

// importAction loads sessions from a directory of JSON files or an archive
// written by export. Malformed records are skipped and reported.
func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingArg.Fmt("directory or file")
	}

	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	var res store.ImportResult

	if info.IsDir() {
		res, err = db.ImportDir(ctx.Context, path)
	} else {
		var f *os.File

		f, err = os.Open(path)
		if err != nil {
			return err
		}

		defer f.Close()

		res, err = db.ImportArchive(ctx.Context, f)
	}

	if err != nil {
		return err
	}

	for _, s := range res.Skipped {
		pterm.Warning.Printfln("Skipped malformed record: %s", s)
	}

	pterm.Success.Printfln("Imported %d session(s)", res.Imported)

	return nil
}
