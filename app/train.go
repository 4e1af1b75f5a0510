package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/config"
	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/pathutil"
	"github.com/ayoisaiah/mmo/internal/static"
	"github.com/ayoisaiah/mmo/level"
	"github.com/ayoisaiah/mmo/progress"
	"github.com/ayoisaiah/mmo/recorder"
	"github.com/ayoisaiah/mmo/stats"
	"github.com/ayoisaiah/mmo/store"
	"github.com/ayoisaiah/mmo/trainer"
)

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// chimeSound returns the chime in the config directory, or the embedded one
// if it cannot be read.
func chimeSound() []byte {
	b, err := os.ReadFile(filepath.Join(pathutil.ConfigDir(), static.ChimeFileName))
	if err != nil {
		return static.ChimeFile()
	}

	return b
}

// saveSession stores sess under an id that is not taken yet, so that a
// session started in the same second as a stored one never replaces it.
func saveSession(ctx context.Context, db store.SessionStore, sess *models.Session) error {
	base := sess.ID

	for n := 2; ; n++ {
		_, err := db.Get(ctx, sess.ID)
		if errors.Is(err, store.ErrSessionNotFound) {
			break
		}

		if err != nil {
			return err
		}

		sess.ID = fmt.Sprintf("%s-%d", base, n)
	}

	return db.Put(ctx, sess)
}

// selectLevel resolves the level to train at and checks that it is unlocked.
// A stored level that is no longer on the ladder falls back to the first.
func selectLevel(
	ladder level.Ladder,
	table []progress.LevelProgress,
	requested, current int,
) (level.Definition, error) {
	if requested != 0 {
		if _, ok := ladder.Lookup(requested); !ok {
			return level.Definition{}, errUnknownLevel.Fmt(requested)
		}
	}

	def := ladder.ByID(cmp.Or(requested, current))

	if !progress.Unlocked(table, def.ID) {
		return level.Definition{}, errLevelLocked.Fmt(def.ID, def.ID-1)
	}

	return def, nil
}

// announceProgress reports levels mastered by the latest session, or how
// close the trained level is to mastery.
func announceProgress(
	ladder level.Ladder,
	before, after []progress.LevelProgress,
	trained int,
) {
	for i := range after {
		if !after[i].Mastered || before[i].Mastered {
			continue
		}

		pterm.Success.Printfln(
			"Level %d (%s) mastered",
			ladder[i].ID,
			ladder[i].Name,
		)

		if i+1 < len(ladder) {
			pterm.Success.Printfln(
				"Level %d (%s) is now unlocked",
				ladder[i+1].ID,
				ladder[i+1].Name,
			)
		}

		return
	}

	if p, ok := progress.Lookup(after, trained); ok && !p.Mastered {
		pterm.Info.Printfln(
			"Level %d mastery: %d%%",
			trained,
			progress.Percent(ladder, p),
		)
	}
}

// trainAction runs an interactive session and saves it when it finishes.
func trainAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	settings, err := db.Settings(ctx.Context)
	if err != nil {
		return err
	}

	sessions, err := db.ListAll(ctx.Context)
	if err != nil {
		return err
	}

	before := progress.Compute(cfg.Ladder, sessions)

	def, err := selectLevel(cfg.Ladder, before, cfg.CLI.Level, settings.CurrentLevel)
	if err != nil {
		return err
	}

	notifier := trainer.NewNotifier(def, cfg.Notifications.Enabled, nil)
	if cfg.Notifications.Sound {
		notifier.WithChime(trainer.NewChime(chimeSound()).Play)
	}

	m, err := trainer.New(recorder.New(), def, trainer.Options{
		Notifier:             notifier,
		TimeLayout:           cfg.TimeLayout(),
		ArousalCheckInterval: settings.ArousalCheckInterval,
		DarkTheme:            cfg.Display.DarkTheme,
	})
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}

	if m.Result() != trainer.Finished {
		pterm.Info.Println("Session discarded")
		return nil
	}

	sess := m.Session()

	if err := saveSession(ctx.Context, db, sess); err != nil {
		return err
	}

	stats.PrintSession(config.Stdout, sess)

	after := progress.Compute(
		cfg.Ladder,
		append([]models.Session{*sess}, sessions...),
	)

	announceProgress(cfg.Ladder, before, after, def.ID)

	if err := runSessionCmd(cfg.Settings.Cmd); err != nil {
		pterm.Error.Printfln("session_cmd failed: %v", err)
	}

	return nil
}
