package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mmo/internal/config"
	"github.com/ayoisaiah/mmo/internal/logging"
	"github.com/ayoisaiah/mmo/internal/osutil"
	"github.com/ayoisaiah/mmo/internal/pathutil"
	"github.com/ayoisaiah/mmo/internal/static"
	"github.com/ayoisaiah/mmo/internal/ui"
	"github.com/ayoisaiah/mmo/store"
)

const (
	envNoColor    = "NO_COLOR"
	envMMONoColor = "MMO_NO_COLOR"
)

var logCloser io.Closer

// confirm asks a yes/no question. It is a variable so tests can answer it.
var confirm = func(title string) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()

	return ok, err
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file, the ladder and the command-line flags,
// and starts the application log. prompt enables the first-run questions.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithLadder(pathutil.LevelsFilePath()),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	closer, err := logging.Setup(pathutil.LogFilePath(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logCloser = closer

	return cfg, nil
}

func openDB() (*store.Client, error) {
	return store.NewClient(pathutil.DBFilePath())
}

// printJSON writes v to stdout as a single line of JSON.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

// confirmed reports whether a destructive command may proceed.
func confirmed(ctx *cli.Context, title string) (bool, error) {
	if ctx.Bool("yes") {
		return true, nil
	}

	return confirm(title)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	path := pathutil.ConfigFilePath()
	if ctx.Bool("levels") {
		path = pathutil.LevelsFilePath()
	}

	cmd := exec.Command(editor, path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envMMONoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return static.Install(pathutil.ConfigDir(), map[string]string{
		"levels.yml": pathutil.LevelsFileName(),
	})
}

func afterAction(ctx *cli.Context) error {
	c := ctx.Context
	if c == nil {
		c = context.Background()
	}

	slog.InfoContext(c, "exiting mmo")

	if logCloser != nil {
		err := logCloser.Close()
		logCloser = nil

		return err
	}

	return nil
}
