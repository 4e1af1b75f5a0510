package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███╗   ███╗███╗   ███╗ ██████╗ 
████╗ ████║████╗ ████║██╔═══██╗
██╔████╔██║██╔████╔██║██║   ██║
██║╚██╔╝██║██║╚██╔╝██║██║   ██║
██║ ╚═╝ ██║██║ ╚═╝ ██║╚██████╔╝
╚═╝     ╚═╝╚═╝     ╚═╝ ╚═════╝ `

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	Notifications bool
	DarkTheme     bool
}

// WithPromptConfig returns an Option that asks for the initial preferences
// when no config file exists at configPath yet. It must run before
// WithViperConfig so the answers end up in the written file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Notifications: true,
		DarkTheme:     true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Answer the prompts below to configure mmo for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'mmo edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show desktop notifications on phase changes?").
				Value(&opts.Notifications),
			huh.NewConfirm().
				Title("Is your terminal using a dark theme?").
				Value(&opts.DarkTheme),
		),
	)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Notifications.Enabled = opts.Notifications
	c.Display.DarkTheme = opts.DarkTheme
	c.prompted = true

	return nil
}
