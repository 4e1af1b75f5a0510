package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

type example struct {
	cmd  string
	desc string
}

var examples = []example{
	{"mmo", "train at the current level"},
	{"mmo train --level 2 --session-cmd 'notify-send done'", "train at level 2 and run a command once the session is saved"},
	{"mmo progress", "show how close each level is to mastery"},
	{"mmo levels --json", "print the level ladder as JSON"},
	{"mmo sessions list", "list stored sessions, newest first"},
	{"mmo sessions show 2025-03-01_20-00-00", "show the phases and edges of one session"},
	{"mmo stats --period 30days", "summarise the last 30 days with a daily breakdown"},
	{"mmo stats --start '2 weeks ago'", "dates may be relative"},
}

var files = []example{
	{"$XDG_CONFIG_HOME/mmo/config.yml", "settings (mmo edit-config)"},
	{"$XDG_CONFIG_HOME/mmo/levels.yml", "level ladder (mmo edit-config --levels)"},
	{"$XDG_CONFIG_HOME/mmo/chime.wav", "sound played on phase changes when notifications.sound is on"},
	{"$XDG_DATA_HOME/mmo/mmo.db", "session history and settings"},
	{"$XDG_DATA_HOME/mmo/log/mmo.log", "application log"},
}

func section(title, body string) string {
	return fmt.Sprintf("%s\n%s\n", pterm.Yellow(title), body)
}

func renderExamples(list []example, color func(a ...any) string) string {
	var b strings.Builder

	for _, e := range list {
		fmt.Fprintf(&b, "   %s\n\t\t%s\n", color(e.cmd), e.desc)
	}

	return b.String()
}

func helpText() string {
	description := section("DESCRIPTION", "\t\t{{.Usage}}\n")

	usage := section(
		"USAGE",
		"\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{else}}[command] [options]{{end}}\n",
	)

	commands := section(
		"COMMANDS",
		fmt.Sprintf(
			"{{range .VisibleCommands}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}",
			pterm.Green("{{join .Names `, `}}"),
		),
	)

	options := section(
		"GLOBAL OPTIONS",
		fmt.Sprintf(
			"{{range .VisibleFlags}}   {{if .Aliases}}{{range $element := .Aliases}}%s, {{end}}{{end}}%s\n\t\t{{.Usage}}\n{{end}}",
			pterm.Green("-{{$element}}"),
			pterm.Green("--{{.Name}}"),
		),
	)

	return description + usage + commands + options +
		section("EXAMPLES", renderExamples(examples, pterm.Cyan)) +
		section("FILES", renderExamples(files, pterm.Cyan)) +
		section("ENVIRONMENT", envHelp()) +
		"{{if .Version}}" + section("VERSION", "\t\t{{.Version}}\n") + "{{end}}"
}

func envHelp() string {
	return `   MMO_NO_COLOR, NO_COLOR
		set to any value to print without ANSI colour sequences
   MMO_ENV
		use a separate set of config, levels, database and log files (e.g. MMO_ENV=dev)
`
}
