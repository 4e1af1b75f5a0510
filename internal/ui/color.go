// Package ui renders coloured text and tables for the terminal
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour.
var DarkTheme bool

type colorFunc func(a ...any) string

// themed returns a colouring function that follows DarkTheme.
func themed(light, dark colorFunc) func(a any) string {
	return func(a any) string {
		if DarkTheme {
			return dark(a)
		}

		return light(a)
	}
}

var (
	Green     = themed(pterm.Green, pterm.LightGreen)
	Cyan      = themed(pterm.Cyan, pterm.LightCyan)
	Magenta   = themed(pterm.Magenta, pterm.LightMagenta)
	Blue      = themed(pterm.Blue, pterm.LightBlue)
	Red       = themed(pterm.Red, pterm.LightRed)
	Yellow    = themed(pterm.Yellow, pterm.LightYellow)
	Highlight = themed(pterm.Black, pterm.LightWhite)
)
