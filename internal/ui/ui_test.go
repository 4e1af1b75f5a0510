package ui_test

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mmo/internal/ui"
)

func TestThemedColours(t *testing.T) {
	t.Cleanup(func() { ui.DarkTheme = false })

	ui.DarkTheme = false
	assert.Equal(t, pterm.Green("ok"), ui.Green("ok"))

	ui.DarkTheme = true
	assert.Equal(t, pterm.LightGreen("ok"), ui.Green("ok"))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	ui.PrintTable([][]string{
		{"#", "NAME"},
		{"1", "Beginner"},
	}, &buf)

	assert.Contains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "Beginner")
}
