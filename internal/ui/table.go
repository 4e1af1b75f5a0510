package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		slog.Error("rendering table failed", slog.Any("error", err))
		pterm.Error.Printfln("Failed to output table: %s", err.Error())

		return
	}

	fmt.Fprintln(writer, str)
}
