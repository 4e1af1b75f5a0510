package store

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/mmo/internal/models"
)

// ImportResult summarises an import run.
type ImportResult struct {
	Skipped  []string
	Imported int
}

// ImportDir copies sessions from a flat-file layout, where each session is
// stored in its own <id>.json file, into the database. Files that cannot be
// decoded are skipped and logged rather than aborting the import.
func (c *Client) ImportDir(ctx context.Context, dir string) (ImportResult, error) {
	var result ImportResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, err
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}

		names = append(names, e.Name())
	}

	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	sessions := make([]models.Session, 0, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return result, err
		}

		sess, err := decodeSession(b)
		if err != nil {
			slog.WarnContext(
				ctx,
				"skipping malformed session file",
				slog.String("file", name),
				slog.Any("error", err),
			)

			result.Skipped = append(result.Skipped, name)

			continue
		}

		sessions = append(sessions, *sess)
	}

	if err := c.putMany(sessions); err != nil {
		return result, err
	}

	result.Imported = len(sessions)

	return result, nil
}
