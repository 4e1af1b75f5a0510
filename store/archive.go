package store

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/zstd"

	"github.com/ayoisaiah/mmo/internal/models"
)

// maxRecordSize bounds a single JSON line in an archive.
const maxRecordSize = 16 << 20

// Export writes every stored session to w as zstd compressed JSON lines,
// newest first. It returns the number of sessions written.
func (c *Client) Export(ctx context.Context, w io.Writer) (int, error) {
	sessions, err := c.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("create zstd encoder: %w", err)
	}

	enc := json.NewEncoder(encoder)

	for i := range sessions {
		if err := enc.Encode(&sessions[i]); err != nil {
			encoder.Close()
			return 0, fmt.Errorf("compress: %w", err)
		}
	}

	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("finalize compression: %w", err)
	}

	return len(sessions), nil
}

// ImportArchive reads sessions written by Export and stores them. Lines that
// fail to decode are skipped and counted in the result.
func (c *Client) ImportArchive(
	ctx context.Context,
	r io.Reader,
) (ImportResult, error) {
	var result ImportResult

	decoder, err := zstd.NewReader(r)
	if err != nil {
		return result, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer decoder.Close()

	scanner := bufio.NewScanner(decoder)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	var (
		sessions []models.Session
		line     int
	)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		line++

		if len(scanner.Bytes()) == 0 {
			continue
		}

		sess, err := decodeSession(scanner.Bytes())
		if err != nil {
			slog.WarnContext(
				ctx,
				"skipping malformed archive record",
				slog.Int("line", line),
				slog.Any("error", err),
			)

			result.Skipped = append(result.Skipped, fmt.Sprintf("line %d", line))

			continue
		}

		sessions = append(sessions, *sess)
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("decompress: %w", err)
	}

	if err := c.putMany(sessions); err != nil {
		return result, err
	}

	result.Imported = len(sessions)

	return result, nil
}
