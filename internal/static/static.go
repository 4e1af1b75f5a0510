// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/mmo/internal/osutil"
)

const (
	filesDir = "files"

	// ChimeFileName is the sound played on phase changes. A file with this
	// name in the config directory replaces the embedded one.
	ChimeFileName = "chime.wav"
)

//go:embed files/*
var embeddedFiles embed.FS

// LevelsFile returns the embedded default level ladder.
func LevelsFile() []byte {
	b, _ := embeddedFiles.ReadFile(path.Join(filesDir, "levels.yml"))
	return b
}

// ChimeFile returns the embedded phase-change chime.
func ChimeFile() []byte {
	b, _ := embeddedFiles.ReadFile(path.Join(filesDir, ChimeFileName))
	return b
}

// Install copies the embedded files into dir. names maps an embedded file
// name to the name it should have on disk; unmapped files keep their name.
// Existing files are never overwritten.
func Install(dir string, names map[string]string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(p, filesDir+"/")
			if name, ok := names[stripped]; ok {
				stripped = name
			}

			destPath := filepath.Join(dir, filepath.FromSlash(stripped))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); errors.Is(err, os.ErrNotExist) {
				if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
