// Package osutil holds platform names, exit codes and file modes
package osutil

import "io/fs"

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission fs.FileMode = 0o755
	// FilePermission applies to files the user may edit, such as levels.yml.
	FilePermission fs.FileMode = 0o644
	// PrivateFilePermission applies to the session database.
	PrivateFilePermission fs.FileMode = 0o600
)

// Exit code as accepted by os.Exit.
func (c exitCode) Int() int {
	return int(c)
}
