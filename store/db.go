package store

import (
	"context"

	"github.com/ayoisaiah/mmo/internal/models"
)

// SessionStore persists finished and in-progress sessions.
type SessionStore interface {
	// ListAll returns every stored session, newest first. Records that fail
	// validation are skipped.
	ListAll(ctx context.Context) ([]models.Session, error)
	// Get returns the session with the given id or ErrSessionNotFound.
	Get(ctx context.Context, id string) (*models.Session, error)
	// Put creates the session, or overwrites it if it exists already.
	Put(ctx context.Context, sess *models.Session) error
	// Delete removes a session and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
	// Clear removes every session.
	Clear(ctx context.Context) error
}

// SettingsStore persists the user settings.
type SettingsStore interface {
	// Settings returns the stored settings, writing the defaults on first use.
	Settings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) error
}

// DB is the database storage interface.
type DB interface {
	SessionStore
	SettingsStore
	// Close ends the database connection
	Close() error
}
