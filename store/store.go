// Package store connects to the data store and manages sessions and settings
package store

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/mmo/internal/apperr"
	"github.com/ayoisaiah/mmo/internal/models"
	"github.com/ayoisaiah/mmo/internal/osutil"
)

const (
	sessionBucket  = "sessions"
	settingsBucket = "settings"
	settingsKey    = "settings"
)

var (
	ErrSessionNotFound = &apperr.Error{
		Message: "session not found: %s",
	}

	errAlreadyRunning = &apperr.Error{
		Message: "is mmo already running? Only one instance can be active at a time",
	}

	errCorruptSettings = &apperr.Error{
		Message: "stored settings could not be read",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.PrivateFilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))

		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// decodeSession unmarshals and validates a stored record.
func decodeSession(v []byte) (*models.Session, error) {
	var sess models.Session

	if err := json.Unmarshal(v, &sess); err != nil {
		return nil, models.ErrMalformedRecord.Fmt(err.Error())
	}

	if err := sess.Validate(); err != nil {
		return nil, err
	}

	return &sess, nil
}

// sortByRecency orders sessions from the newest to the oldest.
func sortByRecency(sessions []models.Session) {
	slices.SortStableFunc(sessions, func(a, b models.Session) int {
		if c := b.StartTime.Compare(a.StartTime); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})
}

func (c *Client) ListAll(ctx context.Context) ([]models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(k, v []byte) error {
			sess, err := decodeSession(v)
			if err != nil {
				slog.WarnContext(
					ctx,
					"skipping malformed session",
					slog.String("key", string(k)),
					slog.Any("error", err),
				)

				return nil
			}

			sessions = append(sessions, *sess)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortByRecency(sessions)

	return sessions, nil
}

func (c *Client) Get(ctx context.Context, id string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sess *models.Session

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(sessionBucket)).Get([]byte(id))
		if v == nil {
			return ErrSessionNotFound.Fmt(id)
		}

		var err error

		sess, err = decodeSession(v)

		return err
	})

	return sess, err
}

func (c *Client) Put(ctx context.Context, sess *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := sess.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put([]byte(sess.ID), value)
	})
}

// putMany stores sessions in a single transaction.
func (c *Client) putMany(sessions []models.Session) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		for i := range sessions {
			value, err := json.Marshal(&sessions[i])
			if err != nil {
				return err
			}

			if err := b.Put([]byte(sessions[i].ID), value); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var found bool

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		if b.Get([]byte(id)) == nil {
			return nil
		}

		found = true

		return b.Delete([]byte(id))
	})

	return found, err
}

func (c *Client) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(sessionBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		_, err = tx.CreateBucket([]byte(sessionBucket))

		return err
	})
}

func (c *Client) Settings(ctx context.Context) (models.Settings, error) {
	if err := ctx.Err(); err != nil {
		return models.Settings{}, err
	}

	s := models.DefaultSettings()

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(settingsBucket))

		v := b.Get([]byte(settingsKey))
		if v == nil {
			def, err := json.Marshal(s)
			if err != nil {
				return err
			}

			return b.Put([]byte(settingsKey), def)
		}

		if err := json.Unmarshal(v, &s); err != nil {
			return errCorruptSettings.Wrap(err)
		}

		return nil
	})

	return s, err
}

func (c *Client) SaveSettings(ctx context.Context, s models.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(settingsKey), value)
	})
}
