package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
	"github.com/vyapkart/vyapkart-cli/internal/dbx"
)

// Slot keys in the session table. Kept stable across releases: the values
// survive client upgrades.
const (
	keyToken        = "auth_token"
	keyProfile      = "user_data"
	keyRegistration = "registration_data"
)

// SQLiteStore is the sqlite-backed Store implementation.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore builds a store over an opened sqlite database. The session
// table must already exist (see internal/client/migrations).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session store: get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO session (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("session store: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("session store: delete %s: %w", key, err)
	}
	return nil
}

// Token returns the persisted session token, or "" when none is stored.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, _, err := s.get(ctx, s.db, keyToken)
	return value, err
}

// SaveToken overwrites the session token slot.
func (s *SQLiteStore) SaveToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, keyToken, token)
}

// Profile returns the persisted user profile, or nil when none is stored.
func (s *SQLiteStore) Profile(ctx context.Context) (*models.UserProfile, error) {
	value, ok, err := s.get(ctx, s.db, keyProfile)
	if err != nil || !ok {
		return nil, err
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		return nil, fmt.Errorf("session store: decode profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile overwrites the user profile slot.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("session store: encode profile: %w", err)
	}
	return s.set(ctx, s.db, keyProfile, string(data))
}

// SaveSession writes token and profile in a single transaction so a failed
// write cannot leave the two slots disagreeing.
func (s *SQLiteStore) SaveSession(ctx context.Context, token string, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("session store: encode profile: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, token); err != nil {
			return err
		}
		return s.set(ctx, tx, keyProfile, string(data))
	})
}

// PendingRegistration returns the stored registration record, applying the
// expiry rule: a record older than models.PendingRegistrationTTL is deleted
// and reported as absent. The check runs on every read; there is no
// background sweep.
func (s *SQLiteStore) PendingRegistration(ctx context.Context) (*models.PendingRegistration, error) {
	value, ok, err := s.get(ctx, s.db, keyRegistration)
	if err != nil || !ok {
		return nil, err
	}
	var rec models.PendingRegistration
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return nil, fmt.Errorf("session store: decode registration record: %w", err)
	}
	if rec.Expired(s.now()) {
		if err := s.delete(ctx, s.db, keyRegistration); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &rec, nil
}

// SavePendingRegistration overwrites the registration slot. Only one record
// exists at a time.
func (s *SQLiteStore) SavePendingRegistration(ctx context.Context, rec *models.PendingRegistration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session store: encode registration record: %w", err)
	}
	return s.set(ctx, s.db, keyRegistration, string(data))
}

// DeletePendingRegistration removes the registration slot.
func (s *SQLiteStore) DeletePendingRegistration(ctx context.Context) error {
	return s.delete(ctx, s.db, keyRegistration)
}

// ClearAll removes all three slots in one transaction. Used on logout.
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range []string{keyToken, keyProfile, keyRegistration} {
			if err := s.delete(ctx, tx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
