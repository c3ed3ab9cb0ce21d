// Package session persists the client's authentication state in the local
// sqlite database: the backend session token, the authenticated user's
// profile, and the transient registration record collected before email
// verification. Each slot can be set, read and cleared independently.
package session

import (
	"context"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
)

// Store is the persisted session state of the client.
//
// Contract:
//   - Token/Profile: written together after a successful login, read at
//     startup, cleared on logout. Absence is not an error: Token returns ""
//     and Profile returns nil.
//   - PendingRegistration: written after a successful registration, consumed
//     on the first matching login. Reads apply the 24h expiry: a stale record
//     is deleted and reported as absent.
//   - ClearAll removes all three slots in one transaction.
type Store interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error

	Profile(ctx context.Context) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, profile *models.UserProfile) error

	// SaveSession persists token and profile together.
	SaveSession(ctx context.Context, token string, profile *models.UserProfile) error

	PendingRegistration(ctx context.Context) (*models.PendingRegistration, error)
	SavePendingRegistration(ctx context.Context, rec *models.PendingRegistration) error
	DeletePendingRegistration(ctx context.Context) error

	ClearAll(ctx context.Context) error
}
