// Package identity implements the login/registration handshake that bridges
// the external identity provider with the Vyapkart backend.
//
// Registration creates a provider account and triggers a verification email;
// the backend is not contacted. Login authenticates with the provider,
// requires a verified email, and exchanges the provider's ID token for a
// backend session token. A registration record captured earlier can ride
// along on that exchange so first-time users do not re-enter their profile.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
	"github.com/vyapkart/vyapkart-cli/internal/logging"
)

// Exchanger performs the backend identity-exchange call: ID token in, session
// token and profile out. Implemented by the api package.
type Exchanger interface {
	Exchange(ctx context.Context, idToken string, payload *models.ExchangePayload) (*models.AuthResult, error)
}

// Bridge orchestrates the handshake. It owns neither the session store nor
// the HTTP transport: callers persist the results.
type Bridge struct {
	provider Provider
	backend  Exchanger
	log      logging.Logger
}

// NewBridge wires a provider and a backend exchanger.
func NewBridge(provider Provider, backend Exchanger, log logging.Logger) *Bridge {
	return &Bridge{provider: provider, backend: backend, log: log}
}

// Register creates the account with the identity provider and triggers the
// verification email. The backend is never contacted here: a backend user
// record must not exist before the email is verified. Inputs are assumed to
// be validated already (see internal/client/validate).
//
// On success the caller persists a PendingRegistration built from the same
// fields; Register itself keeps no state.
func (b *Bridge) Register(ctx context.Context, email string, password []byte) error {
	id, err := b.provider.CreateAccount(ctx, email, password)
	if err != nil {
		return fmt.Errorf("account creation rejected: %w", err)
	}

	b.log.Debug(ctx, "provider account created", "uid", id.UID)

	if err := b.provider.SendVerificationEmail(ctx, id); err != nil {
		return fmt.Errorf("sending verification email: %w", err)
	}

	b.log.Info(ctx, "verification email sent", "email", email)
	return nil
}

// Login runs the full handshake:
//
//  1. provider sign-in (ErrInvalidCredentials on rejection),
//  2. hard email-verified gate — an unverified account is signed out at the
//     provider and the login fails with ErrEmailNotVerified,
//  3. ID token fetch,
//  4. exchange payload built from pending (only when its email matches),
//  5. backend exchange with the ID token as bearer,
//  6. backend response returned verbatim.
//
// The second return value reports whether the pending record was attached;
// when true the caller must delete the record from its store. Every failure
// aborts the remaining steps: a provider failure never reaches the backend.
func (b *Bridge) Login(ctx context.Context, email string, password []byte, pending *models.PendingRegistration) (*models.AuthResult, bool, error) {
	id, err := b.provider.SignIn(ctx, email, password)
	if err != nil {
		var pe *ProviderError
		if errors.As(err, &pe) {
			return nil, false, fmt.Errorf("%w: %s", ErrInvalidCredentials, pe.Message)
		}
		return nil, false, fmt.Errorf("provider sign-in: %w", err)
	}

	verified, err := b.provider.EmailVerified(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("checking email verification: %w", err)
	}
	if !verified {
		// The backend must never see an unverified identity, so the
		// provider session is torn down before failing.
		if err := b.provider.SignOut(ctx); err != nil {
			b.log.Warn(ctx, "provider sign-out after unverified login failed", "error", err)
		}
		return nil, false, ErrEmailNotVerified
	}

	idToken, err := b.provider.IDToken(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("obtaining identity token: %w", err)
	}

	payload := buildExchangePayload(email, pending)
	firstTime := !payload.Empty()

	result, err := b.backend.Exchange(ctx, idToken, payload)
	if err != nil {
		return nil, false, err
	}

	b.log.Info(ctx, "login exchange complete", "userId", result.UserID, "roles", result.Roles, "firstTime", firstTime)
	return result, firstTime, nil
}

// Logout signs the session out at the identity provider. It does not touch
// the session store; callers clear persisted state separately and should
// treat a failure here as best-effort.
func (b *Bridge) Logout(ctx context.Context) error {
	return b.provider.SignOut(ctx)
}

// buildExchangePayload assembles the exchange body. The payload stays empty
// unless the pending record belongs to the same email that is logging in:
// registration data must never attach to a different account. Only non-empty
// fields are included; role accompanies any registration data.
func buildExchangePayload(email string, pending *models.PendingRegistration) *models.ExchangePayload {
	payload := &models.ExchangePayload{}
	if pending == nil || pending.Email != email {
		return payload
	}
	payload.FullName = pending.FullName
	payload.Phone = pending.Phone
	payload.Role = pending.Role
	payload.BusinessName = pending.BusinessName
	payload.GSTNumber = pending.GSTNumber
	return payload
}
