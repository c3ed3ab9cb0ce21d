// Package services contains application services for the Vyapkart client.
// This file defines the authentication service: registration, the two login
// variants (email/password and phone OTP), logout, and session restore.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
	"github.com/vyapkart/vyapkart-cli/internal/client/session"
	"github.com/vyapkart/vyapkart-cli/internal/client/validate"
	"github.com/vyapkart/vyapkart-cli/internal/logging"
)

// IdentityBridge is the handshake surface the auth service depends on.
// Implemented by identity.Bridge.
type IdentityBridge interface {
	Register(ctx context.Context, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte, pending *models.PendingRegistration) (*models.AuthResult, bool, error)
	Logout(ctx context.Context) error
}

// BackendAuthAPI is the backend surface used outside the handshake: the OTP
// login variant and the profile route. Implemented by api.Client.
type BackendAuthAPI interface {
	VerifyOTP(ctx context.Context, phone, otp string) (*models.AuthResult, error)
	Me(ctx context.Context) (*models.UserProfile, error)
}

// RegisterParams is the registration form.
type RegisterParams struct {
	Email        string
	Password     []byte
	FullName     string
	Phone        string
	Role         string
	BusinessName string
	GSTNumber    string
}

// AuthService drives authentication for the CLI.
//
// Contract:
//   - Register: validate the form, create the provider account, persist the
//     pending registration record.
//   - Login: run the identity handshake, persist token+profile, consume the
//     pending record if it was attached.
//   - LoginWithOTP: the distinct phone-based variant. Talks to the backend
//     directly and never consumes a pending record.
//   - Logout: best-effort provider sign-out, then clear all persisted state.
//   - Restore: load the persisted session at startup, if any.
//
// All methods honor context cancellation through the underlying HTTP and
// database calls. The service serializes nothing: the caller must not issue
// two concurrent logins.
type AuthService interface {
	Register(ctx context.Context, p RegisterParams) error
	Login(ctx context.Context, email string, password []byte) (*models.UserProfile, error)
	LoginWithOTP(ctx context.Context, phone, otp string) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.UserProfile, error)
	RefreshProfile(ctx context.Context) (*models.UserProfile, error)
	SessionExpiry(ctx context.Context) (time.Time, bool, error)
}

// authService is the concrete AuthService backed by the identity bridge,
// the backend API and the local session store.
type authService struct {
	bridge IdentityBridge
	api    BackendAuthAPI
	store  session.Store
	log    logging.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService.
func NewAuthService(bridge IdentityBridge, api BackendAuthAPI, store session.Store, log logging.Logger) AuthService {
	return &authService{bridge: bridge, api: api, store: store, log: log, now: time.Now}
}

// Register validates the form, creates the provider account (which sends the
// verification email) and persists the pending registration record so the
// first post-verification login can pick the fields up. The backend is not
// contacted.
func (a *authService) Register(ctx context.Context, p RegisterParams) error {
	if err := validate.Registration(p.Email, p.Password, p.FullName, p.Phone, p.Role, p.BusinessName, p.GSTNumber); err != nil {
		return err
	}

	if err := a.bridge.Register(ctx, p.Email, p.Password); err != nil {
		return err
	}

	rec := &models.PendingRegistration{
		Email:        p.Email,
		FullName:     p.FullName,
		Phone:        p.Phone,
		Role:         p.Role,
		BusinessName: p.BusinessName,
		GSTNumber:    p.GSTNumber,
		CreatedAt:    a.now(),
	}
	if err := a.store.SavePendingRegistration(ctx, rec); err != nil {
		return fmt.Errorf("saving registration record: %w", err)
	}

	a.log.Info(ctx, "registration complete, verification email sent", "email", p.Email, "role", p.Role)
	return nil
}

// Login runs the email/password handshake. The pending registration record,
// if present and fresh, rides along on the exchange; on success it is
// deleted so it cannot attach to any later session. Token and profile are
// written only after every upstream step has succeeded.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.UserProfile, error) {
	pending, err := a.store.PendingRegistration(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading registration record: %w", err)
	}

	result, consumed, err := a.bridge.Login(ctx, email, password, pending)
	if err != nil {
		return nil, err
	}

	profile := result.Profile()
	if err := a.store.SaveSession(ctx, result.Token, profile); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	if consumed {
		if err := a.store.DeletePendingRegistration(ctx); err != nil {
			return nil, fmt.Errorf("clearing registration record: %w", err)
		}
	}

	a.log.Info(ctx, "logged in", "email", profile.Email, "roles", profile.Roles)
	return profile, nil
}

// LoginWithOTP is the phone-based login variant. It never touches the
// identity provider or the pending registration record.
func (a *authService) LoginWithOTP(ctx context.Context, phone, otp string) (*models.UserProfile, error) {
	result, err := a.api.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return nil, err
	}

	profile := result.Profile()
	if err := a.store.SaveSession(ctx, result.Token, profile); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	a.log.Info(ctx, "logged in via otp", "phone", phone)
	return profile, nil
}

// Logout signs out at the identity provider and wipes all persisted session
// state. Provider sign-out failure is logged and otherwise ignored: the
// local state is cleared regardless.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.bridge.Logout(ctx); err != nil {
		a.log.Warn(ctx, "provider sign-out failed", "error", err)
	}
	if err := a.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// Restore loads the persisted session, returning the stored profile when a
// token is present and nil when the user is logged out. A profile without a
// token (or the reverse) counts as logged out.
func (a *authService) Restore(ctx context.Context) (*models.UserProfile, error) {
	token, err := a.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	profile, err := a.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// RefreshProfile re-fetches the profile from the backend and updates the
// stored copy. Requires an active session.
func (a *authService) RefreshProfile(ctx context.Context) (*models.UserProfile, error) {
	profile, err := a.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.store.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("persisting profile: %w", err)
	}
	return profile, nil
}

// SessionExpiry decodes the stored session token as a JWT (without
// verifying — display only) and returns its expiry. ok is false when no
// token is stored, the token is opaque, or it carries no expiry claim.
func (a *authService) SessionExpiry(ctx context.Context) (time.Time, bool, error) {
	token, err := a.store.Token(ctx)
	if err != nil {
		return time.Time{}, false, err
	}
	if token == "" {
		return time.Time{}, false, nil
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false, nil
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false, nil
	}
	return claims.ExpiresAt.Time, true, nil
}
