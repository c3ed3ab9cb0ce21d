// Package models defines the data types shared by the Vyapkart client:
// the authenticated user's profile, the result of a login exchange, the
// transient registration record, and the exchange request payload.
package models

import "time"

// Role labels assigned by the backend. A user holds at least one.
const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

// PendingRegistrationTTL is how long a registration record stays usable.
// Older records are dropped on read.
const PendingRegistrationTTL = 24 * time.Hour

// UserProfile is the denormalized cache of the authenticated user's
// attributes as returned by the backend. It is persisted alongside the
// session token and read at startup to decide the initial screen.
type UserProfile struct {
	UserID   int64    `json:"userId"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the profile carries the given role label.
func (p *UserProfile) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthResult is the backend's response to a successful identity exchange:
// the user's profile plus the session token. The client trusts it verbatim.
type AuthResult struct {
	UserID   int64    `json:"userId"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles"`
	Token    string   `json:"token"`
}

// Profile extracts the persistable profile part of the result.
func (r *AuthResult) Profile() *UserProfile {
	return &UserProfile{
		UserID:   r.UserID,
		Email:    r.Email,
		FullName: r.FullName,
		Phone:    r.Phone,
		Roles:    r.Roles,
	}
}

// PendingRegistration caches the profile fields collected at registration
// time so the user does not re-enter them on the first login after email
// verification. At most one record exists at a time.
type PendingRegistration struct {
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	BusinessName string    `json:"businessName,omitempty"`
	GSTNumber    string    `json:"gstNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Expired reports whether the record is older than PendingRegistrationTTL
// at the given instant.
func (r *PendingRegistration) Expired(now time.Time) bool {
	return now.Sub(r.CreatedAt) > PendingRegistrationTTL
}

// ExchangePayload is the body of the identity-exchange request. All fields
// are optional; a plain login sends the empty payload. Role accompanies any
// registration data.
type ExchangePayload struct {
	FullName     string `json:"fullName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	GSTNumber    string `json:"gstNumber,omitempty"`
}

// Empty reports whether the payload carries no registration data.
func (p *ExchangePayload) Empty() bool {
	return p.FullName == "" && p.Phone == "" && p.Role == "" &&
		p.BusinessName == "" && p.GSTNumber == ""
}
