// Package validate holds the registration-form checks the client performs
// before any network call. The identity bridge assumes its inputs already
// passed these checks.
package validate

import (
	"errors"
	"regexp"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
)

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrInvalidPhone        = errors.New("phone must be exactly 10 digits")
	ErrInvalidRole         = errors.New("role must be BUYER or SELLER")
	ErrBusinessNameMissing = errors.New("business name is required for sellers")
	ErrInvalidGSTNumber    = errors.New("invalid GST number")
)

const MinPasswordLength = 6

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	gstRe   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// Email checks the rough shape of an email address. Ownership is proven
// later by the identity provider's verification mail, so this only rejects
// obvious typos.
func Email(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Password enforces the identity provider's minimum length.
func Password(password []byte) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Phone requires an Indian mobile number without country code.
func Phone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// Role accepts only the two role labels the backend knows.
func Role(role string) error {
	if role != models.RoleBuyer && role != models.RoleSeller {
		return ErrInvalidRole
	}
	return nil
}

// GSTNumber checks the 15-character GSTIN format. An empty value is allowed;
// sellers may register before their GST number is issued.
func GSTNumber(gst string) error {
	if gst == "" {
		return nil
	}
	if !gstRe.MatchString(gst) {
		return ErrInvalidGSTNumber
	}
	return nil
}

// Registration validates the full registration form. Seller-only fields are
// checked only when the role is SELLER.
func Registration(email string, password []byte, fullName, phone, role, businessName, gstNumber string) error {
	if err := Email(email); err != nil {
		return err
	}
	if err := Password(password); err != nil {
		return err
	}
	if err := Phone(phone); err != nil {
		return err
	}
	if err := Role(role); err != nil {
		return err
	}
	if role == models.RoleSeller {
		if businessName == "" {
			return ErrBusinessNameMissing
		}
		if err := GSTNumber(gstNumber); err != nil {
			return err
		}
	}
	return nil
}
