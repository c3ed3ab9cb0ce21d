package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
)

func TestEmail(t *testing.T) {
	require.NoError(t, Email("a@x.com"))
	require.NoError(t, Email("first.last@sub.example.co.in"))
	require.ErrorIs(t, Email("not-an-email"), ErrInvalidEmail)
	require.ErrorIs(t, Email("a@b"), ErrInvalidEmail)
	require.ErrorIs(t, Email(""), ErrInvalidEmail)
}

func TestPassword(t *testing.T) {
	require.NoError(t, Password([]byte("secret1")))
	require.NoError(t, Password([]byte("123456")))
	require.ErrorIs(t, Password([]byte("12345")), ErrPasswordTooShort)
	require.ErrorIs(t, Password(nil), ErrPasswordTooShort)
}

func TestPhone(t *testing.T) {
	require.NoError(t, Phone("9876543210"))
	require.ErrorIs(t, Phone("987654321"), ErrInvalidPhone)
	require.ErrorIs(t, Phone("98765432100"), ErrInvalidPhone)
	require.ErrorIs(t, Phone("98765-4321"), ErrInvalidPhone)
	require.ErrorIs(t, Phone("+919876543210"), ErrInvalidPhone)
}

func TestRole(t *testing.T) {
	require.NoError(t, Role(models.RoleBuyer))
	require.NoError(t, Role(models.RoleSeller))
	require.ErrorIs(t, Role("ADMIN"), ErrInvalidRole)
	require.ErrorIs(t, Role("buyer"), ErrInvalidRole)
}

func TestGSTNumber(t *testing.T) {
	require.NoError(t, GSTNumber(""))
	require.NoError(t, GSTNumber("27AAAAA0000A1Z5"))
	require.ErrorIs(t, GSTNumber("27AAAAA0000A1Y5"), ErrInvalidGSTNumber)
	require.ErrorIs(t, GSTNumber("short"), ErrInvalidGSTNumber)
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		fullName     string
		phone        string
		role         string
		businessName string
		gstNumber    string
		wantErr      error
	}{
		{"valid buyer", "a@x.com", "secret1", "Alice", "9876543210", "BUYER", "", "", nil},
		{"valid seller", "a@x.com", "secret1", "Alice", "9876543210", "SELLER", "Alice Store", "27AAAAA0000A1Z5", nil},
		{"seller without gst", "a@x.com", "secret1", "Alice", "9876543210", "SELLER", "Alice Store", "", nil},
		{"seller without business name", "a@x.com", "secret1", "Alice", "9876543210", "SELLER", "", "", ErrBusinessNameMissing},
		{"seller with bad gst", "a@x.com", "secret1", "Alice", "9876543210", "SELLER", "Alice Store", "bogus", ErrInvalidGSTNumber},
		{"buyer ignores seller fields", "a@x.com", "secret1", "Alice", "9876543210", "BUYER", "", "bogus", nil},
		{"short password", "a@x.com", "nope", "Alice", "9876543210", "BUYER", "", "", ErrPasswordTooShort},
		{"bad phone", "a@x.com", "secret1", "Alice", "12345", "BUYER", "", "", ErrInvalidPhone},
		{"bad role", "a@x.com", "secret1", "Alice", "9876543210", "VENDOR", "", "", ErrInvalidRole},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Registration(tc.email, []byte(tc.password), tc.fullName, tc.phone, tc.role, tc.businessName, tc.gstNumber)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
