package identity

import "errors"

var (
	// ErrInvalidCredentials means the identity provider rejected the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotVerified means the provider authenticated the user but the
	// account's email is not verified yet. The provider session is signed out
	// before this is returned.
	ErrEmailNotVerified = errors.New("please verify your email before logging in, check your inbox for the verification email")
)

// ProviderError carries the identity provider's rejection message verbatim,
// for direct display to the user.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
