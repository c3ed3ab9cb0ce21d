package identity

import "context"

// Identity is a provider-authenticated user: the provider's account id, the
// account email, and a short-lived ID token proving the authentication.
type Identity struct {
	UID     string
	Email   string
	IDToken string
}

// Provider is the external identity service. It owns the password and
// email-verification lifecycle; the client never sees password hashes or
// verification state beyond what is exposed here.
//
// Implementations return *ProviderError for rejections carrying a
// provider-issued message, and plain errors for transport failures.
type Provider interface {
	// CreateAccount registers email/password with the provider.
	CreateAccount(ctx context.Context, email string, password []byte) (*Identity, error)

	// SignIn authenticates email/password and returns the resulting identity.
	SignIn(ctx context.Context, email string, password []byte) (*Identity, error)

	// IDToken returns a short-lived identity proof for the authenticated
	// identity, suitable for a bearer header.
	IDToken(ctx context.Context, id *Identity) (string, error)

	// EmailVerified reports whether the identity's email address has been
	// verified with the provider.
	EmailVerified(ctx context.Context, id *Identity) (bool, error)

	// SendVerificationEmail asks the provider to mail a verification link.
	SendVerificationEmail(ctx context.Context, id *Identity) error

	// SignOut ends the provider-side session, if any.
	SignOut(ctx context.Context) error
}
