package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// TokenReader is the narrow session-store view the transport needs. An empty
// token means no session exists; the request then goes out unauthenticated
// and the backend decides whether that is acceptable.
type TokenReader interface {
	Token(ctx context.Context) (string, error)
}

// SessionTransport attaches the persisted session token as a bearer header
// to every outgoing request, except requests whose path is in the skip set.
// The identity-exchange route is skipped: that call carries the provider's
// ID token, set explicitly by the caller, and must never receive a session
// token. Every request is also stamped with an X-Request-Id.
type SessionTransport struct {
	base   http.RoundTripper
	tokens TokenReader
	skip   map[string]struct{}
}

// NewSessionTransport builds the gateway transport. base may be nil, in
// which case http.DefaultTransport is used. skipPaths lists the routes that
// never receive the session token.
func NewSessionTransport(base http.RoundTripper, tokens TokenReader, skipPaths ...string) *SessionTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &SessionTransport{base: base, tokens: tokens, skip: skip}
}

// RoundTrip implements http.RoundTripper.
func (t *SessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if out.Header.Get("X-Request-Id") == "" {
		out.Header.Set("X-Request-Id", uuid.NewString())
	}

	if _, skipped := t.skip[out.URL.Path]; !skipped && out.Header.Get("Authorization") == "" {
		token, err := t.tokens.Token(out.Context())
		if err != nil {
			return nil, fmt.Errorf("reading session token: %w", err)
		}
		if token != "" {
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return t.base.RoundTrip(out)
}
