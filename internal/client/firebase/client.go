// Package firebase implements identity.Provider over the Firebase Auth REST
// API (identitytoolkit v1). Only the email/password flow is used: signUp,
// signInWithPassword, sendOobCode (VERIFY_EMAIL) and accounts:lookup.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vyapkart/vyapkart-cli/internal/client/identity"
	"github.com/vyapkart/vyapkart-cli/internal/logging"
)

// DefaultBaseURL is the public identitytoolkit endpoint.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com"

// Config holds what is needed to talk to the Firebase project.
type Config struct {
	// APIKey is the Firebase project's web API key.
	APIKey string
	// BaseURL overrides the identitytoolkit endpoint (tests point this at a
	// local server). Empty means DefaultBaseURL.
	BaseURL string
	// HTTPClient is used for all requests. Nil means http.DefaultClient.
	HTTPClient *http.Client
	// Logger for request-level diagnostics. Required.
	Logger logging.Logger
}

// Client is the REST identity provider. It remembers the most recent
// authenticated identity so SignOut can drop it, mirroring the SDK's notion
// of a current session.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        logging.Logger

	current *identity.Identity
}

// NewClient validates the config and builds a client.
func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("firebase: APIKey is required")
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("firebase: invalid BaseURL %q: %w", baseURL, err)
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:     config.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        config.Logger,
	}, nil
}

type accountResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"emailVerified"`
	} `json:"users"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// post sends a JSON body to the named accounts action and decodes the
// response into out. Non-2xx responses with a provider error body become
// *identity.ProviderError; anything else is a transport error.
func (c *Client) post(ctx context.Context, action string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("firebase: encode %s request: %w", action, err)
	}

	endpoint := fmt.Sprintf("%s/v1/accounts:%s?key=%s", c.baseURL, action, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("firebase: build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("firebase: %s request: %w", action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("firebase: read %s response: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		if err := json.Unmarshal(respBody, &ae); err == nil && ae.Error.Message != "" {
			c.log.Debug(ctx, "provider rejected request", "action", action, "code", ae.Error.Message)
			return &identity.ProviderError{Code: ae.Error.Message, Message: humanMessage(ae.Error.Message)}
		}
		return fmt.Errorf("firebase: %s failed with status %d", action, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("firebase: decode %s response: %w", action, err)
		}
	}
	return nil
}

// CreateAccount registers a new email/password account.
func (c *Client) CreateAccount(ctx context.Context, email string, password []byte) (*identity.Identity, error) {
	var resp accountResponse
	err := c.post(ctx, "signUp", map[string]any{
		"email":             email,
		"password":          string(password),
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	id := &identity.Identity{UID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken}
	c.current = id
	return id, nil
}

// SignIn authenticates an existing account.
func (c *Client) SignIn(ctx context.Context, email string, password []byte) (*identity.Identity, error) {
	var resp accountResponse
	err := c.post(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          string(password),
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	id := &identity.Identity{UID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken}
	c.current = id
	return id, nil
}

// IDToken returns the identity's short-lived proof. The REST sign-in already
// yields it, so no extra round trip is made.
func (c *Client) IDToken(ctx context.Context, id *identity.Identity) (string, error) {
	if id == nil || id.IDToken == "" {
		return "", fmt.Errorf("firebase: no identity token available")
	}
	return id.IDToken, nil
}

// EmailVerified looks the account up and reports its verification state.
func (c *Client) EmailVerified(ctx context.Context, id *identity.Identity) (bool, error) {
	var resp lookupResponse
	if err := c.post(ctx, "lookup", map[string]any{"idToken": id.IDToken}, &resp); err != nil {
		return false, err
	}
	if len(resp.Users) == 0 {
		return false, fmt.Errorf("firebase: account lookup returned no users")
	}
	return resp.Users[0].EmailVerified, nil
}

// SendVerificationEmail triggers the VERIFY_EMAIL mail for the identity.
func (c *Client) SendVerificationEmail(ctx context.Context, id *identity.Identity) error {
	return c.post(ctx, "sendOobCode", map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     id.IDToken,
	}, nil)
}

// SignOut drops the current identity. The REST API is stateless; forgetting
// the ID token is all a sign-out amounts to on this side.
func (c *Client) SignOut(ctx context.Context) error {
	c.current = nil
	return nil
}

// humanMessage maps the provider's terse error codes to a sentence fit for
// display. Unknown codes pass through verbatim.
func humanMessage(code string) string {
	switch {
	case code == "EMAIL_EXISTS":
		return "an account with this email already exists"
	case code == "EMAIL_NOT_FOUND", code == "INVALID_PASSWORD", strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return "invalid email or password"
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return "password is too weak"
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return "too many attempts, try again later"
	case code == "USER_DISABLED":
		return "this account has been disabled"
	default:
		return code
	}
}
