// Package api is the HTTP client for the Vyapkart backend. It covers the
// identity-exchange endpoint plus the authenticated catalog, order and
// profile routes. Session-token attachment is handled by SessionTransport;
// the exchange call carries the provider's ID token instead.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vyapkart/vyapkart-cli/internal/client/models"
	"github.com/vyapkart/vyapkart-cli/internal/logging"
)

// Config holds what is needed to construct a Client.
type Config struct {
	// BaseURL of the backend, e.g. "https://api.vyapkart.store".
	BaseURL string
	// HTTPClient carries the SessionTransport. Nil means http.DefaultClient,
	// which leaves all requests unauthenticated.
	HTTPClient *http.Client
	// Logger for request-level diagnostics. Required.
	Logger logging.Logger
}

// Client is the backend API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewClient validates the config and builds a client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		log:        config.Logger,
	}, nil
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doRequest issues a JSON request and decodes a 2xx response into out.
// extraHeaders are set on the request before it passes through the transport,
// so an Authorization header here wins over the session token.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, extraHeaders map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if err := json.Unmarshal(respBody, &eb); err == nil {
			apiErr.Code = eb.Error
			apiErr.Message = eb.Message
		}
		c.log.Debug(ctx, "backend rejected request", "method", method, "path", path, "status", resp.StatusCode, "code", apiErr.Code)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api: decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// Exchange trades the identity provider's ID token for a backend session.
// A plain login sends the empty payload; a first-time login attaches the
// registration fields. The ID token rides in the Authorization header — the
// SessionTransport skips this path, so no session token can leak in.
func (c *Client) Exchange(ctx context.Context, idToken string, payload *models.ExchangePayload) (*models.AuthResult, error) {
	if payload == nil {
		payload = &models.ExchangePayload{}
	}
	headers := map[string]string{"Authorization": "Bearer " + idToken}
	var result models.AuthResult
	if err := c.doRequest(ctx, http.MethodPost, PathFirebaseLogin, payload, headers, &result); err != nil {
		return nil, fmt.Errorf("identity exchange: %w", err)
	}
	return &result, nil
}

// VerifyOTP is the phone-based login variant: phone and one-time code go to
// the backend directly, no identity provider involved.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (*models.AuthResult, error) {
	body := map[string]string{"phone": phone, "otp": otp}
	var result models.AuthResult
	if err := c.doRequest(ctx, http.MethodPost, PathOTPLogin, body, nil, &result); err != nil {
		return nil, fmt.Errorf("otp login: %w", err)
	}
	return &result, nil
}

// Products lists the catalog. Requires a buyer session.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.doRequest(ctx, http.MethodGet, PathProducts, nil, nil, &products); err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// Me fetches the authenticated user's profile from the backend.
func (c *Client) Me(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doRequest(ctx, http.MethodGet, PathProfile, nil, nil, &profile); err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return &profile, nil
}

// CreateOrder places an order for a product.
func (c *Client) CreateOrder(ctx context.Context, productID int64, quantity int) (*models.Order, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	var order models.Order
	if err := c.doRequest(ctx, http.MethodPost, PathOrders, body, nil, &order); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	return &order, nil
}

// MyOrders lists the authenticated user's orders.
func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doRequest(ctx, http.MethodGet, PathMyOrders, nil, nil, &orders); err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}
