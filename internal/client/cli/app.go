package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"github.com/vyapkart/vyapkart-cli/internal/client/api"
	"github.com/vyapkart/vyapkart-cli/internal/client/config"
	"github.com/vyapkart/vyapkart-cli/internal/client/firebase"
	"github.com/vyapkart/vyapkart-cli/internal/client/identity"
	"github.com/vyapkart/vyapkart-cli/internal/client/models"
	"github.com/vyapkart/vyapkart-cli/internal/client/services"
	"github.com/vyapkart/vyapkart-cli/internal/client/session"
	"github.com/vyapkart/vyapkart-cli/internal/logging"
)

// App holds the wired services and the in-memory view of the current user.
// The profile mirrors what the session store holds; nil means logged out.
type App struct {
	config         *config.Config
	log            logging.Logger
	authService    services.AuthService
	catalogService services.CatalogService
	profile        *models.UserProfile
	reader         *bufio.Reader
}

// NewApp opens the local database, builds the provider and backend clients
// and wires the services. The backend client's transport attaches the
// persisted session token to every call except the identity exchange.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	store := session.NewSQLiteStore(db)

	provider, err := firebase.NewClient(firebase.Config{
		APIKey:     c.FirebaseAPIKey,
		BaseURL:    c.FirebaseBaseURL,
		HTTPClient: &http.Client{Timeout: c.RequestTimeout},
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	transport := api.NewSessionTransport(nil, store, api.PathFirebaseLogin)
	apiClient, err := api.NewClient(api.Config{
		BaseURL:    c.APIBaseURL,
		HTTPClient: &http.Client{Timeout: c.RequestTimeout, Transport: transport},
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	bridge := identity.NewBridge(provider, apiClient, log)

	return &App{
		config:         c,
		log:            log,
		authService:    services.NewAuthService(bridge, apiClient, store, log),
		catalogService: services.NewCatalogService(apiClient, log),
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the REPL. It returns when
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	profile, err := a.authService.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if profile != nil {
		a.profile = profile
		a.log.Info(ctx, "session restored", "email", profile.Email, "roles", profile.Roles)
	}

	fmt.Println("Vyapkart CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.profile != nil
}

// getStatus renders the prompt suffix: the logged-in email and the seller
// marker, or nothing when anonymous.
func (a *App) getStatus() string {
	if a.profile == nil {
		return ""
	}
	s := a.profile.Email
	if a.profile.HasRole(models.RoleSeller) {
		s += " [seller]"
	}
	return fmt.Sprintf("(%s)", s)
}
