package cli

import (
	"context"
	"time"

	"work-tracker/internal/api"
	"work-tracker/internal/config"
	"work-tracker/internal/domain"
	"work-tracker/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the engine API with the configuration for command handlers
type App struct {
	api    api.API
	config *config.Config
}

// NewAppWithConfig creates a new CLI application instance
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// ResolveActor resolves the acting identity for a command invocation.
// The email comes from the --as flag; the organization from --org or
// the configured default.
func (a *App) ResolveActor(ctx context.Context, orgID, email string) (domain.Actor, error) {
	if email == "" {
		return domain.Actor{}, errors.NewInvalidInputError("--as", email, "acting email is required")
	}
	if orgID == "" {
		orgID = a.config.Application.DefaultOrg
	}
	return a.api.ResolveActor(ctx, orgID, email)
}

// Org returns the effective organization for a command invocation
func (a *App) Org(orgID string) string {
	if orgID == "" {
		return a.config.Application.DefaultOrg
	}
	return orgID
}
