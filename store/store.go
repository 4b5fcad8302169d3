// ABOUTME: Uniform store facade over the remote sheet or the local blob store
// ABOUTME: Mode selection hinges on whether a script URL is configured
package store

import (
	"context"
	"fmt"

	"github.com/inkwell-tools/roster/charm"
	"github.com/inkwell-tools/roster/config"
	"github.com/inkwell-tools/roster/models"
	"github.com/inkwell-tools/roster/sheets"
)

// Store is the single surface callers see. Every write returns the full
// refreshed collection rather than a delta, so callers never merge state.
type Store interface {
	Fetch(ctx context.Context, view sheets.View) ([]models.Artist, error)
	Create(ctx context.Context, artist *models.Artist) ([]models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) ([]models.Artist, error)
	LogInteraction(ctx context.Context, tp models.Touchpoint) ([]models.Artist, error)
	DashboardStats(ctx context.Context) (*models.Stats, error)
}

// Open selects the backend: remote when a script URL is configured, the
// local blob store otherwise.
func Open(cfg *config.SheetConfig) (Store, error) {
	if cfg.IsRemote() {
		return sheets.NewRemoteStore(cfg.ScriptURL, cfg.AppPassword), nil
	}

	kvClient, err := charm.GetClient()
	if err != nil {
		return nil, fmt.Errorf("failed to open local blob store: %w", err)
	}
	return NewMockStore(kvClient), nil
}
