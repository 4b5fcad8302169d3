// ABOUTME: Remote store over the scripted spreadsheet endpoint
// ABOUTME: Fetch and dashboard reads; mutations live in reconcile.go
package sheets

import (
	"context"
	"fmt"

	"github.com/inkwell-tools/roster/models"
)

// RemoteStore talks to the live sheet through the transport client. It
// holds no state of its own; the sheet is the single source of truth and
// every mutation path ends in a re-fetch.
type RemoteStore struct {
	scriptURL string
	secret    string
	sender    Sender
	newID     func(prefix string) string
}

// NewRemoteStore creates a store for the given script deployment URL and
// shared secret.
func NewRemoteStore(scriptURL, secret string) *RemoteStore {
	return &RemoteStore{
		scriptURL: scriptURL,
		secret:    secret,
		sender:    NewClient(),
		newID:     NewEntityID,
	}
}

// Fetch retrieves and parses the full artist collection for a view.
func (s *RemoteStore) Fetch(ctx context.Context, view View) ([]models.Artist, error) {
	resp, err := s.sender.Send(ctx, WithView(s.scriptURL, view), nil, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s view: %w", view, err)
	}
	return ParseArtists(resp.Data.Artists, resp.Data.Profiles, resp.Data.Touchpoints), nil
}

// DashboardStats retrieves and parses the dashboard view's stat sections.
func (s *RemoteStore) DashboardStats(ctx context.Context) (*models.Stats, error) {
	resp, err := s.sender.Send(ctx, WithView(s.scriptURL, ViewDashboard), nil, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard view: %w", err)
	}
	return ParseDashboard(resp.Data.Stats), nil
}

// send issues one write operation.
func (s *RemoteStore) send(ctx context.Context, req *Request) error {
	if _, err := s.sender.Send(ctx, s.scriptURL, req, s.secret); err != nil {
		return fmt.Errorf("failed to %s: %w", req.Op, err)
	}
	return nil
}
