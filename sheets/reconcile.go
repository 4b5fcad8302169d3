// ABOUTME: Reconciliation engine: minimal remote mutations via re-fetch-then-diff
// ABOUTME: The backend has no replace-children primitive, so child sync is read-compare-write
package sheets

import (
	"context"
	"fmt"

	"github.com/inkwell-tools/roster/models"
)

// Create pushes a new artist and then each of its profiles, sequentially.
// The backend holds a single exclusive write lock, so parallel dispatch
// from one client would only contend with itself. Returns the refreshed
// authoritative collection.
func (s *RemoteStore) Create(ctx context.Context, artist *models.Artist) ([]models.Artist, error) {
	if artist.ID == "" {
		artist.ID = s.newID("a")
	}

	if err := s.send(ctx, &Request{Op: OpAddArtist, Data: artist}); err != nil {
		return nil, err
	}

	for i := range artist.Profiles {
		if artist.Profiles[i].ID == "" {
			artist.Profiles[i].ID = s.newID("p")
		}
		p := artist.Profiles[i]
		p.ArtistID = artist.ID
		if err := s.send(ctx, &Request{Op: OpAddProfile, Data: p}); err != nil {
			return nil, err
		}
	}

	return s.Fetch(ctx, ViewAssigned)
}

// Update pushes an edited artist and reconciles its profile collection:
//
//  1. update the scalar fields in one mutation,
//  2. create every profile lacking an id, recording the synthesized id on
//     the in-memory profile BEFORE the delete diff so fresh creates are
//     treated as current rather than erroneously deleted,
//  3. re-fetch the live state and delete every remote profile id absent
//     from the local set,
//  4. re-fetch once more for the authoritative result.
//
// The double re-fetch is required: step 2's creates must be visible before
// the delete set is computed, and step 3's deletes must be visible before
// the returned collection is authoritative. Under true concurrent
// multi-client writers this is last-write-wins by construction.
func (s *RemoteStore) Update(ctx context.Context, artist *models.Artist) ([]models.Artist, error) {
	if err := s.send(ctx, &Request{Op: OpUpdateArtist, Data: artist}); err != nil {
		return nil, err
	}

	for i := range artist.Profiles {
		if artist.Profiles[i].ID != "" {
			continue
		}
		artist.Profiles[i].ID = s.newID("p")
		p := artist.Profiles[i]
		p.ArtistID = artist.ID
		if err := s.send(ctx, &Request{Op: OpAddProfile, Data: p}); err != nil {
			return nil, err
		}
	}

	fresh, err := s.Fetch(ctx, ViewAssigned)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch before profile diff: %w", err)
	}

	if live := findArtist(fresh, artist.ID); live != nil {
		current := make(map[string]bool, len(artist.Profiles))
		for _, id := range artist.ProfileIDs() {
			current[id] = true
		}
		for _, id := range live.ProfileIDs() {
			if current[id] {
				continue
			}
			if err := s.send(ctx, &Request{Op: OpDeleteProfile, ID: id}); err != nil {
				return nil, err
			}
		}
	}

	return s.Fetch(ctx, ViewAssigned)
}

// LogInteraction appends one touchpoint. Touchpoints are immutable once
// created, so there is nothing to diff; a single re-fetch returns the
// refreshed collection.
func (s *RemoteStore) LogInteraction(ctx context.Context, tp models.Touchpoint) ([]models.Artist, error) {
	if tp.TouchID == "" {
		tp.TouchID = s.newID("t")
	}
	if err := s.send(ctx, &Request{Op: OpAddTouchpoint, Data: tp}); err != nil {
		return nil, err
	}
	return s.Fetch(ctx, ViewAssigned)
}

func findArtist(artists []models.Artist, id string) *models.Artist {
	for i := range artists {
		if artists[i].ID == id {
			return &artists[i]
		}
	}
	return nil
}
