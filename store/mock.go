// ABOUTME: Mock-mode store over the local blob store for offline/demo use
// ABOUTME: Matches remote latency with an artificial write delay
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/inkwell-tools/roster/charm"
	"github.com/inkwell-tools/roster/models"
	"github.com/inkwell-tools/roster/sheets"
)

// Blob entry names. The config entry lives on disk (config package); the
// data entries live in the KV store and are absent until first write.
const (
	dataKey        = "sheetcrm_data"
	touchpointsKey = "sheetcrm_touchpoints"
)

// MockStore keeps the roster in the local blob store, seeded from the
// built-in fixtures on first use. Writes pause briefly so UI loading
// states behave the same in both modes and callers need no mode-specific
// branching.
type MockStore struct {
	kv    *charm.Client
	Delay func(ctx context.Context) error
}

// NewMockStore creates a mock store over the given blob client.
func NewMockStore(kv *charm.Client) *MockStore {
	return &MockStore{
		kv: kv,
		Delay: func(ctx context.Context) error {
			d := 300*time.Millisecond + time.Duration(rand.Int63n(int64(200*time.Millisecond)))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d):
				return nil
			}
		},
	}
}

// Fetch returns the stored roster, or the fixture roster before the first
// write. The view parameter is accepted for parity but not filtered on;
// view filtering is a server-side concern.
func (s *MockStore) Fetch(_ context.Context, _ sheets.View) ([]models.Artist, error) {
	return s.loadArtists(), nil
}

// Create prepends the artist and persists the roster.
func (s *MockStore) Create(ctx context.Context, artist *models.Artist) ([]models.Artist, error) {
	if err := s.Delay(ctx); err != nil {
		return nil, err
	}
	if artist.ID == "" {
		artist.ID = sheets.NewEntityID("a")
	}
	for i := range artist.Profiles {
		if artist.Profiles[i].ID == "" {
			artist.Profiles[i].ID = sheets.NewEntityID("p")
		}
	}

	roster := append([]models.Artist{*artist}, s.loadArtists()...)
	if err := s.saveArtists(roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// Update replaces the matching artist wholesale. Last write wins; there
// is no concurrent writer by construction.
func (s *MockStore) Update(ctx context.Context, artist *models.Artist) ([]models.Artist, error) {
	if err := s.Delay(ctx); err != nil {
		return nil, err
	}
	for i := range artist.Profiles {
		if artist.Profiles[i].ID == "" {
			artist.Profiles[i].ID = sheets.NewEntityID("p")
		}
	}

	roster := s.loadArtists()
	for i := range roster {
		if roster[i].ID == artist.ID {
			roster[i] = *artist
		}
	}
	if err := s.saveArtists(roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// LogInteraction appends to the touchpoint log entry and attaches the
// touchpoint to its artist so the returned collection is authoritative.
func (s *MockStore) LogInteraction(ctx context.Context, tp models.Touchpoint) ([]models.Artist, error) {
	if err := s.Delay(ctx); err != nil {
		return nil, err
	}
	if tp.TouchID == "" {
		tp.TouchID = sheets.NewEntityID("t")
	}

	log := s.loadTouchpoints()
	log = append(log, tp)
	if err := s.save(touchpointsKey, log); err != nil {
		return nil, err
	}

	roster := s.loadArtists()
	for i := range roster {
		if roster[i].ID == tp.ArtistID {
			roster[i].Touchpoints = append(roster[i].Touchpoints, tp)
			roster[i].LastTouched = tp.SentAt
			if roster[i].LastTouched == "" {
				roster[i].LastTouched = time.Now().UTC().Format(time.RFC3339)
			}
		}
	}
	if err := s.saveArtists(roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// DashboardStats computes the stat sections locally from the stored
// roster, mirroring the section keys the sheet's dashboard view uses.
func (s *MockStore) DashboardStats(_ context.Context) (*models.Stats, error) {
	roster := s.loadArtists()
	stats := models.EmptyStats()

	engaged := 0
	highImpact := 0
	fitTotal := 0
	closed := 0
	for _, a := range roster {
		if a.Status == models.StageEngaged {
			engaged++
		}
		if a.InfluenceScore >= 70 {
			highImpact++
		}
		fitTotal += a.FitScore
		if a.Status.IsClosed() {
			closed++
		}
		if a.ArtType != "" {
			bump(stats.ArtTypes, string(a.ArtType))
		}
		if a.Persona != "" {
			bump(stats.Personas, string(a.Persona))
		}
		for _, p := range a.Profiles {
			if p.Platform != "" {
				bump(stats.Platforms, p.Platform)
			}
		}
		if !a.Status.IsClosed() {
			bump(stats.Pipeline, string(a.Status))
		}
	}
	stats.Pipeline["Closed"] = strconv.Itoa(closed)

	stats.Dashboard["Total Roster"] = strconv.Itoa(len(roster))
	stats.Dashboard["Engaged"] = strconv.Itoa(engaged)
	stats.Dashboard["High Impact"] = strconv.Itoa(highImpact)
	avgFit := "0.0"
	if len(roster) > 0 {
		avgFit = fmt.Sprintf("%.1f", float64(fitTotal)/float64(len(roster)))
	}
	stats.Dashboard["Fit Score"] = avgFit

	return stats, nil
}

// Wipe removes the stored roster and touchpoint log. The next read
// reseeds from the built-in fixtures.
func (s *MockStore) Wipe() error {
	if err := s.kv.Delete([]byte(dataKey)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", dataKey, err)
	}
	if err := s.kv.Delete([]byte(touchpointsKey)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", touchpointsKey, err)
	}
	return nil
}

func bump(m map[string]string, key string) {
	n, _ := strconv.Atoi(m[key])
	m[key] = strconv.Itoa(n + 1)
}

func (s *MockStore) loadArtists() []models.Artist {
	data, err := s.kv.Get([]byte(dataKey))
	if err != nil {
		return models.MockArtists()
	}
	var roster []models.Artist
	if err := json.Unmarshal(data, &roster); err != nil {
		return models.MockArtists()
	}
	return roster
}

func (s *MockStore) loadTouchpoints() []models.Touchpoint {
	data, err := s.kv.Get([]byte(touchpointsKey))
	if err != nil {
		return nil
	}
	var log []models.Touchpoint
	if err := json.Unmarshal(data, &log); err != nil {
		return nil
	}
	return log
}

func (s *MockStore) saveArtists(roster []models.Artist) error {
	return s.save(dataKey, roster)
}

func (s *MockStore) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set([]byte(key), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
