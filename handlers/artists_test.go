// ABOUTME: Tests for artist MCP tool handlers
// ABOUTME: Validates tool input/output and error handling over the mock store
package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/inkwell-tools/roster/charm"
	"github.com/inkwell-tools/roster/store"
)

func setupTestStore(t *testing.T) *store.MockStore {
	t.Helper()
	kv, cleanup := charm.NewTestClient(t)
	t.Cleanup(cleanup)

	s := store.NewMockStore(kv)
	s.Delay = func(context.Context) error { return nil }
	return s
}

func TestListArtistsHandler(t *testing.T) {
	handler := NewArtistHandlers(setupTestStore(t))

	_, out, err := handler.ListArtists(context.Background(), nil, ListArtistsInput{})
	if err != nil {
		t.Fatalf("ListArtists failed: %v", err)
	}

	if len(out.Artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(out.Artists))
	}
	if out.Artists[0].Name != "Sarah Chen" {
		t.Errorf("expected first artist 'Sarah Chen', got %q", out.Artists[0].Name)
	}
	if len(out.Artists[0].Profiles) == 0 || out.Artists[0].Profiles[0].URL == "" {
		t.Error("profile URL was not resolved")
	}
}

func TestListArtistsQueryFilter(t *testing.T) {
	handler := NewArtistHandlers(setupTestStore(t))

	_, out, err := handler.ListArtists(context.Background(), nil, ListArtistsInput{Query: "sarah"})
	if err != nil {
		t.Fatalf("ListArtists failed: %v", err)
	}

	if len(out.Artists) != 1 {
		t.Fatalf("expected 1 match, got %d", len(out.Artists))
	}
	if out.Artists[0].Name != "Sarah Chen" {
		t.Errorf("expected 'Sarah Chen', got %q", out.Artists[0].Name)
	}
}

func TestAddArtistHandler(t *testing.T) {
	handler := NewArtistHandlers(setupTestStore(t))

	input := AddArtistInput{
		Name:     "Kenji Sato",
		ArtType:  "Concept Art",
		Persona:  "Professional",
		FitScore: 4,
		Profiles: []ProfileInput{{Platform: "ArtStation", Handle: "kenjisato"}},
	}

	_, out, err := handler.AddArtist(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("AddArtist failed: %v", err)
	}

	if out.ID == "" {
		t.Error("ID was not set")
	}
	if out.Status != "Discovered" {
		t.Errorf("expected new artist in Discovered, got %q", out.Status)
	}
	if len(out.Profiles) != 1 || out.Profiles[0].ID == "" {
		t.Error("profile id was not assigned")
	}
}

func TestAddArtistRequiresName(t *testing.T) {
	handler := NewArtistHandlers(setupTestStore(t))

	_, _, err := handler.AddArtist(context.Background(), nil, AddArtistInput{})
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Errorf("expected name validation error, got %v", err)
	}
}

func TestUpdateArtistHandler(t *testing.T) {
	handler := NewArtistHandlers(setupTestStore(t))

	input := UpdateArtistInput{
		ID:     "2",
		Status: "Contacted",
		Notes:  "responded to first DM",
	}

	_, out, err := handler.UpdateArtist(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("UpdateArtist failed: %v", err)
	}

	if out.Status != "Contacted" {
		t.Errorf("expected status 'Contacted', got %q", out.Status)
	}
	if out.Notes != "responded to first DM" {
		t.Errorf("notes not updated: %q", out.Notes)
	}
	if out.Name != "Mike Ross" {
		t.Errorf("untouched fields must survive, got name %q", out.Name)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	handler := NewArtistHandlers(setupTestStore(t))

	_, _, err := handler.UpdateArtist(context.Background(), nil, UpdateArtistInput{ID: "nope"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestLogTouchpointHandler(t *testing.T) {
	handler := NewArtistHandlers(setupTestStore(t))

	input := LogTouchpointInput{
		ArtistID: "1",
		Platform: "ArtStation",
		Message:  "Loved your latest piece",
	}

	_, out, err := handler.LogTouchpoint(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("LogTouchpoint failed: %v", err)
	}

	if out.ID != "1" {
		t.Fatalf("expected artist 1 back, got %q", out.ID)
	}
	if out.LastTouched == "" {
		t.Error("last touched was not stamped")
	}
}

func TestDashboardStatsHandler(t *testing.T) {
	handler := NewStatsHandlers(setupTestStore(t))

	_, out, err := handler.DashboardStats(context.Background(), nil, DashboardStatsInput{})
	if err != nil {
		t.Fatalf("DashboardStats failed: %v", err)
	}

	if out.Dashboard["Total Roster"] != "2" {
		t.Errorf("expected total roster 2, got %q", out.Dashboard["Total Roster"])
	}
	if out.Pipeline["Engaged"] != "1" {
		t.Errorf("expected 1 engaged, got %q", out.Pipeline["Engaged"])
	}
}

type cannedProvider struct {
	response string
	prompts  []string
}

func (p *cannedProvider) Generate(_ context.Context, prompt string, _ int) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.response, nil
}

func (p *cannedProvider) IsConfigured() bool { return true }

func TestDraftMessageHandler(t *testing.T) {
	provider := &cannedProvider{response: "Hey Sarah, your new series is stunning."}
	handler := NewDraftHandlers(setupTestStore(t), provider)

	_, out, err := handler.DraftMessage(context.Background(), nil, DraftMessageInput{
		ArtistID: "1",
		Template: "Beta Invite",
	})
	if err != nil {
		t.Fatalf("DraftMessage failed: %v", err)
	}

	if out.Artist != "Sarah Chen" {
		t.Errorf("expected draft for Sarah Chen, got %q", out.Artist)
	}
	if out.Message != provider.response {
		t.Errorf("unexpected draft: %q", out.Message)
	}
	if len(provider.prompts) != 1 || !strings.Contains(provider.prompts[0], "Beta Invite") {
		t.Error("template goal did not reach the prompt")
	}
}

func TestDraftMessageRequiresProvider(t *testing.T) {
	handler := NewDraftHandlers(setupTestStore(t), nil)

	_, _, err := handler.DraftMessage(context.Background(), nil, DraftMessageInput{ArtistID: "1"})
	if err == nil || !strings.Contains(err.Error(), "no LLM provider") {
		t.Errorf("expected provider error, got %v", err)
	}
}
