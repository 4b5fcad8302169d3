package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/inkwell-tools/roster/charm"
	"github.com/inkwell-tools/roster/models"
	"github.com/inkwell-tools/roster/store"
)

func setupTestCLI(t *testing.T) store.Store {
	t.Helper()
	kv, cleanup := charm.NewTestClient(t)
	t.Cleanup(cleanup)

	s := store.NewMockStore(kv)
	s.Delay = func(context.Context) error { return nil }
	return s
}

func TestListArtistsCommand(t *testing.T) {
	s := setupTestCLI(t)

	// Will test that the command runs without error against the
	// fixture roster; detailed output testing is on the renderer.
	if err := ListArtistsCommand(s, []string{}); err != nil {
		t.Errorf("ListArtistsCommand failed: %v", err)
	}
}

func TestAddArtistCommandRequiresName(t *testing.T) {
	s := setupTestCLI(t)

	err := AddArtistCommand(s, []string{"--type", "3D"})
	if err == nil || !strings.Contains(err.Error(), "--name is required") {
		t.Errorf("expected name validation error, got %v", err)
	}
}

func TestUpdateArtistCommandRequiresID(t *testing.T) {
	s := setupTestCLI(t)

	err := UpdateArtistCommand(s, []string{"--status", "Contacted"})
	if err == nil || !strings.Contains(err.Error(), "artist ID is required") {
		t.Errorf("expected ID validation error, got %v", err)
	}
}

func TestRenderArtistTable(t *testing.T) {
	artists := []models.Artist{
		{
			ID: "a1", Name: "Sarah Chen", ArtType: models.ArtTypeIllustration,
			Status: models.StageEngaged, FitScore: 5, InfluenceScore: 85,
			Owner: "scout@label.example",
		},
		{
			ID: "a2", Name: "Mike Ross", ArtType: models.ArtType3D,
			Status: models.StageDiscovered, DoNotContact: true,
		},
	}

	var buf bytes.Buffer
	renderArtistTable(&buf, artists)
	out := buf.String()

	if !strings.Contains(out, "NAME") || !strings.Contains(out, "OWNER") {
		t.Error("header row missing")
	}
	if !strings.Contains(out, "Sarah Chen") || !strings.Contains(out, "scout@label.example") {
		t.Error("artist row missing")
	}
	if !strings.Contains(out, "Discovered ⛔") {
		t.Error("do-not-contact marker missing")
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected header, separator, and 2 rows; got %d lines", len(lines))
	}
}

func TestParseProfileFlag(t *testing.T) {
	profiles := parseProfileFlag("ArtStation:sarah, Instagram:sarah.paints")
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Platform != "ArtStation" || profiles[0].Handle != "sarah" {
		t.Errorf("unexpected first profile: %+v", profiles[0])
	}
	if profiles[1].Platform != "Instagram" || profiles[1].Handle != "sarah.paints" {
		t.Errorf("unexpected second profile: %+v", profiles[1])
	}

	if got := parseProfileFlag("Behance"); len(got) != 1 || got[0].Handle != "" {
		t.Errorf("bare platform should parse with empty handle: %+v", got)
	}

	if got := parseProfileFlag("  "); got != nil {
		t.Errorf("blank input should parse to nil, got %+v", got)
	}
}
