// ABOUTME: Tests for the row-to-entity parse boundary
// ABOUTME: Covers coercion fallbacks, silent row rejection, and dashboard sections
package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-tools/roster/models"
)

func artistRow(cells ...any) []any { return cells }

func TestParseArtists_FullRow(t *testing.T) {
	rows := [][]any{
		artistRow("a1", "Sarah Chen", "Illustration", "Game Dev", "Professional", "PST",
			85.0, "5", "Engaged", "You", "Key prospect", "2023-10-01", "TRUE"),
	}

	artists := ParseArtists(rows, nil, nil)
	require.Len(t, artists, 1)

	a := artists[0]
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, "Sarah Chen", a.Name)
	assert.Equal(t, models.ArtTypeIllustration, a.ArtType)
	assert.Equal(t, models.PersonaProfessional, a.Persona)
	assert.Equal(t, 85, a.InfluenceScore, "numeric cells arrive as float64")
	assert.Equal(t, 5, a.FitScore, "numeric strings must be coerced")
	assert.Equal(t, models.StageEngaged, a.Status)
	assert.True(t, a.DoNotContact, "literal TRUE must count as set")
	assert.Equal(t, "2023-10-01", a.LastTouched)
}

func TestParseArtists_RowRejection(t *testing.T) {
	tests := []struct {
		name string
		row  []any
	}{
		{name: "empty row", row: artistRow()},
		{name: "no id and no name", row: artistRow("", "", "3D")},
		{name: "nil cells only", row: artistRow(nil, nil)},
		{name: "name resolves to blank fallback", row: artistRow("a9", "")},
		{name: "literal fallback name", row: artistRow("a9", "Unknown Artist")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artists := ParseArtists([][]any{tt.row}, nil, nil)
			assert.Empty(t, artists, "row should be dropped silently")
		})
	}
}

func TestParseArtists_CoercionDefaults(t *testing.T) {
	rows := [][]any{artistRow("", "Mike Ross", "", "", "", "", "not-a-number", nil, "", "")}

	artists := ParseArtists(rows, nil, nil)
	require.Len(t, artists, 1)

	a := artists[0]
	assert.NotEmpty(t, a.ID, "missing id must be synthesized client-side")
	assert.Equal(t, models.ArtType("Unknown"), a.ArtType)
	assert.Equal(t, models.Persona("Unknown"), a.Persona)
	assert.Equal(t, models.LifecycleStage("Discovered"), a.Status)
	assert.Equal(t, "Unassigned", a.Owner)
	assert.Zero(t, a.InfluenceScore, "non-numeric score defaults to 0")
	assert.Zero(t, a.FitScore)
	assert.NotEmpty(t, a.LastTouched, "blank lastTouched defaults to now")
	assert.False(t, a.DoNotContact)
}

func TestParseArtists_UniqueIDsPreserved(t *testing.T) {
	rows := [][]any{
		artistRow("a1", "One"),
		artistRow("a2", "Two"),
		artistRow("a3", "Three"),
	}

	artists := ParseArtists(rows, nil, nil)
	require.Len(t, artists, 3)

	seen := map[string]bool{}
	for _, a := range artists {
		assert.False(t, seen[a.ID], "artist ids must be unique in the collection")
		seen[a.ID] = true
	}
}

func TestParseArtists_ChildrenGroupedByForeignKey(t *testing.T) {
	artistRows := [][]any{
		artistRow("a1", "Sarah Chen"),
		artistRow("a2", "Mike Ross"),
	}
	profileRows := [][]any{
		{"p1", "a1", "ArtStation", 1200.0, "schen_art", "https://artstation.com/schen_art"},
		{"p2", "a2", "Instagram", nil, "mikeross3d", ""},
		{"p3"}, // fewer than 2 cells: dropped
	}
	touchpointRows := [][]any{
		{"t1", "a1", "ArtStation", "dm", "Loved your latest piece", "2023-10-01", "replied", ""},
		{"t2"}, // dropped
	}

	artists := ParseArtists(artistRows, profileRows, touchpointRows)
	require.Len(t, artists, 2)

	sarah := artists[0]
	require.Len(t, sarah.Profiles, 1)
	assert.Equal(t, "p1", sarah.Profiles[0].ID)
	assert.Equal(t, 1200, sarah.Profiles[0].Followers)
	require.Len(t, sarah.Touchpoints, 1)
	assert.Equal(t, "dm", sarah.Touchpoints[0].Type)
	assert.Equal(t, "replied", sarah.Touchpoints[0].Outcome)

	mike := artists[1]
	require.Len(t, mike.Profiles, 1)
	assert.Empty(t, mike.Touchpoints)
}

func TestParseDashboard_Sections(t *testing.T) {
	rows := [][]any{
		{"Dashboard", "Param", "Total Roster", "Engaged", "Fit Score", "High Impact"},
		{"", "Artists", 42.0, 7.0, "3.8", 5.0},
		{"Pipeline Stages", "", "Discovered", "Engaged", "Closed"},
		{"", "", 12.0, 7.0, 3.0},
		{"Platforms", "", "ArtStation", "Instagram"},
		{"", "", 20.0, 15.0},
	}

	stats := ParseDashboard(rows)

	assert.Equal(t, "42", stats.Dashboard["Total Roster"])
	assert.Equal(t, "3.8", stats.Dashboard["Fit Score"], "fractional metrics stay verbatim")
	assert.Equal(t, "12", stats.Pipeline["Discovered"])
	assert.Equal(t, "3", stats.Pipeline["Closed"])
	assert.Equal(t, "15", stats.Platforms["Instagram"])
}

func TestParseDashboard_MissingSectionsAreEmpty(t *testing.T) {
	stats := ParseDashboard([][]any{{"Dashboard", "Param", "Total Roster"}, {"", "", 1.0}})

	require.NotNil(t, stats.ArtTypes, "missing sections must yield empty maps, not nil")
	assert.Empty(t, stats.ArtTypes)
	assert.Empty(t, stats.Personas)

	empty := ParseDashboard(nil)
	assert.Empty(t, empty.Dashboard)
}
