package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-tools/roster/models"
)

func sampleStats() *models.Stats {
	s := models.EmptyStats()
	s.Dashboard["Total Roster"] = "12"
	s.Dashboard["Engaged"] = "4"
	s.Dashboard["High Impact"] = "3"
	s.Dashboard["Fit Score"] = "3.8"
	s.Pipeline["Discovered"] = "5"
	s.Pipeline["Engaged"] = "4"
	s.Pipeline["Closed"] = "2"
	s.Platforms["ArtStation"] = "6"
	s.Platforms["Instagram"] = "3"
	s.ArtTypes["Illustration"] = "7"
	return s
}

func TestRenderDashboard_Sections(t *testing.T) {
	out := RenderDashboard(sampleStats())

	assert.Contains(t, out, "ARTIST ROSTER DASHBOARD")
	assert.Contains(t, out, "OVERVIEW")
	assert.Contains(t, out, "Total Roster  12")
	assert.Contains(t, out, "Fit Score     3.8")
	assert.Contains(t, out, "PIPELINE")
	assert.Contains(t, out, "PLATFORMS")
	assert.Contains(t, out, "ART TYPES")
}

func TestRenderDashboard_PipelineBarsScale(t *testing.T) {
	out := RenderDashboard(sampleStats())

	lines := strings.Split(out, "\n")
	var discovered, closed string
	for _, line := range lines {
		if strings.Contains(line, "Discovered") {
			discovered = line
		}
		if strings.HasPrefix(strings.TrimSpace(line), "Closed") {
			closed = line
		}
	}

	assert.NotEmpty(t, discovered)
	assert.NotEmpty(t, closed)
	assert.Equal(t, 10, strings.Count(discovered, "█"), "largest stage fills the bar")
	assert.Equal(t, 4, strings.Count(closed, "█"), "smaller stages scale against the max")
}

func TestRenderDashboard_SkipsAbsentStages(t *testing.T) {
	s := models.EmptyStats()
	s.Pipeline["Engaged"] = "1"

	out := RenderDashboard(s)

	assert.Contains(t, out, "Engaged")
	assert.NotContains(t, out, "Qualified", "stages with no entry are omitted")
}

func TestRenderDashboard_EmptyStatsIsStable(t *testing.T) {
	out := RenderDashboard(models.EmptyStats())

	assert.Contains(t, out, "ARTIST ROSTER DASHBOARD")
	assert.NotContains(t, out, "PLATFORMS", "empty breakdowns are dropped entirely")
}

func TestArtistColor(t *testing.T) {
	a := models.Artist{Profiles: []models.Profile{{Platform: "artstation"}}}
	assert.Equal(t, "#3B82F6", artistColor(a), "platform lookup is case-insensitive")

	a.Profiles[0].Platform = "Myspace"
	assert.Equal(t, "lightgreen", artistColor(a))

	assert.Equal(t, "lightgreen", artistColor(models.Artist{}))
}
