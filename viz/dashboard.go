// ABOUTME: Terminal dashboard rendering for the artist roster
// ABOUTME: Provides an ASCII overview of funnel, platforms, and art types
package viz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/inkwell-tools/roster/models"
)

// RenderDashboard formats dashboard stats for the terminal. Section
// values arrive as strings from the stats source and are rendered
// verbatim; only the pipeline bars need numeric parsing.
func RenderDashboard(stats *models.Stats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  ARTIST ROSTER DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("OVERVIEW\n")
	for _, key := range []string{"Total Roster", "Engaged", "High Impact", "Fit Score"} {
		if val, ok := stats.Dashboard[key]; ok {
			out.WriteString(fmt.Sprintf("  %-13s %s\n", key, val))
		}
	}
	out.WriteString("\n")

	out.WriteString("PIPELINE\n")
	renderPipeline(&out, stats.Pipeline)
	out.WriteString("\n")

	renderBreakdown(&out, "PLATFORMS", stats.Platforms)
	renderBreakdown(&out, "ART TYPES", stats.ArtTypes)
	renderBreakdown(&out, "PERSONAS", stats.Personas)

	return out.String()
}

func renderPipeline(out *strings.Builder, pipeline map[string]string) {
	stages := make([]string, 0, len(models.ActiveStages)+1)
	for _, s := range models.ActiveStages {
		stages = append(stages, string(s))
	}
	stages = append(stages, "Closed")

	maxCount := 0
	for _, stage := range stages {
		if n := parseCount(pipeline[stage]); n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, stage := range stages {
		val, exists := pipeline[stage]
		if !exists {
			continue
		}

		count := parseCount(val)
		barLength := (count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-13s %s  %s\n", stage, bar, val))
	}
}

func renderBreakdown(out *strings.Builder, title string, section map[string]string) {
	if len(section) == 0 {
		return
	}

	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out.WriteString(title + "\n")
	for _, k := range keys {
		out.WriteString(fmt.Sprintf("  %-13s %s\n", k, section[k]))
	}
	out.WriteString("\n")
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
