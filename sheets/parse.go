// ABOUTME: Parse boundary converting raw spreadsheet rows into typed entities
// ABOUTME: Untyped rows never travel past this file; malformed rows are dropped
package sheets

import (
	"strconv"
	"strings"
	"time"

	"github.com/inkwell-tools/roster/models"
)

// Fallbacks applied during coercion. An artist whose name resolves to the
// fallback is treated as a blank row and dropped.
const (
	fallbackName    = "Unknown Artist"
	fallbackArtType = "Unknown"
	fallbackPersona = "Unknown"
	fallbackOwner   = "Unassigned"
	fallbackStatus  = "Discovered"
)

// Artist row column positions, fixed by the sheet layout.
const (
	colArtistID = iota
	colArtistName
	colArtType
	colIndustry
	colPersona
	colTimezone
	colInfluenceScore
	colFitScore
	colStatus
	colOwner
	colNotes
	colLastTouched
	colDoNotContact
)

// ParseArtists converts raw row arrays into typed artists with their child
// collections attached. Rows that are empty, have neither an id nor a
// name, or resolve to the blank-name fallback are dropped silently; that
// is how the sheet's trailing rows are tolerated.
func ParseArtists(artistRows, profileRows, touchpointRows [][]any) []models.Artist {
	profilesByArtist := groupProfiles(profileRows)
	touchpointsByArtist := groupTouchpoints(touchpointRows)

	artists := make([]models.Artist, 0, len(artistRows))
	for _, row := range artistRows {
		if len(row) == 0 {
			continue
		}

		id := cellString(row, colArtistID, "")
		name := cellString(row, colArtistName, "")
		if id == "" && name == "" {
			continue
		}
		if name == "" || name == fallbackName {
			continue
		}
		if id == "" {
			id = NewEntityID("a")
		}

		lastTouched := cellString(row, colLastTouched, "")
		if lastTouched == "" {
			lastTouched = time.Now().UTC().Format(time.RFC3339)
		}

		artists = append(artists, models.Artist{
			ID:             id,
			Name:           name,
			ArtType:        models.ArtType(cellString(row, colArtType, fallbackArtType)),
			Industry:       cellString(row, colIndustry, ""),
			Persona:        models.Persona(cellString(row, colPersona, fallbackPersona)),
			Timezone:       cellString(row, colTimezone, ""),
			InfluenceScore: cellInt(row, colInfluenceScore),
			FitScore:       cellInt(row, colFitScore),
			Status:         models.LifecycleStage(cellString(row, colStatus, fallbackStatus)),
			Owner:          cellString(row, colOwner, fallbackOwner),
			Notes:          cellString(row, colNotes, ""),
			LastTouched:    lastTouched,
			DoNotContact:   cellBool(row, colDoNotContact),
			Profiles:       profilesByArtist[id],
			Touchpoints:    touchpointsByArtist[id],
		})
	}
	return artists
}

// groupProfiles buckets profile rows by their artist foreign key.
// Row shape: profileId, artistId, platform, followers, handle, url.
func groupProfiles(rows [][]any) map[string][]models.Profile {
	byArtist := make(map[string][]models.Profile)
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		artistID := cellString(row, 1, "")
		byArtist[artistID] = append(byArtist[artistID], models.Profile{
			ID:        cellString(row, 0, ""),
			ArtistID:  artistID,
			Platform:  cellString(row, 2, ""),
			Followers: cellInt(row, 3),
			Handle:    cellString(row, 4, ""),
			URL:       cellString(row, 5, ""),
		})
	}
	return byArtist
}

// groupTouchpoints buckets touchpoint rows by their artist foreign key.
// Row shape: touchId, artistId, platform, type, messageText, sentAt,
// outcome, linkId.
func groupTouchpoints(rows [][]any) map[string][]models.Touchpoint {
	byArtist := make(map[string][]models.Touchpoint)
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		artistID := cellString(row, 1, "")
		byArtist[artistID] = append(byArtist[artistID], models.Touchpoint{
			TouchID:     cellString(row, 0, ""),
			ArtistID:    artistID,
			Platform:    cellString(row, 2, ""),
			Type:        cellString(row, 3, ""),
			MessageText: cellString(row, 4, ""),
			SentAt:      cellString(row, 5, ""),
			Outcome:     cellString(row, 6, ""),
			LinkID:      cellString(row, 7, ""),
		})
	}
	return byArtist
}

// Dashboard section sentinels, matched against the first cell of each row.
const (
	sectionDashboard = "Dashboard"
	sectionPipeline  = "Pipeline Stages"
	sectionPlatforms = "Platforms"
	sectionArtTypes  = "Art Types"
	sectionPersonas  = "Persona Mix"
)

// ParseDashboard reads the dashboard view's row matrix. A row whose first
// cell equals a section sentinel is a header row: metric names run from
// column index 2, values sit on the row immediately below. Missing
// sections yield empty metric maps, never an error.
func ParseDashboard(rows [][]any) *models.Stats {
	stats := models.EmptyStats()
	stats.Dashboard = findSection(rows, sectionDashboard)
	stats.Pipeline = findSection(rows, sectionPipeline)
	stats.Platforms = findSection(rows, sectionPlatforms)
	stats.ArtTypes = findSection(rows, sectionArtTypes)
	stats.Personas = findSection(rows, sectionPersonas)
	return stats
}

func findSection(rows [][]any, name string) map[string]string {
	metrics := map[string]string{}
	for i := 0; i+1 < len(rows); i++ {
		if strings.TrimSpace(cellString(rows[i], 0, "")) != name {
			continue
		}
		headerRow := rows[i]
		valueRow := rows[i+1]
		for c := 2; c < len(headerRow); c++ {
			key := strings.TrimSpace(cellString(headerRow, c, ""))
			if key == "" {
				continue
			}
			metrics[key] = cellString(valueRow, c, "")
		}
		return metrics
	}
	return metrics
}

// cellString coerces a cell to a string, applying the fallback when the
// cell is missing or blank.
func cellString(row []any, i int, fallback string) string {
	if i >= len(row) || row[i] == nil {
		return fallback
	}
	var s string
	switch v := row[i].(type) {
	case string:
		s = v
	case float64:
		// JSON numbers arrive as float64; render integers without a
		// trailing .0 to match the sheet's display.
		if v == float64(int64(v)) {
			s = strconv.FormatInt(int64(v), 10)
		} else {
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
	case bool:
		if v {
			s = "TRUE"
		} else {
			s = "FALSE"
		}
	default:
		return fallback
	}
	if s == "" {
		return fallback
	}
	return s
}

// cellInt coerces a cell to an integer, defaulting to 0 when blank or
// non-numeric.
func cellInt(row []any, i int) int {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// cellBool accepts either a real boolean or the sheet's literal "TRUE".
func cellBool(row []any, i int) bool {
	if i >= len(row) || row[i] == nil {
		return false
	}
	switch v := row[i].(type) {
	case bool:
		return v
	case string:
		return v == "TRUE"
	}
	return false
}
