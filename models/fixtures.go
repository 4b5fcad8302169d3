// ABOUTME: Built-in demo roster used to seed mock mode on first use
// ABOUTME: Mirrors the seed data shipped with the original sheet template
package models

// MockArtists is the fixture collection mock mode starts from when the
// local blob store has no data yet.
func MockArtists() []Artist {
	return []Artist{
		{
			ID:             "1",
			Name:           "Sarah Chen",
			ArtType:        ArtTypeIllustration,
			Industry:       "Game Dev",
			Persona:        PersonaProfessional,
			Timezone:       "PST",
			InfluenceScore: 85,
			FitScore:       5,
			Status:         StageEngaged,
			Owner:          "You",
			Notes:          "Key prospect for Q3",
			LastTouched:    "2023-10-01",
			Profiles: []Profile{
				{Platform: "ArtStation", Handle: "schen_art", URL: "https://artstation.com"},
			},
			Touchpoints: []Touchpoint{},
		},
		{
			ID:             "2",
			Name:           "Mike Ross",
			ArtType:        ArtType3D,
			Industry:       "Film",
			Persona:        PersonaMid,
			Timezone:       "EST",
			InfluenceScore: 60,
			FitScore:       3,
			Status:         StageDiscovered,
			Owner:          "Unassigned",
			LastTouched:    "2023-09-15",
			Profiles:       []Profile{},
			Touchpoints:    []Touchpoint{},
		},
	}
}
