package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-tools/roster/models"
)

func (m Model) renderDetailView() string {
	artist := m.findSelected()
	if artist == nil {
		return "Artist not found\n\n" + helpStyle.Render("esc: Back • q: Quit")
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render(artist.Name))
	s.WriteString("\n\n")

	if artist.DoNotContact {
		s.WriteString(dncStyle.Render("DO NOT CONTACT"))
		s.WriteString("\n\n")
	}

	writeField(&s, "Status", string(artist.Status))
	writeField(&s, "Art Type", string(artist.ArtType))
	writeField(&s, "Industry", artist.Industry)
	writeField(&s, "Persona", string(artist.Persona))
	writeField(&s, "Timezone", artist.Timezone)
	writeField(&s, "Fit", fmt.Sprintf("%d/5", artist.FitScore))
	writeField(&s, "Influence", fmt.Sprintf("%d", artist.InfluenceScore))
	writeField(&s, "Owner", artist.Owner)
	writeField(&s, "Last Touched", artist.LastTouched)
	s.WriteString("\n")

	if len(artist.Profiles) > 0 {
		s.WriteString(labelStyle.Render("PROFILES"))
		s.WriteString("\n")
		for _, p := range artist.Profiles {
			line := fmt.Sprintf("  %s @%s", p.Platform, p.Handle)
			if url := models.ProfileURL(p); url != "" {
				line += "  " + url
			}
			if p.Followers > 0 {
				line += fmt.Sprintf("  (%d followers)", p.Followers)
			}
			s.WriteString(line + "\n")
		}
		s.WriteString("\n")
	}

	if len(artist.Touchpoints) > 0 {
		s.WriteString(labelStyle.Render("TOUCHPOINTS"))
		s.WriteString("\n")
		for _, tp := range artist.Touchpoints {
			s.WriteString(fmt.Sprintf("  [%s] %s: %s\n", tp.SentAt, tp.Type, tp.MessageText))
		}
		s.WriteString("\n")
	}

	if artist.Notes != "" {
		s.WriteString(labelStyle.Render("NOTES"))
		s.WriteString("\n  " + artist.Notes + "\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: Back • q: Quit"))

	return s.String()
}

func writeField(s *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-13s", label+":")), value))
}

func (m Model) findSelected() *models.Artist {
	for i := range m.artists {
		if m.artists[i].ID == m.selectedID {
			return &m.artists[i]
		}
	}
	return nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewMode = ViewList
	}
	return m, nil
}
