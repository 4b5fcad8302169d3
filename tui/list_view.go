package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-tools/roster/models"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ARTIST ROSTER"))
	s.WriteString("\n\n")

	if m.searching {
		s.WriteString("Search: " + m.searchInput.View())
		s.WriteString("\n\n")
	}

	if m.loading {
		s.WriteString("Loading roster...\n")
		return s.String()
	}
	if m.err != nil {
		s.WriteString(fmt.Sprintf("Error: %v\n\n", m.err))
		s.WriteString(helpStyle.Render("r: Retry • q: Quit"))
		return s.String()
	}

	s.WriteString(m.renderArtistsTable())
	s.WriteString("\n\n")
	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) visibleArtists() []models.Artist {
	query := strings.ToLower(strings.TrimSpace(m.searchInput.Value()))
	if query == "" {
		return m.artists
	}

	var filtered []models.Artist
	for _, a := range m.artists {
		if strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.Owner), query) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func (m Model) renderArtistsTable() string {
	artists := m.visibleArtists()

	columns := []table.Column{
		{Title: "Name", Width: 26},
		{Title: "Type", Width: 14},
		{Title: "Status", Width: 16},
		{Title: "Fit", Width: 4},
		{Title: "Influence", Width: 9},
		{Title: "Owner", Width: 22},
	}

	var rows []table.Row
	for _, a := range artists {
		status := string(a.Status)
		if a.DoNotContact {
			status += " ⛔"
		}
		rows = append(rows, table.Row{
			a.Name,
			string(a.ArtType),
			status,
			fmt.Sprintf("%d/5", a.FitScore),
			fmt.Sprintf("%d", a.InfluenceScore),
			a.Owner,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Enter: View details",
		"/: Search",
		"s: Stats",
		"r: Reload",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < len(m.visibleArtists())-1 {
			m.selectedRow++
		}
	case "enter":
		if artists := m.visibleArtists(); m.selectedRow < len(artists) {
			m.viewMode = ViewDetail
			m.selectedID = artists[m.selectedRow].ID
		}
	case "/":
		m.searching = true
		return m, m.searchInput.Focus()
	case "s":
		m.viewMode = ViewStats
		return m, m.loadStats()
	case "r":
		m.loading = true
		return m, m.loadArtists()
	}

	return m, nil
}
