package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-tools/roster/viz"
)

func (m Model) renderStatsView() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\n", m.err) + helpStyle.Render("esc: Back • q: Quit")
	}
	if m.stats == nil {
		return "Loading stats...\n"
	}

	return viz.RenderDashboard(m.stats) + "\n" + helpStyle.Render("esc: Back • q: Quit")
}

func (m Model) handleStatsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewMode = ViewList
		m.stats = nil
	}
	return m, nil
}
