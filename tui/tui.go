// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides interactive full-screen interface for roster operations
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-tools/roster/models"
	"github.com/inkwell-tools/roster/sheets"
	"github.com/inkwell-tools/roster/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewStats
)

// Messages delivered by async store commands.
type artistsLoadedMsg struct {
	artists []models.Artist
	err     error
}

type statsLoadedMsg struct {
	stats *models.Stats
	err   error
}

// Model is the main bubbletea model
type Model struct {
	store    store.Store
	viewMode ViewMode

	// List view state
	artists     []models.Artist
	loading     bool
	selectedRow int
	searchInput textinput.Model
	searching   bool

	// Detail view state
	selectedID string

	// Stats view state
	stats *models.Stats

	// UI state
	width  int
	height int
	err    error
}

// NewModel creates a new TUI model
func NewModel(s store.Store) Model {
	search := textinput.New()
	search.Placeholder = "name or owner"
	search.CharLimit = 64

	return Model{
		store:       s,
		viewMode:    ViewList,
		loading:     true,
		searchInput: search,
		width:       80,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadArtists()
}

func (m Model) loadArtists() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		artists, err := s.Fetch(context.Background(), sheets.ViewAssigned)
		return artistsLoadedMsg{artists: artists, err: err}
	}
}

func (m Model) loadStats() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		stats, err := s.DashboardStats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case artistsLoadedMsg:
		m.loading = false
		m.artists = msg.artists
		m.err = msg.err
		if m.selectedRow >= len(m.artists) {
			m.selectedRow = 0
		}
		return m, nil
	case statsLoadedMsg:
		m.stats = msg.stats
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewStats:
		return m.renderStatsView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input swallows everything except escape/enter.
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewStats:
		return m.handleStatsKeys(msg)
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.selectedRow = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	dncStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
