// ABOUTME: TUI subcommand
// ABOUTME: Starts the full-screen roster interface
package cli

import (
	"flag"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-tools/roster/store"
	"github.com/inkwell-tools/roster/tui"
)

// TUICommand starts the interactive terminal interface.
func TUICommand(s store.Store, args []string) error {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	_ = fs.Parse(args)

	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}
	return nil
}
