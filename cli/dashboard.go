// ABOUTME: Dashboard CLI command
// ABOUTME: Renders roster stats as an ASCII dashboard
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/inkwell-tools/roster/store"
	"github.com/inkwell-tools/roster/viz"
)

// DashboardCommand prints the roster dashboard.
func DashboardCommand(s store.Store, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	stats, err := s.DashboardStats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	fmt.Print(viz.RenderDashboard(stats))
	return nil
}
