// ABOUTME: Visualization CLI commands
// ABOUTME: Handles pipeline graph generation
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/inkwell-tools/roster/sheets"
	"github.com/inkwell-tools/roster/store"
	"github.com/inkwell-tools/roster/viz"
)

// VizPipelineCommand generates a pipeline funnel graph of the roster.
func VizPipelineCommand(s store.Store, args []string) error {
	fs := flag.NewFlagSet("viz pipeline", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	artists, err := s.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	dot, err := viz.GeneratePipelineGraph(ctx, artists)
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}
