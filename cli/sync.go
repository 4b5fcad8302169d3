// ABOUTME: Destructive sync maintenance commands
// ABOUTME: Wipes local charm data, fully or demo-roster-only
package cli

import (
	"flag"
	"fmt"

	"github.com/inkwell-tools/roster/charm"
	"github.com/inkwell-tools/roster/store"
)

// SyncWipeCommand resets local KV data. With --demo-only it deletes just
// the roster and touchpoint entries, so mock mode reseeds the fixtures
// while other charm data survives.
// WARNING: without --demo-only this deletes ALL local data!
func SyncWipeCommand(args []string) error {
	fs := flag.NewFlagSet("sync wipe", flag.ExitOnError)
	confirm := fs.Bool("confirm", false, "Confirm data wipe")
	demoOnly := fs.Bool("demo-only", false, "Delete only the demo roster entries")
	_ = fs.Parse(args)

	if !*confirm {
		fmt.Println("WARNING: This will delete local data!")
		fmt.Println()
		fmt.Println("To confirm, run:")
		fmt.Println("  roster sync wipe --confirm")
		fmt.Println("  roster sync wipe --confirm --demo-only   (keep non-roster data)")
		return nil
	}

	c, err := charm.GetClient()
	if err != nil {
		return fmt.Errorf("failed to get client: %w", err)
	}

	if *demoOnly {
		if err := store.NewMockStore(c).Wipe(); err != nil {
			return fmt.Errorf("failed to wipe demo roster: %w", err)
		}
		fmt.Println("✓ Demo roster wiped")
		fmt.Println("The built-in fixtures reseed on the next read.")
		return nil
	}

	if err := c.Reset(); err != nil {
		return fmt.Errorf("failed to reset KV store: %w", err)
	}

	fmt.Println("✓ All local data wiped")
	fmt.Println("Your Charm account is still linked.")
	return nil
}
