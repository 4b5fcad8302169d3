// ABOUTME: Touchpoint CLI commands
// ABOUTME: Logs outreach interactions against roster artists
package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/inkwell-tools/roster/models"
	"github.com/inkwell-tools/roster/store"
)

// LogTouchpointCommand records an interaction with an artist. The
// artist ID is the first positional argument; flags must come first.
func LogTouchpointCommand(s store.Store, args []string) error {
	fs := flag.NewFlagSet("log-touchpoint", flag.ExitOnError)
	platform := fs.String("platform", "", "Platform the interaction happened on")
	touchType := fs.String("type", models.TouchTypeDM, "Interaction type: dm, comment, or email")
	message := fs.String("message", "", "Text of the message sent")
	sentAt := fs.String("sent-at", "", "Date of the interaction (defaults to today)")
	outcome := fs.String("outcome", "", "Outcome of the interaction")
	linkID := fs.String("link", "", "Profile id the interaction relates to")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("artist ID is required")
	}

	when := *sentAt
	if when == "" {
		when = time.Now().UTC().Format("2006-01-02")
	}

	tp := models.Touchpoint{
		ArtistID:    fs.Args()[0],
		Platform:    *platform,
		Type:        *touchType,
		MessageText: *message,
		SentAt:      when,
		Outcome:     *outcome,
		LinkID:      *linkID,
	}

	artists, err := s.LogInteraction(context.Background(), tp)
	if err != nil {
		return fmt.Errorf("failed to log touchpoint: %w", err)
	}

	for _, a := range artists {
		if a.ID == tp.ArtistID {
			fmt.Printf("✓ Touchpoint logged for %s (%s on %s)\n", a.Name, tp.Type, when)
			return nil
		}
	}

	fmt.Printf("✓ Touchpoint logged (%s on %s)\n", tp.Type, when)
	return nil
}
