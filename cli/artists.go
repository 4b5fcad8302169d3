// ABOUTME: Artist CLI commands
// ABOUTME: Human-friendly commands for managing the roster
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/inkwell-tools/roster/auth"
	"github.com/inkwell-tools/roster/models"
	"github.com/inkwell-tools/roster/sheets"
	"github.com/inkwell-tools/roster/store"
)

// AddArtistCommand adds a new artist to the roster.
func AddArtistCommand(s store.Store, args []string) error {
	fs := flag.NewFlagSet("add-artist", flag.ExitOnError)
	name := fs.String("name", "", "Artist name (required)")
	artType := fs.String("type", "", "Art type (e.g. Illustration, 3D, Video)")
	industry := fs.String("industry", "", "Industry")
	persona := fs.String("persona", "", "Persona (Student, Mid, Professional, Influencer)")
	timezone := fs.String("timezone", "", "Timezone")
	fit := fs.Int("fit", 0, "Fit score 1-5")
	influence := fs.Int("influence", 0, "Influence score 0-100")
	owner := fs.String("owner", "", "Owner email (defaults to the signed-in account)")
	notes := fs.String("notes", "", "Notes about the artist")
	profiles := fs.String("profiles", "", "Comma-separated profiles as platform:handle pairs")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	ctx := context.Background()

	ownerEmail := *owner
	if ownerEmail == "" {
		ownerEmail = auth.WhoAmI(ctx).Email
	}

	artist := &models.Artist{
		Name:           *name,
		ArtType:        models.ArtType(*artType),
		Industry:       *industry,
		Persona:        models.Persona(*persona),
		Timezone:       *timezone,
		FitScore:       *fit,
		InfluenceScore: *influence,
		Status:         models.StageDiscovered,
		Owner:          ownerEmail,
		Notes:          *notes,
		Profiles:       parseProfileFlag(*profiles),
	}

	if _, err := s.Create(ctx, artist); err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}

	fmt.Printf("✓ Artist created: %s (ID: %s)\n", artist.Name, artist.ID)
	if artist.Owner != "" {
		fmt.Printf("  Owner: %s\n", artist.Owner)
	}
	for _, p := range artist.Profiles {
		fmt.Printf("  Profile: %s @%s\n", p.Platform, p.Handle)
	}

	return nil
}

// ListArtistsCommand lists the roster.
func ListArtistsCommand(s store.Store, args []string) error {
	fs := flag.NewFlagSet("list-artists", flag.ExitOnError)
	view := fs.String("view", "assigned", "Roster view: assigned or unassigned")
	query := fs.String("query", "", "Search by name or owner")
	_ = fs.Parse(args)

	v := sheets.ViewAssigned
	if *view == string(sheets.ViewUnassigned) {
		v = sheets.ViewUnassigned
	}

	artists, err := s.Fetch(context.Background(), v)
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	if *query != "" {
		needle := strings.ToLower(*query)
		filtered := artists[:0]
		for _, a := range artists {
			if strings.Contains(strings.ToLower(a.Name), needle) ||
				strings.Contains(strings.ToLower(a.Owner), needle) {
				filtered = append(filtered, a)
			}
		}
		artists = filtered
	}

	if len(artists) == 0 {
		fmt.Println("No artists found")
		return nil
	}

	renderArtistTable(os.Stdout, artists)
	fmt.Printf("\nTotal: %d artist(s)\n", len(artists))
	return nil
}

// UpdateArtistCommand updates an existing artist. Flags must come
// before the artist ID.
func UpdateArtistCommand(s store.Store, args []string) error {
	fs := flag.NewFlagSet("update-artist", flag.ExitOnError)
	name := fs.String("name", "", "Artist name")
	status := fs.String("status", "", "Pipeline stage")
	persona := fs.String("persona", "", "Persona")
	fit := fs.Int("fit", 0, "Fit score 1-5")
	influence := fs.Int("influence", 0, "Influence score 0-100")
	owner := fs.String("owner", "", "Owner email")
	notes := fs.String("notes", "", "Notes about the artist")
	profiles := fs.String("profiles", "", "Replacement profiles as platform:handle pairs")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("artist ID is required")
	}
	artistID := fs.Args()[0]

	ctx := context.Background()

	artists, err := s.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	var existing *models.Artist
	for i := range artists {
		if artists[i].ID == artistID {
			existing = &artists[i]
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("artist not found: %s", artistID)
	}

	if *name != "" {
		existing.Name = *name
	}
	if *status != "" {
		existing.Status = models.LifecycleStage(*status)
	}
	if *persona != "" {
		existing.Persona = models.Persona(*persona)
	}
	if *fit != 0 {
		existing.FitScore = *fit
	}
	if *influence != 0 {
		existing.InfluenceScore = *influence
	}
	if *owner != "" {
		existing.Owner = *owner
	}
	if *notes != "" {
		existing.Notes = *notes
	}
	if *profiles != "" {
		replaced := parseProfileFlag(*profiles)
		for i := range replaced {
			replaced[i].ArtistID = existing.ID
			for _, old := range existing.Profiles {
				if strings.EqualFold(old.Platform, replaced[i].Platform) && old.Handle == replaced[i].Handle {
					replaced[i].ID = old.ID
				}
			}
		}
		existing.Profiles = replaced
	}

	if _, err := s.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	fmt.Printf("✓ Artist updated: %s\n", existing.Name)
	return nil
}

func renderArtistTable(out io.Writer, artists []models.Artist) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tSTATUS\tFIT\tINFLUENCE\tOWNER\tID")
	_, _ = fmt.Fprintln(w, "----\t----\t------\t---\t---------\t-----\t--")

	for _, a := range artists {
		owner := a.Owner
		if owner == "" {
			owner = "-"
		}
		status := string(a.Status)
		if a.DoNotContact {
			status += " ⛔"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d/5\t%d\t%s\t%s\n",
			a.Name, a.ArtType, status, a.FitScore, a.InfluenceScore, owner, a.ID)
	}
	_ = w.Flush()
}

// parseProfileFlag turns "ArtStation:handle,Instagram:handle" into
// profiles. A bare platform with no handle is accepted.
func parseProfileFlag(raw string) []models.Profile {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var profiles []models.Profile
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		platform, handle, _ := strings.Cut(part, ":")
		profiles = append(profiles, models.Profile{
			Platform: strings.TrimSpace(platform),
			Handle:   strings.TrimSpace(handle),
		})
	}
	return profiles
}
