// ABOUTME: AI CLI commands for drafting, insights, and data questions
// ABOUTME: All three build prompts from roster data and call the LLM provider
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/inkwell-tools/roster/ai"
	"github.com/inkwell-tools/roster/sheets"
	"github.com/inkwell-tools/roster/store"
)

const (
	draftMaxTokens    = 1024
	insightsMaxTokens = 2048
)

// DraftCommand drafts an outreach message for one artist. The artist
// ID is the first positional argument.
func DraftCommand(s store.Store, provider ai.Provider, args []string) error {
	fs := flag.NewFlagSet("draft", flag.ExitOnError)
	engagement := fs.String("engagement", "", "Engagement framing (e.g. Follow-up)")
	template := fs.String("template", "", "Goal of the message (e.g. Beta Invite)")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("artist ID is required")
	}
	if provider == nil || !provider.IsConfigured() {
		return fmt.Errorf("no LLM provider configured. Set ANTHROPIC_API_KEY")
	}

	ctx := context.Background()
	artistID := fs.Args()[0]

	artists, err := s.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	for i := range artists {
		if artists[i].ID != artistID {
			continue
		}
		artist := &artists[i]

		prompt := ai.DraftMessagePrompt(artist, &ai.DraftContext{
			EngagementType: *engagement,
			Template:       *template,
			History:        artist.Touchpoints,
		})

		message, err := provider.Generate(ctx, prompt, draftMaxTokens)
		if err != nil {
			return fmt.Errorf("failed to draft message: %w", err)
		}

		fmt.Printf("Draft for %s:\n\n%s\n", artist.Name, message)
		return nil
	}

	return fmt.Errorf("artist not found: %s", artistID)
}

// InsightsCommand analyzes the roster and prints strategic insights.
func InsightsCommand(s store.Store, provider ai.Provider, args []string) error {
	fs := flag.NewFlagSet("insights", flag.ExitOnError)
	_ = fs.Parse(args)

	if provider == nil || !provider.IsConfigured() {
		return fmt.Errorf("no LLM provider configured. Set ANTHROPIC_API_KEY")
	}

	ctx := context.Background()
	artists, err := s.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}
	if len(artists) == 0 {
		fmt.Println("Roster is empty; nothing to analyze.")
		return nil
	}

	insights, err := provider.Generate(ctx, ai.InsightsPrompt(artists), insightsMaxTokens)
	if err != nil {
		return fmt.Errorf("failed to generate insights: %w", err)
	}

	fmt.Println(insights)
	return nil
}

// AskCommand answers a free-form question over the roster data.
func AskCommand(s store.Store, provider ai.Provider, args []string) error {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	_ = fs.Parse(args)

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return fmt.Errorf("a question is required")
	}
	if provider == nil || !provider.IsConfigured() {
		return fmt.Errorf("no LLM provider configured. Set ANTHROPIC_API_KEY")
	}

	ctx := context.Background()
	artists, err := s.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		return fmt.Errorf("failed to fetch roster: %w", err)
	}

	answer, err := provider.Generate(ctx, ai.AskDataPrompt(query, artists), draftMaxTokens)
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	fmt.Println(answer)
	return nil
}
