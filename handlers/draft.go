// ABOUTME: Message drafting MCP tool handler
// ABOUTME: Builds persona-aware outreach drafts with the configured LLM
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-tools/roster/ai"
	"github.com/inkwell-tools/roster/sheets"
	"github.com/inkwell-tools/roster/store"
)

const draftMaxTokens = 1024

type DraftHandlers struct {
	store    store.Store
	provider ai.Provider
}

func NewDraftHandlers(s store.Store, p ai.Provider) *DraftHandlers {
	return &DraftHandlers{store: s, provider: p}
}

type DraftMessageInput struct {
	ArtistID       string `json:"artist_id" jsonschema:"Artist ID (required)"`
	EngagementType string `json:"engagement_type,omitempty" jsonschema:"Engagement framing, e.g. Initial Message or Follow-up"`
	Template       string `json:"template,omitempty" jsonschema:"Goal of the message, e.g. Beta Invite"`
}

type DraftMessageOutput struct {
	Artist  string `json:"artist"`
	Message string `json:"message"`
}

func (h *DraftHandlers) DraftMessage(ctx context.Context, _ *mcp.CallToolRequest, input DraftMessageInput) (*mcp.CallToolResult, DraftMessageOutput, error) {
	if input.ArtistID == "" {
		return nil, DraftMessageOutput{}, fmt.Errorf("artist_id is required")
	}
	if h.provider == nil || !h.provider.IsConfigured() {
		return nil, DraftMessageOutput{}, fmt.Errorf("no LLM provider configured. Set ANTHROPIC_API_KEY")
	}

	artists, err := h.store.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		return nil, DraftMessageOutput{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	for i := range artists {
		if artists[i].ID != input.ArtistID {
			continue
		}
		artist := &artists[i]

		prompt := ai.DraftMessagePrompt(artist, &ai.DraftContext{
			EngagementType: input.EngagementType,
			Template:       input.Template,
			History:        artist.Touchpoints,
		})

		message, err := h.provider.Generate(ctx, prompt, draftMaxTokens)
		if err != nil {
			return nil, DraftMessageOutput{}, fmt.Errorf("failed to draft message: %w", err)
		}

		return nil, DraftMessageOutput{Artist: artist.Name, Message: message}, nil
	}

	return nil, DraftMessageOutput{}, fmt.Errorf("artist not found")
}
