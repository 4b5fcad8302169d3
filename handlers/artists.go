// ABOUTME: Artist MCP tool handlers
// ABOUTME: Implements list_artists, add_artist, update_artist, and log_touchpoint tools
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-tools/roster/models"
	"github.com/inkwell-tools/roster/sheets"
	"github.com/inkwell-tools/roster/store"
)

type ArtistHandlers struct {
	store store.Store
}

func NewArtistHandlers(s store.Store) *ArtistHandlers {
	return &ArtistHandlers{store: s}
}

type ProfileInput struct {
	Platform  string `json:"platform" jsonschema:"Platform name, e.g. ArtStation or Instagram (required)"`
	Handle    string `json:"handle,omitempty" jsonschema:"Handle on the platform"`
	URL       string `json:"url,omitempty" jsonschema:"Profile URL (derived from handle when omitted)"`
	Followers int    `json:"followers,omitempty" jsonschema:"Follower count"`
}

type ProfileOutput struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Handle    string `json:"handle,omitempty"`
	URL       string `json:"url,omitempty"`
	Followers int    `json:"followers,omitempty"`
}

type ArtistOutput struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ArtType        string          `json:"art_type"`
	Industry       string          `json:"industry,omitempty"`
	Persona        string          `json:"persona"`
	Status         string          `json:"status"`
	FitScore       int             `json:"fit_score"`
	InfluenceScore int             `json:"influence_score"`
	Owner          string          `json:"owner,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	LastTouched    string          `json:"last_touched,omitempty"`
	DoNotContact   bool            `json:"do_not_contact,omitempty"`
	Profiles       []ProfileOutput `json:"profiles"`
}

func artistToOutput(a *models.Artist) ArtistOutput {
	profiles := make([]ProfileOutput, len(a.Profiles))
	for i, p := range a.Profiles {
		profiles[i] = ProfileOutput{
			ID:        p.ID,
			Platform:  p.Platform,
			Handle:    p.Handle,
			URL:       models.ProfileURL(p),
			Followers: p.Followers,
		}
	}

	return ArtistOutput{
		ID:             a.ID,
		Name:           a.Name,
		ArtType:        string(a.ArtType),
		Industry:       a.Industry,
		Persona:        string(a.Persona),
		Status:         string(a.Status),
		FitScore:       a.FitScore,
		InfluenceScore: a.InfluenceScore,
		Owner:          a.Owner,
		Notes:          a.Notes,
		LastTouched:    a.LastTouched,
		DoNotContact:   a.DoNotContact,
		Profiles:       profiles,
	}
}

type ListArtistsInput struct {
	View  string `json:"view,omitempty" jsonschema:"Roster view: assigned or unassigned (default assigned)"`
	Query string `json:"query,omitempty" jsonschema:"Substring filter on artist name or owner"`
}

type ListArtistsOutput struct {
	Artists []ArtistOutput `json:"artists"`
}

func (h *ArtistHandlers) ListArtists(ctx context.Context, _ *mcp.CallToolRequest, input ListArtistsInput) (*mcp.CallToolResult, ListArtistsOutput, error) {
	view := sheets.ViewAssigned
	if input.View == string(sheets.ViewUnassigned) {
		view = sheets.ViewUnassigned
	}

	artists, err := h.store.Fetch(ctx, view)
	if err != nil {
		return nil, ListArtistsOutput{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	needle := strings.ToLower(input.Query)
	result := make([]ArtistOutput, 0, len(artists))
	for i := range artists {
		a := &artists[i]
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Name), needle) &&
			!strings.Contains(strings.ToLower(a.Owner), needle) {
			continue
		}
		result = append(result, artistToOutput(a))
	}

	return nil, ListArtistsOutput{Artists: result}, nil
}

type AddArtistInput struct {
	Name           string         `json:"name" jsonschema:"Artist name (required)"`
	ArtType        string         `json:"art_type,omitempty" jsonschema:"Art type, e.g. Illustration, 3D, Video"`
	Industry       string         `json:"industry,omitempty" jsonschema:"Industry the artist works in"`
	Persona        string         `json:"persona,omitempty" jsonschema:"Persona: Student, Mid, Professional, or Influencer"`
	Timezone       string         `json:"timezone,omitempty" jsonschema:"Artist timezone"`
	FitScore       int            `json:"fit_score,omitempty" jsonschema:"Fit score 1-5"`
	InfluenceScore int            `json:"influence_score,omitempty" jsonschema:"Influence score 0-100"`
	Owner          string         `json:"owner,omitempty" jsonschema:"Owning team member email"`
	Notes          string         `json:"notes,omitempty" jsonschema:"Free-form notes"`
	Profiles       []ProfileInput `json:"profiles,omitempty" jsonschema:"Social profiles to attach"`
}

func (h *ArtistHandlers) AddArtist(ctx context.Context, _ *mcp.CallToolRequest, input AddArtistInput) (*mcp.CallToolResult, ArtistOutput, error) {
	if input.Name == "" {
		return nil, ArtistOutput{}, fmt.Errorf("name is required")
	}

	artist := &models.Artist{
		Name:           input.Name,
		ArtType:        models.ArtType(input.ArtType),
		Industry:       input.Industry,
		Persona:        models.Persona(input.Persona),
		Timezone:       input.Timezone,
		FitScore:       input.FitScore,
		InfluenceScore: input.InfluenceScore,
		Status:         models.StageDiscovered,
		Owner:          input.Owner,
	}
	artist.Notes = input.Notes
	for _, p := range input.Profiles {
		artist.Profiles = append(artist.Profiles, models.Profile{
			Platform:  p.Platform,
			Handle:    p.Handle,
			URL:       p.URL,
			Followers: p.Followers,
		})
	}

	if _, err := h.store.Create(ctx, artist); err != nil {
		return nil, ArtistOutput{}, fmt.Errorf("failed to create artist: %w", err)
	}

	return nil, artistToOutput(artist), nil
}

type UpdateArtistInput struct {
	ID             string         `json:"id" jsonschema:"Artist ID (required)"`
	Name           string         `json:"name,omitempty" jsonschema:"Updated name"`
	Status         string         `json:"status,omitempty" jsonschema:"Updated pipeline stage"`
	Persona        string         `json:"persona,omitempty" jsonschema:"Updated persona"`
	FitScore       int            `json:"fit_score,omitempty" jsonschema:"Updated fit score 1-5"`
	InfluenceScore int            `json:"influence_score,omitempty" jsonschema:"Updated influence score 0-100"`
	Owner          string         `json:"owner,omitempty" jsonschema:"Updated owner email"`
	Notes          string         `json:"notes,omitempty" jsonschema:"Updated notes"`
	Profiles       []ProfileInput `json:"profiles,omitempty" jsonschema:"Replacement profile set; existing profiles keep their ids by platform match"`
}

func (h *ArtistHandlers) UpdateArtist(ctx context.Context, _ *mcp.CallToolRequest, input UpdateArtistInput) (*mcp.CallToolResult, ArtistOutput, error) {
	if input.ID == "" {
		return nil, ArtistOutput{}, fmt.Errorf("id is required")
	}

	artists, err := h.store.Fetch(ctx, sheets.ViewAssigned)
	if err != nil {
		return nil, ArtistOutput{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	var artist *models.Artist
	for i := range artists {
		if artists[i].ID == input.ID {
			artist = &artists[i]
			break
		}
	}
	if artist == nil {
		return nil, ArtistOutput{}, fmt.Errorf("artist not found")
	}

	if input.Name != "" {
		artist.Name = input.Name
	}
	if input.Status != "" {
		artist.Status = models.LifecycleStage(input.Status)
	}
	if input.Persona != "" {
		artist.Persona = models.Persona(input.Persona)
	}
	if input.FitScore != 0 {
		artist.FitScore = input.FitScore
	}
	if input.InfluenceScore != 0 {
		artist.InfluenceScore = input.InfluenceScore
	}
	if input.Owner != "" {
		artist.Owner = input.Owner
	}
	if input.Notes != "" {
		artist.Notes = input.Notes
	}
	if input.Profiles != nil {
		replaced := make([]models.Profile, 0, len(input.Profiles))
		for _, p := range input.Profiles {
			next := models.Profile{
				ArtistID:  artist.ID,
				Platform:  p.Platform,
				Handle:    p.Handle,
				URL:       p.URL,
				Followers: p.Followers,
			}
			// Re-use the existing id so an unchanged profile is not
			// dropped and re-created on the backend.
			for _, old := range artist.Profiles {
				if strings.EqualFold(old.Platform, p.Platform) && old.Handle == p.Handle {
					next.ID = old.ID
				}
			}
			replaced = append(replaced, next)
		}
		artist.Profiles = replaced
	}

	refreshed, err := h.store.Update(ctx, artist)
	if err != nil {
		return nil, ArtistOutput{}, fmt.Errorf("failed to update artist: %w", err)
	}

	for i := range refreshed {
		if refreshed[i].ID == artist.ID {
			return nil, artistToOutput(&refreshed[i]), nil
		}
	}
	return nil, artistToOutput(artist), nil
}

type LogTouchpointInput struct {
	ArtistID string `json:"artist_id" jsonschema:"Artist ID (required)"`
	Platform string `json:"platform,omitempty" jsonschema:"Platform the interaction happened on"`
	Type     string `json:"type,omitempty" jsonschema:"Interaction type: dm, comment, or email (default dm)"`
	Message  string `json:"message,omitempty" jsonschema:"Text of the message sent"`
	SentAt   string `json:"sent_at,omitempty" jsonschema:"Date of the interaction (ISO 8601, defaults to today)"`
	Outcome  string `json:"outcome,omitempty" jsonschema:"Outcome of the interaction"`
	LinkID   string `json:"link_id,omitempty" jsonschema:"Profile id the interaction relates to"`
}

func (h *ArtistHandlers) LogTouchpoint(ctx context.Context, _ *mcp.CallToolRequest, input LogTouchpointInput) (*mcp.CallToolResult, ArtistOutput, error) {
	if input.ArtistID == "" {
		return nil, ArtistOutput{}, fmt.Errorf("artist_id is required")
	}

	touchType := input.Type
	if touchType == "" {
		touchType = models.TouchTypeDM
	}
	sentAt := input.SentAt
	if sentAt == "" {
		sentAt = time.Now().UTC().Format("2006-01-02")
	}

	tp := models.Touchpoint{
		ArtistID:    input.ArtistID,
		Platform:    input.Platform,
		Type:        touchType,
		MessageText: input.Message,
		SentAt:      sentAt,
		Outcome:     input.Outcome,
		LinkID:      input.LinkID,
	}

	artists, err := h.store.LogInteraction(ctx, tp)
	if err != nil {
		return nil, ArtistOutput{}, fmt.Errorf("failed to log touchpoint: %w", err)
	}

	for i := range artists {
		if artists[i].ID == input.ArtistID {
			return nil, artistToOutput(&artists[i]), nil
		}
	}
	return nil, ArtistOutput{}, fmt.Errorf("artist not found after logging")
}
