// ABOUTME: Prompt construction for drafting, roster insights, and data Q&A
// ABOUTME: Prompts are built from roster data summaries to keep token use low
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inkwell-tools/roster/models"
)

// DraftContext carries the optional engagement framing for a drafted
// message plus the prior touchpoint history with the artist.
type DraftContext struct {
	EngagementType string
	Template       string
	History        []models.Touchpoint
}

// DraftMessagePrompt builds the outreach drafting prompt for one
// artist. Tone shifts with the artist's persona: influencers get a
// casual register, everyone else a professional one.
func DraftMessagePrompt(artist *models.Artist, dc *DraftContext) string {
	primary := models.Profile{Platform: "Email"}
	if len(artist.Profiles) > 0 {
		primary = artist.Profiles[0]
	}
	profileURL := primary.URL
	if profileURL == "" {
		profileURL = "No URL"
	}

	tone := "Professional/Respectful"
	if artist.Persona == models.PersonaInfluencer {
		tone = "Hype/Casual"
	}

	engagementType := "Initial Message"
	template := "General Outreach"
	historyText := "No prior history."
	if dc != nil {
		if dc.EngagementType != "" {
			engagementType = dc.EngagementType
		}
		if dc.Template != "" {
			template = dc.Template
		}
		if len(dc.History) > 0 {
			var lines []string
			for _, h := range dc.History {
				lines = append(lines, fmt.Sprintf("[%s] %s: %s", h.SentAt, h.Type, h.MessageText))
			}
			historyText = strings.Join(lines, "\n")
		}
	}

	return fmt.Sprintf(`You are the owner of a creative software company writing a personal, direct message to an artist.

Target Artist: %s
Platform: %s (%s)

CRM Context:
- Art Type: %s
- Persona: %s (Adjust tone: %s)
- Pipeline Status: %s
- Fit Score: %d/5
- Owner Notes: %s

Engagement Context:
- Type: %s
- Template Goal: %s

Message History (Chronological):
%s

Instructions:
1. Write a SHORT, personalized message (under 280 chars if Twitter/Instagram).
2. If a URL is provided, mention specific details about their work that might be found there (simulate viewing their portfolio).
3. If "Message History" exists, refer back to previous points naturally.
4. Tone should be "Founder to Artist" - authentic, not marketing fluff.
5. No subject lines.`,
		artist.Name, primary.Platform, profileURL,
		artist.ArtType, artist.Persona, tone,
		artist.Status, artist.FitScore, artist.Notes,
		engagementType, template, historyText)
}

// InsightsPrompt builds the roster analysis prompt. Artists are
// flattened to one line each to keep the payload small.
func InsightsPrompt(artists []models.Artist) string {
	var lines []string
	for _, a := range artists {
		lines = append(lines, fmt.Sprintf("Name: %s, ArtType: %s, Persona: %s, Fit: %d/5, Status: %s, Notes: %s, Influence: %d",
			a.Name, a.ArtType, a.Persona, a.FitScore, a.Status, a.Notes, a.InfluenceScore))
	}

	return fmt.Sprintf(`You are an Artist Relations Manager for a creative software company. Analyze the following roster of artists and provide 3 brief, actionable strategic insights.
Focus on:
1. Moving artists down the funnel (from Discovered -> Advocate).
2. Identifying high-value targets (High Fit/Influence).
3. Gaps in our outreach strategy.

Data:
%s`, strings.Join(lines, "\n"))
}

// AskDataPrompt builds a data Q&A prompt over a trimmed JSON view of
// the roster.
func AskDataPrompt(query string, artists []models.Artist) string {
	type row struct {
		Name      string `json:"name"`
		Type      string `json:"type"`
		Persona   string `json:"persona"`
		Fit       int    `json:"fit"`
		Status    string `json:"status"`
		Influence int    `json:"influence"`
	}

	rows := make([]row, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, row{
			Name:      a.Name,
			Type:      string(a.ArtType),
			Persona:   string(a.Persona),
			Fit:       a.FitScore,
			Status:    string(a.Status),
			Influence: a.InfluenceScore,
		})
	}
	data, _ := json.Marshal(rows)

	return fmt.Sprintf(`You are a data assistant for an Artist Relations team. Answer the user's question based strictly on this JSON dataset: %s.

User Question: %s

Keep the answer extremely brief and data-driven.`, string(data), query)
}
