// ABOUTME: Data models for artist-relations CRM entities
// ABOUTME: Defines Artist, Profile, Touchpoint, and the pipeline lifecycle enums
package models

// LifecycleStage is the pipeline status of an artist, ordered from first
// contact through advocacy, with the closed stages at the end.
type LifecycleStage string

const (
	StageDiscovered LifecycleStage = "Discovered"
	StageQualified  LifecycleStage = "Qualified"
	StageAssigned   LifecycleStage = "Assigned"
	StageMessaged   LifecycleStage = "Messaged"
	StageEngaged    LifecycleStage = "Engaged"
	StageClicked    LifecycleStage = "Clicked"
	StageSignedUp   LifecycleStage = "Signed Up"
	StageFirstMark  LifecycleStage = "1st Mark"
	StageInstalled  LifecycleStage = "Installed"
	StageActive     LifecycleStage = "Active"
	StageAdvocate   LifecycleStage = "Advocate"

	StageClosedNotFit      LifecycleStage = "Closed: Not a fit"
	StageClosedNoResponse  LifecycleStage = "Closed: No response"
	StageClosedDoNotContact LifecycleStage = "Closed: Hostile / do-not-contact / Later"
)

// ActiveStages lists the open pipeline stages in funnel order. Closed stages
// are collapsed into a single bucket by the dashboard.
var ActiveStages = []LifecycleStage{
	StageDiscovered,
	StageQualified,
	StageAssigned,
	StageMessaged,
	StageEngaged,
	StageClicked,
	StageSignedUp,
	StageFirstMark,
	StageInstalled,
	StageActive,
	StageAdvocate,
}

// IsClosed reports whether the stage is one of the closed buckets.
func (s LifecycleStage) IsClosed() bool {
	switch s {
	case StageClosedNotFit, StageClosedNoResponse, StageClosedDoNotContact:
		return true
	}
	return false
}

// ArtType classifies the artist's medium.
type ArtType string

const (
	ArtType3D           ArtType = "3D"
	ArtTypeIllustration ArtType = "Illustration"
	ArtTypeVideo        ArtType = "Video"
	ArtTypePhotography  ArtType = "Photography"
	ArtTypeOther        ArtType = "Other"
)

// Persona classifies where the artist sits in their career.
type Persona string

const (
	PersonaStudent      Persona = "Student"
	PersonaMid          Persona = "Mid"
	PersonaProfessional Persona = "Professional"
	PersonaInfluencer   Persona = "Influencer"
)

// Touchpoint interaction types.
const (
	TouchTypeDM      = "dm"
	TouchTypeComment = "comment"
	TouchTypeEmail   = "email"
)

// Profile is a social/portfolio presence owned by exactly one artist.
// An empty ID means the profile has not been created remotely yet.
type Profile struct {
	ID        string `json:"id,omitempty"`
	ArtistID  string `json:"artistId,omitempty"`
	Platform  string `json:"platform"`
	Handle    string `json:"handle"`
	URL       string `json:"url"`
	Followers int    `json:"followers,omitempty"`
}

// Touchpoint is an append-only outreach record. Touchpoints are never
// edited or deleted after creation.
type Touchpoint struct {
	TouchID     string `json:"touchId"`
	ArtistID    string `json:"artistId"`
	Platform    string `json:"platform"`
	Type        string `json:"type"`
	MessageText string `json:"messageText"`
	SentAt      string `json:"sentAt"`
	Outcome     string `json:"outcome,omitempty"`
	LinkID      string `json:"linkId,omitempty"`
}

// Artist is the root CRM entity. It exclusively owns its Profile and
// Touchpoint collections; children carry ArtistID only for wire transport.
type Artist struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ArtType        ArtType        `json:"artType"`
	Industry       string         `json:"industry"`
	Persona        Persona        `json:"persona"`
	Timezone       string         `json:"timezone"`
	InfluenceScore int            `json:"influenceScore"`
	FitScore       int            `json:"fitScore"`
	Status         LifecycleStage `json:"status"`
	Owner          string         `json:"owner"`
	Notes          string         `json:"notes"`
	LastTouched    string         `json:"lastTouched"`
	DoNotContact   bool           `json:"doNotContact"`
	Profiles       []Profile      `json:"profiles"`
	Touchpoints    []Touchpoint   `json:"touchpoints"`
}

// ProfileIDs returns the ids of all already-persisted profiles, skipping
// pending-creates (profiles without a server id).
func (a *Artist) ProfileIDs() []string {
	var ids []string
	for _, p := range a.Profiles {
		if p.ID != "" {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Stats is the parsed dashboard view: one metric map per sheet section.
// Missing sections are empty maps, never nil lookups for callers using
// the map index form.
type Stats struct {
	Dashboard map[string]string `json:"dashboard"`
	Pipeline  map[string]string `json:"pipeline"`
	Platforms map[string]string `json:"platforms"`
	ArtTypes  map[string]string `json:"artTypes"`
	Personas  map[string]string `json:"personas"`
}

// EmptyStats returns a Stats with all sections allocated.
func EmptyStats() *Stats {
	return &Stats{
		Dashboard: map[string]string{},
		Pipeline:  map[string]string{},
		Platforms: map[string]string{},
		ArtTypes:  map[string]string{},
		Personas:  map[string]string{},
	}
}
