// ABOUTME: Known-platform table for profile URL and chart color resolution
// ABOUTME: Matched case-insensitively; unknown platforms fall through untouched
package models

import "strings"

// PlatformInfo describes a platform the team knows how to link and chart.
type PlatformInfo struct {
	Name     string
	URLBase  string
	HexColor string
}

var knownPlatforms = []PlatformInfo{
	{Name: "ArtStation", URLBase: "https://artstation.com/", HexColor: "#3B82F6"},
	{Name: "Instagram", URLBase: "https://instagram.com/", HexColor: "#EC4899"},
	{Name: "Twitter", URLBase: "https://twitter.com/", HexColor: "#0088FF"},
	{Name: "YouTube", URLBase: "https://youtube.com/@", HexColor: "#EF4444"},
	{Name: "Behance", URLBase: "https://behance.net/", HexColor: "#8B5CF6"},
	{Name: "TikTok", URLBase: "https://tiktok.com/@", HexColor: "#14B8A6"},
	{Name: "DeviantArt", URLBase: "https://deviantart.com/", HexColor: "#10B981"},
	{Name: "Email", URLBase: "mailto:", HexColor: "#F59E0B"},
}

// LookupPlatform resolves a free-text platform name against the known table.
// The match is case-insensitive. The second return is false when the
// platform is not recognized.
func LookupPlatform(name string) (PlatformInfo, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, p := range knownPlatforms {
		if strings.ToLower(p.Name) == needle {
			return p, true
		}
	}
	return PlatformInfo{}, false
}

// ProfileURL returns the best URL for a profile: its stored URL if present,
// otherwise one derived from the known-platform table and handle.
func ProfileURL(p Profile) string {
	if p.URL != "" {
		return p.URL
	}
	info, ok := LookupPlatform(p.Platform)
	if !ok || p.Handle == "" {
		return ""
	}
	return info.URLBase + p.Handle
}
