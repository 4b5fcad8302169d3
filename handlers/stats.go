// ABOUTME: Dashboard stats MCP tool handler
// ABOUTME: Exposes the remote dashboard view as structured sections
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-tools/roster/store"
)

type StatsHandlers struct {
	store store.Store
}

func NewStatsHandlers(s store.Store) *StatsHandlers {
	return &StatsHandlers{store: s}
}

type DashboardStatsInput struct{}

type DashboardStatsOutput struct {
	Dashboard map[string]string `json:"dashboard"`
	Pipeline  map[string]string `json:"pipeline"`
	Platforms map[string]string `json:"platforms"`
	ArtTypes  map[string]string `json:"art_types"`
	Personas  map[string]string `json:"personas"`
}

func (h *StatsHandlers) DashboardStats(ctx context.Context, _ *mcp.CallToolRequest, _ DashboardStatsInput) (*mcp.CallToolResult, DashboardStatsOutput, error) {
	stats, err := h.store.DashboardStats(ctx)
	if err != nil {
		return nil, DashboardStatsOutput{}, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	return nil, DashboardStatsOutput{
		Dashboard: stats.Dashboard,
		Pipeline:  stats.Pipeline,
		Platforms: stats.Platforms,
		ArtTypes:  stats.ArtTypes,
		Personas:  stats.Personas,
	}, nil
}
