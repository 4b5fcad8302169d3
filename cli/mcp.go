// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-tools/roster/ai"
	"github.com/inkwell-tools/roster/handlers"
	"github.com/inkwell-tools/roster/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(s store.Store, provider ai.Provider) error {
	log.Println("Starting Roster MCP Server...")

	artistHandlers := handlers.NewArtistHandlers(s)
	statsHandlers := handlers.NewStatsHandlers(s)
	draftHandlers := handlers.NewDraftHandlers(s, provider)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "roster",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_artists",
		Description: "List roster artists, optionally filtered by view or a name/owner query",
	}, artistHandlers.ListArtists)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_artist",
		Description: "Add a new artist to the roster with optional social profiles",
	}, artistHandlers.AddArtist)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_artist",
		Description: "Update an existing artist's fields, pipeline stage, or profile set",
	}, artistHandlers.UpdateArtist)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_touchpoint",
		Description: "Log an outreach interaction with an artist and refresh their last-touched date",
	}, artistHandlers.LogTouchpoint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dashboard_stats",
		Description: "Get roster dashboard statistics: totals, pipeline, platforms, art types, and personas",
	}, statsHandlers.DashboardStats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "draft_message",
		Description: "Draft a persona-aware outreach message for an artist using their CRM context and history",
	}, draftHandlers.DraftMessage)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
