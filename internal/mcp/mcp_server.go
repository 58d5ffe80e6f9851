// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tempograph/tempograph/internal/contract"
)

// NewMCPServer initializes and configures the tempograph MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Tempograph Aggregation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := newToolHandler(baseCfg, mgr)

	// --- 1. Tool: get_heatmap ---
	s.AddTool(mcp.NewTool("get_heatmap",
		mcp.WithDescription("Bucket a vault property into calendar periods and return the intensity grid."),
		mcp.WithString("property", mcp.Description("The property ID to aggregate."), mcp.Required()),
		mcp.WithString("vault", mcp.Description("Path to the vault directory (defaults to the configured vault).")),
		mcp.WithString("granularity", mcp.Description("Bucket size. Defaults to 'daily'."), mcp.Enum("daily", "weekly", "monthly", "quarterly", "yearly")),
		mcp.WithString("anchor_property", mcp.Description("Property parsed as each entry's date anchor, winning over filename inference.")),
		mcp.WithBoolean("show_empty", mcp.Description("Synthesize zero-count cells for gap buckets.")),
	), h.handleGetHeatmap)

	// --- 2. Tool: get_timeline ---
	s.AddTool(mcp.NewTool("get_timeline",
		mcp.WithDescription("Return one dated point per entry for a vault property, sorted ascending."),
		mcp.WithString("property", mcp.Description("The property ID to aggregate."), mcp.Required()),
		mcp.WithString("vault", mcp.Description("Path to the vault directory.")),
		mcp.WithString("anchor_property", mcp.Description("Property parsed as each entry's date anchor.")),
	), h.handleGetTimeline)

	// --- 3. Tool: get_distribution ---
	s.AddTool(mcp.NewTool("get_distribution",
		mcp.WithDescription("Group a vault property by display label and return category counts."),
		mcp.WithString("property", mcp.Description("The property ID to aggregate."), mcp.Required()),
		mcp.WithString("vault", mcp.Description("Path to the vault directory.")),
		mcp.WithBoolean("case_sensitive", mcp.Description("Keep case-varied spellings as distinct categories. Defaults to false.")),
	), h.handleGetDistribution)

	// --- 4. Tool: get_tag_cloud ---
	s.AddTool(mcp.NewTool("get_tag_cloud",
		mcp.WithDescription("Flatten a list-valued vault property and return tag frequencies."),
		mcp.WithString("property", mcp.Description("The property ID to aggregate."), mcp.Required()),
		mcp.WithString("vault", mcp.Description("Path to the vault directory.")),
		mcp.WithBoolean("fold_case", mcp.Description("Collapse case-varied tags into one. Defaults to false.")),
	), h.handleGetTagCloud)

	return s
}

// StartMCPServer starts the tempograph MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
