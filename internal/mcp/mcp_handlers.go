package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
	"github.com/tempograph/tempograph/schema"
)

// toolHandler holds common dependencies for MCP tool handlers. Engines are
// kept per (vault, anchor property) so repeated calls against an unchanged
// vault reuse cached anchors and data points.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager

	mu      sync.Mutex
	engines map[string]*core.Engine
}

func newToolHandler(baseCfg *contract.Config, mgr contract.CacheManager) *toolHandler {
	return &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
		engines: map[string]*core.Engine{},
	}
}

// requestConfig clones the base config and applies per-request overrides
// shared by every tool.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	cfg.PropertyID = request.GetString("property", "")
	if cfg.PropertyID == "" {
		return nil, fmt.Errorf("property is required")
	}
	cfg.DisplayName = cfg.PropertyID

	if v := request.GetString("vault", ""); v != "" {
		if err := contract.RevalidateVault(cfg, v); err != nil {
			return nil, err
		}
	}
	if g := request.GetString("granularity", ""); g != "" {
		granularity := schema.Granularity(g)
		if _, ok := schema.ValidGranularities[granularity]; !ok {
			return nil, fmt.Errorf("unknown granularity %q", g)
		}
		cfg.Granularity = granularity
	}
	if a := request.GetString("anchor_property", ""); a != "" {
		cfg.AnchorProperty = a
	}
	return cfg, nil
}

// engineFor returns the shared engine for the request's vault and anchor
// settings, creating it on first use.
func (h *toolHandler) engineFor(cfg *contract.Config) *core.Engine {
	key := cfg.VaultPath + "\x00" + cfg.AnchorProperty

	h.mu.Lock()
	defer h.mu.Unlock()
	engine, ok := h.engines[key]
	if !ok {
		engine = core.NewVaultEngine(cfg, vault.NewSource(cfg.VaultPath))
		h.engines[key] = engine
	}
	return engine
}

func (h *toolHandler) handleGetHeatmap(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid heatmap parameters: %v", err)), nil
	}
	cfg.ShowEmpty = request.GetBool("show_empty", cfg.ShowEmpty)

	data, err := core.GetHeatmapResult(cfg, h.engineFor(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("heatmap aggregation failed: %v", err)), nil
	}
	return jsonResult(data)
}

func (h *toolHandler) handleGetTimeline(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid timeline parameters: %v", err)), nil
	}

	data, err := core.GetTimelineResult(cfg, h.engineFor(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timeline aggregation failed: %v", err)), nil
	}
	return jsonResult(data)
}

func (h *toolHandler) handleGetDistribution(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid distribution parameters: %v", err)), nil
	}
	cfg.CaseSensitivePie = request.GetBool("case_sensitive", cfg.CaseSensitivePie)

	data, err := core.GetPieResult(cfg, h.engineFor(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("distribution aggregation failed: %v", err)), nil
	}
	return jsonResult(data)
}

func (h *toolHandler) handleGetTagCloud(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid tag cloud parameters: %v", err)), nil
	}
	cfg.CaseSensitiveTags = !request.GetBool("fold_case", !cfg.CaseSensitiveTags)

	data, err := core.GetTagCloudResult(cfg, h.engineFor(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("tag cloud aggregation failed: %v", err)), nil
	}
	return jsonResult(data)
}

// jsonResult marshals an aggregate into a text tool result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(data, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
