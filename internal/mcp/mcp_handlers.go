package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/IlyaRucavitcyn/ai-indicator/core"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// applyRepoTarget points the config at the requested repository, classifying
// it as a remote URL or a local path.
func applyRepoTarget(cfg *contract.Config, target string) {
	if target == "" {
		return
	}
	if contract.IsRemoteURL(target) {
		cfg.RepoURL = target
		cfg.RepoPath = ""
		return
	}
	cfg.RepoPath = target
	cfg.RepoURL = ""
}

func (h *toolHandler) handleAnalyzeRepository(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyRepoTarget(cfg, request.GetString("repo", ""))
	if m := request.GetInt("burst_window_minutes", 0); m > 0 {
		cfg.Thresholds.BurstWindow = time.Duration(m) * time.Minute
	}
	if w := request.GetInt("workers", 0); w > 0 {
		cfg.Workers = w
	}
	// A progress counter on stderr would corrupt the stdio transport
	cfg.ShowProgress = false

	client := contract.NewLocalGitClient()
	result, err := core.GetAnalysisResult(ctx, cfg, client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCommitStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	applyRepoTarget(cfg, request.GetString("repo", ""))
	cfg.ShowProgress = false
	if cfg.RepoURL != "" {
		return mcp.NewToolResultError("get_commit_stats requires a local repository path"), nil
	}

	client := contract.NewLocalGitClient()
	commits, err := client.GetCommitLog(ctx, cfg.RepoPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read commit log: %v", err)), nil
	}

	stats := core.BasicMetrics(commits)
	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
