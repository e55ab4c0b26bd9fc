// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
)

// NewMCPServer initializes and configures the AI Indicator MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"AI Indicator Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_repository ---
	s.AddTool(mcp.NewTool("analyze_repository",
		mcp.WithDescription("Analyze a Git repository for statistical indicators of AI-assisted development."),
		mcp.WithString("repo", mcp.Description("Path or clone URL of the Git repository (defaults to current directory if not specified).")),
		mcp.WithNumber("burst_window_minutes", mcp.Description("Maximum gap in minutes between commits for the later one to count as bursty. Defaults to 30.")),
		mcp.WithNumber("workers", mcp.Description("Number of concurrent file scan workers.")),
	), h.handleAnalyzeRepository)

	// --- 2. Tool: get_commit_stats ---
	s.AddTool(mcp.NewTool("get_commit_stats",
		mcp.WithDescription("Summarize a Git repository's commit history: contributors, cadence and duration."),
		mcp.WithString("repo", mcp.Description("Path or clone URL of the Git repository.")),
	), h.handleGetCommitStats)

	return s
}

// StartMCPServer starts the AI Indicator MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
