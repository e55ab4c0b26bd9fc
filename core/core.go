package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/core/scan"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/outwriter"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/store"
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// ExecuteAnalyze runs the full analysis and prints results using the
// configured output format. It serves as the main entry point for the
// 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	client := contract.NewLocalGitClient()

	result, err := GetAnalysisResult(ctx, cfg, client)
	if err != nil {
		return err
	}

	if cfg.StoreBackend != schema.NoneBackend {
		if err := store.RecordAnalysis(mgr, result, configParams(cfg)); err != nil {
			// Persistence failure should not discard a finished analysis
			contract.LogWarn("recording analysis run", err)
		}
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteAnalysis(result, cfg, duration)
}

// GetAnalysisResult resolves the repository target, reads the commit log and
// runs every detector. Remote targets are cloned into a temporary directory
// that is removed before returning.
func GetAnalysisResult(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.AnalysisResult, error) {
	treePath := cfg.RepoPath

	if cfg.RepoURL != "" {
		tmpDir, err := os.MkdirTemp("", "ai-indicator-clone-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer func() { _ = os.RemoveAll(tmpDir) }()

		if err := client.CloneRepository(ctx, cfg.RepoURL, tmpDir); err != nil {
			return nil, fmt.Errorf("failed to clone %s: %w", cfg.RepoURL, err)
		}
		treePath = tmpDir
	}

	commits, err := client.GetCommitLog(ctx, treePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit log: %w", err)
	}

	var onProgress scan.ProgressFunc
	if cfg.ShowProgress {
		onProgress = func(processed, total int) {
			fmt.Fprintf(os.Stderr, "\rScanning files... %d/%d", processed, total)
			if processed == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	result, err := AnalyzeRepository(ctx, AnalyzerInput{
		Commits:    commits,
		TreePath:   treePath,
		Thresholds: cfg.Thresholds,
		Workers:    cfg.Workers,
		OnProgress: onProgress,
	})
	if err != nil {
		return nil, err
	}

	if cfg.RepoURL != "" {
		// Report the stable remote URL rather than the throwaway clone path
		result.RepoURL = cfg.RepoURL
		result.RepoPath = ""
	}
	return result, nil
}

// configParams captures the knobs worth persisting next to a stored run.
func configParams(cfg *contract.Config) map[string]any {
	return map[string]any{
		"workers":                 cfg.Workers,
		"burst_window":            cfg.Thresholds.BurstWindow.String(),
		"large_commit_factor":     cfg.Thresholds.LargeCommitStdDevFactor,
		"large_commit_lines":      cfg.Thresholds.LargeCommitAbsoluteLines,
		"first_commit_solo_lines": cfg.Thresholds.FirstCommitSoloThreshold,
		"first_commit_multiplier": cfg.Thresholds.FirstCommitMeanMultiplier,
		"first_commit_lines":      cfg.Thresholds.FirstCommitAbsoluteLines,
	}
}
