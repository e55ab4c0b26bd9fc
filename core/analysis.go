// Package core has the heuristic detectors and the analysis orchestrator.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/core/scan"
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// AnalyzerInput carries everything the orchestrator needs for one run.
type AnalyzerInput struct {
	Commits    []schema.Commit
	TreePath   string
	Thresholds schema.Thresholds
	Workers    int
	OnProgress scan.ProgressFunc
}

// AnalyzeRepository composes every detector into one AnalysisResult for the
// given commit log and working tree. The commit slice is read-only; the tree
// is walked once by the shared scanner.
func AnalyzeRepository(ctx context.Context, in AnalyzerInput) (*schema.AnalysisResult, error) {
	table := scan.NewSyntaxTable()
	comments := scan.NewCommentDensityAnalyzer(table)
	nonTypical := scan.NewNonTypicalExprAnalyzer(table)

	scanner := scan.NewScanner(in.Workers)
	filesRead, err := scanner.Scan(ctx, in.TreePath, []scan.Analyzer{comments, nonTypical}, in.OnProgress)
	if err != nil {
		return nil, fmt.Errorf("tree scan failed: %w", err)
	}

	basic := BasicMetrics(in.Commits)
	size := SizeMetrics(in.Commits, in.Thresholds)
	messages := MessagePatternPercentage(in.Commits)
	bursty := BurstyPercentage(in.Commits, in.Thresholds)
	testRatio := TestFileRatio(in.Commits)

	commentRatio := comments.Ratio()
	matched, scanned := nonTypical.Result()

	result := &schema.AnalysisResult{
		RepoPath:   in.TreePath,
		AnalyzedAt: time.Now(),
		FilesRead:  filesRead,
		Basic:      basic,
		Indicators: schema.AIIndicators{
			AvgLinesPerCommit: schema.MetricResult[float64]{
				Value:       size.AvgLinesPerCommit,
				Description: fmt.Sprintf("Average of %.2f changed lines across %d commits", size.AvgLinesPerCommit, basic.TotalCommits),
			},
			LargeCommitPercentage: schema.MetricResult[float64]{
				Value:       size.LargeCommitPercentage,
				Description: fmt.Sprintf("%.2f%% of commits are statistical or absolute churn outliers", size.LargeCommitPercentage),
			},
			FirstCommitAnalysis: schema.MetricResult[schema.FirstCommitDetail]{
				Value:       size.FirstCommit,
				Description: describeFirstCommit(size.FirstCommit),
			},
			AvgFilesPerCommit: schema.MetricResult[float64]{
				Value:       size.AvgFilesPerCommit,
				Description: fmt.Sprintf("Average of %.2f files touched per commit", size.AvgFilesPerCommit),
			},
			CommitMessagePatterns: schema.MetricResult[float64]{
				Value:       messages,
				Description: fmt.Sprintf("%.2f%% of commit messages follow templated or generic patterns", messages),
			},
			BurstyCommitPercentage: schema.MetricResult[float64]{
				Value:       bursty,
				Description: fmt.Sprintf("%.2f%% of commits landed within %s of their predecessor", bursty, in.Thresholds.BurstWindow),
			},
			TestFileRatio: schema.MetricResult[float64]{
				Value:       testRatio,
				Description: fmt.Sprintf("%.2f%% of commits touch at least one test file", testRatio),
			},
			CodeCommentRatio: schema.MetricResult[float64]{
				Value:       commentRatio,
				Description: fmt.Sprintf("%.2f comment lines per 100 code lines across %d files", commentRatio, filesRead),
			},
			NonTypicalExpressionRatio: schema.MetricResult[float64]{
				Value:       nonTypical.Ratio(),
				Description: fmt.Sprintf("%d of %d files contain traditional for/while/do/switch constructs", matched, scanned),
			},
		},
	}
	return result, nil
}

func describeFirstCommit(d schema.FirstCommitDetail) string {
	if d.IsSuspicious {
		return fmt.Sprintf("First commit introduced %d lines, unusually large for this history", d.Lines)
	}
	return fmt.Sprintf("First commit introduced %d lines, within normal range", d.Lines)
}
