// Package schema has models, enums and shared helpers for all parts of ai-indicator.
package schema

import "time"

// Commit is one recorded change from the version-control log.
// It is constructed once by the git client and read-only thereafter.
type Commit struct {
	Hash         string    `json:"hash"`          // Full commit hash, unique within a repository
	AuthorName   string    `json:"author_name"`   // Display name, may vary per commit for the same email
	AuthorEmail  string    `json:"author_email"`  // Identity key for contributor aggregation
	Timestamp    time.Time `json:"timestamp"`     // Author timestamp
	Message      string    `json:"message"`       // Commit subject line
	FilesChanged int       `json:"files_changed"` // Number of files touched by the commit
	Insertions   int       `json:"insertions"`    // Lines added
	Deletions    int       `json:"deletions"`     // Lines removed
	Files        []string  `json:"files"`         // Relative paths of changed files
}

// TotalLines returns the combined churn of the commit.
// Derived on demand so it can never drift from Insertions/Deletions.
func (c *Commit) TotalLines() int {
	return c.Insertions + c.Deletions
}

// ContributorStat aggregates commit counts for a single author email.
type ContributorStat struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

// MetricResult pairs a computed value with a human-readable description
// suitable for direct rendering by any output formatter.
type MetricResult[T any] struct {
	Value       T      `json:"value"`
	Description string `json:"description"`
}

// FirstCommitDetail describes the size analysis of the chronologically
// earliest commit in the repository.
type FirstCommitDetail struct {
	Lines        int  `json:"lines"`
	IsSuspicious bool `json:"is_suspicious"`
}

// BasicMetrics holds general repository statistics independent of any
// AI-assistance heuristic.
type BasicMetrics struct {
	TotalCommits     int               `json:"total_commits"`
	Contributors     int               `json:"contributors"`
	FirstCommit      time.Time         `json:"first_commit"`
	LastCommit       time.Time         `json:"last_commit"`
	DurationDays     int               `json:"duration_days"`
	AvgCommitsPerDay float64           `json:"avg_commits_per_day"`
	TopContributor   string            `json:"top_contributor"`
	ContributorStats []ContributorStat `json:"contributor_stats"`
}

// AIIndicators groups every heuristic signal computed for one repository.
// Percentage-valued fields are expressed 0-100 with two-decimal rounding;
// the per-commit averages and the comment ratio are unbounded non-negative.
type AIIndicators struct {
	AvgLinesPerCommit         MetricResult[float64]           `json:"avg_lines_per_commit"`
	LargeCommitPercentage     MetricResult[float64]           `json:"large_commit_percentage"`
	FirstCommitAnalysis       MetricResult[FirstCommitDetail] `json:"first_commit_analysis"`
	AvgFilesPerCommit         MetricResult[float64]           `json:"avg_files_per_commit"`
	CommitMessagePatterns     MetricResult[float64]           `json:"commit_message_patterns"`
	BurstyCommitPercentage    MetricResult[float64]           `json:"bursty_commit_percentage"`
	TestFileRatio             MetricResult[float64]           `json:"test_file_ratio"`
	CodeCommentRatio          MetricResult[float64]           `json:"code_comment_ratio"`
	NonTypicalExpressionRatio MetricResult[float64]           `json:"non_typical_expression_ratio"`
}

// AnalysisResult is the full output of analyzing one repository.
type AnalysisResult struct {
	RepoPath   string       `json:"repo_path"`
	RepoURL    string       `json:"repo_url,omitempty"`
	AnalyzedAt time.Time    `json:"analyzed_at"`
	FilesRead  int          `json:"files_read"`
	Basic      BasicMetrics `json:"basic_metrics"`
	Indicators AIIndicators `json:"ai_indicators"`
}

// IndicatorRows flattens the indicator struct into name/value/description
// rows for tabular output and persistence. The first-commit detail is
// flattened to its line count; the suspicion flag lives in the description.
func (r *AnalysisResult) IndicatorRows() []IndicatorRecord {
	ind := r.Indicators
	return []IndicatorRecord{
		{Name: "avg_lines_per_commit", Value: ind.AvgLinesPerCommit.Value, Description: ind.AvgLinesPerCommit.Description},
		{Name: "large_commit_percentage", Value: ind.LargeCommitPercentage.Value, Description: ind.LargeCommitPercentage.Description},
		{Name: "first_commit_lines", Value: float64(ind.FirstCommitAnalysis.Value.Lines), Description: ind.FirstCommitAnalysis.Description},
		{Name: "avg_files_per_commit", Value: ind.AvgFilesPerCommit.Value, Description: ind.AvgFilesPerCommit.Description},
		{Name: "commit_message_patterns", Value: ind.CommitMessagePatterns.Value, Description: ind.CommitMessagePatterns.Description},
		{Name: "bursty_commit_percentage", Value: ind.BurstyCommitPercentage.Value, Description: ind.BurstyCommitPercentage.Description},
		{Name: "test_file_ratio", Value: ind.TestFileRatio.Value, Description: ind.TestFileRatio.Description},
		{Name: "code_comment_ratio", Value: ind.CodeCommentRatio.Value, Description: ind.CodeCommentRatio.Description},
		{Name: "non_typical_expression_ratio", Value: ind.NonTypicalExpressionRatio.Value, Description: ind.NonTypicalExpressionRatio.Description},
	}
}
