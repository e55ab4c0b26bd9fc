package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// commitAt builds a test commit with the given identity, churn and timestamp.
func commitAt(email, name string, ts time.Time, insertions, deletions int, files ...string) schema.Commit {
	return schema.Commit{
		Hash:         email + ts.Format(time.RFC3339Nano),
		AuthorName:   name,
		AuthorEmail:  email,
		Timestamp:    ts,
		Message:      "work in progress",
		FilesChanged: len(files),
		Insertions:   insertions,
		Deletions:    deletions,
		Files:        files,
	}
}

func TestBasicMetricsEmpty(t *testing.T) {
	got := BasicMetrics(nil)
	assert.Zero(t, got.TotalCommits)
	assert.Zero(t, got.Contributors)
	assert.Zero(t, got.DurationDays)
	assert.Zero(t, got.AvgCommitsPerDay)
	assert.Empty(t, got.TopContributor)
}

func TestBasicMetricsThreeCommitScenario(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	commits := []schema.Commit{
		commitAt("a@example.com", "Alice", day1, 50, 10, "main.go"),
		commitAt("b@example.com", "Bob", day1.AddDate(0, 0, 1), 30, 5, "util.go"),
		commitAt("a@example.com", "Alice", day1.AddDate(0, 0, 2), 20, 2, "main.go"),
	}

	got := BasicMetrics(commits)

	assert.Equal(t, 3, got.TotalCommits)
	assert.Equal(t, 2, got.Contributors)
	assert.Equal(t, 2, got.DurationDays)
	assert.InDelta(t, 1.5, got.AvgCommitsPerDay, 0.001)
	assert.Equal(t, "a@example.com", got.TopContributor)

	require.Len(t, got.ContributorStats, 2)
	assert.Equal(t, schema.ContributorStat{Email: "a@example.com", Name: "Alice", Commits: 2}, got.ContributorStats[0])
	assert.Equal(t, schema.ContributorStat{Email: "b@example.com", Name: "Bob", Commits: 1}, got.ContributorStats[1])
}

func TestBasicMetricsUnsortedInput(t *testing.T) {
	day1 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	commits := []schema.Commit{
		commitAt("a@example.com", "Alice", day1.AddDate(0, 0, 3), 5, 0),
		commitAt("a@example.com", "Alice", day1, 5, 0),
	}

	got := BasicMetrics(commits)
	assert.Equal(t, day1, got.FirstCommit)
	assert.Equal(t, day1.AddDate(0, 0, 3), got.LastCommit)
	assert.Equal(t, 3, got.DurationDays)
}

func TestBasicMetricsSameDayCommits(t *testing.T) {
	ts := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	commits := []schema.Commit{
		commitAt("a@example.com", "Alice", ts, 5, 0),
		commitAt("a@example.com", "Alice", ts.Add(10*time.Minute), 5, 0),
	}

	got := BasicMetrics(commits)
	// Under a day rounds up to one
	assert.Equal(t, 1, got.DurationDays)
	assert.InDelta(t, 2.0, got.AvgCommitsPerDay, 0.001)
}

func TestBasicMetricsZeroDuration(t *testing.T) {
	ts := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	commits := []schema.Commit{commitAt("a@example.com", "Alice", ts, 5, 0)}

	got := BasicMetrics(commits)
	assert.Equal(t, 0, got.DurationDays)
	assert.Zero(t, got.AvgCommitsPerDay)
}

func TestContributorStatsTieKeepsFirstSeenOrder(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	commits := []schema.Commit{
		commitAt("b@example.com", "Bob", day1, 1, 0),
		commitAt("a@example.com", "Alice", day1.Add(time.Hour), 1, 0),
	}

	got := BasicMetrics(commits)
	require.Len(t, got.ContributorStats, 2)
	// Equal commit counts: Bob was seen first and stays first
	assert.Equal(t, "b@example.com", got.ContributorStats[0].Email)
	assert.Equal(t, "b@example.com", got.TopContributor)
}
