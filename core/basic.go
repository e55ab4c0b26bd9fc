package core

import (
	"math"
	"slices"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// BasicMetrics aggregates general repository statistics from the commit log.
// The input order is not assumed; commits are sorted by timestamp internally.
func BasicMetrics(commits []schema.Commit) schema.BasicMetrics {
	if len(commits) == 0 {
		return schema.BasicMetrics{}
	}

	sorted := sortedByTime(commits)
	first := sorted[0].Timestamp
	last := sorted[len(sorted)-1].Timestamp

	durationDays := int(math.Ceil(last.Sub(first).Hours() / 24))

	// All commits on the same day yield zero duration and a zero cadence.
	avgPerDay := 0.0
	if durationDays > 0 {
		avgPerDay = schema.RoundTwo(float64(len(commits)) / float64(durationDays))
	}

	stats := contributorStats(sorted)
	top := ""
	if len(stats) > 0 {
		top = stats[0].Email
	}

	return schema.BasicMetrics{
		TotalCommits:     len(commits),
		Contributors:     len(stats),
		FirstCommit:      first,
		LastCommit:       last,
		DurationDays:     durationDays,
		AvgCommitsPerDay: avgPerDay,
		TopContributor:   top,
		ContributorStats: stats,
	}
}

// contributorStats groups commits by author email and orders the result by
// descending commit count. Ties keep the order in which an email was first seen.
func contributorStats(commits []schema.Commit) []schema.ContributorStat {
	index := make(map[string]int)
	var stats []schema.ContributorStat

	for _, c := range commits {
		if i, ok := index[c.AuthorEmail]; ok {
			stats[i].Commits++
			continue
		}
		index[c.AuthorEmail] = len(stats)
		stats = append(stats, schema.ContributorStat{
			Email:   c.AuthorEmail,
			Name:    c.AuthorName,
			Commits: 1,
		})
	}

	slices.SortStableFunc(stats, func(a, b schema.ContributorStat) int {
		return b.Commits - a.Commits
	})
	return stats
}

// sortedByTime returns a copy of commits in ascending timestamp order.
// The input slice is treated as a read-only snapshot.
func sortedByTime(commits []schema.Commit) []schema.Commit {
	sorted := slices.Clone(commits)
	slices.SortStableFunc(sorted, func(a, b schema.Commit) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}
