package core

import (
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
	"gonum.org/v1/gonum/stat"
)

// SizeStats holds the commit-size signals derived from line churn.
type SizeStats struct {
	AvgLinesPerCommit     float64
	LargeCommitPercentage float64
	FirstCommit           schema.FirstCommitDetail
	AvgFilesPerCommit     float64
}

// SizeMetrics computes churn averages, the large-commit outlier percentage
// and the first-commit suspicion flag. Pure function of its inputs.
func SizeMetrics(commits []schema.Commit, th schema.Thresholds) SizeStats {
	if len(commits) == 0 {
		return SizeStats{}
	}

	lineTotals := make([]float64, len(commits))
	fileTotals := make([]float64, len(commits))
	for i, c := range commits {
		lineTotals[i] = float64(c.TotalLines())
		fileTotals[i] = float64(c.FilesChanged)
	}

	mean := stat.Mean(lineTotals, nil)
	stdDev := stat.PopStdDev(lineTotals, nil)

	// A commit is large when it is a statistical outlier OR crosses the
	// absolute churn threshold, whichever fires first.
	large := 0
	cutoff := mean + th.LargeCommitStdDevFactor*stdDev
	for _, total := range lineTotals {
		if total > cutoff || total > float64(th.LargeCommitAbsoluteLines) {
			large++
		}
	}

	return SizeStats{
		AvgLinesPerCommit:     schema.RoundTwo(mean),
		LargeCommitPercentage: schema.Percentage(large, len(commits)),
		FirstCommit:           firstCommitAnalysis(commits, th),
		AvgFilesPerCommit:     schema.RoundTwo(stat.Mean(fileTotals, nil)),
	}
}

// firstCommitAnalysis flags a chronologically earliest commit that dumps an
// unusually large amount of code into the repository at once.
func firstCommitAnalysis(commits []schema.Commit, th schema.Thresholds) schema.FirstCommitDetail {
	if len(commits) == 0 {
		return schema.FirstCommitDetail{}
	}

	sorted := sortedByTime(commits)
	first := sorted[0]
	lines := first.TotalLines()

	if len(sorted) == 1 {
		return schema.FirstCommitDetail{
			Lines:        lines,
			IsSuspicious: lines > th.FirstCommitSoloThreshold,
		}
	}

	rest := make([]float64, 0, len(sorted)-1)
	for _, c := range sorted[1:] {
		rest = append(rest, float64(c.TotalLines()))
	}
	restMean := stat.Mean(rest, nil)

	suspicious := float64(lines) > th.FirstCommitMeanMultiplier*restMean ||
		lines > th.FirstCommitAbsoluteLines
	return schema.FirstCommitDetail{Lines: lines, IsSuspicious: suspicious}
}
