package schema

import "time"

// Thresholds collects every tunable knob of the detection heuristics.
// The zero value is not usable; start from DefaultThresholds and override.
type Thresholds struct {
	// LargeCommitStdDevFactor is the z-score multiplier k: a commit is a
	// statistical outlier when its churn exceeds mean + k*stddev.
	LargeCommitStdDevFactor float64

	// LargeCommitAbsoluteLines flags a commit as large regardless of the
	// distribution once its churn exceeds this line count.
	LargeCommitAbsoluteLines int

	// FirstCommitSoloThreshold applies when the repository has exactly one
	// commit: that commit is suspicious above this churn.
	FirstCommitSoloThreshold int

	// FirstCommitMeanMultiplier flags the first commit when its churn
	// exceeds this multiple of the mean churn of all later commits.
	FirstCommitMeanMultiplier float64

	// FirstCommitAbsoluteLines flags the first commit above this churn
	// independent of the rest of the history.
	FirstCommitAbsoluteLines int

	// BurstWindow is the maximum gap between two commits for the later one
	// to count as bursty. A gap exactly equal to the window is not bursty.
	BurstWindow time.Duration
}

// Default threshold values. Exposed so flag help texts can reference them.
const (
	DefaultLargeCommitStdDevFactor   = 2.0
	DefaultLargeCommitAbsoluteLines  = 500
	DefaultFirstCommitSoloThreshold  = 500
	DefaultFirstCommitMeanMultiplier = 3.0
	DefaultFirstCommitAbsoluteLines  = 1000
	DefaultBurstWindowMinutes        = 30
)

// DefaultThresholds returns the documented default tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LargeCommitStdDevFactor:   DefaultLargeCommitStdDevFactor,
		LargeCommitAbsoluteLines:  DefaultLargeCommitAbsoluteLines,
		FirstCommitSoloThreshold:  DefaultFirstCommitSoloThreshold,
		FirstCommitMeanMultiplier: DefaultFirstCommitMeanMultiplier,
		FirstCommitAbsoluteLines:  DefaultFirstCommitAbsoluteLines,
		BurstWindow:               DefaultBurstWindowMinutes * time.Minute,
	}
}
