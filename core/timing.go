package core

import (
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// BurstyPercentage classifies each commit after the first as bursty when it
// lands strictly within the burst window of its predecessor. With fewer than
// two commits there are no transitions and the result is 0.
func BurstyPercentage(commits []schema.Commit, th schema.Thresholds) float64 {
	if len(commits) < 2 {
		return 0
	}

	sorted := sortedByTime(commits)
	bursty := 0
	for i := 1; i < len(sorted); i++ {
		delta := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp)
		// A gap of exactly the window length does not count.
		if delta < th.BurstWindow {
			bursty++
		}
	}
	return schema.Percentage(bursty, len(sorted)-1)
}
