package schema

import "time"

// StoreStatus summarizes the state of the analysis-run store.
type StoreStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalRuns      int64            `json:"total_runs"`
	LastRunID      int64            `json:"last_run_id,omitempty"`
	LastRunTime    time.Time        `json:"last_run_time,omitzero"`
	OldestRunTime  time.Time        `json:"oldest_run_time,omitzero"`
	TotalFilesRead int64            `json:"total_files_read"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}

// RunRecord is one persisted analysis run. Pointer fields are nullable
// columns: a run that never finished has no end time or duration.
type RunRecord struct {
	RunID         int64      `json:"run_id"`
	RepoPath      string     `json:"repo_path"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	RunDurationMs *int32     `json:"run_duration_ms,omitempty"`
	FilesRead     int32      `json:"files_read"`
	ConfigParams  *string    `json:"config_params,omitempty"`
}

// IndicatorRecord is one persisted indicator value belonging to a run.
type IndicatorRecord struct {
	RunID       int64   `json:"run_id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}
