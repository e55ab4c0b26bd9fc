// Package parquet provides data structures and functions for exporting
// stored analysis runs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the ai_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// RepoPath is the repository path or URL that was analyzed
	RepoPath string `parquet:"repo_path,snappy"`

	// StartTime is when the analysis began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// FilesRead is the number of working tree files read in this run
	FilesRead int32 `parquet:"files_read,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// IndicatorRecord represents one computed indicator value for an analysis run.
// This struct maps to the ai_indicator_records database table.
type IndicatorRecord struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// Name identifies the indicator, e.g. bursty_commit_percentage
	Name string `parquet:"name,snappy"`

	// Value is the computed indicator value
	Value float64 `parquet:"value,snappy"`

	// Description is the human-readable summary of the indicator
	Description string `parquet:"description,snappy"`
}

// WriteRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteRunsParquet(data []AnalysisRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteIndicatorsParquet writes a slice of IndicatorRecord structs to a Parquet file.
func WriteIndicatorsParquet(data []IndicatorRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the IndicatorRecord struct tags
	writer := parquet.NewGenericWriter[IndicatorRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to AnalysisRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:         record.RunID,
			RepoPath:      record.RepoPath,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			FilesRead:     record.FilesRead,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertIndicatorRecords converts schema.IndicatorRecord to IndicatorRecord for Parquet export.
func ConvertIndicatorRecords(records []schema.IndicatorRecord) []IndicatorRecord {
	result := make([]IndicatorRecord, len(records))
	for i, record := range records {
		result[i] = IndicatorRecord{
			RunID:       record.RunID,
			Name:        record.Name,
			Value:       record.Value,
			Description: record.Description,
		}
	}
	return result
}
