package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

func sampleRuns() []AnalysisRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1 * time.Hour)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"workers":4,"burst-window-minutes":30}`

	startTime2 := now.Add(-10 * time.Minute)
	// Second run has nil EndTime, RunDurationMs and ConfigParams to
	// exercise the nullable columns.

	return []AnalysisRun{
		{
			RunID:         1,
			RepoPath:      "/work/repo-one",
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			FilesRead:     150,
			ConfigParams:  &configParams1,
		},
		{
			RunID:     2,
			RepoPath:  "https://example.com/repo-two.git",
			StartTime: startTime2,
			FilesRead: 0,
		},
	}
}

func TestAnalysisRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(AnalysisRun))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"run_id",
		"repo_path",
		"start_time",
		"end_time",
		"run_duration_ms",
		"files_read",
		"config_params",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestIndicatorRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(IndicatorRecord))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"run_id",
		"name",
		"value",
		"description",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "runs.parquet")

	data := sampleRuns()

	err := WriteRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[AnalysisRun](file)
	defer reader.Close()

	readData := make([]AnalysisRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].RepoPath, readData[i].RepoPath, "RepoPath should match")
		assert.Equal(t, data[i].FilesRead, readData[i].FilesRead, "FilesRead should match")

		// Check nullable fields
		if data[i].EndTime == nil {
			assert.Nil(t, readData[i].EndTime, "EndTime should be nil")
		} else {
			require.NotNil(t, readData[i].EndTime, "EndTime should not be nil")
			assert.WithinDuration(t, *data[i].EndTime, *readData[i].EndTime, time.Nanosecond, "EndTime should match within nanosecond precision")
		}

		if data[i].RunDurationMs == nil {
			assert.Nil(t, readData[i].RunDurationMs, "RunDurationMs should be nil")
		} else {
			require.NotNil(t, readData[i].RunDurationMs, "RunDurationMs should not be nil")
			assert.Equal(t, *data[i].RunDurationMs, *readData[i].RunDurationMs, "RunDurationMs should match")
		}

		if data[i].ConfigParams == nil {
			assert.Nil(t, readData[i].ConfigParams, "ConfigParams should be nil")
		} else {
			require.NotNil(t, readData[i].ConfigParams, "ConfigParams should not be nil")
			assert.Equal(t, *data[i].ConfigParams, *readData[i].ConfigParams, "ConfigParams should match")
		}
	}
}

func TestWriteIndicatorsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "indicators.parquet")

	data := []IndicatorRecord{
		{RunID: 1, Name: "avg_lines_per_commit", Value: 39.25, Description: "Average commit touches 39.25 lines"},
		{RunID: 1, Name: "bursty_commit_percentage", Value: 66.67, Description: "66.67% of commit gaps fall under 30m0s"},
		{RunID: 2, Name: "test_file_ratio", Value: 12.5, Description: "12.50% of commits touch test files"},
	}

	err := WriteIndicatorsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[IndicatorRecord](file)
	defer reader.Close()

	readData := make([]IndicatorRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := 0; i < len(data); i++ {
		assert.Equal(t, data[i].RunID, readData[i].RunID, "RunID should match")
		assert.Equal(t, data[i].Name, readData[i].Name, "Name should match")
		assert.InDelta(t, data[i].Value, readData[i].Value, 0.001, "Value should match")
		assert.Equal(t, data[i].Description, readData[i].Description, "Description should match")
	}
}

func TestWriteRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_runs.parquet")

	err := WriteRunsParquet([]AnalysisRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteRunsParquet_InvalidPath(t *testing.T) {
	err := WriteRunsParquet(sampleRuns(), filepath.Join(t.TempDir(), "missing", "runs.parquet"))
	require.Error(t, err, "Writing to a nonexistent directory should fail")
}

func TestConvertRunRecords(t *testing.T) {
	now := time.Now()
	end := now.Add(2 * time.Second)
	durationMs := int32(2000)
	params := `{"workers":2}`

	records := []schema.RunRecord{
		{
			RunID:         7,
			RepoPath:      "/work/repo",
			StartTime:     now,
			EndTime:       &end,
			RunDurationMs: &durationMs,
			FilesRead:     42,
			ConfigParams:  &params,
		},
	}

	converted := ConvertRunRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, "/work/repo", converted[0].RepoPath)
	assert.Equal(t, int32(42), converted[0].FilesRead)
	require.NotNil(t, converted[0].EndTime)
	assert.Equal(t, end, *converted[0].EndTime)
}

func TestConvertIndicatorRecords(t *testing.T) {
	records := []schema.IndicatorRecord{
		{RunID: 7, Name: "code_comment_ratio", Value: 18.4, Description: "Comment lines are 18.40% of code lines"},
	}

	converted := ConvertIndicatorRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, int64(7), converted[0].RunID)
	assert.Equal(t, "code_comment_ratio", converted[0].Name)
	assert.InDelta(t, 18.4, converted[0].Value, 0.001)
}
