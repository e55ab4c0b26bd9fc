package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearStore_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("not a real db"), 0o644))

	err := ClearStore(schema.SQLiteBackend, dbPath, "")
	assert.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-missing file is fine
	err = ClearStore(schema.SQLiteBackend, dbPath, "")
	assert.NoError(t, err)
}

func TestClearStore_SQLiteEmptyPath(t *testing.T) {
	err := ClearStore(schema.SQLiteBackend, "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dbFilePath")
}

func TestClearStore_NoneBackend(t *testing.T) {
	err := ClearStore(schema.NoneBackend, "", "")
	assert.NoError(t, err)
}

func TestClearStore_UnsupportedBackend(t *testing.T) {
	err := ClearStore(schema.DatabaseBackend("oracle"), "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func sampleAnalysisResult() *schema.AnalysisResult {
	return &schema.AnalysisResult{
		RepoPath:   "/test/repo",
		AnalyzedAt: time.Now().Add(-time.Second),
		FilesRead:  12,
		Indicators: schema.AIIndicators{
			AvgLinesPerCommit:         schema.MetricResult[float64]{Value: 39.25, Description: "Average lines changed per commit"},
			LargeCommitPercentage:     schema.MetricResult[float64]{Value: 25, Description: "Share of oversized commits"},
			FirstCommitAnalysis:       schema.MetricResult[schema.FirstCommitDetail]{Value: schema.FirstCommitDetail{Lines: 120}, Description: "First commit size"},
			AvgFilesPerCommit:         schema.MetricResult[float64]{Value: 2.5, Description: "Average files touched per commit"},
			CommitMessagePatterns:     schema.MetricResult[float64]{Value: 75, Description: "Share of templated commit messages"},
			BurstyCommitPercentage:    schema.MetricResult[float64]{Value: 66.67, Description: "Share of rapid-fire commits"},
			TestFileRatio:             schema.MetricResult[float64]{Value: 50, Description: "Share of test files"},
			CodeCommentRatio:          schema.MetricResult[float64]{Value: 18.4, Description: "Comment lines per 100 code lines"},
			NonTypicalExpressionRatio: schema.MetricResult[float64]{Value: 10, Description: "Files avoiding typical control flow"},
		},
	}
}

func TestRecordAnalysis(t *testing.T) {
	result := sampleAnalysisResult()
	params := map[string]any{"workers": 4}

	mockStore := &MockRunStore{}
	mockStore.On("BeginRun", result.AnalyzedAt, "/test/repo", params).Return(int64(7), nil)
	mockStore.On("RecordIndicator", int64(7), mock.AnythingOfType("string"), mock.AnythingOfType("float64"), mock.AnythingOfType("string")).Return(nil)
	mockStore.On("FinishRun", int64(7), mock.AnythingOfType("time.Time"), 12).Return(nil)

	mgr := &MockStoreManager{}
	mgr.On("GetRunStore").Return(mockStore)

	err := RecordAnalysis(mgr, result, params)
	assert.NoError(t, err)

	// One row per indicator
	mockStore.AssertNumberOfCalls(t, "RecordIndicator", len(result.IndicatorRows()))
	mockStore.AssertExpectations(t)
	mgr.AssertExpectations(t)
}

func TestRecordAnalysis_NilStore(t *testing.T) {
	mgr := &MockStoreManager{}
	mgr.On("GetRunStore").Return(nil)

	err := RecordAnalysis(mgr, sampleAnalysisResult(), nil)
	assert.NoError(t, err)
}

func TestRecordAnalysis_BeginRunError(t *testing.T) {
	mockStore := &MockRunStore{}
	mockStore.On("BeginRun", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("db locked"))

	mgr := &MockStoreManager{}
	mgr.On("GetRunStore").Return(mockStore)

	err := RecordAnalysis(mgr, sampleAnalysisResult(), nil)
	assert.Error(t, err)
	mockStore.AssertNotCalled(t, "RecordIndicator")
	mockStore.AssertNotCalled(t, "FinishRun")
}

func TestRecordAnalysis_IndicatorError(t *testing.T) {
	mockStore := &MockRunStore{}
	mockStore.On("BeginRun", mock.Anything, mock.Anything, mock.Anything).Return(int64(3), nil)
	mockStore.On("RecordIndicator", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	mgr := &MockStoreManager{}
	mgr.On("GetRunStore").Return(mockStore)

	err := RecordAnalysis(mgr, sampleAnalysisResult(), nil)
	assert.Error(t, err)
	mockStore.AssertNotCalled(t, "FinishRun")
}

func TestRecordAnalysis_EndToEnd(t *testing.T) {
	// Against a real SQLite store instead of mocks
	runs, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = runs.Close() }()

	mgr := &RunStoreManager{runs: runs}
	result := sampleAnalysisResult()

	require.NoError(t, RecordAnalysis(mgr, result, map[string]any{"workers": 2}))

	stored, err := runs.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "/test/repo", stored[0].RepoPath)
	assert.Equal(t, int32(12), stored[0].FilesRead)
	require.NotNil(t, stored[0].RunDurationMs)
	assert.GreaterOrEqual(t, *stored[0].RunDurationMs, int32(0))

	indicators, err := runs.GetAllIndicators()
	require.NoError(t, err)
	assert.Len(t, indicators, len(result.IndicatorRows()))
}
