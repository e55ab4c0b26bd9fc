package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// validRawInput returns raw inputs equivalent to the default flag values.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		RepoTargetStr: ".",
		Output:        "text",
		Workers:       4,
		Color:         "yes",
		StoreBackend:  "sqlite",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	client := &MockGitClient{}
	client.On("GetRepoRoot", mock.Anything, ".").Return("/resolved/root", nil)

	cfg := &Config{}
	err := ProcessAndValidate(context.Background(), cfg, client, validRawInput())
	require.NoError(t, err)

	assert.Equal(t, "/resolved/root", cfg.RepoPath)
	assert.Empty(t, cfg.RepoURL)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.Equal(t, schema.DefaultThresholds(), cfg.Thresholds)
	client.AssertExpectations(t)
}

func TestProcessAndValidateRemoteTarget(t *testing.T) {
	client := &MockGitClient{} // GetRepoRoot must not be called
	input := validRawInput()
	input.RepoTargetStr = "https://github.com/org/repo.git"

	cfg := &Config{}
	err := ProcessAndValidate(context.Background(), cfg, client, input)
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/org/repo.git", cfg.RepoURL)
	assert.Empty(t, cfg.RepoPath)
	client.AssertExpectations(t)
}

func TestProcessAndValidateEmptyTargetDefaultsToCwd(t *testing.T) {
	client := &MockGitClient{}
	client.On("GetRepoRoot", mock.Anything, ".").Return("/cwd/root", nil)

	input := validRawInput()
	input.RepoTargetStr = ""

	cfg := &Config{}
	err := ProcessAndValidate(context.Background(), cfg, client, input)
	require.NoError(t, err)
	assert.Equal(t, "/cwd/root", cfg.RepoPath)
}

func TestProcessAndValidateRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantErr string
	}{
		{
			name:    "zero workers",
			mutate:  func(in *ConfigRawInput) { in.Workers = 0 },
			wantErr: "workers must be greater than 0",
		},
		{
			name:    "unknown output mode",
			mutate:  func(in *ConfigRawInput) { in.Output = "yaml" },
			wantErr: "invalid output format",
		},
		{
			name:    "parquet without output file",
			mutate:  func(in *ConfigRawInput) { in.Output = "parquet" },
			wantErr: "--output-file is required",
		},
		{
			name:    "unknown store backend",
			mutate:  func(in *ConfigRawInput) { in.StoreBackend = "oracle" },
			wantErr: "invalid store backend",
		},
		{
			name:    "mysql without connection string",
			mutate:  func(in *ConfigRawInput) { in.StoreBackend = "mysql" },
			wantErr: "store-db-connect is required",
		},
		{
			name:    "bad color value",
			mutate:  func(in *ConfigRawInput) { in.Color = "maybe" },
			wantErr: "invalid --color value",
		},
		{
			name:    "negative burst window",
			mutate:  func(in *ConfigRawInput) { in.BurstWindowMinutes = -5 },
			wantErr: "burst-window-minutes cannot be negative",
		},
		{
			name:    "negative large commit factor",
			mutate:  func(in *ConfigRawInput) { in.LargeCommitFactor = -1 },
			wantErr: "large-commit-factor cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockGitClient{}
			client.On("GetRepoRoot", mock.Anything, mock.Anything).Return("/root", nil).Maybe()

			input := validRawInput()
			tt.mutate(input)

			err := ProcessAndValidate(context.Background(), &Config{}, client, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProcessThresholdOverrides(t *testing.T) {
	client := &MockGitClient{}
	client.On("GetRepoRoot", mock.Anything, mock.Anything).Return("/root", nil)

	input := validRawInput()
	input.BurstWindowMinutes = 10
	input.LargeCommitFactor = 3.5
	input.FirstCommitLines = 2000

	cfg := &Config{}
	err := ProcessAndValidate(context.Background(), cfg, client, input)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.Thresholds.BurstWindow)
	assert.InDelta(t, 3.5, cfg.Thresholds.LargeCommitStdDevFactor, 0.001)
	assert.Equal(t, 2000, cfg.Thresholds.FirstCommitAbsoluteLines)
	// Untouched knobs keep their defaults
	assert.Equal(t, schema.DefaultLargeCommitAbsoluteLines, cfg.Thresholds.LargeCommitAbsoluteLines)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))

	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/runs"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost/runs"))

	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 dbname=runs"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{RepoPath: "/repo", Workers: 8}
	clone := cfg.Clone()
	clone.Workers = 1

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "/repo", clone.RepoPath)
}
