// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// GitClient defines the Git operations needed to feed the analysis engine.
// This allows the core logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetCommitLog returns parsed commit metadata for the whole history,
	// oldest first is not guaranteed; callers sort where needed.
	GetCommitLog(ctx context.Context, repoPath string) ([]schema.Commit, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// CloneRepository clones a remote URL into destDir.
	CloneRepository(ctx context.Context, url, destDir string) error
}

// StoreManager hands out the run store. It exists so the persistence layer
// can be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}

// RunStore persists analysis runs and their indicator values.
type RunStore interface {
	// BeginRun creates a new run row and returns its unique ID.
	BeginRun(startTime time.Time, repoPath string, configParams map[string]any) (int64, error)

	// FinishRun updates the run with completion data.
	FinishRun(runID int64, endTime time.Time, filesRead int) error

	// RecordIndicator stores a single indicator value for a run.
	RecordIndicator(runID int64, name string, value float64, description string) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// GetAllRuns retrieves every persisted run.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllIndicators retrieves every persisted indicator record.
	GetAllIndicators() ([]schema.IndicatorRecord, error)

	// Close closes the underlying connection.
	Close() error
}
