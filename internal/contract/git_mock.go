package contract

import (
	"context"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of GitClient for testing.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	callArgs := m.Called(ctx, repoPath, args)
	out, _ := callArgs.Get(0).([]byte)
	return out, callArgs.Error(1)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string) ([]schema.Commit, error) {
	args := m.Called(ctx, repoPath)
	commits, _ := args.Get(0).([]schema.Commit)
	return commits, args.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	args := m.Called(ctx, contextPath)
	return args.String(0), args.Error(1)
}

// GetRepoHash implements the GitClient interface.
func (m *MockGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	args := m.Called(ctx, repoPath)
	return args.String(0), args.Error(1)
}

// CloneRepository implements the GitClient interface.
func (m *MockGitClient) CloneRepository(ctx context.Context, url, destDir string) error {
	args := m.Called(ctx, url, destDir)
	return args.Error(0)
}
