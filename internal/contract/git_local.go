package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// commitDelimiter marks the start of a commit record in the log output.
// It cannot appear in a subject line because subjects are single-line.
const commitDelimiter = "@@COMMIT@@"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its standard output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetCommitLog implements the GitClient interface.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath string) ([]schema.Commit, error) {
	args := []string{
		"log",
		"--numstat",
		"--pretty=format:" + commitDelimiter + "%H|%an|%ae|%ad|%s",
		"--date=iso-strict",
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return ParseCommitLog(string(out))
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetRepoHash implements the GitClient interface.
func (c *LocalGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CloneRepository implements the GitClient interface.
func (c *LocalGitClient) CloneRepository(ctx context.Context, url, destDir string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", "--quiet", url, destDir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to clone %q: %s", url, strings.TrimSpace(string(out)))
	}
	return nil
}

// ParseCommitLog parses delimiter-framed 'git log --numstat' output into
// commit records. Exported for direct testing against captured log text.
func ParseCommitLog(raw string) ([]schema.Commit, error) {
	var commits []schema.Commit

	blocks := strings.Split(raw, commitDelimiter)
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		header := strings.SplitN(lines[0], "|", 5)
		if len(header) != 5 {
			return nil, fmt.Errorf("malformed commit header: %q", lines[0])
		}

		ts, err := time.Parse(time.RFC3339, header[3])
		if err != nil {
			return nil, fmt.Errorf("malformed commit timestamp %q: %w", header[3], err)
		}

		commit := schema.Commit{
			Hash:        header[0],
			AuthorName:  header[1],
			AuthorEmail: header[2],
			Timestamp:   ts,
			Message:     header[4],
		}

		// Remaining lines are numstat rows: "<added>\t<deleted>\t<path>".
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			fields := strings.SplitN(line, "\t", 3)
			if len(fields) != 3 {
				continue
			}
			// Binary files report "-" for both counters.
			if added, err := strconv.Atoi(fields[0]); err == nil {
				commit.Insertions += added
			}
			if deleted, err := strconv.Atoi(fields[1]); err == nil {
				commit.Deletions += deleted
			}
			commit.FilesChanged++
			commit.Files = append(commit.Files, fields[2])
		}

		commits = append(commits, commit)
	}

	return commits, nil
}

// IsRemoteURL reports whether the analysis target is a remote repository
// rather than a local path.
func IsRemoteURL(target string) bool {
	return strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "git@") ||
		strings.HasPrefix(target, "ssh://")
}
