package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitLog(t *testing.T) {
	raw := "@@COMMIT@@abc123|Alice|alice@example.com|2024-01-01T12:00:00+00:00|feat: add parser\n" +
		"10\t2\tsrc/parser.go\n" +
		"5\t0\tsrc/parser_test.go\n" +
		"\n" +
		"@@COMMIT@@def456|Bob|bob@example.com|2024-01-02T09:30:00+02:00|update\n" +
		"-\t-\tassets/logo.png\n" +
		"3\t1\tREADME.md\n"

	commits, err := ParseCommitLog(raw)
	require.NoError(t, err)
	require.Len(t, commits, 2)

	first := commits[0]
	assert.Equal(t, "abc123", first.Hash)
	assert.Equal(t, "Alice", first.AuthorName)
	assert.Equal(t, "alice@example.com", first.AuthorEmail)
	assert.Equal(t, "feat: add parser", first.Message)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), first.Timestamp.UTC())
	assert.Equal(t, 15, first.Insertions)
	assert.Equal(t, 2, first.Deletions)
	assert.Equal(t, 2, first.FilesChanged)
	assert.Equal(t, []string{"src/parser.go", "src/parser_test.go"}, first.Files)

	second := commits[1]
	assert.Equal(t, "def456", second.Hash)
	// Binary rows count as changed files but contribute no line churn
	assert.Equal(t, 2, second.FilesChanged)
	assert.Equal(t, 3, second.Insertions)
	assert.Equal(t, 1, second.Deletions)
}

func TestParseCommitLogMessageWithPipes(t *testing.T) {
	raw := "@@COMMIT@@abc|Alice|alice@example.com|2024-01-01T12:00:00+00:00|fix: handle a|b|c case\n" +
		"1\t0\tmain.go\n"

	commits, err := ParseCommitLog(raw)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "fix: handle a|b|c case", commits[0].Message)
}

func TestParseCommitLogEmpty(t *testing.T) {
	commits, err := ParseCommitLog("")
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestParseCommitLogMalformedHeader(t *testing.T) {
	_, err := ParseCommitLog("@@COMMIT@@abc|Alice|nope\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed commit header")
}

func TestParseCommitLogMalformedTimestamp(t *testing.T) {
	_, err := ParseCommitLog("@@COMMIT@@abc|Alice|alice@example.com|yesterday|msg\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed commit timestamp")
}

func TestParseCommitLogCommitWithoutFiles(t *testing.T) {
	raw := "@@COMMIT@@abc|Alice|alice@example.com|2024-01-01T12:00:00+00:00|Merge branch 'main' into develop\n"

	commits, err := ParseCommitLog(raw)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Zero(t, commits[0].FilesChanged)
	assert.Empty(t, commits[0].Files)
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, IsRemoteURL("https://github.com/org/repo.git"))
	assert.True(t, IsRemoteURL("http://internal.host/repo.git"))
	assert.True(t, IsRemoteURL("git@github.com:org/repo.git"))
	assert.True(t, IsRemoteURL("ssh://git@host/repo.git"))

	assert.False(t, IsRemoteURL("."))
	assert.False(t, IsRemoteURL("/home/user/repo"))
	assert.False(t, IsRemoteURL("../sibling"))
}
