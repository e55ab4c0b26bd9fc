package core

import (
	"strings"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// IsTestPath reports whether a changed-file path looks like a test artifact.
// Matching is case-insensitive on the forward-slash form of the path.
func IsTestPath(path string) bool {
	p := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))
	if strings.Contains(p, ".test.") || strings.Contains(p, ".spec.") {
		return true
	}
	if strings.Contains(p, "__tests__/") {
		return true
	}
	segments := strings.Split(p, "/")
	for _, segment := range segments[:len(segments)-1] {
		if segment == "test" || segment == "tests" {
			return true
		}
	}
	return false
}

// TestFileRatio returns the share of commits touching at least one test
// file, 0 for an empty log.
func TestFileRatio(commits []schema.Commit) float64 {
	withTests := 0
	for _, c := range commits {
		for _, f := range c.Files {
			if IsTestPath(f) {
				withTests++
				break
			}
		}
	}
	return schema.Percentage(withTests, len(commits))
}
