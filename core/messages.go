package core

import (
	"regexp"
	"strings"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// Message shapes that read as templated or machine-generated.
var templatedMessageRes = []*regexp.Regexp{
	// Conventional-commit prefix, with or without a scope.
	regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\([^)]*\))?:`),
	// Past-tense verb openers ("Added ", "Updated ", ...).
	regexp.MustCompile(`^(Added|Updated|Fixed|Removed|Changed|Improved|Refactored|Implemented|Created|Deleted) `),
	regexp.MustCompile(`(?i)^initial commit`),
	// Merge preamble produced by git itself.
	regexp.MustCompile(`^Merge (branch|pull request|remote-tracking branch) `),
}

// genericMessages are maximally generic one-word subjects, lowercase.
var genericMessages = map[string]struct{}{
	"update":         {},
	"updates":        {},
	"fix":            {},
	"changes":        {},
	"initial commit": {},
}

// IsTemplatedMessage reports whether a commit subject matches one of the
// templated shapes or equals a generic string (trimmed, case-insensitive).
func IsTemplatedMessage(message string) bool {
	trimmed := strings.TrimSpace(message)
	for _, re := range templatedMessageRes {
		if re.MatchString(trimmed) {
			return true
		}
	}
	_, ok := genericMessages[strings.ToLower(trimmed)]
	return ok
}

// MessagePatternPercentage returns the share of commits whose message is
// classified as templated, 0 for an empty log.
func MessagePatternPercentage(commits []schema.Commit) float64 {
	templated := 0
	for _, c := range commits {
		if IsTemplatedMessage(c.Message) {
			templated++
		}
	}
	return schema.Percentage(templated, len(commits))
}
