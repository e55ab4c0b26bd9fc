package scan

import (
	"strings"
	"sync"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// LineCounts holds the classification totals for one file or one scan.
type LineCounts struct {
	CodeLines    int
	CommentLines int
}

// ClassifyLines performs a single forward pass over the lines of a file and
// counts code and comment lines according to the language's comment syntax.
// Empty and whitespace-only lines are ignored by both counters. A file with
// comments and zero code lines is a normal, valid result.
func ClassifyLines(lines []string, syntax CommentSyntax) LineCounts {
	var counts LineCounts
	inBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case !inBlock && syntax.HasBlock() && strings.Contains(trimmed, syntax.BlockStart):
			counts.CommentLines++
			// An inline block comment opens and closes on the same line.
			rest := trimmed[strings.Index(trimmed, syntax.BlockStart)+len(syntax.BlockStart):]
			if !strings.Contains(rest, syntax.BlockEnd) {
				inBlock = true
			}
		case inBlock:
			counts.CommentLines++
			if strings.Contains(trimmed, syntax.BlockEnd) {
				inBlock = false
			}
		case strings.HasPrefix(trimmed, syntax.LineMarker):
			counts.CommentLines++
		default:
			counts.CodeLines++
		}
	}

	return counts
}

// CommentDensityAnalyzer accumulates code and comment line totals across an
// entire scan. The comment ratio is comment/code*100, so a heavily
// documented tree can legitimately exceed 100.
type CommentDensityAnalyzer struct {
	table *SyntaxTable

	mu     sync.Mutex
	state  accumState
	totals LineCounts
}

// NewCommentDensityAnalyzer creates an analyzer over the given syntax table.
func NewCommentDensityAnalyzer(table *SyntaxTable) *CommentDensityAnalyzer {
	return &CommentDensityAnalyzer{table: table}
}

// Reset implements the Analyzer interface.
func (a *CommentDensityAnalyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.totals = LineCounts{}
	a.state = stateAccumulating
}

// SupportedExtensions implements the Analyzer interface.
func (a *CommentDensityAnalyzer) SupportedExtensions() []string {
	return a.table.SupportedExtensions()
}

// AnalyzeFile implements the Analyzer interface.
func (a *CommentDensityAnalyzer) AnalyzeFile(_ string, content string, ext string) {
	counts := ClassifyLines(strings.Split(content, "\n"), a.table.SyntaxFor(ext))

	a.mu.Lock()
	defer a.mu.Unlock()
	a.totals.CodeLines += counts.CodeLines
	a.totals.CommentLines += counts.CommentLines
}

// Result returns the accumulated line counts.
func (a *CommentDensityAnalyzer) Result() LineCounts {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = stateFinalized
	return a.totals
}

// Ratio returns the comment-to-code ratio as a percentage, rounded to two
// decimals. The ratio is 0 by convention when no code lines were seen,
// never a division by zero.
func (a *CommentDensityAnalyzer) Ratio() float64 {
	totals := a.Result()
	if totals.CodeLines == 0 {
		return 0
	}
	return schema.RoundTwo(float64(totals.CommentLines) / float64(totals.CodeLines) * 100)
}
