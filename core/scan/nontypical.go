package scan

import (
	"regexp"
	"sync"

	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// String literal patterns, one per quote kind. Masking keeps the quotes and
// drops the span so that control-flow keywords inside literals cannot match.
// This is a regex approximation: nested or unbalanced escape sequences are
// not handled perfectly, which is an accepted precision tradeoff.
var (
	doubleQuotedRe = regexp.MustCompile(`"(?:\\.|[^"\\])*"`)
	singleQuotedRe = regexp.MustCompile(`'(?:\\.|[^'\\])*'`)
	backQuotedRe   = regexp.MustCompile("(?s)`[^`]*`")
)

// Traditional C-family control-flow constructs. Case-sensitive by design:
// languages without these spellings (e.g. Python) simply never match.
var nonTypicalRes = []*regexp.Regexp{
	regexp.MustCompile(`\bfor\s*\(`),
	regexp.MustCompile(`\bwhile\s*\(`),
	regexp.MustCompile(`\bdo\s*\{`),
	regexp.MustCompile(`\bswitch\s*\(`),
}

// maskStringLiterals replaces quoted spans with an empty literal of the
// same quote kind.
func maskStringLiterals(content string) string {
	content = doubleQuotedRe.ReplaceAllString(content, `""`)
	content = singleQuotedRe.ReplaceAllString(content, `''`)
	content = backQuotedRe.ReplaceAllString(content, "``")
	return content
}

// stripComments removes block comment spans and single-line comment
// suffixes according to the language's syntax.
func stripComments(content string, syntax CommentSyntax) string {
	if syntax.HasBlock() {
		blockRe := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(syntax.BlockStart) + `.*?` + regexp.QuoteMeta(syntax.BlockEnd))
		content = blockRe.ReplaceAllString(content, "")
	}
	lineRe := regexp.MustCompile(`(?m)` + regexp.QuoteMeta(syntax.LineMarker) + `.*$`)
	return lineRe.ReplaceAllString(content, "")
}

// HasNonTypicalConstruct reports whether the file contains a traditional
// for/while/do/switch construct outside of strings and comments. Strings
// are masked before comments are stripped so a comment marker inside a
// literal cannot swallow real code.
func HasNonTypicalConstruct(content string, syntax CommentSyntax) bool {
	cleaned := stripComments(maskStringLiterals(content), syntax)
	for _, re := range nonTypicalRes {
		if re.MatchString(cleaned) {
			return true
		}
	}
	return false
}

// NonTypicalExprAnalyzer counts the fraction of scanned files that contain
// at least one traditional control-flow construct. Multiple constructs in
// one file count once.
type NonTypicalExprAnalyzer struct {
	table *SyntaxTable

	mu         sync.Mutex
	state      accumState
	matched    int
	totalFiles int
}

// NewNonTypicalExprAnalyzer creates an analyzer over the given syntax table.
func NewNonTypicalExprAnalyzer(table *SyntaxTable) *NonTypicalExprAnalyzer {
	return &NonTypicalExprAnalyzer{table: table}
}

// Reset implements the Analyzer interface.
func (a *NonTypicalExprAnalyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.matched = 0
	a.totalFiles = 0
	a.state = stateAccumulating
}

// SupportedExtensions implements the Analyzer interface.
func (a *NonTypicalExprAnalyzer) SupportedExtensions() []string {
	return a.table.SupportedExtensions()
}

// AnalyzeFile implements the Analyzer interface.
func (a *NonTypicalExprAnalyzer) AnalyzeFile(_ string, content string, ext string) {
	found := HasNonTypicalConstruct(content, a.table.SyntaxFor(ext))

	a.mu.Lock()
	defer a.mu.Unlock()
	a.totalFiles++
	if found {
		a.matched++
	}
}

// Result returns (files with a construct, total files seen).
func (a *NonTypicalExprAnalyzer) Result() (matched, total int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = stateFinalized
	return a.matched, a.totalFiles
}

// Ratio returns the percentage of files containing at least one construct.
func (a *NonTypicalExprAnalyzer) Ratio() float64 {
	matched, total := a.Result()
	return schema.Percentage(matched, total)
}
