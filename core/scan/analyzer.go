package scan

// Analyzer is implemented by per-file analyzers driven by the Scanner.
// Implementations accumulate running totals only, never per-file results,
// so memory stays bounded regardless of repository size. Accumulator
// updates must be self-synchronized: the Scanner may call AnalyzeFile from
// multiple goroutines, and results must not depend on file-visit order.
type Analyzer interface {
	// Reset clears all accumulated state. The Scanner calls it at the
	// start of every scan; it is not a caller responsibility.
	Reset()

	// SupportedExtensions returns the file extensions (with leading dot)
	// this analyzer wants to see. The Scanner pre-filters on the union of
	// all analyzers' sets and dispatches by membership.
	SupportedExtensions() []string

	// AnalyzeFile folds one file into the running totals.
	AnalyzeFile(path string, content string, ext string)
}

// accumState tracks the lifecycle of an analyzer's accumulator so that a
// result read before any scan, or interleaved with a concurrent scan, is
// detectable instead of silently mixing runs.
type accumState int

const (
	stateIdle accumState = iota
	stateAccumulating
	stateFinalized
)
