package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ProgressFunc receives (files processed so far, total eligible files)
// after each file completes.
type ProgressFunc func(processed, total int)

// skipDirs are directory names never descended into. Any directory whose
// name starts with "." is skipped as well.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
	"out":          {},
	"vendor":       {},
	"target":       {},
	"__pycache__":  {},
	"venv":         {},
	"env":          {},
}

// skipFiles are individual file names excluded from every scan.
var skipFiles = map[string]struct{}{
	"package-lock.json": {},
	"yarn.lock":         {},
	"Cargo.lock":        {},
	".DS_Store":         {},
}

// Scanner walks a working tree and dispatches file contents to analyzers.
// File reads and analyzer dispatch run on a bounded worker pool; analyzers
// synchronize their own accumulators, and correctness does not depend on
// visit order.
type Scanner struct {
	workers int
}

// NewScanner creates a scanner with the given worker count (minimum 1).
func NewScanner(workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{workers: workers}
}

// Scan resets every analyzer, enumerates eligible files under root and
// dispatches each file's content to the analyzers whose extension sets
// match. Unreadable directories and files are skipped, never fatal; the
// only failure mode is context cancellation. Returns the number of files
// processed.
func (s *Scanner) Scan(ctx context.Context, root string, analyzers []Analyzer, onProgress ProgressFunc) (int, error) {
	for _, a := range analyzers {
		a.Reset()
	}

	// Union of all supported extensions for the walk-time pre-filter.
	union := make(map[string]struct{})
	perAnalyzer := make([]map[string]struct{}, len(analyzers))
	for i, a := range analyzers {
		perAnalyzer[i] = make(map[string]struct{})
		for _, ext := range a.SupportedExtensions() {
			union[ext] = struct{}{}
			perAnalyzer[i][ext] = struct{}{}
		}
	}

	files := collectFiles(root, union)
	if len(files) == 0 {
		return 0, nil
	}

	var processed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := os.ReadFile(path)
			if err == nil {
				ext := strings.ToLower(filepath.Ext(path))
				for i, a := range analyzers {
					if _, ok := perAnalyzer[i][ext]; ok {
						a.AnalyzeFile(path, string(content), ext)
					}
				}
			}

			done := int(processed.Add(1))
			if onProgress != nil {
				onProgress(done, len(files))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(processed.Load()), err
	}
	return len(files), nil
}

// collectFiles enumerates eligible files under root, applying the directory
// and file skip lists and the extension union filter. Walk errors are
// ignored so a single unreadable entry cannot abort the scan.
func collectFiles(root string, union map[string]struct{}) []string {
	var files []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if _, ok := skipDirs[name]; ok {
				return filepath.SkipDir
			}
			return nil
		}

		if _, ok := skipFiles[name]; ok {
			return nil
		}
		if _, ok := union[strings.ToLower(filepath.Ext(name))]; !ok {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files
}
