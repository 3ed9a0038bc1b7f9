// Package resolve turns input patterns into the deterministic file list that
// anchors the whole hashing pipeline: deduplicated, sorted ascending, stable
// across repeated runs on an unchanged filesystem.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// PatternError reports a pattern the glob expander rejected.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("resolving pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Resolve expands patterns into a deduplicated, lexicographically sorted list
// of file paths. With exact set, every input string is taken verbatim as a
// path; otherwise each pattern is glob-expanded and only regular files are
// kept (directories and symlinks to directories are dropped). Both modes sort
// the result, so the output depends only on the set of selected paths, never
// on argument order. An empty pattern list or a pattern matching nothing
// yields an empty list, not an error.
func Resolve(patterns []string, exact bool) ([]string, error) {
	seen := make(map[string]struct{}, len(patterns))
	paths := make([]string, 0, len(patterns))
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if exact {
			add(pattern)
			continue
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, &PatternError{Pattern: pattern, Err: err}
			}
			if !info.Mode().IsRegular() {
				continue
			}
			add(m)
		}
	}

	sort.Strings(paths)
	return paths, nil
}
