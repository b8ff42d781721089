package fsutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathMatcher selects paths.
type PathMatcher interface {
	// Matches reports whether the given path is selected.
	Matches(path string) bool
}

// globMatcher matches paths under a root against doublestar patterns
// evaluated relative to that root.
type globMatcher struct {
	root     string
	patterns []string
}

// NewGlobMatcher builds a PathMatcher rooted at root. Each pattern is a
// doublestar glob evaluated against the slash-separated path of the
// candidate relative to root; patterns are OR-combined. Matching is
// per-path: "logs" selects the directory entry itself, not its
// contents; use "logs/**" to select a subtree. A trailing separator is
// dropped. An empty pattern set matches nothing, and a candidate
// outside root never matches.
//
// Invalid patterns are rejected here, not silently skipped at match
// time.
func NewGlobMatcher(root string, patterns []string) (PathMatcher, error) {
	cleaned := make([]string, 0, len(patterns))
	for i, pattern := range patterns {
		p := strings.TrimSuffix(pattern, "/")
		if !doublestar.ValidatePattern(p) {
			return nil, &PatternError{Pattern: pattern, Index: i, Err: doublestar.ErrBadPattern}
		}
		cleaned = append(cleaned, p)
	}
	return &globMatcher{root: root, patterns: cleaned}, nil
}

// Matches implements PathMatcher.
func (g *globMatcher) Matches(path string) bool {
	rel, err := filepath.Rel(g.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}
	for _, pattern := range g.patterns {
		// Patterns were validated on construction, so a match error can
		// only mean no match.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Not returns a matcher selecting exactly the paths m does not.
func Not(m PathMatcher) PathMatcher {
	return notMatcher{m: m}
}

type notMatcher struct{ m PathMatcher }

func (n notMatcher) Matches(path string) bool {
	return !n.m.Matches(path)
}

// PatternError reports an invalid glob pattern.
type PatternError struct {
	Pattern string
	Index   int
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern at index %d '%s': %v", e.Index, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
