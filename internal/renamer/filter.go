package renamer

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobFilter selects which scanned files are processed. An empty pattern
// matches everything. Patterns without a path separator match against the
// base name ("*.jpg" matches files in any subfolder); patterns with one
// match against the path relative to the run folder. Matching is
// case-insensitive.
type GlobFilter struct {
	pattern  string
	baseOnly bool
	isEmpty  bool
}

// NewGlobFilter creates a filter for the given pattern.
func NewGlobFilter(pattern string) *GlobFilter {
	return &GlobFilter{
		pattern:  strings.ToLower(pattern),
		baseOnly: !strings.Contains(pattern, "/"),
		isEmpty:  pattern == "",
	}
}

// ShouldInclude reports whether the file at relPath (with base name name)
// passes the filter. An invalid pattern matches nothing.
func (f *GlobFilter) ShouldInclude(relPath, name string) bool {
	if f.isEmpty {
		return true
	}

	subject := strings.ToLower(relPath)
	if f.baseOnly {
		subject = strings.ToLower(name)
	}

	matched, err := doublestar.Match(f.pattern, subject)
	if err != nil {
		return false
	}

	return matched
}
