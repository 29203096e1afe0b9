package renamer_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/mei/stamp-files/internal/renamer"
)

// TestGlobFilter_EmptyPatternMatchesAll verifies the no-filter default.
func TestGlobFilter_EmptyPatternMatchesAll(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	filter := renamer.NewGlobFilter("")
	g.Expect(filter.ShouldInclude("a/b/c.txt", "c.txt")).To(BeTrue())
	g.Expect(filter.ShouldInclude("x.bin", "x.bin")).To(BeTrue())
}

// TestGlobFilter_BaseNamePattern verifies a separator-free pattern
// matches base names anywhere in the tree, case-insensitively.
func TestGlobFilter_BaseNamePattern(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	filter := renamer.NewGlobFilter("*.jpg")
	g.Expect(filter.ShouldInclude("photo.jpg", "photo.jpg")).To(BeTrue())
	g.Expect(filter.ShouldInclude("sub/dir/IMG.JPG", "IMG.JPG")).To(BeTrue())
	g.Expect(filter.ShouldInclude("notes.txt", "notes.txt")).To(BeFalse())
}

// TestGlobFilter_PathPattern verifies patterns with separators match the
// relative path, including doublestar globs.
func TestGlobFilter_PathPattern(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	filter := renamer.NewGlobFilter("photos/**/*.jpg")
	g.Expect(filter.ShouldInclude("photos/2024/trip.jpg", "trip.jpg")).To(BeTrue())
	g.Expect(filter.ShouldInclude("docs/trip.jpg", "trip.jpg")).To(BeFalse())
}

// TestGlobFilter_InvalidPatternMatchesNothing verifies a malformed
// pattern excludes rather than crashes.
func TestGlobFilter_InvalidPatternMatchesNothing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	filter := renamer.NewGlobFilter("[unclosed")
	g.Expect(filter.ShouldInclude("a.txt", "a.txt")).To(BeFalse())
}
