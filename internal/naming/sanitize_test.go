package naming_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/mei/stamp-files/internal/naming"
)

// TestSanitize_ReplacesIllegalCharacters verifies that every reserved
// character becomes an underscore.
func TestSanitize_ReplacesIllegalCharacters(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(naming.Sanitize(`a\b/c:d*e?f"g<h>i|j`)).To(Equal("a_b_c_d_e_f_g_h_i_j"))
}

// TestSanitize_ReplacesControlCharacters verifies control characters are
// treated as illegal.
func TestSanitize_ReplacesControlCharacters(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(naming.Sanitize("re\x00port\x1f.txt")).To(Equal("re_port_.txt"))
}

// TestSanitize_TrimsWhitespace verifies surrounding whitespace is removed.
func TestSanitize_TrimsWhitespace(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(naming.Sanitize("  report.txt  ")).To(Equal("report.txt"))
}

// TestSanitize_EmptyResultFallsBack verifies names that sanitize away
// completely become the fallback placeholder.
func TestSanitize_EmptyResultFallsBack(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(naming.Sanitize("")).To(Equal(naming.FallbackName))
	g.Expect(naming.Sanitize("   ")).To(Equal(naming.FallbackName))
}

// TestSanitize_Idempotent verifies sanitize(sanitize(x)) == sanitize(x)
// across a spread of inputs.
func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	inputs := []string{
		"report.txt",
		`a\b/c:d`,
		"  spaced out  ",
		"",
		"\x01\x02",
		"already_clean (1).txt",
		"2024-01-05 report.txt",
	}

	for _, input := range inputs {
		once := naming.Sanitize(input)
		g.Expect(naming.Sanitize(once)).To(Equal(once), "input %q", input)
	}
}

// TestSanitize_CleanNamesUnchanged verifies names without illegal
// characters pass through untouched.
func TestSanitize_CleanNamesUnchanged(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(naming.Sanitize("2024-01-05 report.txt")).To(Equal("2024-01-05 report.txt"))
}
