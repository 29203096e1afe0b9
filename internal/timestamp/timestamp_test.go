package timestamp_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/mei/stamp-files/internal/timestamp"
)

// TestModified_ReturnsModTime verifies Modified reports the time set via
// Chtimes.
func TestModified_ReturnsModTime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := writeTestFile(t, "a.txt")
	want := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	g.Expect(os.Chtimes(path, want, want)).To(Succeed())

	got, err := timestamp.Modified(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(got.Equal(want)).To(BeTrue(), "got %v, want %v", got, want)
}

// TestModified_MissingFile verifies a stat error propagates.
func TestModified_MissingFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := timestamp.Modified(filepath.Join(t.TempDir(), "nope.txt"))
	g.Expect(err).Should(HaveOccurred())
}

// TestCreated_FallsBackWhenBirthAfterModTime verifies the implausibility
// rule: a file just created but with its mod time pushed into the past
// must resolve to the mod time, flagged as a fallback. (On filesystems
// without birth times the same fallback fires for lack of data.)
func TestCreated_FallsBackWhenBirthAfterModTime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := writeTestFile(t, "a.txt")
	past := time.Date(2020, time.June, 15, 8, 30, 0, 0, time.UTC)
	g.Expect(os.Chtimes(path, past, past)).To(Succeed())

	res, err := timestamp.Created(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(res.FellBack).To(BeTrue())
	g.Expect(res.Time.Equal(past)).To(BeTrue(), "fallback should be the mod time")
}

// TestCreated_FreshFileIsRecent verifies a freshly written file resolves
// to a time near now regardless of whether birth time is available.
func TestCreated_FreshFileIsRecent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := writeTestFile(t, "a.txt")

	res, err := timestamp.Created(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(res.Time.IsZero()).To(BeFalse())
	g.Expect(time.Since(res.Time)).To(BeNumerically("<", time.Minute))
}

// TestCreated_MissingFile verifies a stat error propagates.
func TestCreated_MissingFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := timestamp.Created(filepath.Join(t.TempDir(), "nope.txt"))
	g.Expect(err).Should(HaveOccurred())
}

// writeTestFile creates a small file in a fresh temp dir and returns its path.
func writeTestFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	return path
}
