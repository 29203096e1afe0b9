package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/mei/stamp-files/internal/config"
)

// TestParseTimeKind verifies accepted spellings and rejection of garbage.
func TestParseTimeKind(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, input := range []string{"created", "creation", "ctime", "CREATED"} {
		kind, err := config.ParseTimeKind(input)
		g.Expect(err).ShouldNot(HaveOccurred(), "input %q", input)
		g.Expect(kind).To(Equal(config.Created))
	}

	for _, input := range []string{"modified", "modification", "mtime"} {
		kind, err := config.ParseTimeKind(input)
		g.Expect(err).ShouldNot(HaveOccurred(), "input %q", input)
		g.Expect(kind).To(Equal(config.Modified))
	}

	_, err := config.ParseTimeKind("accessed")
	g.Expect(err).Should(HaveOccurred())
}

// TestParseMode verifies accepted spellings and rejection of garbage.
func TestParseMode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mode, err := config.ParseMode("add")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(mode).To(Equal(config.AddPrefix))

	mode, err = config.ParseMode("restore")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(mode).To(Equal(config.RestorePrefix))

	_, err = config.ParseMode("shuffle")
	g.Expect(err).Should(HaveOccurred())
}

// TestParseDuplicatePolicy verifies all three policies parse and the
// default-safe rejection of unknown values.
func TestParseDuplicatePolicy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cases := map[string]config.DuplicatePolicy{
		"log":        config.DuplicatesLog,
		"detect":     config.DuplicatesLog,
		"delete":     config.DuplicatesDelete,
		"quarantine": config.DuplicatesQuarantine,
	}
	for input, want := range cases {
		policy, err := config.ParseDuplicatePolicy(input)
		g.Expect(err).ShouldNot(HaveOccurred(), "input %q", input)
		g.Expect(policy).To(Equal(want), "input %q", input)
	}

	_, err := config.ParseDuplicatePolicy("shred")
	g.Expect(err).Should(HaveOccurred())
}

// TestEnumStrings verifies String round-trips through the parser.
func TestEnumStrings(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(config.Created.String()).To(Equal("created"))
	g.Expect(config.Modified.String()).To(Equal("modified"))
	g.Expect(config.AddPrefix.String()).To(Equal("add"))
	g.Expect(config.RestorePrefix.String()).To(Equal("restore"))
	g.Expect(config.DuplicatesQuarantine.String()).To(Equal("quarantine"))
}

// TestUnmarshalText verifies the go-arg text unmarshalers delegate to the
// parsers.
func TestUnmarshalText(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var kind config.TimeKind
	g.Expect(kind.UnmarshalText([]byte("modified"))).To(Succeed())
	g.Expect(kind).To(Equal(config.Modified))

	var mode config.Mode
	g.Expect(mode.UnmarshalText([]byte("restore"))).To(Succeed())
	g.Expect(mode).To(Equal(config.RestorePrefix))

	var policy config.DuplicatePolicy
	g.Expect(policy.UnmarshalText([]byte("nonsense"))).ShouldNot(Succeed())
}

// TestPostProcessConfig_ValidFolder verifies a real directory passes and
// zero workers get the default.
func TestPostProcessConfig_ValidFolder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{FolderPath: t.TempDir(), Workers: 0}

	got, err := config.PostProcessConfig(cfg)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(got.Workers).To(Equal(config.DefaultHashWorkers))
}

// TestPostProcessConfig_MissingFolder verifies the missing-folder error.
func TestPostProcessConfig_MissingFolder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cfg := &config.Config{FolderPath: filepath.Join(t.TempDir(), "nope")}

	_, err := config.PostProcessConfig(cfg)
	g.Expect(err).Should(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("does not exist"))
}

// TestPostProcessConfig_EmptyFolder verifies the empty-path error.
func TestPostProcessConfig_EmptyFolder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := config.PostProcessConfig(&config.Config{})
	g.Expect(err).Should(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("required"))
}

// TestPostProcessConfig_FileNotDirectory verifies a plain file is rejected.
func TestPostProcessConfig_FileNotDirectory(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "file.txt")
	g.Expect(os.WriteFile(path, []byte("x"), 0644)).To(Succeed())

	_, err := config.PostProcessConfig(&config.Config{FolderPath: path})
	g.Expect(err).Should(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("not a directory"))
}
