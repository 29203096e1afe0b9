// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
)

// TimeKind selects which filesystem timestamp the date prefix is built from.
type TimeKind int

const (
	// Created - the file's creation (birth) time, falling back to the
	// modification time when the filesystem has no reliable creation time
	Created TimeKind = iota
	// Modified - the file's last-modification time
	Modified
)

// String returns the string representation of TimeKind
func (tk TimeKind) String() string {
	switch tk {
	case Created:
		return "created"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// ParseTimeKind parses a string into a TimeKind
func ParseTimeKind(s string) (TimeKind, error) {
	switch strings.ToLower(s) {
	case "created", "creation", "ctime":
		return Created, nil
	case "modified", "modification", "mtime":
		return Modified, nil
	default:
		return Created, fmt.Errorf("invalid time kind: %s (valid: created, modified)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (tk *TimeKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeKind(string(text))
	if err != nil {
		return err
	}
	*tk = parsed
	return nil
}

// Mode selects whether the run adds date prefixes or strips them.
type Mode int

const (
	// AddPrefix - prepend "YYYY-MM-DD " to each filename
	AddPrefix Mode = iota
	// RestorePrefix - strip an existing "YYYY-MM-DD " prefix
	RestorePrefix
)

// String returns the string representation of Mode
func (m Mode) String() string {
	switch m {
	case AddPrefix:
		return "add"
	case RestorePrefix:
		return "restore"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "add", "add-prefix", "prefix":
		return AddPrefix, nil
	case "restore", "restore-prefix", "strip":
		return RestorePrefix, nil
	default:
		return AddPrefix, fmt.Errorf("invalid mode: %s (valid: add, restore)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// DuplicatePolicy decides what happens to detected duplicate files.
// Detection itself always runs; only the handling differs.
type DuplicatePolicy int

const (
	// DuplicatesLog - report duplicate groups and leave every file in place
	DuplicatesLog DuplicatePolicy = iota
	// DuplicatesDelete - keep the first file of each group, delete the rest
	DuplicatesDelete
	// DuplicatesQuarantine - keep the first file, move the rest into a
	// "duplicates" subfolder of the run folder
	DuplicatesQuarantine
)

// String returns the string representation of DuplicatePolicy
func (dp DuplicatePolicy) String() string {
	switch dp {
	case DuplicatesLog:
		return "log"
	case DuplicatesDelete:
		return "delete"
	case DuplicatesQuarantine:
		return "quarantine"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy parses a string into a DuplicatePolicy
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(s) {
	case "log", "detect":
		return DuplicatesLog, nil
	case "delete":
		return DuplicatesDelete, nil
	case "quarantine":
		return DuplicatesQuarantine, nil
	default:
		return DuplicatesLog, fmt.Errorf("invalid duplicate policy: %s (valid: log, delete, quarantine)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (dp *DuplicatePolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseDuplicatePolicy(string(text))
	if err != nil {
		return err
	}
	*dp = parsed
	return nil
}

// DefaultHashWorkers is the default parallelism for duplicate hashing.
const DefaultHashWorkers = 4

// Config holds the application configuration
type Config struct {
	FolderPath string          `arg:"positional" help:"Folder whose files get the date prefix treatment"`
	TimeKind   TimeKind        `arg:"-t,--time" default:"created" help:"Timestamp to derive the prefix from: created|modified"`
	Mode       Mode            `arg:"-m,--mode" default:"add" help:"Operation: add (prepend date prefix) or restore (strip it)"`
	Recursive  bool            `arg:"-r,--recursive" help:"Descend into subfolders (default: top level only)"`
	DryRun     bool            `arg:"-n,--dry-run" help:"Plan and report without renaming anything"`
	Pattern    string          `arg:"-p,--pattern" help:"Glob pattern limiting which files are processed (e.g. '*.jpg')"`
	Duplicates DuplicatePolicy `arg:"--duplicates" default:"log" help:"What to do with duplicate content: log|delete|quarantine"`
	Workers    int             `arg:"-w,--workers" default:"4" help:"Concurrent hash workers for duplicate detection"`
	LogFile    string          `arg:"--log-file" help:"Append run log lines to this file"`
	NoTUI      bool            `arg:"--no-tui" help:"Plain line output instead of the terminal UI"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Prefixes the files in a folder with their creation or modification date, and can undo it"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "stamp-files 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		TimeKind:   Created,
		Mode:       AddPrefix,
		Duplicates: DuplicatesLog,
		Workers:    DefaultHashWorkers,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultHashWorkers
	}

	if err := cfg.ValidateFolder(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateFolder validates that the target folder exists and is a directory
func (cfg *Config) ValidateFolder() error {
	if cfg.FolderPath == "" {
		return fmt.Errorf("folder path is required")
	}

	info, err := os.Stat(cfg.FolderPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("folder does not exist: %s", cfg.FolderPath)
	}
	if err != nil {
		return fmt.Errorf("cannot access folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", cfg.FolderPath)
	}

	return nil
}
