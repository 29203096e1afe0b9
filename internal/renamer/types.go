package renamer

import "time"

// FileEntry is one file discovered during the scan. Entries live for the
// duration of a single run.
type FileEntry struct {
	Dir       string // absolute directory containing the file
	Name      string // current base name
	Size      int64
	Timestamp time.Time // resolved per the run's TimeKind
}

// PlanReason records why a plan does (or does not) rename its file.
type PlanReason int

const (
	// Prefixed - a date prefix will be prepended
	Prefixed PlanReason = iota
	// Restored - an existing date prefix will be stripped
	Restored
	// Skipped - the file is left untouched
	Skipped
	// Deduplicated - the file is a surplus duplicate handled by policy
	Deduplicated
)

// String returns the string representation of PlanReason
func (r PlanReason) String() string {
	switch r {
	case Prefixed:
		return "prefixed"
	case Restored:
		return "restored"
	case Skipped:
		return "skipped"
	case Deduplicated:
		return "deduplicated"
	default:
		return "unknown"
	}
}

// RenamePlan is the computed decision for one file, produced before any
// filesystem mutation.
type RenamePlan struct {
	Entry      *FileEntry
	TargetName string // final collision-resolved name; empty when not renaming
	Reason     PlanReason
	SkipWhy    string // human-readable skip explanation
}

// Summary is the final accounting for one run.
type Summary struct {
	TotalFiles        int
	Renamed           int
	Skipped           int
	Failed            int
	DuplicateGroups   int
	DuplicatesHandled int // surplus duplicates deleted or quarantined
	DryRun            bool
}
