// Package timestamp resolves the creation or modification time of files,
// tolerating filesystems that do not expose a reliable creation time.
package timestamp

import (
	"fmt"
	"os"
	"time"
)

// Creation times earlier than this are treated as filesystem artifacts
// (epoch zero, FAT default dates) rather than real timestamps.
var plausibilityFloor = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Resolution is the outcome of a creation-time lookup.
type Resolution struct {
	Time     time.Time
	FellBack bool // creation time was unavailable or implausible; Time is the mod time
}

// Modified returns the file's last-modification time.
func Modified(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return info.ModTime(), nil
}

// Created returns the file's creation (birth) time. When the platform or
// filesystem does not expose one, or the reported value is implausible
// (zero, before 1980, or later than the modification time), the
// modification time is returned instead with FellBack set.
func Created(path string) (Resolution, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Resolution{}, fmt.Errorf("stat %s: %w", path, err)
	}

	modTime := info.ModTime()

	birth, ok := birthTime(path, info)
	if !ok || !plausible(birth, modTime) {
		return Resolution{Time: modTime, FellBack: true}, nil
	}

	return Resolution{Time: birth}, nil
}

// plausible reports whether birth looks like a real creation time for a
// file last modified at modTime.
func plausible(birth, modTime time.Time) bool {
	if birth.IsZero() || birth.Before(plausibilityFloor) {
		return false
	}
	// A file cannot be created after it was last modified; some platforms
	// report exactly that when the inode changed owners.
	return !birth.After(modTime)
}
