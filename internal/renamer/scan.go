package renamer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mei/stamp-files/internal/config"
	"github.com/mei/stamp-files/internal/timestamp"
)

// Scan enumerates the run folder and builds the FileEntry list, resolving
// each file's timestamp as it goes. A missing or unreadable folder is
// fatal; a file that cannot be stat'ed is logged and excluded. Entries
// come back in lexical order, which fixes the tie-break order for
// collision resolution later.
func (e *Engine) Scan() error {
	info, err := os.Stat(e.Folder)
	if err != nil {
		return fmt.Errorf("folder not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", e.Folder)
	}

	e.emit(ScanStarted{Folder: e.Folder})
	e.log(LevelInfo, "Scanning "+e.Folder, "")

	e.dirNames = make(map[string][]string)
	filter := NewGlobFilter(e.Pattern)

	if e.Recursive {
		err = e.scanTree(filter)
	} else {
		err = e.scanFlat(filter)
	}
	if err != nil {
		return err
	}

	e.summary.TotalFiles = len(e.entries)
	e.log(LevelInfo, fmt.Sprintf("Found %d files", len(e.entries)), "")
	e.emit(ScanComplete{Count: len(e.entries)})

	return nil
}

// scanFlat reads only the top level of the run folder.
func (e *Engine) scanFlat(filter *GlobFilter) error {
	dirEntries, err := os.ReadDir(e.Folder)
	if err != nil {
		return fmt.Errorf("folder not readable: %w", err)
	}

	for _, dirEntry := range dirEntries {
		e.dirNames[e.Folder] = append(e.dirNames[e.Folder], dirEntry.Name())
		if dirEntry.IsDir() {
			continue
		}
		e.addEntry(e.Folder, dirEntry.Name(), dirEntry.Name(), filter)
	}

	return nil
}

// scanTree walks the whole folder tree. Every directory's full listing is
// recorded so collision resolution sees occupied names even for files the
// filter excludes.
func (e *Engine) scanTree(filter *GlobFilter) error {
	walkErr := filepath.WalkDir(e.Folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == e.Folder {
				return fmt.Errorf("folder not readable: %w", err)
			}
			e.log(LevelWarning, fmt.Sprintf("Skipping unreadable entry: %v", err), path)
			return nil
		}
		if path == e.Folder {
			return nil
		}

		dir := filepath.Dir(path)
		e.dirNames[dir] = append(e.dirNames[dir], d.Name())

		if d.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(e.Folder, path)
		if relErr != nil {
			relPath = d.Name()
		}
		e.addEntry(dir, d.Name(), relPath, filter)

		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	return nil
}

// addEntry stats and timestamps one file, appending it to the run's
// entry list when it passes the filter.
func (e *Engine) addEntry(dir, name, relPath string, filter *GlobFilter) {
	if !filter.ShouldInclude(relPath, name) {
		return
	}

	path := filepath.Join(dir, name)

	info, err := os.Stat(path)
	if err != nil {
		e.log(LevelWarning, fmt.Sprintf("Cannot stat file, excluding from run: %v", err), path)
		return
	}

	resolved, err := e.resolveTimestamp(path)
	if err != nil {
		e.log(LevelWarning, fmt.Sprintf("Cannot resolve timestamp, excluding from run: %v", err), path)
		return
	}

	e.entries = append(e.entries, &FileEntry{
		Dir:       dir,
		Name:      name,
		Size:      info.Size(),
		Timestamp: resolved,
	})

	if len(e.entries)%ScanLogInterval == 0 {
		e.log(LevelInfo, fmt.Sprintf("Scanned %d files...", len(e.entries)), "")
		e.emit(ScanProgress{Count: len(e.entries)})
	}
}

// resolveTimestamp reads the configured timestamp for path, logging a
// warning when creation time was requested but the modification time had
// to stand in for it.
func (e *Engine) resolveTimestamp(path string) (time.Time, error) {
	if e.TimeKind == config.Modified {
		return timestamp.Modified(path)
	}

	res, err := timestamp.Created(path)
	if err != nil {
		return res.Time, err
	}
	if res.FellBack {
		e.log(LevelWarning, "Creation time unavailable or implausible, using modification time", path)
	}

	return res.Time, nil
}
