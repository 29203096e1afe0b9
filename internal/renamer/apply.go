package renamer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mei/stamp-files/internal/config"
	"github.com/mei/stamp-files/internal/naming"
)

// Apply executes the plans in order. Each rename is an atomic filesystem
// move; a per-file failure is logged and counted, never fatal. The
// cancellation flag is checked before each plan, so cancelling mid-run
// leaves earlier renames applied and later files untouched. In dry-run
// mode nothing is mutated and would-be renames are reported instead.
func (e *Engine) Apply() error {
	e.emit(ApplyStarted{Total: len(e.plans)})
	if e.DryRun {
		e.log(LevelInfo, "Dry run: no files will be renamed", "")
	}

	var quarantine *naming.CollisionResolver

	for processed, plan := range e.plans {
		if err := e.checkCancellation(); err != nil {
			e.log(LevelWarning, fmt.Sprintf("Cancelled after %d of %d files", processed, len(e.plans)), "")
			return err
		}

		switch plan.Reason {
		case Skipped:
			e.applySkip(plan)
		case Deduplicated:
			e.applyDuplicatePolicy(plan, &quarantine)
		case Prefixed, Restored:
			e.applyRename(plan)
		}

		e.emit(Progress{Processed: processed + 1, Total: len(e.plans)})
	}

	return nil
}

func (e *Engine) applySkip(plan *RenamePlan) {
	e.summary.Skipped++
	e.log(LevelInfo, fmt.Sprintf("Skipped %s: %s", plan.Entry.Name, plan.SkipWhy), entryPath(plan.Entry))
	e.emit(FileSkipped{Dir: plan.Entry.Dir, Name: plan.Entry.Name, Why: plan.SkipWhy})
}

// applyRename moves the file to its collision-resolved target within the
// same directory.
func (e *Engine) applyRename(plan *RenamePlan) {
	oldPath := entryPath(plan.Entry)
	newPath := filepath.Join(plan.Entry.Dir, plan.TargetName)

	if e.DryRun {
		e.summary.Skipped++
		e.log(LevelInfo, fmt.Sprintf("Would rename %q to %q", plan.Entry.Name, plan.TargetName), oldPath)
		return
	}

	// Planning resolved collisions against a snapshot; an external actor
	// may have taken the target since. Renaming over it would destroy
	// data, so treat it as a per-file failure instead.
	if _, err := os.Lstat(newPath); err == nil {
		e.fail(plan, fmt.Errorf("target already exists: %s", plan.TargetName))
		return
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		e.fail(plan, err)
		return
	}

	e.summary.Renamed++
	e.log(LevelInfo, fmt.Sprintf("Renamed %q to %q", plan.Entry.Name, plan.TargetName), newPath)
	e.emit(FileRenamed{Dir: plan.Entry.Dir, OldName: plan.Entry.Name, NewName: plan.TargetName})
}

// applyDuplicatePolicy deletes or quarantines a surplus duplicate. The
// quarantine resolver is created on first use so runs without duplicates
// never touch the quarantine folder.
func (e *Engine) applyDuplicatePolicy(plan *RenamePlan, quarantine **naming.CollisionResolver) {
	oldPath := entryPath(plan.Entry)

	if e.DryRun {
		e.summary.Skipped++
		e.log(LevelInfo, fmt.Sprintf("Would %s duplicate %q", e.DuplicatePolicy, plan.Entry.Name), oldPath)
		return
	}

	switch e.DuplicatePolicy {
	case config.DuplicatesDelete:
		if err := os.Remove(oldPath); err != nil {
			e.fail(plan, err)
			return
		}
		e.summary.DuplicatesHandled++
		e.log(LevelInfo, fmt.Sprintf("Deleted duplicate %q", plan.Entry.Name), oldPath)

	case config.DuplicatesQuarantine:
		quarantineDir := filepath.Join(e.Folder, QuarantineDirName)
		if *quarantine == nil {
			if err := os.MkdirAll(quarantineDir, 0755); err != nil {
				e.fail(plan, err)
				return
			}
			*quarantine = naming.NewCollisionResolver(listNames(quarantineDir))
		}

		target := (*quarantine).Claim(plan.Entry.Name)
		if err := os.Rename(oldPath, filepath.Join(quarantineDir, target)); err != nil {
			e.fail(plan, err)
			return
		}
		e.summary.DuplicatesHandled++
		e.log(LevelInfo, fmt.Sprintf("Quarantined duplicate %q as %q", plan.Entry.Name,
			filepath.Join(QuarantineDirName, target)), oldPath)

	case config.DuplicatesLog:
		// Log-only policy never produces Deduplicated plans.
	}
}

// fail records a per-file failure and keeps the run going.
func (e *Engine) fail(plan *RenamePlan, err error) {
	e.summary.Failed++
	e.log(LevelError, fmt.Sprintf("Failed to process %q: %v", plan.Entry.Name, err), entryPath(plan.Entry))
	e.emit(FileFailed{Dir: plan.Entry.Dir, Name: plan.Entry.Name, Err: err})
}

// listNames returns the base names present in dir, or nothing when the
// directory cannot be read.
func listNames(dir string) []string {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		names = append(names, dirEntry.Name())
	}

	return names
}
