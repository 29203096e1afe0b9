// Package renamer implements the date-prefix rename engine: it scans a
// folder, plans a rename per file, and applies the plans while streaming
// progress and log events to an optional observer.
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mei/stamp-files/internal/config"
	"github.com/mei/stamp-files/internal/duplicate"
)

// Exported constants.
const (
	// QuarantineDirName is the subfolder surplus duplicates are moved into
	// under the quarantine policy.
	QuarantineDirName = "duplicates"
	// ScanLogInterval is how many files between scan progress milestones,
	// to avoid flooding the log on large folders.
	ScanLogInterval = 100
)

// Exported variables.
var (
	ErrRunCancelled = errors.New("run cancelled")
)

// Engine performs one rename run against one folder. Configure the
// exported fields (or use NewEngine), optionally set an event emitter,
// then call Run. Engines are single-use: one Run per Engine.
type Engine struct {
	Folder          string
	TimeKind        config.TimeKind
	Mode            config.Mode
	Recursive       bool
	DryRun          bool
	Pattern         string
	DuplicatePolicy config.DuplicatePolicy
	HashWorkers     int

	emitter    EventEmitter
	cancelChan chan struct{}
	cancelOnce sync.Once
	logFile    *os.File
	logMu      sync.Mutex

	// Run-scoped state, built up phase by phase.
	entries  []*FileEntry
	dirNames map[string][]string // dir → every name present (files, subdirs, filtered-out files)
	plans    []*RenamePlan
	groups   []duplicate.Group
	surplus  map[string]struct{} // abs paths of duplicate members beyond the first
	summary  *Summary
}

// NewEngine creates an engine from the application configuration.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		Folder:          cfg.FolderPath,
		TimeKind:        cfg.TimeKind,
		Mode:            cfg.Mode,
		Recursive:       cfg.Recursive,
		DryRun:          cfg.DryRun,
		Pattern:         cfg.Pattern,
		DuplicatePolicy: cfg.Duplicates,
		HashWorkers:     cfg.Workers,
		cancelChan:      make(chan struct{}),
	}
}

// SetEventEmitter sets the event emitter for shell communication.
// The emitter is optional - if nil, no events will be emitted.
func (e *Engine) SetEventEmitter(emitter EventEmitter) {
	e.emitter = emitter
}

// GetEventEmitter returns the current event emitter.
func (e *Engine) GetEventEmitter() EventEmitter {
	return e.emitter
}

// emit sends an event if an emitter is configured.
// Safe to call even when emitter is nil.
func (e *Engine) emit(event Event) {
	if e.emitter != nil {
		e.emitter.Emit(event)
	}
}

// Run executes the full pipeline: scan, plan (including duplicate
// detection), apply. Planning completes before any rename executes, so
// collision resolution always sees the complete target-name set. A fatal
// error before scanning completes aborts with zero files processed;
// per-file failures during apply are counted and the run continues.
func (e *Engine) Run() (*Summary, error) {
	e.summary = &Summary{DryRun: e.DryRun}

	if err := e.Scan(); err != nil {
		e.log(LevelError, fmt.Sprintf("Run aborted: %v", err), e.Folder)
		e.emit(RunComplete{Summary: e.summary})
		return e.summary, err
	}

	if err := e.Plan(); err != nil {
		e.emit(RunComplete{Summary: e.summary})
		return e.summary, err
	}

	if err := e.Apply(); err != nil {
		e.emit(RunComplete{Summary: e.summary})
		return e.summary, err
	}

	e.log(LevelInfo, fmt.Sprintf("Run complete: %d renamed, %d skipped, %d failed of %d files",
		e.summary.Renamed, e.summary.Skipped, e.summary.Failed, e.summary.TotalFiles), "")
	e.emit(RunComplete{Summary: e.summary})

	return e.summary, nil
}

// Cancel stops the run between files. The rename in flight (if any)
// completes; already-applied renames stay applied.
func (e *Engine) Cancel() {
	e.cancelOnce.Do(func() {
		close(e.cancelChan)
	})
}

// Close cleans up resources. Call when done with the engine.
func (e *Engine) Close() {
	e.CloseLog()
}

// CloseLog closes the log file if open.
func (e *Engine) CloseLog() {
	e.logMu.Lock()
	defer e.logMu.Unlock()

	if e.logFile != nil {
		fmt.Fprintf(e.logFile, "=== Run log ended: %s ===\n", time.Now().Format(time.RFC3339))
		_ = e.logFile.Close()
		e.logFile = nil
	}
}

// EnableFileLogging appends this run's log lines to the file at logPath,
// one "[LEVEL] message (path)" line per event.
func (e *Engine) EnableFileLogging(logPath string) error {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	e.logMu.Lock()
	e.logFile = f
	fmt.Fprintf(f, "=== Run log started: %s ===\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(f, "Folder: %s, mode: %s, time: %s, recursive: %v, dry-run: %v\n",
		e.Folder, e.Mode, e.TimeKind, e.Recursive, e.DryRun)
	e.logMu.Unlock()

	return nil
}

// log emits a LogLine event and mirrors it to the log file when enabled.
func (e *Engine) log(level Level, message, path string) {
	e.emit(LogLine{Level: level, Message: message, Path: path})

	e.logMu.Lock()
	defer e.logMu.Unlock()

	if e.logFile == nil {
		return
	}
	if path != "" {
		fmt.Fprintf(e.logFile, "[%s] %s (%s)\n", level, message, path)
	} else {
		fmt.Fprintf(e.logFile, "[%s] %s\n", level, message)
	}
}

func (e *Engine) checkCancellation() error {
	select {
	case <-e.cancelChan:
		return ErrRunCancelled
	default:
		return nil
	}
}

// entryPath returns the absolute path of an entry's current location.
func entryPath(entry *FileEntry) string {
	return filepath.Join(entry.Dir, entry.Name)
}
