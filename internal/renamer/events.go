package renamer

import "github.com/mei/stamp-files/internal/duplicate"

// Event is the interface implemented by all rename engine events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// Level classifies a log line.
type Level int

const (
	// LevelInfo - routine progress and outcomes
	LevelInfo Level = iota
	// LevelWarning - recoverable oddities (timestamp fallback, sanitization)
	LevelWarning
	// LevelError - per-file failures and fatal run errors
	LevelError
)

// String returns the bracketed tag used in log output.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogLine is one log event produced during a run. Path is empty for
// lines not tied to a specific file.
type LogLine struct {
	Level   Level
	Message string
	Path    string
}

func (LogLine) isEvent() {}

// Scan phase events

// ScanStarted is emitted when folder enumeration begins.
type ScanStarted struct {
	Folder string
}

func (ScanStarted) isEvent() {}

// ScanProgress is emitted at file-count milestones during scanning.
type ScanProgress struct {
	Count int
}

func (ScanProgress) isEvent() {}

// ScanComplete is emitted when enumeration finishes.
type ScanComplete struct {
	Count int
}

func (ScanComplete) isEvent() {}

// Duplicate detection events

// DuplicatesFound is emitted after hashing with every duplicate group
// discovered in the run folder. Emitted only when at least one exists.
type DuplicatesFound struct {
	Groups []duplicate.Group
}

func (DuplicatesFound) isEvent() {}

// Plan phase events

// PlanStarted is emitted when rename planning begins.
type PlanStarted struct{}

func (PlanStarted) isEvent() {}

// PlanComplete is emitted once every file has a RenamePlan.
type PlanComplete struct {
	ToRename int
	ToSkip   int
	Total    int
}

func (PlanComplete) isEvent() {}

// Apply phase events

// ApplyStarted is emitted when plan execution begins.
type ApplyStarted struct {
	Total int
}

func (ApplyStarted) isEvent() {}

// FileRenamed is emitted after a successful rename.
type FileRenamed struct {
	Dir     string
	OldName string
	NewName string
}

func (FileRenamed) isEvent() {}

// FileSkipped is emitted for files the plan left untouched.
type FileSkipped struct {
	Dir  string
	Name string
	Why  string
}

func (FileSkipped) isEvent() {}

// FileFailed is emitted when applying one plan fails. The run continues.
type FileFailed struct {
	Dir  string
	Name string
	Err  error
}

func (FileFailed) isEvent() {}

// Progress is emitted after each plan is applied.
type Progress struct {
	Processed int
	Total     int
}

func (Progress) isEvent() {}

// RunComplete is emitted when the run finishes, successfully or not.
type RunComplete struct {
	Summary *Summary
}

func (RunComplete) isEvent() {}
