// Package tui is the terminal front end for the rename engine: one
// screen showing the current phase, a progress bar, and the recent log
// lines, driven entirely by engine events.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mei/stamp-files/internal/config"
	"github.com/mei/stamp-files/internal/renamer"
	apperrors "github.com/mei/stamp-files/pkg/errors"
)

// Model is the single-screen TUI state.
type Model struct {
	config  *config.Config
	engine  *renamer.Engine
	bridge  *EventBridge
	spinner spinner.Model
	bar     progress.Model

	phase      string // "scanning", "planning", "applying", "done", "failed", "cancelling"
	processed  int
	total      int
	logLines   []renamer.LogLine
	summary    *renamer.Summary
	runErr     error
	width      int
	cancelling bool
}

// NewModel creates the TUI model. The engine must already have the
// bridge set as its event emitter.
func NewModel(cfg *config.Config, engine *renamer.Engine, bridge *EventBridge) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		config:  cfg,
		engine:  engine,
		bridge:  bridge,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(ProgressBarWidth)),
		phase:   "scanning",
	}
}

// Summary returns the final run summary, once the run has finished.
func (m Model) Summary() *renamer.Summary {
	return m.summary
}

// RunErr returns the fatal run error, if any.
func (m Model) RunErr() error {
	return m.runErr
}

// Init implements tea.Model: it starts the engine run in the background
// and begins listening for its events.
func (m Model) Init() tea.Cmd {
	engine := m.engine
	bridge := m.bridge
	go func() {
		summary, err := engine.Run()
		bridge.Post(RunFinishedMsg{Summary: summary, Err: err})
	}()

	return tea.Batch(m.spinner.Tick, bridge.ListenCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			if m.phase == "done" || m.phase == "failed" {
				return m, tea.Quit
			}
			m.cancelling = true
			m.engine.Cancel()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width-4 < ProgressBarWidth {
			m.bar.Width = msg.Width - 4
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EngineEventMsg:
		m.applyEvent(msg.Event)
		return m, m.bridge.ListenCmd()

	case RunFinishedMsg:
		m.summary = msg.Summary
		m.runErr = msg.Err
		if msg.Err != nil {
			m.phase = "failed"
		} else {
			m.phase = "done"
		}
		return m, tea.Quit
	}

	return m, nil
}

// applyEvent folds one engine event into the display state.
func (m *Model) applyEvent(event renamer.Event) {
	switch event := event.(type) {
	case renamer.ScanStarted:
		m.phase = "scanning"
	case renamer.PlanStarted:
		m.phase = "planning"
	case renamer.ApplyStarted:
		m.phase = "applying"
		m.total = event.Total
	case renamer.Progress:
		m.processed = event.Processed
		m.total = event.Total
	case renamer.LogLine:
		m.logLines = append(m.logLines, event)
		if len(m.logLines) > MaxLogLines {
			m.logLines = m.logLines[len(m.logLines)-MaxLogLines:]
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle().Render("stamp-files - " + m.config.Mode.String() + " mode"))
	b.WriteString("\n")

	b.WriteString(m.phaseLine())
	b.WriteString("\n\n")

	if m.phase == "applying" || m.phase == "done" {
		b.WriteString(m.bar.ViewAs(m.percent()))
		b.WriteString(fmt.Sprintf("  %d / %d files\n\n", m.processed, m.total))
	}

	for _, line := range m.logLines {
		b.WriteString(renderLogLine(line))
		b.WriteString("\n")
	}

	if m.phase == "done" && m.summary != nil {
		b.WriteString("\n")
		b.WriteString(SummaryBoxStyle().Render(renderSummary(m.summary)))
		b.WriteString("\n")
	}

	if m.phase == "failed" && m.runErr != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle().Render("Error: " + m.runErr.Error()))
		if suggestions := apperrors.FormatSuggestions(apperrors.Enrich(m.runErr, m.config.FolderPath)); suggestions != "" {
			b.WriteString("\n")
			b.WriteString(suggestions)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) phaseLine() string {
	if m.cancelling && m.phase != "done" && m.phase != "failed" {
		return PhaseStyle().Render("Cancelling after the current file...")
	}

	switch m.phase {
	case "scanning":
		return m.spinner.View() + PhaseStyle().Render("Scanning "+m.config.FolderPath)
	case "planning":
		return m.spinner.View() + PhaseStyle().Render("Planning renames...")
	case "applying":
		verb := "Renaming"
		if m.config.DryRun {
			verb = "Previewing"
		}
		return m.spinner.View() + PhaseStyle().Render(verb+" files...")
	case "done":
		return PhaseStyle().Render("Done. Press q to exit.")
	case "failed":
		return ErrorStyle().Render("Run failed.")
	}

	return ""
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.processed) / float64(m.total)
}

// renderLogLine styles one activity line by level.
func renderLogLine(line renamer.LogLine) string {
	text := line.Message
	if line.Path != "" {
		text += " (" + line.Path + ")"
	}

	switch line.Level {
	case renamer.LevelWarning:
		return WarningStyle().Render(text)
	case renamer.LevelError:
		return ErrorStyle().Render(text)
	case renamer.LevelInfo:
		return InfoStyle().Render(text)
	}

	return InfoStyle().Render(text)
}

// renderSummary formats the final accounting.
func renderSummary(summary *renamer.Summary) string {
	lines := []string{
		fmt.Sprintf("Files scanned     %d", summary.TotalFiles),
		fmt.Sprintf("Renamed           %d", summary.Renamed),
		fmt.Sprintf("Skipped           %d", summary.Skipped),
		fmt.Sprintf("Failed            %d", summary.Failed),
		fmt.Sprintf("Duplicate groups  %d", summary.DuplicateGroups),
	}
	if summary.DuplicatesHandled > 0 {
		lines = append(lines, fmt.Sprintf("Duplicates handled %d", summary.DuplicatesHandled))
	}
	if summary.DryRun {
		lines = append(lines, "", "Dry run: nothing was renamed")
	}

	return strings.Join(lines, "\n")
}
