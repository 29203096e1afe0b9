package tui_test

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/mei/stamp-files/internal/config"
	"github.com/mei/stamp-files/internal/renamer"
	"github.com/mei/stamp-files/internal/tui"
)

func newTestModel(t *testing.T) tui.Model {
	t.Helper()

	cfg := &config.Config{FolderPath: t.TempDir(), Mode: config.AddPrefix}
	engine := renamer.NewEngine(cfg)
	bridge := tui.NewEventBridge()
	engine.SetEventEmitter(bridge)

	return tui.NewModel(cfg, engine, bridge)
}

// TestModel_PhaseFollowsEvents verifies engine events drive the phase
// shown in the view.
func TestModel_PhaseFollowsEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model := newTestModel(t)
	g.Expect(model.View()).To(ContainSubstring("Scanning"))

	updated, _ := model.Update(tui.EngineEventMsg{Event: renamer.PlanStarted{}})
	model = updated.(tui.Model)
	g.Expect(model.View()).To(ContainSubstring("Planning"))

	updated, _ = model.Update(tui.EngineEventMsg{Event: renamer.ApplyStarted{Total: 3}})
	model = updated.(tui.Model)
	g.Expect(model.View()).To(ContainSubstring("Renaming"))
}

// TestModel_ProgressRendered verifies the progress counts appear once
// applying starts.
func TestModel_ProgressRendered(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model := newTestModel(t)
	updated, _ := model.Update(tui.EngineEventMsg{Event: renamer.ApplyStarted{Total: 4}})
	model = updated.(tui.Model)
	updated, _ = model.Update(tui.EngineEventMsg{Event: renamer.Progress{Processed: 2, Total: 4}})
	model = updated.(tui.Model)

	g.Expect(model.View()).To(ContainSubstring("2 / 4 files"))
}

// TestModel_LogPaneKeepsRecentLines verifies the activity pane caps its
// history at MaxLogLines.
func TestModel_LogPaneKeepsRecentLines(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model := newTestModel(t)
	for i := range tui.MaxLogLines + 5 {
		updated, _ := model.Update(tui.EngineEventMsg{Event: renamer.LogLine{
			Level:   renamer.LevelInfo,
			Message: messageFor(i),
		}})
		model = updated.(tui.Model)
	}

	view := model.View()
	g.Expect(view).ToNot(ContainSubstring(messageFor(0)), "oldest lines should scroll away")
	g.Expect(view).To(ContainSubstring(messageFor(tui.MaxLogLines + 4)))
}

// TestModel_RunFinishedQuitsWithSummary verifies the finish message stores
// the summary and quits the program.
func TestModel_RunFinishedQuitsWithSummary(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model := newTestModel(t)
	summary := &renamer.Summary{TotalFiles: 2, Renamed: 2}

	updated, cmd := model.Update(tui.RunFinishedMsg{Summary: summary})
	model = updated.(tui.Model)

	g.Expect(model.Summary()).To(Equal(summary))
	g.Expect(model.RunErr()).To(BeNil())
	g.Expect(cmd).ToNot(BeNil(), "expected a quit command")
	g.Expect(cmd()).To(Equal(tea.Quit()))
}

// TestModel_CtrlCDuringRunCancels verifies the first ctrl+c cancels the
// engine rather than quitting outright.
func TestModel_CtrlCDuringRunCancels(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model := newTestModel(t)
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model = updated.(tui.Model)

	g.Expect(cmd).To(BeNil(), "should not quit while the run is active")
	g.Expect(model.View()).To(ContainSubstring("Cancelling"))
}

// TestBridge_EmitDoesNotBlockWhenFull verifies the bridge drops events
// rather than stalling the engine.
func TestBridge_EmitDoesNotBlockWhenFull(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := tui.NewEventBridge()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for range 500 { // far beyond the buffer size
			bridge.Emit(renamer.ScanProgress{Count: 1})
		}
	}()

	g.Eventually(done).Should(BeClosed(), "Emit must never block")
}

func messageFor(i int) string {
	return fmt.Sprintf("log line %03d", i)
}
