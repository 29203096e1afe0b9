// Package main is the entry point for the stamp-files application.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/mei/stamp-files/internal/config"
	"github.com/mei/stamp-files/internal/renamer"
	"github.com/mei/stamp-files/internal/tui"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := renamer.NewEngine(cfg)
	defer engine.Close()

	if cfg.LogFile != "" {
		if err := engine.EnableFileLogging(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if cfg.NoTUI || !interactive {
		runHeadless(engine)
		return
	}

	runTUI(cfg, engine)
}

// runTUI drives the run through the bubbletea program and prints the
// final summary after the screen is torn down.
func runTUI(cfg *config.Config, engine *renamer.Engine) {
	bridge := tui.NewEventBridge()
	engine.SetEventEmitter(bridge)

	p := tea.NewProgram(tui.NewModel(cfg, engine, bridge), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model, ok := final.(tui.Model)
	if !ok {
		return
	}
	if summary := model.Summary(); summary != nil {
		printSummary(summary)
	}
	if runErr := model.RunErr(); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// runHeadless streams log events as plain lines, suitable for pipes and
// scripts. Ctrl+C requests cancellation between files instead of killing
// the process mid-rename.
func runHeadless(engine *renamer.Engine) {
	engine.SetEventEmitter(consoleEmitter{})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "Interrupt received, finishing the current file...")
		engine.Cancel()
	}()
	defer signal.Stop(sigChan)

	summary, err := engine.Run()
	if summary != nil {
		printSummary(summary)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// consoleEmitter prints log events in the same one-line shape the file
// log uses. Other event types carry state for the TUI and stay silent
// here.
type consoleEmitter struct{}

func (consoleEmitter) Emit(event renamer.Event) {
	line, ok := event.(renamer.LogLine)
	if !ok {
		return
	}

	if line.Path != "" {
		fmt.Printf("[%s] %s (%s)\n", line.Level, line.Message, line.Path)
		return
	}
	fmt.Printf("[%s] %s\n", line.Level, line.Message)
}

func printSummary(summary *renamer.Summary) {
	fmt.Println()
	fmt.Printf("Files scanned:    %d\n", summary.TotalFiles)
	fmt.Printf("Renamed:          %d\n", summary.Renamed)
	fmt.Printf("Skipped:          %d\n", summary.Skipped)
	fmt.Printf("Failed:           %d\n", summary.Failed)
	fmt.Printf("Duplicate groups: %d\n", summary.DuplicateGroups)
	if summary.DuplicatesHandled > 0 {
		fmt.Printf("Duplicates handled: %d\n", summary.DuplicatesHandled)
	}
	if summary.DryRun {
		fmt.Println("Dry run: nothing was renamed")
	}
}
