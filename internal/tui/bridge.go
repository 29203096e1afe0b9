package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mei/stamp-files/internal/renamer"
)

// EngineEventMsg wraps a renamer.Event for use as a tea.Msg.
type EngineEventMsg struct {
	Event renamer.Event
}

// RunFinishedMsg is posted when the engine's Run call returns.
type RunFinishedMsg struct {
	Summary *renamer.Summary
	Err     error
}

// EventBridge adapts renamer events to bubble tea messages.
// It implements renamer.EventEmitter and provides a channel for TUI consumption.
type EventBridge struct {
	eventChan chan tea.Msg
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, 100), // Buffer to prevent blocking the engine
	}
}

// Emit implements renamer.EventEmitter. The send is non-blocking: if the
// TUI falls behind and the buffer fills, the event is dropped rather than
// stalling a rename in progress.
func (b *EventBridge) Emit(event renamer.Event) {
	b.Post(EngineEventMsg{Event: event})
}

// Post sends an arbitrary message through the bridge, same non-blocking
// rules as Emit.
func (b *EventBridge) Post(msg tea.Msg) {
	select {
	case b.eventChan <- msg:
	default:
		// Channel full, message dropped
	}
}

// ListenCmd returns a tea.Cmd that blocks until a message is received.
// Use this in Init() and after processing each message to keep listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		return <-b.eventChan
	}
}
