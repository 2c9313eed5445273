package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"logboard/pkg/logging"
	"logboard/pkg/viewmodel"
)

// AppMode defines the different modes/views of the application.
type AppMode int

const (
	ModeBoard AppMode = iota
	ModeHelpOverlay
	ModeQuitting
)

// String returns a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeBoard:
		return "Board"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType defines the type of status bar message.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Focus keys for the two interactive panels.
const (
	ComposerFocusKey = "composer"
	LogPaneFocusKey  = "log"
)

// Constants for UI
const (
	// DefaultMaxActivityLines caps the activity panel when no limit is
	// configured.
	DefaultMaxActivityLines = 200

	// tuiChannelBufferSize is the buffer of the channel carrying messages
	// from subscription handlers into the Bubble Tea event loop.
	tuiChannelBufferSize = 100

	statusMessageClearAfter = 3 * time.Second

	minHeightForActivityPanel = 24
)

// Model represents the state of the board application.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	FocusedPanelKey string
	QuittingMessage string

	// ViewModel is the observable model driving the board.
	ViewModel *viewmodel.NotifyingViewModel

	// Cached view model state for display
	LogLines             []string
	LogDirty             bool
	LogViewportLastWidth int
	NotificationMessage  string
	NotificationVisible  bool

	// UI State & Output
	LogViewport               viewport.Model
	Composer                  textinput.Model
	ActivityLog               []string
	ActivityLogDirty          bool
	ActivityViewportLastWidth int
	ActivityViewport          viewport.Model
	Keys                      KeyMap
	Help                      help.Model
	TUIChannel                chan tea.Msg
	Subscription              *viewmodel.Subscription
	StatusBarMessage          string
	StatusBarMessageType      MessageType
	StatusBarClearCancel      chan struct{}
	MaxActivityLines          int

	// Logging
	LogChannel <-chan logging.LogEntry
}

// AddActivityLine appends a raw line to the activity panel, trimming the
// oldest entries once the cap is exceeded.
func (m *Model) AddActivityLine(line string) {
	m.ActivityLog = append(m.ActivityLog, line)
	maxLines := m.MaxActivityLines
	if maxLines <= 0 {
		maxLines = DefaultMaxActivityLines
	}
	if len(m.ActivityLog) > maxLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-maxLines:]
	}
	m.ActivityLogDirty = true
}

// SetStatusMessage updates the status bar message and returns a command that
// clears it after the given duration. A later call cancels the pending clear
// of an earlier one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
