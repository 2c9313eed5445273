package tui

import "logboard/pkg/logging"

// PropertyChangedMsg is delivered when a view model property changes. It only
// carries the property name; the dispatcher reads the current value from the
// view model itself.
type PropertyChangedMsg struct {
	Property string
}

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg signals that the status bar message should be removed.
type ClearStatusBarMsg struct{}
