package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"logboard/pkg/logging"
	"logboard/pkg/viewmodel"
)

const tuiSubsystem = "tui"

// dispatch routes a message to the appropriate handler and refreshes the
// viewports afterwards.
func dispatch(m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Composer.Width = msg.Width - composerChromeWidth
		if m.Composer.Width < 10 {
			m.Composer.Width = 10
		}

	case PropertyChangedMsg:
		m = handlePropertyChanged(m, msg)
		// Keep listening for further notifications.
		cmds = append(cmds, channelReaderCmd(m.TUIChannel))

	case NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, listenForLogEntriesCmd(m.LogChannel))

	case ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil

	default:
		// Unhandled messages still need to reach the focused text input so
		// cursor blinking keeps working.
		var cmd tea.Cmd
		if m.FocusedPanelKey == ComposerFocusKey && m.Composer.Focused() {
			m.Composer, cmd = m.Composer.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	// Consolidate viewport refresh logic here, after all message handling.
	logWidthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if m.LogDirty || logWidthChanged {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(prepareLogContent(m.LogLines, m.LogViewport.Width))
		if atBottom || logWidthChanged {
			// Only autoscroll when already at the bottom, to avoid jumping
			// while the user is reading history.
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.LogDirty = false
	}

	activityWidthChanged := m.ActivityViewportLastWidth != m.ActivityViewport.Width
	if m.ActivityLogDirty || activityWidthChanged {
		m.ActivityViewport.SetContent(prepareLogContent(m.ActivityLog, m.ActivityViewport.Width))
		m.ActivityViewport.GotoBottom() // Activity panel always scrolls to bottom.
		m.ActivityViewportLastWidth = m.ActivityViewport.Width
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes key presses depending on the current mode and focus.
func handleKeyMsg(m *Model, keyMsg tea.KeyMsg) (*Model, tea.Cmd) {
	// ctrl+c quits from every mode, including while typing.
	if keyMsg.String() == "ctrl+c" {
		return quitBoard(m)
	}

	if m.CurrentAppMode == ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Help) || key.Matches(keyMsg, m.Keys.Esc) {
			m.CurrentAppMode = ModeBoard
		}
		return m, nil
	}

	if m.FocusedPanelKey == ComposerFocusKey {
		return handleComposerKey(m, keyMsg)
	}
	return handleLogPaneKey(m, keyMsg)
}

// handleComposerKey processes keys while the composer owns the input. Plain
// letters belong to the text field here, so only chorded or special keys act
// as commands.
func handleComposerKey(m *Model, keyMsg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		return quitBoard(m)

	case key.Matches(keyMsg, m.Keys.Tab):
		m.FocusedPanelKey = LogPaneFocusKey
		m.Composer.Blur()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		return submitComposer(m, false)

	case key.Matches(keyMsg, m.Keys.Notify):
		return submitComposer(m, true)
	}

	var cmd tea.Cmd
	m.Composer, cmd = m.Composer.Update(keyMsg)
	return m, cmd
}

// handleLogPaneKey processes keys while the log viewport has focus.
func handleLogPaneKey(m *Model, keyMsg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quitBoard(m)

	case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Tab):
		m.FocusedPanelKey = ComposerFocusKey
		m.Composer.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.CopyLogs):
		details := strings.TrimPrefix(m.ViewModel.GetLogDetails(), "\n")
		if err := clipboard.WriteAll(details); err != nil {
			logging.Error(tuiSubsystem, err, "Failed to copy log details")
			return m, m.SetStatusMessage("Copy failed", StatusBarError, statusMessageClearAfter)
		}
		return m, m.SetStatusMessage("Log copied to clipboard", StatusBarSuccess, statusMessageClearAfter)
	}

	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
	return m, cmd
}

// submitComposer sends the composer text to the view model. A "!" prefix or
// the notify key raises it as a notification instead of a log line.
func submitComposer(m *Model, asNotification bool) (*Model, tea.Cmd) {
	text := strings.TrimSpace(m.Composer.Value())
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "!") {
		asNotification = true
		text = strings.TrimSpace(strings.TrimPrefix(text, "!"))
		if text == "" {
			return m, nil
		}
	}

	m.Composer.SetValue("")

	if asNotification {
		m.ViewModel.ShowNotification(text)
		logging.Debug(tuiSubsystem, "Raised notification: %s", text)
		return m, nil
	}

	m.ViewModel.UpdateLogDetails(text)
	return m, nil
}

// quitBoard releases the subscription and tells Bubble Tea to stop. The view
// model itself is closed by the caller once the program has exited.
func quitBoard(m *Model) (*Model, tea.Cmd) {
	m.CurrentAppMode = ModeQuitting
	m.QuittingMessage = "Closing the board..."
	if m.Subscription != nil {
		m.ViewModel.Unsubscribe(m.Subscription)
		m.Subscription = nil
	}
	return m, tea.Quit
}

// handlePropertyChanged pulls the changed property's current value out of the
// view model. Dropped or coalesced notifications are harmless because every
// refresh reads the latest state, not an event payload.
func handlePropertyChanged(m *Model, msg PropertyChangedMsg) *Model {
	switch msg.Property {
	case viewmodel.PropertyLogDetails:
		m.LogLines = splitLogLines(m.ViewModel.GetLogDetails())
		m.LogDirty = true
	case viewmodel.PropertyNotificationMessage:
		m.NotificationMessage = m.ViewModel.GetNotificationMessage()
	case viewmodel.PropertyNotificationVisible:
		m.NotificationVisible = m.ViewModel.IsNotificationVisible()
	}
	return m
}

// handleNewLogEntry formats a log entry and appends it to the activity panel.
func handleNewLogEntry(m *Model, msg NewLogEntryMsg) *Model {
	entry := msg.Entry
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message,
	)
	if entry.Err != nil {
		line += fmt.Sprintf(" -- Error: %v", entry.Err)
	}
	m.AddActivityLine(line)
	return m
}
