package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"logboard/pkg/logging"
	"logboard/pkg/viewmodel"
)

// InitialModel creates the board model wired to the given view model. The
// subscription handler runs synchronously inside the view model's setters, so
// it only forwards the property name into TUIChannel and must never block:
// when the loop lags behind, the send is dropped and the next refresh picks
// up the latest state anyway.
func InitialModel(vm *viewmodel.NotifyingViewModel, maxActivityLines int, logChan <-chan logging.LogEntry) *Model {
	tuiChan := make(chan tea.Msg, tuiChannelBufferSize)

	composer := textinput.New()
	composer.Placeholder = "log line, ! prefix raises a notification"
	composer.CharLimit = 256
	composer.Width = 50
	composer.Focus()

	m := &Model{
		CurrentAppMode:   ModeBoard,
		FocusedPanelKey:  ComposerFocusKey,
		ViewModel:        vm,
		LogViewport:      viewport.New(0, 0),
		Composer:         composer,
		ActivityViewport: viewport.New(0, 0),
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		TUIChannel:       tuiChan,
		MaxActivityLines: maxActivityLines,
		LogChannel:       logChan,
	}

	m.LogLines = splitLogLines(vm.GetLogDetails())
	m.NotificationMessage = vm.GetNotificationMessage()
	m.NotificationVisible = vm.IsNotificationVisible()
	m.LogDirty = true

	m.Subscription = vm.Subscribe("", func(property string) {
		select {
		case tuiChan <- PropertyChangedMsg{Property: property}:
		default:
		}
	})

	return m
}

// splitLogLines turns the accumulated log details into displayable lines.
// Every append is preceded by a newline, so the first element is always empty
// and gets dropped.
func splitLogLines(details string) []string {
	if details == "" {
		return nil
	}
	lines := strings.Split(details, "\n")
	if lines[0] == "" {
		lines = lines[1:]
	}
	return lines
}

// channelReaderCmd returns a Bubbletea command that forwards messages from the given channel.
func channelReaderCmd(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// listenForLogEntriesCmd waits for the next entry on the logging channel.
func listenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
