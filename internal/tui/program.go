package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model and starts the channel listeners.
func (a AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		channelReaderCmd(a.model.TUIChannel),
	}
	if a.model.LogChannel != nil {
		cmds = append(cmds, listenForLogEntriesCmd(a.model.LogChannel))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := dispatch(a.model, msg)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return render(a.model)
}

// NewProgram creates a new Bubble Tea program running the board.
func NewProgram(m *Model) *tea.Program {
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen())
}
