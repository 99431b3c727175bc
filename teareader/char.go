package teareader

import tea "github.com/charmbracelet/bubbletea"

// charModel waits for a single printable keypress. Enter answers '\n',
// Ctrl-C and Ctrl-D answer end of input, navigation keys are ignored.
type charModel struct {
	prompt string
	ch     rune
	done   bool
	eof    bool
}

func newCharModel(prompt string) charModel {
	return charModel{prompt: prompt}
}

// Init implements tea.Model.
func (m charModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m charModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.eof = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.ch = '\n'
		m.done = true
		return m, tea.Quit

	case tea.KeySpace:
		m.ch = ' '
		m.done = true
		return m, tea.Quit

	case tea.KeyRunes:
		if key.Alt || len(key.Runes) == 0 {
			return m, nil
		}
		m.ch = key.Runes[0]
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m charModel) View() string {
	if m.done {
		return m.prompt + string(m.ch)
	}
	return m.prompt
}
