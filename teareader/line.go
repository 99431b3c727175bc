package teareader

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runger/converse"
	"github.com/runger/converse/internal/textutil"
)

// defaultWidth is used for the candidate strip until the first
// tea.WindowSizeMsg arrives.
const defaultWidth = 80

var stripStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// lineModel is the Bubble Tea model behind ReadLine and ReadPassword: a
// focused textinput plus a transient strip of completion candidates.
type lineModel struct {
	input    textinput.Model
	complete converse.CompletionFunc
	strip    []string // candidate rows shown under the input
	width    int
	done     bool
	eof      bool
}

func newLineModel(prompt string, complete converse.CompletionFunc) lineModel {
	input := textinput.New()
	input.Prompt = prompt
	input.Focus()
	return lineModel{input: input, complete: complete, width: defaultWidth}
}

func newPasswordModel(prompt string, mask rune) lineModel {
	m := newLineModel(prompt, nil)
	if mask == 0 {
		m.input.EchoMode = textinput.EchoNone
	} else {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = mask
	}
	return m
}

// Init implements tea.Model.
func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.strip = nil
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlC:
			m.eof = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			// End of input only on an empty line; otherwise the key
			// keeps its delete-forward meaning.
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}

		case tea.KeyTab:
			return m.completeInput(), nil
		}

		// Any other key invalidates the candidate strip.
		m.strip = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// completeInput applies the completion function at the cursor. One candidate
// is inserted directly; several first extend the input to their common
// prefix, then get listed under the line.
func (m lineModel) completeInput() lineModel {
	m.strip = nil
	if m.complete == nil {
		return m
	}

	runes := []rune(m.input.Value())
	pos := m.input.Position()
	if pos < 0 || pos > len(runes) {
		return m
	}
	left, right := string(runes[:pos]), string(runes[pos:])

	prefix, cands := m.complete(left, right)
	switch len(cands) {
	case 0:
		return m

	case 1:
		newLeft := prefix + cands[0].Replacement
		if cands[0].Final {
			newLeft += " "
		}
		m.setInput(newLeft, right)
		return m
	}

	reps := make([]string, len(cands))
	for i, c := range cands {
		reps[i] = c.Replacement
	}
	if newLeft := prefix + textutil.CommonPrefix(reps); newLeft != left {
		m.setInput(newLeft, right)
		return m
	}

	// No shared progress left, so show what is on offer.
	displays := make([]string, len(cands))
	for i, c := range cands {
		displays[i] = c.Display
	}
	m.strip = textutil.Columns(displays, m.width)
	return m
}

func (m *lineModel) setInput(left, right string) {
	m.input.SetValue(left + right)
	m.input.SetCursor(utf8.RuneCountInString(left))
}

// View implements tea.Model.
func (m lineModel) View() string {
	if len(m.strip) == 0 {
		return m.input.View()
	}
	return m.input.View() + "\n" + stripStyle.Render(strings.Join(m.strip, "\n"))
}
