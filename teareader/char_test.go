package teareader

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressCharKey(t *testing.T, m charModel, msg tea.KeyMsg) (charModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(charModel), cmd
}

func TestCharAcceptsRune(t *testing.T) {
	m := newCharModel("ok? ")
	m, cmd := pressCharKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	assert.True(t, m.done)
	assert.Equal(t, 'y', m.ch)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "ok? y", m.View())
}

func TestCharEnterIsNewline(t *testing.T) {
	m := newCharModel("")
	m, cmd := pressCharKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.done)
	assert.Equal(t, '\n', m.ch)
	require.NotNil(t, cmd)
}

func TestCharSpace(t *testing.T) {
	m := newCharModel("")
	m, _ = pressCharKey(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.True(t, m.done)
	assert.Equal(t, ' ', m.ch)
}

func TestCharEndOfInput(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD} {
		m := newCharModel("")
		m, cmd := pressCharKey(t, m, tea.KeyMsg{Type: key})

		assert.True(t, m.eof, "key %v", key)
		require.NotNil(t, cmd)
	}
}

func TestCharIgnoresNavigationKeys(t *testing.T) {
	m := newCharModel("? ")
	for _, key := range []tea.KeyType{tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight, tea.KeyEsc} {
		m, _ = pressCharKey(t, m, tea.KeyMsg{Type: key})
		assert.False(t, m.done, "key %v", key)
	}
	assert.Equal(t, "? ", m.View())
}

func TestCharIgnoresAltChords(t *testing.T) {
	m := newCharModel("")
	m, _ = pressCharKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	assert.False(t, m.done)
}

func TestCharInitIsQuiet(t *testing.T) {
	assert.Nil(t, newCharModel("").Init())
}
