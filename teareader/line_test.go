package teareader

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/converse"
)

// typeRunes feeds s one keystroke at a time.
func typeRunes(t *testing.T, m lineModel, s string) lineModel {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(lineModel)
	}
	return m
}

func pressKey(t *testing.T, m lineModel, k tea.KeyType) (lineModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(lineModel), cmd
}

// wordCompleter keeps everything up to the last space and offers cands for
// the remainder.
func wordCompleter(cands ...converse.Completion) converse.CompletionFunc {
	return func(left, right string) (string, []converse.Completion) {
		cut := strings.LastIndexAny(left, " \t") + 1
		return left[:cut], cands
	}
}

func TestLineAcceptsOnEnter(t *testing.T) {
	m := newLineModel("> ", nil)
	m = typeRunes(t, m, "hello")

	m, cmd := pressKey(t, m, tea.KeyEnter)
	assert.True(t, m.done)
	assert.False(t, m.eof)
	assert.Equal(t, "hello", m.input.Value())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLineCtrlCIsEndOfInput(t *testing.T) {
	m := newLineModel("> ", nil)
	m = typeRunes(t, m, "partial")

	m, cmd := pressKey(t, m, tea.KeyCtrlC)
	assert.True(t, m.eof)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLineCtrlDOnEmptyLine(t *testing.T) {
	m := newLineModel("> ", nil)
	m, cmd := pressKey(t, m, tea.KeyCtrlD)
	assert.True(t, m.eof)
	require.NotNil(t, cmd)
}

func TestLineCtrlDDeletesForwardWhenNotEmpty(t *testing.T) {
	m := newLineModel("> ", nil)
	m = typeRunes(t, m, "ab")
	m.input.SetCursor(0)

	m, _ = pressKey(t, m, tea.KeyCtrlD)
	assert.False(t, m.eof)
	assert.Equal(t, "b", m.input.Value())
}

func TestLineTabSingleCandidate(t *testing.T) {
	m := newLineModel("> ", wordCompleter(
		converse.Completion{Display: "status", Replacement: "status"},
	))
	m = typeRunes(t, m, "cmd st")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, "cmd status", m.input.Value())
	assert.Equal(t, 10, m.input.Position())
	assert.Empty(t, m.strip)
}

func TestLineTabFinalCandidateAppendsSpace(t *testing.T) {
	m := newLineModel("> ", wordCompleter(
		converse.Completion{Display: "status", Replacement: "status", Final: true},
	))
	m = typeRunes(t, m, "cmd st")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, "cmd status ", m.input.Value())
	assert.Equal(t, 11, m.input.Position())
}

func TestLineTabExtendsCommonPrefix(t *testing.T) {
	m := newLineModel("> ", wordCompleter(
		converse.Completion{Display: "start", Replacement: "start"},
		converse.Completion{Display: "status", Replacement: "status"},
	))
	m = typeRunes(t, m, "cmd s")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, "cmd sta", m.input.Value())
	assert.Empty(t, m.strip, "prefix progress must not open the candidate strip")
}

func TestLineTabListsCandidates(t *testing.T) {
	m := newLineModel("> ", wordCompleter(
		converse.Completion{Display: "start", Replacement: "start"},
		converse.Completion{Display: "status", Replacement: "status"},
	))
	m = typeRunes(t, m, "cmd sta")

	m, _ = pressKey(t, m, tea.KeyTab)
	require.Equal(t, []string{"start   status"}, m.strip)
	assert.Contains(t, m.View(), "start   status")
	assert.Equal(t, "cmd sta", m.input.Value(), "listing must leave the input as typed")

	// The next keystroke dismisses the strip.
	m = typeRunes(t, m, "r")
	assert.Empty(t, m.strip)
	assert.Equal(t, "cmd star", m.input.Value())
}

func TestLineTabWithoutCompletion(t *testing.T) {
	m := newLineModel("> ", nil)
	m = typeRunes(t, m, "abc")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, "abc", m.input.Value())
	assert.Empty(t, m.strip)
}

func TestLineTabNoCandidates(t *testing.T) {
	m := newLineModel("> ", wordCompleter())
	m = typeRunes(t, m, "zzz")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Equal(t, "zzz", m.input.Value())
	assert.Empty(t, m.strip)
}

func TestLineStripUsesWindowWidth(t *testing.T) {
	m := newLineModel("> ", wordCompleter(
		converse.Completion{Display: "start", Replacement: "start"},
		converse.Completion{Display: "status", Replacement: "status"},
	))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 24})
	m = next.(lineModel)
	m = typeRunes(t, m, "sta")

	m, _ = pressKey(t, m, tea.KeyTab)
	assert.Len(t, m.strip, 2, "narrow terminal lays candidates out one per row")
}

func TestLineEnterClearsStrip(t *testing.T) {
	m := newLineModel("> ", wordCompleter(
		converse.Completion{Display: "aa", Replacement: "aa"},
		converse.Completion{Display: "ab", Replacement: "ab"},
	))
	m = typeRunes(t, m, "a")
	m, _ = pressKey(t, m, tea.KeyTab)
	require.NotEmpty(t, m.strip)

	m, _ = pressKey(t, m, tea.KeyEnter)
	assert.Empty(t, m.strip)
	assert.NotContains(t, m.View(), "\n")
}

func TestPasswordModelMasksEcho(t *testing.T) {
	m := newPasswordModel("pw: ", '*')
	assert.Equal(t, textinput.EchoPassword, m.input.EchoMode)
	assert.Equal(t, '*', m.input.EchoCharacter)

	m = typeRunes(t, m, "hi")
	assert.Equal(t, "hi", m.input.Value())
	view := m.View()
	assert.Contains(t, view, "**")
	assert.NotContains(t, view, "hi")
}

func TestPasswordModelNoMaskShowsNothing(t *testing.T) {
	m := newPasswordModel("pw: ", 0)
	assert.Equal(t, textinput.EchoNone, m.input.EchoMode)

	m = typeRunes(t, m, "secret")
	assert.Equal(t, "secret", m.input.Value())
	assert.NotContains(t, m.View(), "secret")
}

func TestLineInitBlinks(t *testing.T) {
	m := newLineModel("> ", nil)
	assert.NotNil(t, m.Init())
}
