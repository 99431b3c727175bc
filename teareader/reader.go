// Package teareader provides a Bubble Tea backed line reader for
// conversational prompts. It renders each prompt as a small inline TUI with
// line editing, masked entry, and a completion strip under the input, and
// satisfies the converse.LineReader contract so a Session can use it in place
// of the raw terminal reader.
package teareader

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runger/converse"
)

// Reader runs one Bubble Tea program per read. Reads are sequential; the
// terminal belongs to at most one program at a time.
type Reader struct {
	in  io.Reader
	out io.Writer
	fn  converse.CompletionFunc
}

// Option configures a Reader.
type Option func(*Reader)

// WithInput sets the input stream. Defaults to os.Stdin.
func WithInput(in io.Reader) Option {
	return func(r *Reader) { r.in = in }
}

// WithOutput sets the output stream. Defaults to os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(r *Reader) { r.out = out }
}

// New builds a Reader for the process terminal.
func New(opts ...Option) *Reader {
	r := &Reader{in: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadLine prompts for one line with editing and Tab completion.
func (r *Reader) ReadLine(prompt string) (string, error) {
	final, err := r.run(newLineModel(prompt, r.fn))
	if err != nil {
		return "", err
	}
	m := final.(lineModel)
	if m.eof {
		return "", io.EOF
	}
	return m.input.Value(), nil
}

// ReadChar prompts for a single keypress.
func (r *Reader) ReadChar(prompt string) (rune, error) {
	final, err := r.run(newCharModel(prompt))
	if err != nil {
		return 0, err
	}
	m := final.(charModel)
	if m.eof {
		return 0, io.EOF
	}
	return m.ch, nil
}

// ReadPassword prompts for a line that echoes mask per typed rune, or
// nothing at all when mask is zero. Completion stays off for secrets.
func (r *Reader) ReadPassword(prompt string, mask rune) (string, error) {
	final, err := r.run(newPasswordModel(prompt, mask))
	if err != nil {
		return "", err
	}
	m := final.(lineModel)
	if m.eof {
		return "", io.EOF
	}
	return m.input.Value(), nil
}

// SetCompletion installs the completion function consulted on Tab.
func (r *Reader) SetCompletion(fn converse.CompletionFunc) {
	r.fn = fn
}

func (r *Reader) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(r.in), tea.WithOutput(r.out))
	return p.Run()
}
