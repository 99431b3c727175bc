// Package converse is an interactive terminal-input toolkit. It prints
// stylized text, prompts for lines, single characters, and masked passwords,
// and presents selectable menus with optional Tab completion.
//
// A Session owns one conversation: a render mode, an output sink, and a
// LineReader that collects input. The zero-configuration path talks to the
// calling terminal:
//
//	s := converse.New()
//	name, err := s.Ask(styled.String("name: ").Fg(styled.Cyan), "anonymous")
//
// Prompt and output text is built with the styled package and rendered under
// the session's mode, so the same program works on a color terminal and in a
// pipe. End of input (Ctrl-D) surfaces as an error satisfying
// errors.Is(err, io.EOF); it is the only failure the input operations
// produce on their own, and it is never swallowed.
//
// A Session is not safe for concurrent use. Run one conversation at a time
// per session and give each goroutine its own session.
package converse

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/runger/converse/styled"
)

// Session drives one interactive conversation. Create it with New.
type Session struct {
	mode        styled.Mode
	out         io.Writer
	reader      LineReader
	completions []CompletionFunc
}

// config collects options before defaults are resolved.
type config struct {
	mode   *styled.Mode
	out    io.Writer
	reader LineReader
}

// Option configures a Session.
type Option func(*config)

// WithMode fixes the render mode for the session's lifetime. Without it the
// mode is detected from the output: ANSI on a color terminal, Plain
// otherwise.
func WithMode(m styled.Mode) Option {
	return func(c *config) { c.mode = &m }
}

// WithOutput directs the session's output to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithReader uses r as the session's line reader. Without it the session
// reads standard input, through a TerminalReader when both ends are
// terminals and a PlainReader otherwise.
func WithReader(r LineReader) Option {
	return func(c *config) { c.reader = r }
}

// New builds a Session. The defaults target the calling terminal: output to
// stdout, input from stdin, render mode detected from the output.
func New(opts ...Option) *Session {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	var mode styled.Mode
	switch {
	case c.mode != nil:
		mode = *c.mode
	default:
		f, _ := out.(*os.File)
		mode = styled.DetectMode(f)
	}

	reader := c.reader
	if reader == nil {
		reader = defaultReader(out)
	}

	s := &Session{
		mode:        mode,
		out:         out,
		reader:      reader,
		completions: []CompletionFunc{noCompletion},
	}
	s.reader.SetCompletion(noCompletion)
	return s
}

// defaultReader picks the reader for New when none was supplied.
func defaultReader(out io.Writer) LineReader {
	f, ok := out.(*os.File)
	if ok && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(f.Fd()) {
		return NewTerminalReader(os.Stdin, f)
	}
	return NewPlainReader(os.Stdin, out)
}

// Mode returns the session's render mode.
func (s *Session) Mode() styled.Mode {
	return s.mode
}

// Say renders v under the session mode and writes it to the output sink,
// with no trailing newline.
func (s *Session) Say(v styled.Texter) error {
	if _, err := io.WriteString(s.out, styled.Render(s.mode, v)); err != nil {
		return fmt.Errorf("say: %w", err)
	}
	return nil
}

// SayLn is Say with a newline appended.
func (s *Session) SayLn(v styled.Texter) error {
	return s.Say(styled.Join(v, styled.Str("\n")))
}

// Severity classifies a Report message.
type Severity int

const (
	// SeverityError tags the message with "error: " in red.
	SeverityError Severity = iota
	// SeverityWarning tags the message with "warning: " in yellow.
	SeverityWarning
)

// tag returns the colored prefix for the severity.
func (sev Severity) tag() styled.Text {
	if sev == SeverityWarning {
		return styled.String("warning: ").Fg(styled.Yellow)
	}
	return styled.String("error: ").Fg(styled.Red)
}

// Report says v prefixed with the severity's colored tag.
func (s *Session) Report(sev Severity, v styled.Texter) error {
	return s.Say(styled.Join(sev.tag(), v))
}

// ReportLn is Report with a newline appended.
func (s *Session) ReportLn(sev Severity, v styled.Texter) error {
	return s.SayLn(styled.Join(sev.tag(), v))
}
