package converse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/runger/converse/internal/textutil"
)

const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// TerminalReader is the interactive LineReader for a real terminal. It owns
// the input and output files, switches the terminal into raw mode for the
// duration of each read, and drives a golang.org/x/term line editor with
// editing keys and in-run history.
//
// Tab consults the session's completion function. A single candidate is
// inserted in place; several candidates first extend the input to their
// common prefix, then repeated Tab presses cycle through them. Ctrl-D on an
// empty line is end of input.
type TerminalReader struct {
	in    *os.File
	out   *os.File
	term  *term.Terminal
	fn    CompletionFunc
	cycle *tabCycle
}

// readWriter joins the input and output files into the io.ReadWriter the
// term engine wants.
type readWriter struct {
	io.Reader
	io.Writer
}

// NewTerminalReader builds a reader for the terminal open on in and out,
// usually os.Stdin and os.Stdout.
func NewTerminalReader(in, out *os.File) *TerminalReader {
	r := &TerminalReader{in: in, out: out}
	r.term = term.NewTerminal(readWriter{in, out}, "")
	r.term.AutoCompleteCallback = r.autoComplete
	return r
}

// withRaw runs f with the input terminal in raw mode, restoring the previous
// state on every exit path. Off-terminal input (tests, pipes) runs f as-is.
func (r *TerminalReader) withRaw(f func() error) error {
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return f()
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, state) //nolint:errcheck // best-effort restore

	if w, h, err := term.GetSize(int(r.out.Fd())); err == nil {
		_ = r.term.SetSize(w, h)
	}
	return f()
}

// ReadLine displays prompt and reads one line with editing and completion.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	r.cycle = nil
	var line string
	err := r.withRaw(func() error {
		r.term.SetPrompt(prompt)
		var rerr error
		line, rerr = r.term.ReadLine()
		return rerr
	})
	return line, err
}

// ReadChar displays prompt and reads one keypress. Enter yields '\n',
// Ctrl-C and Ctrl-D yield io.EOF, arrow and function keys are ignored.
func (r *TerminalReader) ReadChar(prompt string) (rune, error) {
	var ch rune
	err := r.withRaw(func() error {
		if _, werr := r.out.WriteString(prompt); werr != nil {
			return fmt.Errorf("write prompt: %w", werr)
		}
		for {
			ru, rerr := r.readRune()
			if rerr != nil {
				return rerr
			}
			switch {
			case ru == keyCtrlC || ru == keyCtrlD:
				return io.EOF
			case ru == '\r' || ru == '\n':
				_, _ = r.out.WriteString("\r\n")
				ch = '\n'
				return nil
			case ru == keyEscape:
				if serr := r.skipEscape(); serr != nil {
					return serr
				}
			case ru < 0x20 || ru == keyDelete:
				// other control keys ignored
			default:
				_, _ = r.out.WriteString(string(ru) + "\r\n")
				ch = ru
				return nil
			}
		}
	})
	return ch, err
}

// ReadPassword displays prompt and reads a line without echoing it. A
// non-zero mask echoes one mask character per typed rune, with backspace
// support.
func (r *TerminalReader) ReadPassword(prompt string, mask rune) (string, error) {
	var password string
	err := r.withRaw(func() error {
		if mask == 0 {
			var rerr error
			password, rerr = r.term.ReadPassword(prompt)
			return rerr
		}
		var rerr error
		password, rerr = r.readMasked(prompt, mask)
		return rerr
	})
	return password, err
}

// SetCompletion installs the completion function consulted on Tab.
func (r *TerminalReader) SetCompletion(fn CompletionFunc) {
	r.fn = fn
	r.cycle = nil
}

// readMasked is the raw loop behind masked entry: every typed rune echoes as
// the mask character.
func (r *TerminalReader) readMasked(prompt string, mask rune) (string, error) {
	if _, err := r.out.WriteString(prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	var buf []rune
	for {
		ru, err := r.readRune()
		if err != nil {
			return "", err
		}
		switch {
		case ru == '\r' || ru == '\n':
			_, _ = r.out.WriteString("\r\n")
			return string(buf), nil
		case ru == keyCtrlC:
			return "", io.EOF
		case ru == keyCtrlD:
			if len(buf) == 0 {
				return "", io.EOF
			}
		case ru == keyBackspace || ru == keyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				_, _ = r.out.WriteString("\b \b")
			}
		case ru == keyEscape:
			if err := r.skipEscape(); err != nil {
				return "", err
			}
		case ru < 0x20:
			// control keys ignored
		default:
			buf = append(buf, ru)
			_, _ = r.out.WriteString(string(mask))
		}
	}
}

// readRune reads one UTF-8 rune byte by byte.
func (r *TerminalReader) readRune() (rune, error) {
	var buf [utf8.UTFMax]byte
	n := 0
	for {
		if _, err := io.ReadFull(r.in, buf[n:n+1]); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			return 0, err
		}
		n++
		if utf8.FullRune(buf[:n]) {
			ru, _ := utf8.DecodeRune(buf[:n])
			return ru, nil
		}
		if n == utf8.UTFMax {
			return utf8.RuneError, nil
		}
	}
}

// skipEscape consumes the remainder of an ANSI escape sequence so arrow and
// function keys do not leak into character reads.
func (r *TerminalReader) skipEscape() error {
	ru, err := r.readRune()
	if err != nil {
		return err
	}
	if ru != '[' && ru != 'O' {
		return nil
	}
	for {
		ru, err = r.readRune()
		if err != nil {
			return err
		}
		if ru >= 0x40 && ru <= 0x7e {
			return nil
		}
	}
}

// tabCycle tracks cycling through a candidate set on repeated Tab presses.
type tabCycle struct {
	line   string // full line produced by the last completion
	pos    int    // rune cursor produced by the last completion
	prefix string // kept prefix returned by the CompletionFunc
	right  string // text right of the cursor, constant while cycling
	cands  []Completion
	idx    int // next candidate to insert
}

// autoComplete bridges the engine's key callback to the installed
// CompletionFunc. Only Tab completes; every other key resets any cycling.
func (r *TerminalReader) autoComplete(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' {
		return "", 0, false
	}
	if c := r.cycle; c != nil && line == c.line && pos == c.pos {
		return r.advanceCycle()
	}
	r.cycle = nil
	if r.fn == nil {
		return "", 0, false
	}

	runes := []rune(line)
	if pos < 0 || pos > len(runes) {
		return "", 0, false
	}
	left, right := string(runes[:pos]), string(runes[pos:])

	prefix, cands := r.fn(left, right)
	switch len(cands) {
	case 0:
		return "", 0, false
	case 1:
		newLeft := prefix + cands[0].Replacement
		if cands[0].Final {
			newLeft += " "
		}
		return newLeft + right, utf8.RuneCountInString(newLeft), true
	}

	reps := make([]string, len(cands))
	for i, c := range cands {
		reps[i] = c.Replacement
	}
	if newLeft := prefix + textutil.CommonPrefix(reps); newLeft != left {
		return newLeft + right, utf8.RuneCountInString(newLeft), true
	}

	// No shared progress left: cycle through the candidates.
	r.cycle = &tabCycle{prefix: prefix, right: right, cands: cands}
	return r.advanceCycle()
}

// advanceCycle inserts the next candidate of the active cycle.
func (r *TerminalReader) advanceCycle() (string, int, bool) {
	c := r.cycle
	cand := c.cands[c.idx]
	c.idx = (c.idx + 1) % len(c.cands)

	newLeft := c.prefix + cand.Replacement
	c.line = newLeft + c.right
	c.pos = utf8.RuneCountInString(newLeft)
	return c.line, c.pos, true
}
