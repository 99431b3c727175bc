package converse

import (
	"io"
	"strings"
	"unicode/utf8"
)

// ScriptReader is a LineReader that replays scripted input. It backs unit
// tests and non-interactive automation of conversational flows: queue the
// answers up front, then run the flow against it. Prompts and mask echo are
// written to the Echo writer when one is set, so a test can assert the full
// transcript.
//
// An exhausted script behaves like end of input.
type ScriptReader struct {
	lines []string
	chars []rune
	echo  io.Writer
	fn    CompletionFunc
}

// NewScriptReader queues lines as the answers to successive reads.
func NewScriptReader(lines ...string) *ScriptReader {
	return &ScriptReader{lines: lines}
}

// WithEcho writes prompts and mask echo to w. Returns the reader.
func (r *ScriptReader) WithEcho(w io.Writer) *ScriptReader {
	r.echo = w
	return r
}

// WithChars queues runes consumed by ReadChar before it falls back to the
// line queue. Returns the reader.
func (r *ScriptReader) WithChars(chars ...rune) *ScriptReader {
	r.chars = append(r.chars, chars...)
	return r
}

// ReadLine pops the next scripted line, or io.EOF when none remain.
func (r *ScriptReader) ReadLine(prompt string) (string, error) {
	r.echoString(prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// ReadChar pops the next queued rune. With no runes queued it consumes the
// next scripted line and returns its first rune ('\n' for an empty line).
func (r *ScriptReader) ReadChar(prompt string) (rune, error) {
	if len(r.chars) > 0 {
		r.echoString(prompt)
		ch := r.chars[0]
		r.chars = r.chars[1:]
		return ch, nil
	}

	line, err := r.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return '\n', nil
	}
	ch, _ := utf8.DecodeRuneInString(line)
	return ch, nil
}

// ReadPassword pops the next scripted line. A non-zero mask echoes one mask
// character per rune of the line, mimicking what a terminal reader shows.
func (r *ScriptReader) ReadPassword(prompt string, mask rune) (string, error) {
	line, err := r.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if mask != 0 {
		r.echoString(strings.Repeat(string(mask), utf8.RuneCountInString(line)))
	}
	return line, nil
}

// SetCompletion records fn as the active completion function.
func (r *ScriptReader) SetCompletion(fn CompletionFunc) {
	r.fn = fn
}

// Completion returns the currently installed completion function. Tests use
// it to exercise whatever the session has installed.
func (r *ScriptReader) Completion() CompletionFunc {
	return r.fn
}

func (r *ScriptReader) echoString(s string) {
	if r.echo != nil && s != "" {
		_, _ = io.WriteString(r.echo, s)
	}
}
