package converse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PlainReader reads lines from an arbitrary io.Reader with no editing,
// completion, or echo control. It is the fallback for input that is not a
// terminal: pipes, files, and herestrings. Prompts are written to the output
// writer before each read.
type PlainReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlainReader reads input from in and writes prompts to out.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{in: bufio.NewReader(in), out: out}
}

// ReadLine writes prompt and reads one line. A final line without a
// terminating newline is still returned; the read after it reports io.EOF.
func (r *PlainReader) ReadLine(prompt string) (string, error) {
	if err := r.writePrompt(prompt); err != nil {
		return "", err
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

// ReadChar reads the next line and returns its first rune, '\n' for an
// empty line. Reading whole lines keeps pipes deterministic: one answer per
// line regardless of how the input was buffered.
func (r *PlainReader) ReadChar(prompt string) (rune, error) {
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

// ReadPassword reads a line like ReadLine. A pipe has no keystrokes to hide,
// so the mask is ignored and nothing is echoed.
func (r *PlainReader) ReadPassword(prompt string, mask rune) (string, error) {
	return r.ReadLine(prompt)
}

// SetCompletion is a no-op: without a terminal there is no completion key.
func (r *PlainReader) SetCompletion(fn CompletionFunc) {}

func (r *PlainReader) writePrompt(prompt string) error {
	if prompt == "" {
		return nil
	}
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

// trimLineEnding removes one trailing "\n" or "\r\n".
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
