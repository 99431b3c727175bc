// Package expect provides pty-backed testing of interactive conversations
// using go-expect.
//
// It wraps the Netflix go-expect library around an in-process converse
// Session: the session's TerminalReader is attached to the console tty while
// the test drives the other end of the pty, sending keystrokes and asserting
// on the transcript.
package expect

import (
	"fmt"
	"testing"
	"time"

	expect "github.com/Netflix/go-expect"

	"github.com/runger/converse"
	"github.com/runger/converse/styled"
)

// Key constants for special keys (ANSI escape sequences and control bytes).
const (
	KeyEnter     = "\r"
	KeyTab       = "\t"
	KeyBackspace = "\x7f"
	KeyCtrlC     = "\x03"
	KeyCtrlD     = "\x04"
	KeyUp        = "\x1b[A"
	KeyDown      = "\x1b[B"
)

// Dialogue is one scripted conversation under test: a converse Session whose
// terminal reader talks to the slave side of a pty, and a go-expect console
// on the master side.
type Dialogue struct {
	Console *expect.Console
	Timeout time.Duration

	done chan error
}

// DialogueOption configures a Dialogue.
type DialogueOption func(*dialogueConfig)

type dialogueConfig struct {
	timeout time.Duration
	mode    styled.Mode
}

// WithTimeout sets the default timeout for expect operations and for waiting
// on the conversation to finish.
func WithTimeout(d time.Duration) DialogueOption {
	return func(c *dialogueConfig) { c.timeout = d }
}

// WithMode sets the session render mode. The default is Plain so transcript
// assertions do not have to account for escape sequences.
func WithMode(m styled.Mode) DialogueOption {
	return func(c *dialogueConfig) { c.mode = m }
}

// NewDialogue allocates a pty, builds a Session reading from its tty, and
// runs conversation against it in a goroutine. The test is skipped when no
// pty can be allocated. Call Wait to collect the conversation's error and
// always Close the dialogue.
func NewDialogue(t *testing.T, conversation func(*converse.Session) error, opts ...DialogueOption) *Dialogue {
	t.Helper()

	cfg := &dialogueConfig{timeout: 5 * time.Second, mode: styled.Plain}
	for _, opt := range opts {
		opt(cfg)
	}

	console, err := expect.NewConsole(expect.WithDefaultTimeout(cfg.timeout))
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}

	tty := console.Tty()
	session := converse.New(
		converse.WithMode(cfg.mode),
		converse.WithOutput(tty),
		converse.WithReader(converse.NewTerminalReader(tty, tty)),
	)

	d := &Dialogue{
		Console: console,
		Timeout: cfg.timeout,
		done:    make(chan error, 1),
	}
	go func() {
		d.done <- conversation(session)
	}()
	return d
}

// Send sends text to the conversation without a newline.
func (d *Dialogue) Send(text string) error {
	_, err := d.Console.Send(text)
	return err
}

// SendLine sends text followed by a newline.
func (d *Dialogue) SendLine(text string) error {
	_, err := d.Console.SendLine(text)
	return err
}

// SendKey sends a special key (use the Key constants).
func (d *Dialogue) SendKey(key string) error {
	_, err := d.Console.Send(key)
	return err
}

// Expect waits for an exact string in the transcript.
func (d *Dialogue) Expect(str string) (string, error) {
	return d.Console.ExpectString(str)
}

// Wait blocks until the conversation goroutine returns and yields its error.
// It fails rather than hangs when the conversation is stuck past the
// dialogue timeout.
func (d *Dialogue) Wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-d.done:
		return err
	case <-time.After(d.Timeout):
		t.Fatal("conversation did not finish before the timeout")
		return nil
	}
}

// Close tears down the pty. The conversation sees end of input if it is
// still reading.
func (d *Dialogue) Close() error {
	if err := d.Console.Close(); err != nil {
		return fmt.Errorf("close console: %w", err)
	}
	return nil
}

// SkipIfShort skips interactive tests in -short runs.
func SkipIfShort(t *testing.T, reason string) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping in short mode: " + reason)
	}
}
