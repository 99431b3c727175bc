package converse

import (
	"errors"
	"fmt"

	"github.com/runger/converse/styled"
)

// Ask displays prompt and reads one line. A non-empty def is offered as the
// default: it is appended to the prompt as "[def] " and returned when the
// user answers with an empty line. Otherwise the raw input is returned
// verbatim, including an empty string when there is no default. End of input
// returns an error satisfying errors.Is(err, io.EOF).
func (s *Session) Ask(prompt styled.Texter, def string) (string, error) {
	rendered := prompt.StyledText()
	if def != "" {
		rendered = rendered.Append(styled.Str("[" + def + "] "))
	}

	line, err := s.reader.ReadLine(styled.Render(s.mode, rendered))
	if err != nil {
		return "", fmt.Errorf("ask: %w", err)
	}
	if line == "" && def != "" {
		return def, nil
	}
	return line, nil
}

// AskChar displays prompt and reads a single character.
func (s *Session) AskChar(prompt styled.Texter) (rune, error) {
	ch, err := s.reader.ReadChar(styled.Render(s.mode, prompt))
	if err != nil {
		return 0, fmt.Errorf("ask char: %w", err)
	}
	return ch, nil
}

// AskPassword displays prompt and reads a line without echoing it. A
// non-zero mask echoes one mask character per keystroke instead.
func (s *Session) AskPassword(prompt styled.Texter, mask rune) (string, error) {
	password, err := s.reader.ReadPassword(styled.Render(s.mode, prompt), mask)
	if err != nil {
		return "", fmt.Errorf("ask password: %w", err)
	}
	return password, nil
}

// ConfirmFunc validates an answer for AskUntil. A nil error accepts, and the
// returned string (which may differ from the answer, e.g. trimmed or
// canonicalized) becomes AskUntil's result. A non-nil error rejects the
// answer; build it with Reject to keep the message styled.
type ConfirmFunc func(answer string) (string, error)

// Rejection is the error a ConfirmFunc returns to reject an answer with a
// styled message.
type Rejection struct {
	Message styled.Text
}

// Error returns the rejection message as plain text.
func (r *Rejection) Error() string {
	return r.Message.Plain()
}

// Reject builds a *Rejection carrying v as the message shown before the
// prompt repeats.
func Reject(v styled.Texter) error {
	return &Rejection{Message: v.StyledText()}
}

// AskUntil asks until confirm accepts the answer. Each rejection prints the
// rejection message on its own line and asks again; the loop is unbounded
// and ends only on an accepted answer or end of input propagating out of
// Ask. Errors other than *Rejection returned by confirm also reject, with
// their Error() text as the message.
func (s *Session) AskUntil(prompt styled.Texter, def string, confirm ConfirmFunc) (string, error) {
	for {
		answer, err := s.Ask(prompt, def)
		if err != nil {
			return "", err
		}

		value, cerr := confirm(answer)
		if cerr == nil {
			return value, nil
		}

		var message styled.Texter
		var rej *Rejection
		if errors.As(cerr, &rej) {
			message = rej.Message
		} else {
			message = styled.Str(cerr.Error())
		}
		if err := s.SayLn(message); err != nil {
			return "", err
		}
	}
}
