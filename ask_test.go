package converse

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/runger/converse/styled"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	reader := NewScriptReader("Alice").WithEcho(&out)
	s := newTestSession(&out, reader)

	got, err := s.Ask(styled.Str("name: "), "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Alice" {
		t.Errorf("answer = %q, want %q", got, "Alice")
	}
	if out.String() != "name: " {
		t.Errorf("prompt shown = %q, want %q", out.String(), "name: ")
	}
}

func TestAskDefault(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		def        string
		want       string
		wantPrompt string
	}{
		{"empty input takes default", "", "fallback", "fallback", "name: [fallback] "},
		{"input beats default", "typed", "fallback", "typed", "name: [fallback] "},
		{"empty input no default", "", "", "", "name: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var echo bytes.Buffer
			reader := NewScriptReader(tt.input).WithEcho(&echo)
			s := newTestSession(&bytes.Buffer{}, reader)

			got, err := s.Ask(styled.Str("name: "), tt.def)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("answer = %q, want %q", got, tt.want)
			}
			if echo.String() != tt.wantPrompt {
				t.Errorf("prompt = %q, want %q", echo.String(), tt.wantPrompt)
			}
		})
	}
}

func TestAskEOF(t *testing.T) {
	s := newTestSession(&bytes.Buffer{}, NewScriptReader())

	_, err := s.Ask(styled.Str("? "), "none")
	if err == nil {
		t.Fatal("expected error at end of input")
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("error %v should satisfy errors.Is(err, io.EOF)", err)
	}
}

func TestAskChar(t *testing.T) {
	reader := NewScriptReader().WithChars('y', 'n')
	s := newTestSession(&bytes.Buffer{}, reader)

	for _, want := range []rune{'y', 'n'} {
		got, err := s.AskChar(styled.Str("continue? "))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("char = %q, want %q", got, want)
		}
	}

	if _, err := s.AskChar(styled.Str("again? ")); !errors.Is(err, io.EOF) {
		t.Errorf("exhausted script should be EOF, got %v", err)
	}
}

func TestAskPasswordMasking(t *testing.T) {
	var echo bytes.Buffer
	reader := NewScriptReader("hi").WithEcho(&echo)
	s := newTestSession(&bytes.Buffer{}, reader)

	got, err := s.AskPassword(styled.String(""), '*')
	if err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Errorf("password = %q, want %q", got, "hi")
	}
	if echo.String() != "**" {
		t.Errorf("echo = %q, want %q", echo.String(), "**")
	}
}

func TestAskPasswordNoMask(t *testing.T) {
	var echo bytes.Buffer
	reader := NewScriptReader("secret").WithEcho(&echo)
	s := newTestSession(&bytes.Buffer{}, reader)

	got, err := s.AskPassword(styled.Str("pw: "), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "secret" {
		t.Errorf("password = %q, want %q", got, "secret")
	}
	if echo.String() != "pw: " {
		t.Errorf("echo = %q, want prompt only", echo.String())
	}
}

func TestAskUntil(t *testing.T) {
	var out bytes.Buffer
	reader := NewScriptReader("abc", "abcdef")
	s := newTestSession(&out, reader)

	confirm := func(answer string) (string, error) {
		if len(answer) < 6 {
			return "", Reject(styled.Str("too short"))
		}
		return answer, nil
	}

	got, err := s.AskUntil(styled.Str("code: "), "", confirm)
	if err != nil {
		t.Fatal(err)
	}
	if got != "abcdef" {
		t.Errorf("value = %q, want %q", got, "abcdef")
	}
	// Exactly one rejection line.
	if out.String() != "too short\n" {
		t.Errorf("output = %q, want %q", out.String(), "too short\n")
	}
}

func TestAskUntilTransformsValue(t *testing.T) {
	reader := NewScriptReader("  padded  ")
	s := newTestSession(&bytes.Buffer{}, reader)

	got, err := s.AskUntil(styled.Str("? "), "", func(answer string) (string, error) {
		return "clean", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "clean" {
		t.Errorf("value = %q, want confirm's result", got)
	}
}

func TestAskUntilPlainError(t *testing.T) {
	var out bytes.Buffer
	reader := NewScriptReader("no", "yes")
	s := newTestSession(&out, reader)

	_, err := s.AskUntil(styled.Str("? "), "", func(answer string) (string, error) {
		if answer != "yes" {
			return "", errors.New("answer yes")
		}
		return answer, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "answer yes\n" {
		t.Errorf("output = %q, want the error text", out.String())
	}
}

func TestAskUntilEOF(t *testing.T) {
	reader := NewScriptReader("bad")
	s := newTestSession(&bytes.Buffer{}, reader)

	_, err := s.AskUntil(styled.Str("? "), "", func(string) (string, error) {
		return "", Reject(styled.Str("nope"))
	})
	if !errors.Is(err, io.EOF) {
		t.Errorf("rejecting forever should end in EOF, got %v", err)
	}
}
