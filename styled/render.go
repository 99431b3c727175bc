package styled

import (
	"strconv"
	"strings"
)

// Mode selects how Render treats attributes.
type Mode int

const (
	// Plain drops all attributes and renders raw text only.
	Plain Mode = iota
	// ANSI brackets each attributed fragment with SGR escape sequences.
	ANSI
)

// String returns the mode name, for flags and logs.
func (m Mode) String() string {
	switch m {
	case ANSI:
		return "ansi"
	default:
		return "plain"
	}
}

const (
	csi   = "\x1b["
	reset = "\x1b[0m"
)

// Render converts v into a concrete string under the given mode. Plain mode
// concatenates fragment text verbatim. ANSI mode emits, per fragment that has
// at least one active attribute, the minimal SGR sequence for exactly those
// attributes, the text, then a reset; unattributed fragments are emitted
// bare. Rendering is total: any Text value renders without error.
func Render(mode Mode, v Texter) string {
	t := v.StyledText()
	var b strings.Builder
	for _, f := range t.frags {
		if f.text == "" {
			continue
		}
		if mode != ANSI || f.attrs == (attrs{}) {
			b.WriteString(f.text)
			continue
		}
		b.WriteString(sgr(f.attrs))
		b.WriteString(f.text)
		b.WriteString(reset)
	}
	return b.String()
}

// Render renders t under the given mode. Equivalent to Render(mode, t).
func (t Text) Render(mode Mode) string {
	return Render(mode, t)
}

// Plain returns the text content of t with all attributes dropped. Shorthand
// for rendering under Plain mode.
func (t Text) Plain() string {
	return Render(Plain, t)
}

// sgr builds the escape sequence that switches the terminal into exactly the
// attributes in a. Caller guarantees a is non-zero.
func sgr(a attrs) string {
	codes := make([]string, 0, 5)
	if a.bold {
		codes = append(codes, "1")
	}
	if a.underline {
		codes = append(codes, "4")
	}
	if a.swap {
		codes = append(codes, "7")
	}
	codes = appendColor(codes, a.fg, 30, "38")
	codes = appendColor(codes, a.bg, 40, "48")
	return csi + strings.Join(codes, ";") + "m"
}

// appendColor appends the SGR codes for c. base is the named-color base (30
// for foreground, 40 for background); ext is the extended-color selector
// ("38" or "48") used for 24-bit values.
func appendColor(codes []string, c Color, base int, ext string) []string {
	switch c.typ {
	case colorNamed:
		return append(codes, strconv.Itoa(base+int(c.r)))
	case colorRGB:
		return append(codes,
			ext, "2",
			strconv.Itoa(int(c.r)),
			strconv.Itoa(int(c.g)),
			strconv.Itoa(int(c.b)))
	default:
		return codes
	}
}
