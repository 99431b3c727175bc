// Package styled models attributed terminal text and renders it to plain or
// ANSI-escaped strings.
//
// A Text value is an immutable sequence of fragments, each pairing a run of
// text with the attributes active over it (foreground and background color,
// bold, underline, reverse video). Values combine like strings:
//
//	styled.Join(styled.String("status: "), styled.String("ok").Fg(styled.Green).Bold())
//
// Attribute methods return copies, so an attribute applied to an expression
// affects exactly the fragments of that expression and never fragments it is
// later combined with. The zero Text is empty and is the identity for Join
// and Append.
package styled

// attrs is the attribute set active over a single fragment. The zero value
// means "no attributes".
type attrs struct {
	fg        Color
	bg        Color
	bold      bool
	underline bool
	swap      bool
}

// fragment is one run of text with its attributes.
type fragment struct {
	text string
	attrs
}

// Text is an immutable sequence of attributed text fragments. The zero value
// is the empty text.
type Text struct {
	frags []fragment
}

// Texter is implemented by values that can convert themselves into styled
// Text. Text implements it (returning itself), and Str adapts raw strings,
// so APIs accepting Texter take either without ceremony.
type Texter interface {
	StyledText() Text
}

// Str is a raw string usable wherever a Texter is expected.
type Str string

// StyledText converts the string into a single unattributed fragment.
func (s Str) StyledText() Text { return String(string(s)) }

// StyledText returns the Text itself.
func (t Text) StyledText() Text { return t }

// String returns a Text holding s with no attributes. An empty s yields the
// empty Text.
func String(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{frags: []fragment{{text: s}}}
}

// Join concatenates the given parts in order. Nil parts are skipped. Join of
// nothing is the empty Text.
func Join(parts ...Texter) Text {
	var frags []fragment
	for _, p := range parts {
		if p == nil {
			continue
		}
		frags = append(frags, p.StyledText().frags...)
	}
	return Text{frags: frags}
}

// Append returns the concatenation of t and the given parts.
func (t Text) Append(parts ...Texter) Text {
	return Join(append([]Texter{t}, parts...)...)
}

// Empty reports whether t contains no text.
func (t Text) Empty() bool {
	for _, f := range t.frags {
		if f.text != "" {
			return false
		}
	}
	return true
}

// apply copies t and updates the attributes of every fragment.
func (t Text) apply(set func(*attrs)) Text {
	out := make([]fragment, len(t.frags))
	copy(out, t.frags)
	for i := range out {
		set(&out[i].attrs)
	}
	return Text{frags: out}
}

// Fg returns a copy of t with the foreground color of every fragment set to c.
func (t Text) Fg(c Color) Text {
	return t.apply(func(a *attrs) { a.fg = c })
}

// Bg returns a copy of t with the background color of every fragment set to c.
func (t Text) Bg(c Color) Text {
	return t.apply(func(a *attrs) { a.bg = c })
}

// Bold returns a copy of t with every fragment set bold.
func (t Text) Bold() Text {
	return t.apply(func(a *attrs) { a.bold = true })
}

// Underline returns a copy of t with every fragment underlined.
func (t Text) Underline() Text {
	return t.apply(func(a *attrs) { a.underline = true })
}

// Swap returns a copy of t with every fragment in reverse video (foreground
// and background exchanged by the terminal).
func (t Text) Swap() Text {
	return t.apply(func(a *attrs) { a.swap = true })
}
