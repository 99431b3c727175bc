package styled

// colorType distinguishes color representations.
type colorType uint8

const (
	colorDefault colorType = iota
	colorNamed             // one of the eight basic ANSI colors, index in r
	colorRGB               // 24-bit color in r, g, b
)

// Color is an attribute payload: the terminal's default color, one of the
// eight named ANSI colors, or a 24-bit RGB value. The zero value is the
// terminal default and emits no escape codes.
type Color struct {
	typ     colorType
	r, g, b uint8
}

// The eight named ANSI colors.
var (
	Black   = Color{typ: colorNamed, r: 0}
	Red     = Color{typ: colorNamed, r: 1}
	Green   = Color{typ: colorNamed, r: 2}
	Yellow  = Color{typ: colorNamed, r: 3}
	Blue    = Color{typ: colorNamed, r: 4}
	Magenta = Color{typ: colorNamed, r: 5}
	Cyan    = Color{typ: colorNamed, r: 6}
	White   = Color{typ: colorNamed, r: 7}
)

// RGB returns a 24-bit color. Terminals without true color support will
// approximate it themselves; no downgrade is attempted here.
func RGB(r, g, b uint8) Color {
	return Color{typ: colorRGB, r: r, g: g, b: b}
}
