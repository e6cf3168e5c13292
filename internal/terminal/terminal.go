package terminal

import "fmt"

// Cursor represents a cursor position.
type Cursor struct {
	X int
	Y int
}

// Attr is the display attribute of a column: rendition flags plus colors.
// Row storage treats it as opaque and only compares it for equality.
type Attr struct {
	Mode int16
	FG   uint32
	BG   uint32
}

// DefaultAttr is the attribute of a freshly cleared terminal.
var DefaultAttr = Attr{Mode: 0, FG: ColorDefault, BG: ColorDefault}

// Attribute mode flags.
const (
	ModeBold      int16 = 1 << 0
	ModeFaint     int16 = 1 << 1
	ModeItalic    int16 = 1 << 2
	ModeUnderline int16 = 1 << 3
	ModeBlink     int16 = 1 << 4
	ModeInverse   int16 = 1 << 5
	ModeHidden    int16 = 1 << 6
)

// Color encoding flags.
const (
	ColorDefault   uint32 = 0
	ColorIndexed   uint32 = 1 << 24
	ColorTrue      uint32 = 2 << 24
	ColorFlagMask  uint32 = 0xff000000
	ColorValueMask uint32 = 0x00ffffff
)

// Indexed returns an indexed palette color.
func Indexed(n uint8) uint32 {
	return ColorIndexed | uint32(n)
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) uint32 {
	return ColorTrue | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Has reports whether all bits of mode are set.
func (a Attr) Has(mode int16) bool {
	return a.Mode&mode == mode
}

// With returns a copy of a with mode bits added.
func (a Attr) With(mode int16) Attr {
	a.Mode |= mode
	return a
}

func (a Attr) String() string {
	return fmt.Sprintf("attr{mode:%#x fg:%s bg:%s}", uint16(a.Mode), colorString(a.FG), colorString(a.BG))
}

func colorString(c uint32) string {
	switch c & ColorFlagMask {
	case ColorIndexed:
		return fmt.Sprintf("idx(%d)", c&ColorValueMask)
	case ColorTrue:
		return fmt.Sprintf("#%06x", c&ColorValueMask)
	default:
		return "default"
	}
}
