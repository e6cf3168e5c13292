package row

import "pkt.systems/gridrow/internal/terminal"

// Cell is one column of a row as seen by renderers and text extraction.
// It is a copy; later edits of the row do not change it.
type Cell struct {
	Entry
	Attr terminal.Attr
}

// Empty reports whether the column holds no glyph.
func (c Cell) Empty() bool {
	return c.Kind == KindEmpty
}

// Wide reports whether the column starts a two-column glyph.
func (c Cell) Wide() bool {
	return c.Kind == KindWideLead
}

// Trailing reports whether the column is the placeholder half of a wide glyph.
func (c Cell) Trailing() bool {
	return c.Kind == KindWideTrail
}

// Width returns the display columns the cell starts: 0 for a trailing
// half, 2 for a wide lead and 1 otherwise.
func (c Cell) Width() int {
	switch c.Kind {
	case KindWideTrail:
		return 0
	case KindWideLead:
		return 2
	default:
		return 1
	}
}
