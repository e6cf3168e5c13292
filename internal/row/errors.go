package row

import "errors"

var (
	// ErrOutOfRange reports a column or range outside the current width.
	ErrOutOfRange = errors.New("column out of range")
	// ErrInvalidWidth reports a width of zero or above MaxWidth.
	ErrInvalidWidth = errors.New("invalid row width")
	// ErrWidthViolation reports a wide glyph with no room for its trailing half.
	ErrWidthViolation = errors.New("wide glyph does not fit")
)

// MaxWidth is the widest row supported.
const MaxWidth = 1<<15 - 1
