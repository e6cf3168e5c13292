package gridrow

import (
	"pkt.systems/gridrow/internal/protocol"
	"pkt.systems/gridrow/internal/row"
	"pkt.systems/gridrow/internal/terminal"
)

// Row is a single line of a character grid.
type Row = row.Row

// Cell is a snapshot of one row column.
type Cell = row.Cell

// Entry is the character content of one column.
type Entry = row.Entry

// Run is a span of columns sharing one attribute.
type Run = row.Run

// Attr is a terminal rendition.
type Attr = terminal.Attr

// RowDump is the JSON inspection view of a row.
type RowDump = protocol.RowDump

// MaxWidth is the widest row that can be created.
const MaxWidth = row.MaxWidth

var (
	// ErrOutOfRange reports a column outside the row.
	ErrOutOfRange = row.ErrOutOfRange
	// ErrInvalidWidth reports an unusable row width.
	ErrInvalidWidth = row.ErrInvalidWidth
	// ErrWidthViolation reports a wide glyph with no room for its trailing half.
	ErrWidthViolation = row.ErrWidthViolation
	// ErrMalformed reports an encoded row that cannot be decoded.
	ErrMalformed = protocol.ErrMalformed
)

// DefaultAttr is the default rendition.
var DefaultAttr = terminal.DefaultAttr

// NewRow creates a blank row of width columns filled with fill.
func NewRow(id, width int, fill Attr) (*Row, error) {
	return row.New(id, width, fill)
}

// Swap exchanges the contents of a and b.
func Swap(a, b *Row) {
	row.Swap(a, b)
}

// EncodeRow serializes r in protobuf wire format.
func EncodeRow(r *Row) []byte {
	return protocol.EncodeRow(r)
}

// DecodeRow rebuilds a row from EncodeRow output.
func DecodeRow(data []byte) (*Row, error) {
	return protocol.DecodeRow(data)
}

// DumpRow returns the inspection view of r.
func DumpRow(r *Row) RowDump {
	return protocol.DumpRow(r)
}

// RowFromText builds a row of the configured width holding text from column 0.
// Text that does not fit is an error.
func RowFromText(cfg Config, id int, text string) (*Row, error) {
	fill, err := cfg.Row.Fill.Attr()
	if err != nil {
		return nil, err
	}
	r, err := row.New(id, cfg.Row.Width, fill)
	if err != nil {
		return nil, err
	}
	if _, err := r.WriteString(0, text); err != nil {
		return nil, err
	}
	return r, nil
}
