// Package row stores one line of a fixed-width character grid: the
// characters of every column, wide glyphs included, and the display
// attributes as run-length encoded spans.
//
// A Row has a single owner. It does no locking; callers that share a row
// between goroutines serialize access themselves.
package row

import (
	"fmt"

	"pkt.systems/gridrow/internal/terminal"
)

// Row owns the character and attribute storage of one grid line. Both
// stores always have the same width.
type Row struct {
	id    int
	chars CharStore
	attrs AttrStore
}

// New returns a blank row of width columns filled with fill.
func New(id, width int, fill terminal.Attr) (*Row, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	return &Row{
		id:    id,
		chars: NewCharStore(width),
		attrs: NewAttrStore(width, fill),
	}, nil
}

// ID returns the row index assigned by the owning buffer.
func (r *Row) ID() int {
	return r.id
}

// SetID reassigns the row index.
func (r *Row) SetID(id int) {
	r.id = id
}

// Width returns the number of columns.
func (r *Row) Width() int {
	return r.chars.Width()
}

// Reset blanks every column and sets every attribute to fill. It reports
// whether the row changed.
func (r *Row) Reset(fill terminal.Attr) bool {
	chars := r.chars.Reset()
	attrs := r.attrs.Reset(fill)
	return chars || attrs
}

// Resize changes the width of the row. Added columns are blank and take the
// attribute of the previous last column. On error the row is unchanged.
func (r *Row) Resize(width int) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	old := r.chars.Width()
	if width == old {
		return nil
	}
	fill, err := r.attrs.At(old - 1)
	if err != nil {
		return err
	}
	r.chars.Resize(width)
	r.attrs.Resize(width, fill)
	return nil
}

// ClearColumn blanks the content of col, both halves for a wide glyph. The
// attribute of the column is kept.
func (r *Row) ClearColumn(col int) error {
	return r.chars.Clear(col)
}

// ClearRange blanks the content of count columns starting at col.
func (r *Row) ClearRange(col, count int) error {
	return r.chars.ClearRange(col, count)
}

// SetGlyph writes glyph at col. See CharStore.SetGlyph.
func (r *Row) SetGlyph(col int, glyph string, wide bool) error {
	return r.chars.SetGlyph(col, glyph, wide)
}

// Put writes glyph at col, measuring its width, and returns the columns used.
func (r *Row) Put(col int, glyph string) (int, error) {
	return r.chars.Put(col, glyph)
}

// WriteString writes s starting at col and returns the next column.
func (r *Row) WriteString(col int, s string) (int, error) {
	return r.chars.WriteString(col, s)
}

// SetAttr applies attr to count columns starting at start.
func (r *Row) SetAttr(start, count int, attr terminal.Attr) error {
	return r.attrs.Set(start, count, attr)
}

// Entry returns the character content of col.
func (r *Row) Entry(col int) (Entry, error) {
	return r.chars.At(col)
}

// Attr returns the attribute of col.
func (r *Row) Attr(col int) (terminal.Attr, error) {
	return r.attrs.At(col)
}

// Runs returns a copy of the attribute runs.
func (r *Row) Runs() []Run {
	return r.attrs.Runs()
}

// Wrap reports whether the row continues onto the next one.
func (r *Row) Wrap() bool {
	return r.chars.Wrap()
}

// SetWrap sets the continuation flag.
func (r *Row) SetWrap(wrap bool) {
	r.chars.SetWrap(wrap)
}

// At returns the cell at col.
func (r *Row) At(col int) (Cell, error) {
	e, err := r.chars.At(col)
	if err != nil {
		return Cell{}, err
	}
	a, err := r.attrs.At(col)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Entry: e, Attr: a}, nil
}

// Cells returns every cell of the row.
func (r *Row) Cells() []Cell {
	return r.CellsRange(0, r.Width())
}

// CellsFrom returns the cells from start to the end of the row.
func (r *Row) CellsFrom(start int) []Cell {
	return r.CellsRange(start, r.Width()-start)
}

// CellsRange returns up to count cells starting at start. The range is
// clipped to the row; a start past the end yields no cells.
func (r *Row) CellsRange(start, count int) []Cell {
	width := r.Width()
	if start < 0 {
		count += start
		start = 0
	}
	if start >= width || count <= 0 {
		return []Cell{}
	}
	end := min(start+count, width)
	cells := make([]Cell, 0, end-start)

	col := 0
	for _, run := range r.attrs.runs {
		runEnd := col + run.Len
		for x := max(col, start); x < min(runEnd, end); x++ {
			cells = append(cells, Cell{Entry: r.chars.entries[x], Attr: run.Attr})
		}
		col = runEnd
		if col >= end {
			break
		}
	}
	return cells
}

// Text returns the text of the whole row.
func (r *Row) Text() string {
	s, _ := r.chars.Text(0, r.chars.Width())
	return s
}

// Equal reports whether both rows hold the same content, attributes and id.
func (r *Row) Equal(o *Row) bool {
	if r == o {
		return true
	}
	if r == nil || o == nil {
		return false
	}
	return r.id == o.id && r.chars.Equal(&o.chars) && r.attrs.Equal(&o.attrs)
}

// Clone returns a deep copy of the row.
func (r *Row) Clone() *Row {
	return &Row{
		id:    r.id,
		chars: r.chars.Clone(),
		attrs: r.attrs.Clone(),
	}
}

// Swap exchanges the contents of r and o without copying column data.
func (r *Row) Swap(o *Row) {
	*r, *o = *o, *r
}

// Swap exchanges the contents of a and b.
func Swap(a, b *Row) {
	a.Swap(b)
}

func checkWidth(width int) error {
	if width <= 0 || width > MaxWidth {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidWidth, width, MaxWidth)
	}
	return nil
}
