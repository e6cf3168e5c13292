// Package screen is a minimal multi-row buffer built from row.Row values.
// It owns the rows, moves a cursor over them, and reorders rows by swapping
// when it scrolls.
package screen

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"pkt.systems/gridrow/internal/row"
	"pkt.systems/gridrow/internal/terminal"
	"pkt.systems/pslog"
)

const tabWidth = 8

// Buffer is a grid of rows with a cursor and a scroll region.
type Buffer struct {
	cols int
	rows int

	lines        []*row.Row
	cursor       terminal.Cursor
	pen          terminal.Attr
	wrapPending  bool
	scrollTop    int
	scrollBottom int

	logger pslog.Logger
}

// New returns a blank buffer of cols by rows filled with fill.
func New(cols, rows int, fill terminal.Attr, logger pslog.Logger) (*Buffer, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("invalid row count %d", rows)
	}
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	b := &Buffer{
		cols:         cols,
		rows:         rows,
		lines:        make([]*row.Row, rows),
		pen:          fill,
		scrollBottom: rows - 1,
		logger:       logger,
	}
	for y := range b.lines {
		r, err := row.New(y, cols, fill)
		if err != nil {
			return nil, err
		}
		b.lines[y] = r
	}
	return b, nil
}

// Cols returns the width of the buffer.
func (b *Buffer) Cols() int {
	return b.cols
}

// Rows returns the height of the buffer.
func (b *Buffer) Rows() int {
	return b.rows
}

// Row returns row y, or nil when y is outside the buffer. The row stays
// owned by the buffer.
func (b *Buffer) Row(y int) *row.Row {
	if y < 0 || y >= b.rows {
		return nil
	}
	return b.lines[y]
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() terminal.Cursor {
	return b.cursor
}

// Pen returns the attribute used for writes and erases.
func (b *Buffer) Pen() terminal.Attr {
	return b.pen
}

// SetPen sets the attribute used for writes and erases.
func (b *Buffer) SetPen(attr terminal.Attr) {
	b.pen = attr
}

// MoveTo places the cursor, clamped to the buffer.
func (b *Buffer) MoveTo(x, y int) {
	b.cursor.X = clamp(x, 0, b.cols-1)
	b.cursor.Y = clamp(y, 0, b.rows-1)
	b.wrapPending = false
}

// SetScrollRegion limits scrolling to rows top through bottom inclusive.
func (b *Buffer) SetScrollRegion(top, bottom int) error {
	if top < 0 || bottom >= b.rows || top >= bottom {
		return fmt.Errorf("invalid scroll region [%d,%d] for %d rows", top, bottom, b.rows)
	}
	b.scrollTop = top
	b.scrollBottom = bottom
	return nil
}

// Write prints s at the cursor with automatic wrapping. "\n" starts a new
// line, "\r" returns to the first column and "\t" advances to the next tab
// stop. Other control characters are ignored.
func (b *Buffer) Write(s string) error {
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		switch cluster {
		case "\n", "\r\n":
			b.newLine()
			continue
		case "\r":
			b.cursor.X = 0
			b.wrapPending = false
			continue
		case "\t":
			b.tab()
			continue
		}
		if r := []rune(cluster); len(r) == 1 && (r[0] < 0x20 || r[0] == 0x7f) {
			continue
		}
		if err := b.print(cluster); err != nil {
			return err
		}
	}
	return nil
}

func (b *Buffer) print(cluster string) error {
	width := runewidth.StringWidth(cluster)
	if width <= 0 {
		width = 1
	}
	if width > b.cols {
		width = 1
	}
	if b.wrapPending {
		b.wrapLine()
	}
	if width == 2 && b.cursor.X == b.cols-1 {
		b.wrapLine()
	}

	line := b.lines[b.cursor.Y]
	if err := line.SetGlyph(b.cursor.X, cluster, width == 2); err != nil {
		return err
	}
	if err := line.SetAttr(b.cursor.X, width, b.pen); err != nil {
		return err
	}

	b.cursor.X += width
	if b.cursor.X >= b.cols {
		b.cursor.X = b.cols - 1
		b.wrapPending = true
	}
	return nil
}

// wrapLine marks the current row as continuing and moves to the next one.
func (b *Buffer) wrapLine() {
	b.lines[b.cursor.Y].SetWrap(true)
	b.newLine()
}

func (b *Buffer) newLine() {
	b.cursor.X = 0
	b.wrapPending = false
	if b.cursor.Y == b.scrollBottom {
		b.ScrollUp(1)
		return
	}
	if b.cursor.Y < b.rows-1 {
		b.cursor.Y++
	}
}

func (b *Buffer) tab() {
	next := (b.cursor.X/tabWidth + 1) * tabWidth
	if next >= b.cols {
		next = b.cols - 1
	}
	b.cursor.X = next
	b.wrapPending = false
}

// ScrollUp moves the rows of the scroll region up by n, blanking the rows
// that enter at the bottom.
func (b *Buffer) ScrollUp(n int) {
	b.rotateUp(b.scrollTop, b.scrollBottom, n)
}

// ScrollDown moves the rows of the scroll region down by n, blanking the
// rows that enter at the top.
func (b *Buffer) ScrollDown(n int) {
	b.rotateDown(b.scrollTop, b.scrollBottom, n)
}

// InsertLines inserts n blank rows at the cursor row, pushing rows below it
// towards the bottom of the scroll region.
func (b *Buffer) InsertLines(n int) {
	y := b.cursor.Y
	if y < b.scrollTop || y > b.scrollBottom {
		return
	}
	b.rotateDown(y, b.scrollBottom, n)
}

// DeleteLines removes n rows at the cursor row, pulling rows below it up.
func (b *Buffer) DeleteLines(n int) {
	y := b.cursor.Y
	if y < b.scrollTop || y > b.scrollBottom {
		return
	}
	b.rotateUp(y, b.scrollBottom, n)
}

func (b *Buffer) rotateUp(top, bottom, n int) {
	height := bottom - top + 1
	if n < 1 || height < 1 {
		return
	}
	if n > height {
		n = height
	}
	for y := top; y <= bottom-n; y++ {
		b.lines[y].Swap(b.lines[y+n])
	}
	for y := bottom - n + 1; y <= bottom; y++ {
		b.lines[y].Reset(b.pen)
	}
	b.renumber(top, bottom)
	b.logger.Debug("rows scrolled up", "top", top, "bottom", bottom, "n", n)
}

func (b *Buffer) rotateDown(top, bottom, n int) {
	height := bottom - top + 1
	if n < 1 || height < 1 {
		return
	}
	if n > height {
		n = height
	}
	for y := bottom; y >= top+n; y-- {
		b.lines[y].Swap(b.lines[y-n])
	}
	for y := top; y < top+n; y++ {
		b.lines[y].Reset(b.pen)
	}
	b.renumber(top, bottom)
	b.logger.Debug("rows scrolled down", "top", top, "bottom", bottom, "n", n)
}

func (b *Buffer) renumber(top, bottom int) {
	for y := top; y <= bottom; y++ {
		b.lines[y].SetID(y)
	}
}

// EraseLine blanks part of the cursor row: 0 from the cursor to the end,
// 1 from the start to the cursor, 2 the whole row. Erased columns take the pen.
func (b *Buffer) EraseLine(mode int) error {
	x := b.cursor.X
	switch mode {
	case 0:
		return b.eraseColumns(b.cursor.Y, x, b.cols-x)
	case 1:
		return b.eraseColumns(b.cursor.Y, 0, x+1)
	case 2:
		b.lines[b.cursor.Y].Reset(b.pen)
		return nil
	default:
		return fmt.Errorf("unknown erase line mode %d", mode)
	}
}

// EraseDisplay blanks part of the buffer: 0 from the cursor to the end,
// 1 from the start to the cursor, 2 everything.
func (b *Buffer) EraseDisplay(mode int) error {
	switch mode {
	case 0:
		if err := b.EraseLine(0); err != nil {
			return err
		}
		for y := b.cursor.Y + 1; y < b.rows; y++ {
			b.lines[y].Reset(b.pen)
		}
	case 1:
		for y := 0; y < b.cursor.Y; y++ {
			b.lines[y].Reset(b.pen)
		}
		return b.EraseLine(1)
	case 2:
		for _, line := range b.lines {
			line.Reset(b.pen)
		}
	default:
		return fmt.Errorf("unknown erase display mode %d", mode)
	}
	return nil
}

// EraseChars blanks n columns starting at the cursor.
func (b *Buffer) EraseChars(n int) error {
	if n < 1 {
		n = 1
	}
	x := b.cursor.X
	if n > b.cols-x {
		n = b.cols - x
	}
	return b.eraseColumns(b.cursor.Y, x, n)
}

func (b *Buffer) eraseColumns(y, x, n int) error {
	line := b.lines[y]
	for col := x; col < x+n; col++ {
		if err := line.ClearColumn(col); err != nil {
			return err
		}
	}
	return line.SetAttr(x, n, b.pen)
}

// Resize changes the buffer dimensions. Rows keep their content, clipped to
// the new width. On error the buffer is unchanged.
func (b *Buffer) Resize(cols, rows int) error {
	if rows <= 0 {
		return fmt.Errorf("invalid row count %d", rows)
	}
	if cols != b.cols {
		// All rows share one width, so only the first call can fail.
		for _, line := range b.lines {
			if err := line.Resize(cols); err != nil {
				return err
			}
		}
	}
	switch {
	case rows < b.rows:
		b.lines = b.lines[:rows]
	case rows > b.rows:
		for y := b.rows; y < rows; y++ {
			r, err := row.New(y, cols, b.pen)
			if err != nil {
				return err
			}
			b.lines = append(b.lines, r)
		}
	}
	b.logger.Debug("buffer resized", "from_cols", b.cols, "from_rows", b.rows, "cols", cols, "rows", rows)
	b.cols = cols
	b.rows = rows
	b.scrollTop = 0
	b.scrollBottom = rows - 1
	b.cursor.X = clamp(b.cursor.X, 0, cols-1)
	b.cursor.Y = clamp(b.cursor.Y, 0, rows-1)
	b.wrapPending = false
	return nil
}

// Lines returns the text of every row.
func (b *Buffer) Lines() []string {
	out := make([]string, b.rows)
	for y, line := range b.lines {
		out[y] = line.Text()
	}
	return out
}

// Text returns the buffer content as logical lines: rows marked as wrapped
// are joined with the row that follows them and trailing blanks are dropped.
func (b *Buffer) Text() string {
	var out []string
	var cur strings.Builder
	for _, line := range b.lines {
		if line.Wrap() {
			cur.WriteString(line.Text())
			continue
		}
		cur.WriteString(strings.TrimRight(line.Text(), " "))
		out = append(out, cur.String())
		cur.Reset()
	}
	if cur.Len() > 0 {
		out = append(out, strings.TrimRight(cur.String(), " "))
	}
	return strings.Join(out, "\n")
}

// Snapshot returns a deep copy of the buffer.
func (b *Buffer) Snapshot() *Buffer {
	next := *b
	next.lines = make([]*row.Row, len(b.lines))
	for y, line := range b.lines {
		next.lines[y] = line.Clone()
	}
	return &next
}

// Diff returns the indexes of rows that differ from prev. Every row is
// reported when prev is nil or has other dimensions.
func (b *Buffer) Diff(prev *Buffer) []int {
	var changed []int
	full := prev == nil || prev.cols != b.cols || prev.rows != b.rows
	for y, line := range b.lines {
		if full || !line.Equal(prev.lines[y]) {
			changed = append(changed, y)
		}
	}
	return changed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
