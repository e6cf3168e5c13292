package screen

import (
	"errors"
	"testing"

	"pkt.systems/gridrow/internal/row"
	"pkt.systems/gridrow/internal/terminal"
	"pkt.systems/pslog"
)

func TestWriteAndLines(t *testing.T) {
	b := newBuffer(t, 4, 2)
	if err := b.Write("ab"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := b.Lines()[0]; got != "ab  " {
		t.Fatalf("row0 = %q", got)
	}
	if c := b.Cursor(); c.X != 2 || c.Y != 0 {
		t.Fatalf("cursor = %+v", c)
	}
}

func TestWrapAndScroll(t *testing.T) {
	b := newBuffer(t, 3, 2)
	if err := b.Write("abcdefg"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := b.Lines()
	if lines[0] != "def" || lines[1] != "g  " {
		t.Fatalf("lines = %q", lines)
	}
	if !b.Row(0).Wrap() {
		t.Fatalf("row0 not marked as wrapped")
	}
	for y := 0; y < b.Rows(); y++ {
		if id := b.Row(y).ID(); id != y {
			t.Fatalf("row %d has id %d after scroll", y, id)
		}
	}
}

func TestWideGlyphWrapsAtLastColumn(t *testing.T) {
	b := newBuffer(t, 3, 2)
	if err := b.Write("ab世"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := b.Lines()
	if lines[0] != "ab " || lines[1] != "世 " {
		t.Fatalf("lines = %q", lines)
	}
	if !b.Row(0).Wrap() {
		t.Fatalf("row0 not marked as wrapped")
	}
	if got := b.Text(); got != "ab 世" {
		t.Fatalf("text = %q", got)
	}
}

func TestCRLF(t *testing.T) {
	b := newBuffer(t, 4, 3)
	if err := b.Write("one\r\ntwo\nx\ry"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := b.Lines()
	if lines[0] != "one " || lines[1] != "two " || lines[2] != "y   " {
		t.Fatalf("lines = %q", lines)
	}
	if got := b.Text(); got != "one\ntwo\ny" {
		t.Fatalf("text = %q", got)
	}
}

func TestTabStops(t *testing.T) {
	b := newBuffer(t, 10, 1)
	_ = b.Write("a\tb")
	e, _ := b.Row(0).Entry(8)
	if e.Glyph != "b" {
		t.Fatalf("cell 8 = %+v", e)
	}
}

func TestPenAppliesToWrites(t *testing.T) {
	b := newBuffer(t, 4, 1)
	red := terminal.Attr{FG: terminal.Indexed(1)}
	_ = b.Write("a")
	b.SetPen(red)
	_ = b.Write("bc")
	b.SetPen(terminal.DefaultAttr)
	_ = b.Write("d")
	runs := b.Row(0).Runs()
	if len(runs) != 3 || runs[1].Attr != red || runs[1].Len != 2 {
		t.Fatalf("runs = %+v", runs)
	}
}

func TestScrollDownAndInsertLines(t *testing.T) {
	b := newBuffer(t, 2, 3)
	_ = b.Write("aa\nbb\ncc")
	b.ScrollDown(1)
	if got := b.Lines(); got[0] != "  " || got[1] != "aa" || got[2] != "bb" {
		t.Fatalf("after ScrollDown: %q", got)
	}
	b.MoveTo(0, 1)
	b.DeleteLines(1)
	if got := b.Lines(); got[1] != "bb" || got[2] != "  " {
		t.Fatalf("after DeleteLines: %q", got)
	}
	b.InsertLines(1)
	if got := b.Lines(); got[1] != "  " || got[2] != "bb" {
		t.Fatalf("after InsertLines: %q", got)
	}
	for y := 0; y < b.Rows(); y++ {
		if b.Row(y).ID() != y {
			t.Fatalf("row %d id = %d", y, b.Row(y).ID())
		}
	}
}

func TestScrollRegion(t *testing.T) {
	b := newBuffer(t, 1, 4)
	_ = b.Write("a\nb\nc\nd")
	if err := b.SetScrollRegion(1, 2); err != nil {
		t.Fatalf("SetScrollRegion: %v", err)
	}
	b.ScrollUp(1)
	if got := b.Lines(); got[0] != "a" || got[1] != "c" || got[2] != " " || got[3] != "d" {
		t.Fatalf("lines = %q", got)
	}
	if err := b.SetScrollRegion(2, 2); err == nil {
		t.Fatalf("expected error for empty region")
	}
}

func TestEraseLineKeepsOtherColumns(t *testing.T) {
	b := newBuffer(t, 5, 1)
	_ = b.Write("hello")
	b.MoveTo(2, 0)
	bg := terminal.Attr{BG: terminal.Indexed(4)}
	b.SetPen(bg)
	if err := b.EraseLine(0); err != nil {
		t.Fatalf("EraseLine: %v", err)
	}
	if got := b.Lines()[0]; got != "he   " {
		t.Fatalf("row = %q", got)
	}
	runs := b.Row(0).Runs()
	if len(runs) != 2 || runs[1].Attr != bg || runs[1].Len != 3 {
		t.Fatalf("runs = %+v", runs)
	}
	if err := b.EraseLine(7); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestEraseCharsClearsWidePair(t *testing.T) {
	b := newBuffer(t, 6, 1)
	_ = b.Write("a世b")
	b.MoveTo(2, 0)
	if err := b.EraseChars(1); err != nil {
		t.Fatalf("EraseChars: %v", err)
	}
	if got := b.Lines()[0]; got != "a  b  " {
		t.Fatalf("row = %q", got)
	}
}

func TestEraseDisplay(t *testing.T) {
	b := newBuffer(t, 2, 3)
	_ = b.Write("aa\nbb\ncc")
	b.MoveTo(1, 1)
	if err := b.EraseDisplay(0); err != nil {
		t.Fatalf("EraseDisplay: %v", err)
	}
	if got := b.Lines(); got[0] != "aa" || got[1] != "b " || got[2] != "  " {
		t.Fatalf("lines = %q", got)
	}
	_ = b.EraseDisplay(2)
	if got := b.Text(); got != "\n\n" {
		t.Fatalf("text = %q", got)
	}
}

func TestResizeKeepsContent(t *testing.T) {
	b := newBuffer(t, 4, 2)
	_ = b.Write("ab世")
	if err := b.Resize(3, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if b.Cols() != 3 || b.Rows() != 3 {
		t.Fatalf("size = %dx%d", b.Cols(), b.Rows())
	}
	if got := b.Lines(); got[0] != "ab " || got[2] != "   " {
		t.Fatalf("lines = %q", got)
	}
	for y := 0; y < b.Rows(); y++ {
		if w := b.Row(y).Width(); w != 3 {
			t.Fatalf("row %d width = %d", y, w)
		}
	}
}

func TestResizeRejectsInvalidWidth(t *testing.T) {
	b := newBuffer(t, 4, 2)
	_ = b.Write("abcd")
	before := b.Snapshot()
	if err := b.Resize(0, 2); !errors.Is(err, row.ErrInvalidWidth) {
		t.Fatalf("err = %v, want ErrInvalidWidth", err)
	}
	if changed := b.Diff(before); len(changed) != 0 {
		t.Fatalf("failed resize changed rows %v", changed)
	}
	if err := b.Resize(4, 0); err == nil {
		t.Fatalf("expected error for zero rows")
	}
}

func TestDiffReportsChangedRows(t *testing.T) {
	b := newBuffer(t, 3, 3)
	prev := b.Snapshot()
	if changed := b.Diff(prev); len(changed) != 0 {
		t.Fatalf("unchanged buffer diff = %v", changed)
	}
	b.MoveTo(0, 1)
	_ = b.Write("x")
	changed := b.Diff(prev)
	if len(changed) != 1 || changed[0] != 1 {
		t.Fatalf("diff = %v, want [1]", changed)
	}
	if got := b.Diff(nil); len(got) != 3 {
		t.Fatalf("diff against nil = %v", got)
	}
}

func newBuffer(t *testing.T, cols, rows int) *Buffer {
	t.Helper()
	b, err := New(cols, rows, terminal.DefaultAttr, pslog.LoggerFromEnv())
	if err != nil {
		t.Fatalf("New(%d, %d): %v", cols, rows, err)
	}
	return b
}
