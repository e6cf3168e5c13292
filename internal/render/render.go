package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pkt.systems/gridrow/internal/row"
	"pkt.systems/gridrow/internal/screen"
	"pkt.systems/gridrow/internal/terminal"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiHome        = "\x1b[H"
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiReset       = "\x1b[0m"
)

// Cells writes cells using ANSI escapes, switching rendition only when the
// attribute changes. Trailing halves of wide glyphs emit nothing.
func Cells(w io.Writer, cells []row.Cell) error {
	var b strings.Builder
	writeCells(&b, cells)
	_, err := io.WriteString(w, b.String())
	return err
}

// Row writes every cell of r.
func Row(w io.Writer, r *row.Row) error {
	return Cells(w, r.Cells())
}

// Screen redraws the whole buffer and places the cursor.
func Screen(w io.Writer, b *screen.Buffer) error {
	if _, err := io.WriteString(w, ansiHideCursor+ansiClearScreen+ansiHome); err != nil {
		return err
	}
	rows := make([]int, b.Rows())
	for y := range rows {
		rows[y] = y
	}
	return Changed(w, b, rows)
}

// Changed redraws only the listed rows, as returned by screen.Buffer.Diff,
// and places the cursor.
func Changed(w io.Writer, b *screen.Buffer, rows []int) error {
	var out strings.Builder
	for _, y := range rows {
		line := b.Row(y)
		if line == nil {
			continue
		}
		out.WriteString(cursorPosition(y, 0))
		writeCells(&out, line.Cells())
	}
	cur := b.Cursor()
	out.WriteString(cursorPosition(cur.Y, cur.X))
	out.WriteString(ansiShowCursor)
	_, err := io.WriteString(w, out.String())
	return err
}

func writeCells(b *strings.Builder, cells []row.Cell) {
	if len(cells) == 0 {
		return
	}
	current := terminal.Attr{Mode: -1, FG: ^uint32(0), BG: ^uint32(0)}
	for _, c := range cells {
		if c.Trailing() {
			continue
		}
		if c.Attr != current {
			b.WriteString(sgr(c.Attr))
			current = c.Attr
		}
		switch {
		case c.Attr.Has(terminal.ModeHidden):
			b.WriteString(strings.Repeat(" ", c.Width()))
		case c.Empty():
			b.WriteByte(' ')
		default:
			b.WriteString(c.Glyph)
		}
	}
	b.WriteString(ansiReset)
}

func cursorPosition(y, x int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

func sgr(attr terminal.Attr) string {
	codes := []string{"0"}
	if attr.Has(terminal.ModeBold) {
		codes = append(codes, "1")
	}
	if attr.Has(terminal.ModeFaint) {
		codes = append(codes, "2")
	}
	if attr.Has(terminal.ModeItalic) {
		codes = append(codes, "3")
	}
	if attr.Has(terminal.ModeUnderline) {
		codes = append(codes, "4")
	}
	if attr.Has(terminal.ModeBlink) {
		codes = append(codes, "5")
	}
	if attr.Has(terminal.ModeInverse) {
		codes = append(codes, "7")
	}
	if attr.Has(terminal.ModeHidden) {
		codes = append(codes, "8")
	}

	codes = append(codes, colorCode(true, attr.FG)...)
	codes = append(codes, colorCode(false, attr.BG)...)

	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCode(fg bool, val uint32) []string {
	flag := val & terminal.ColorFlagMask
	raw := val & terminal.ColorValueMask
	switch {
	case val == terminal.ColorDefault:
	case flag == terminal.ColorIndexed && raw < 8:
		base := 30
		if !fg {
			base = 40
		}
		return []string{strconv.Itoa(base + int(raw))}
	case flag == terminal.ColorIndexed && raw < 16:
		base := 90
		if !fg {
			base = 100
		}
		return []string{strconv.Itoa(base + int(raw) - 8)}
	case flag == terminal.ColorIndexed:
		if fg {
			return []string{"38", "5", strconv.FormatUint(uint64(raw&0xff), 10)}
		}
		return []string{"48", "5", strconv.FormatUint(uint64(raw&0xff), 10)}
	case flag == terminal.ColorTrue:
		r := (raw >> 16) & 0xff
		g := (raw >> 8) & 0xff
		b := raw & 0xff
		if fg {
			return []string{"38", "2", strconv.FormatUint(uint64(r), 10), strconv.FormatUint(uint64(g), 10), strconv.FormatUint(uint64(b), 10)}
		}
		return []string{"48", "2", strconv.FormatUint(uint64(r), 10), strconv.FormatUint(uint64(g), 10), strconv.FormatUint(uint64(b), 10)}
	}
	if fg {
		return []string{"39"}
	}
	return []string{"49"}
}
