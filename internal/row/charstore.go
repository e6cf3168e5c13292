package row

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Kind tags the content of a column.
type Kind uint8

const (
	// KindEmpty is a blank column.
	KindEmpty Kind = iota
	// KindNarrow is a glyph occupying one column.
	KindNarrow
	// KindWideLead is the first column of a two-column glyph.
	KindWideLead
	// KindWideTrail is the placeholder column following a KindWideLead.
	KindWideTrail
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNarrow:
		return "narrow"
	case KindWideLead:
		return "wide-lead"
	case KindWideTrail:
		return "wide-trail"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Entry is the content of one column. Glyph is a single grapheme cluster
// for narrow and lead entries and empty otherwise.
type Entry struct {
	Kind  Kind
	Glyph string
}

// Text returns what the entry contributes to extracted text.
func (e Entry) Text() string {
	switch e.Kind {
	case KindNarrow, KindWideLead:
		return e.Glyph
	case KindWideTrail:
		return ""
	default:
		return " "
	}
}

// CharStore holds the character content of one row.
//
// A KindWideTrail entry only ever follows a KindWideLead entry. Every edit
// that touches one half of a wide glyph clears the other half too.
type CharStore struct {
	entries []Entry
	wrap    bool
}

// NewCharStore returns a store of width empty columns.
func NewCharStore(width int) CharStore {
	if width < 0 {
		width = 0
	}
	return CharStore{entries: make([]Entry, width)}
}

// Width returns the number of columns.
func (c *CharStore) Width() int {
	return len(c.entries)
}

// At returns the entry at col.
func (c *CharStore) At(col int) (Entry, error) {
	if err := c.checkColumn(col); err != nil {
		return Entry{}, err
	}
	return c.entries[col], nil
}

// SetGlyph writes glyph at col, as a lead and trail pair when wide is set.
// Any wide glyph partially covered by the write is cleared entirely. A wide
// write at the last column is rejected with ErrWidthViolation and leaves
// the store unchanged. An empty glyph clears the column.
func (c *CharStore) SetGlyph(col int, glyph string, wide bool) error {
	if err := c.checkColumn(col); err != nil {
		return err
	}
	if glyph == "" {
		c.release(col)
		return nil
	}
	if !wide {
		c.release(col)
		c.entries[col] = Entry{Kind: KindNarrow, Glyph: glyph}
		return nil
	}
	if col == len(c.entries)-1 {
		return fmt.Errorf("%w: %q at column %d of %d", ErrWidthViolation, glyph, col, len(c.entries))
	}
	c.release(col)
	c.release(col + 1)
	c.entries[col] = Entry{Kind: KindWideLead, Glyph: glyph}
	c.entries[col+1] = Entry{Kind: KindWideTrail}
	return nil
}

// Put writes glyph at col, measuring its display width. It returns the
// number of columns consumed.
func (c *CharStore) Put(col int, glyph string) (int, error) {
	wide := runewidth.StringWidth(glyph) >= 2
	if err := c.SetGlyph(col, glyph, wide); err != nil {
		return 0, err
	}
	if wide {
		return 2, nil
	}
	return 1, nil
}

// WriteString writes s cluster by cluster starting at col and returns the
// column after the last glyph written. On error the returned column is
// where writing stopped.
func (c *CharStore) WriteString(col int, s string) (int, error) {
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if col >= len(c.entries) {
			return col, fmt.Errorf("%w: text continues past column %d", ErrOutOfRange, len(c.entries))
		}
		n, err := c.Put(col, cluster)
		if err != nil {
			return col, err
		}
		col += n
	}
	return col, nil
}

// Clear empties col. A wide glyph is cleared as a pair.
func (c *CharStore) Clear(col int) error {
	if err := c.checkColumn(col); err != nil {
		return err
	}
	c.release(col)
	return nil
}

// ClearRange empties count columns starting at col.
func (c *CharStore) ClearRange(col, count int) error {
	if err := c.checkRange(col, count); err != nil {
		return err
	}
	for x := col; x < col+count; x++ {
		c.release(x)
	}
	return nil
}

// Reset empties every column and drops the wrap flag. It reports whether
// anything changed.
func (c *CharStore) Reset() bool {
	changed := c.wrap
	c.wrap = false
	for i := range c.entries {
		if c.entries[i].Kind != KindEmpty {
			c.entries[i] = Entry{}
			changed = true
		}
	}
	return changed
}

// Resize truncates or pads the store to width. A lead left without its
// trail at the new last column is cleared.
func (c *CharStore) Resize(width int) {
	if width < 0 {
		width = 0
	}
	cur := len(c.entries)
	switch {
	case width < cur:
		if width > 0 && c.entries[width-1].Kind == KindWideLead {
			c.entries[width-1] = Entry{}
		}
		c.entries = slices.Clip(c.entries[:width])
	case width > cur:
		c.entries = append(c.entries, make([]Entry, width-cur)...)
	}
}

// Text returns the text of count columns starting at start.
func (c *CharStore) Text(start, count int) (string, error) {
	if err := c.checkRange(start, count); err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(count)
	for _, e := range c.entries[start : start+count] {
		b.WriteString(e.Text())
	}
	return b.String(), nil
}

// Wrap reports whether the row continues onto the next row.
func (c *CharStore) Wrap() bool {
	return c.wrap
}

// SetWrap sets the continuation flag.
func (c *CharStore) SetWrap(wrap bool) {
	c.wrap = wrap
}

// Equal reports whether both stores hold the same entries and wrap flag.
func (c *CharStore) Equal(o *CharStore) bool {
	return c.wrap == o.wrap && slices.Equal(c.entries, o.entries)
}

// Clone returns a deep copy.
func (c *CharStore) Clone() CharStore {
	return CharStore{entries: slices.Clone(c.entries), wrap: c.wrap}
}

// release empties col together with its wide partner, if any.
func (c *CharStore) release(col int) {
	switch c.entries[col].Kind {
	case KindWideLead:
		if col+1 < len(c.entries) && c.entries[col+1].Kind == KindWideTrail {
			c.entries[col+1] = Entry{}
		}
	case KindWideTrail:
		if col > 0 && c.entries[col-1].Kind == KindWideLead {
			c.entries[col-1] = Entry{}
		}
	}
	c.entries[col] = Entry{}
}

func (c *CharStore) checkColumn(col int) error {
	if col < 0 || col >= len(c.entries) {
		return fmt.Errorf("%w: column %d, width %d", ErrOutOfRange, col, len(c.entries))
	}
	return nil
}

func (c *CharStore) checkRange(start, count int) error {
	if start < 0 || count < 0 || start+count > len(c.entries) {
		return fmt.Errorf("%w: columns [%d,%d), width %d", ErrOutOfRange, start, start+count, len(c.entries))
	}
	return nil
}
