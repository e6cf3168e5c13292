package row

import (
	"fmt"
	"slices"
	"sort"

	"pkt.systems/gridrow/internal/terminal"
)

// Run is a span of consecutive columns sharing one attribute.
type Run struct {
	Attr terminal.Attr
	Len  int
}

// AttrStore holds the attributes of one row as maximal runs. Run lengths
// sum to the width, every length is positive and no two neighbouring runs
// share an attribute.
type AttrStore struct {
	runs []Run

	// ends[i] is the column after runs[i]; nil when stale.
	ends []int
}

// NewAttrStore returns a store of width columns filled with fill.
func NewAttrStore(width int, fill terminal.Attr) AttrStore {
	var a AttrStore
	if width > 0 {
		a.runs = []Run{{Attr: fill, Len: width}}
	}
	return a
}

// Width returns the number of columns covered.
func (a *AttrStore) Width() int {
	w := 0
	for _, r := range a.runs {
		w += r.Len
	}
	return w
}

// Len returns the number of runs.
func (a *AttrStore) Len() int {
	return len(a.runs)
}

// Runs returns a copy of the run sequence.
func (a *AttrStore) Runs() []Run {
	return slices.Clone(a.runs)
}

// At returns the attribute of col.
func (a *AttrStore) At(col int) (terminal.Attr, error) {
	ends := a.index()
	width := 0
	if len(ends) > 0 {
		width = ends[len(ends)-1]
	}
	if col < 0 || col >= width {
		return terminal.Attr{}, fmt.Errorf("%w: column %d, width %d", ErrOutOfRange, col, width)
	}
	i := sort.SearchInts(ends, col+1)
	return a.runs[i].Attr, nil
}

// Set applies attr to count columns starting at start, splitting and
// merging runs so the store stays maximally merged.
func (a *AttrStore) Set(start, count int, attr terminal.Attr) error {
	width := a.Width()
	if start < 0 || count < 0 || start+count > width {
		return fmt.Errorf("%w: columns [%d,%d), width %d", ErrOutOfRange, start, start+count, width)
	}
	if count == 0 {
		return nil
	}
	end := start + count
	out := make([]Run, 0, len(a.runs)+2)
	col := 0
	inserted := false
	for _, r := range a.runs {
		rs, re := col, col+r.Len
		col = re
		if rs < start {
			out = appendRun(out, r.Attr, min(re, start)-rs)
		}
		if !inserted && re > start {
			out = appendRun(out, attr, count)
			inserted = true
		}
		if re > end {
			out = appendRun(out, r.Attr, re-max(rs, end))
		}
	}
	a.runs = out
	a.ends = nil
	return nil
}

// Resize truncates or extends the store to width. Added columns take fill.
func (a *AttrStore) Resize(width int, fill terminal.Attr) {
	if width < 0 {
		width = 0
	}
	cur := a.Width()
	switch {
	case width < cur:
		out := make([]Run, 0, len(a.runs))
		col := 0
		for _, r := range a.runs {
			if col >= width {
				break
			}
			out = appendRun(out, r.Attr, min(r.Len, width-col))
			col += r.Len
		}
		a.runs = out
	case width > cur:
		a.runs = appendRun(a.runs, fill, width-cur)
	default:
		return
	}
	a.ends = nil
}

// Reset replaces every run with a single run of fill. It reports whether
// anything changed.
func (a *AttrStore) Reset(fill terminal.Attr) bool {
	width := a.Width()
	if width == 0 {
		return false
	}
	if len(a.runs) == 1 && a.runs[0].Attr == fill {
		return false
	}
	a.runs = []Run{{Attr: fill, Len: width}}
	a.ends = nil
	return true
}

// Equal reports whether both stores hold the same run sequence.
func (a *AttrStore) Equal(o *AttrStore) bool {
	return slices.Equal(a.runs, o.runs)
}

// Clone returns a deep copy.
func (a *AttrStore) Clone() AttrStore {
	return AttrStore{runs: slices.Clone(a.runs)}
}

func (a *AttrStore) index() []int {
	if a.ends != nil || len(a.runs) == 0 {
		return a.ends
	}
	ends := make([]int, len(a.runs))
	col := 0
	for i, r := range a.runs {
		col += r.Len
		ends[i] = col
	}
	a.ends = ends
	return ends
}

func appendRun(runs []Run, attr terminal.Attr, n int) []Run {
	if n <= 0 {
		return runs
	}
	if last := len(runs) - 1; last >= 0 && runs[last].Attr == attr {
		runs[last].Len += n
		return runs
	}
	return append(runs, Run{Attr: attr, Len: n})
}
