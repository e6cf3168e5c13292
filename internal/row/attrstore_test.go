package row

import (
	"errors"
	"math/rand/v2"
	"testing"

	"pkt.systems/gridrow/internal/terminal"
)

func TestAttrStoreSetRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	palette := []terminal.Attr{attrDefault, attrBold, attrRed, attrBold.With(terminal.ModeItalic)}

	const width = 40
	a := NewAttrStore(width, attrDefault)
	shadow := make([]terminal.Attr, width)
	for i := range shadow {
		shadow[i] = attrDefault
	}

	for step := 0; step < 500; step++ {
		start := rng.IntN(width)
		count := rng.IntN(width - start + 1)
		attr := palette[rng.IntN(len(palette))]
		if err := a.Set(start, count, attr); err != nil {
			t.Fatalf("step %d: Set(%d,%d): %v", step, start, count, err)
		}
		for x := start; x < start+count; x++ {
			shadow[x] = attr
		}

		if got := a.Width(); got != width {
			t.Fatalf("step %d: width = %d", step, got)
		}
		runs := a.Runs()
		for i, r := range runs {
			if r.Len < 1 {
				t.Fatalf("step %d: run %d has length %d", step, i, r.Len)
			}
			if i > 0 && runs[i-1].Attr == r.Attr {
				t.Fatalf("step %d: runs %d and %d share %v: %+v", step, i-1, i, r.Attr, runs)
			}
		}
		for x := 0; x < width; x++ {
			got, err := a.At(x)
			if err != nil {
				t.Fatalf("step %d: At(%d): %v", step, x, err)
			}
			if got != shadow[x] {
				t.Fatalf("step %d: At(%d) = %v, want %v", step, x, got, shadow[x])
			}
		}
	}
}

func TestAttrStoreOutOfRange(t *testing.T) {
	a := NewAttrStore(5, attrDefault)
	if _, err := a.At(5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("At(5) err = %v", err)
	}
	if _, err := a.At(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("At(-1) err = %v", err)
	}
	if err := a.Set(3, 3, attrBold); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Set(3,3) err = %v", err)
	}
	if a.Len() != 1 {
		t.Fatalf("failed Set modified runs: %+v", a.Runs())
	}
	if err := a.Set(5, 0, attrBold); err != nil {
		t.Fatalf("Set(5,0) err = %v", err)
	}
}

func TestAttrStoreResize(t *testing.T) {
	a := NewAttrStore(6, attrDefault)
	_ = a.Set(2, 2, attrBold)
	a.Resize(3, attrRed)
	assertRuns(t, a.Runs(), []Run{{attrDefault, 2}, {attrBold, 1}})

	a.Resize(5, attrBold)
	assertRuns(t, a.Runs(), []Run{{attrDefault, 2}, {attrBold, 3}})

	a.Resize(7, attrRed)
	assertRuns(t, a.Runs(), []Run{{attrDefault, 2}, {attrBold, 3}, {attrRed, 2}})
	if got, _ := a.At(6); got != attrRed {
		t.Fatalf("At(6) = %v after grow", got)
	}

	a.Resize(2, attrRed)
	assertRuns(t, a.Runs(), []Run{{attrDefault, 2}})
}

func TestAttrStoreResetAndEqual(t *testing.T) {
	a := NewAttrStore(4, attrDefault)
	b := NewAttrStore(4, attrDefault)
	_ = a.Set(0, 2, attrRed)
	if a.Equal(&b) {
		t.Fatalf("stores equal after Set")
	}
	if !a.Reset(attrDefault) {
		t.Fatalf("Reset reported no change")
	}
	if !a.Equal(&b) {
		t.Fatalf("stores differ after Reset: %+v", a.Runs())
	}
	if a.Reset(attrDefault) {
		t.Fatalf("second Reset reported change")
	}
}

func TestAttrStoreIndexDroppedOnMutation(t *testing.T) {
	a := NewAttrStore(4, attrDefault)
	if got, _ := a.At(3); got != attrDefault {
		t.Fatalf("At(3) = %v", got)
	}
	_ = a.Set(3, 1, attrBold)
	if got, _ := a.At(3); got != attrBold {
		t.Fatalf("At(3) = %v after Set", got)
	}
	c := a.Clone()
	_ = c.Set(0, 4, attrRed)
	if got, _ := a.At(3); got != attrBold {
		t.Fatalf("clone shares runs with original")
	}
}
