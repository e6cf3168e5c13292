package protocol

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"pkt.systems/gridrow/internal/row"
	"pkt.systems/gridrow/internal/terminal"
)

// Row message fields.
const (
	fieldRowID    protowire.Number = 1
	fieldRowWidth protowire.Number = 2
	fieldRowWrap  protowire.Number = 3
	fieldRowGlyph protowire.Number = 4
	fieldRowRun   protowire.Number = 5
)

// Glyph message fields.
const (
	fieldGlyphColumn protowire.Number = 1
	fieldGlyphText   protowire.Number = 2
	fieldGlyphWide   protowire.Number = 3
)

// Run message fields.
const (
	fieldRunMode protowire.Number = 1
	fieldRunFG   protowire.Number = 2
	fieldRunBG   protowire.Number = 3
	fieldRunLen  protowire.Number = 4
)

// ErrMalformed reports an encoded row that cannot be decoded.
var ErrMalformed = errors.New("malformed row message")

type glyphMsg struct {
	column int
	text   string
	wide   bool
}

// EncodeRow serializes r in protobuf wire format. Only non-blank columns
// are written; attributes are written as runs.
func EncodeRow(r *row.Row) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldRowID, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(r.ID())))
	b = protowire.AppendTag(b, fieldRowWidth, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Width()))
	if r.Wrap() {
		b = protowire.AppendTag(b, fieldRowWrap, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	for col, c := range r.Cells() {
		if c.Empty() || c.Trailing() {
			continue
		}
		var m []byte
		m = protowire.AppendTag(m, fieldGlyphColumn, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(col))
		m = protowire.AppendTag(m, fieldGlyphText, protowire.BytesType)
		m = protowire.AppendString(m, c.Glyph)
		if c.Wide() {
			m = protowire.AppendTag(m, fieldGlyphWide, protowire.VarintType)
			m = protowire.AppendVarint(m, protowire.EncodeBool(true))
		}
		b = protowire.AppendTag(b, fieldRowGlyph, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	for _, run := range r.Runs() {
		var m []byte
		m = protowire.AppendTag(m, fieldRunMode, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(uint16(run.Attr.Mode)))
		m = protowire.AppendTag(m, fieldRunFG, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(run.Attr.FG))
		m = protowire.AppendTag(m, fieldRunBG, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(run.Attr.BG))
		m = protowire.AppendTag(m, fieldRunLen, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(run.Len))
		b = protowire.AppendTag(b, fieldRowRun, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	return b
}

// DecodeRow rebuilds a row from EncodeRow output. Content is applied through
// the row API, so inconsistent input fails with the row's own errors.
func DecodeRow(data []byte) (*row.Row, error) {
	var (
		id     int
		width  int
		wrap   bool
		glyphs []glyphMsg
		runs   []row.Run
	)
	err := walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		switch {
		case num == fieldRowID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			id = int(protowire.DecodeZigZag(v))
			return n, nil
		case num == fieldRowWidth && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			width = int(min(v, uint64(row.MaxWidth)+1))
			return n, nil
		case num == fieldRowWrap && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			wrap = protowire.DecodeBool(v)
			return n, nil
		case num == fieldRowGlyph && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return n, nil
			}
			g, err := decodeGlyph(m)
			if err != nil {
				return 0, err
			}
			glyphs = append(glyphs, g)
			return n, nil
		case num == fieldRowRun && typ == protowire.BytesType:
			m, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return n, nil
			}
			run, err := decodeRun(m)
			if err != nil {
				return 0, err
			}
			runs = append(runs, run)
			return n, nil
		default:
			return protowire.ConsumeFieldValue(num, typ, data), nil
		}
	})
	if err != nil {
		return nil, err
	}

	r, err := row.New(id, width, terminal.DefaultAttr)
	if err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	col := 0
	for _, run := range runs {
		if err := r.SetAttr(col, run.Len, run.Attr); err != nil {
			return nil, fmt.Errorf("decode row run at column %d: %w", col, err)
		}
		col += run.Len
	}
	if col != width {
		return nil, fmt.Errorf("%w: runs cover %d of %d columns", ErrMalformed, col, width)
	}
	for _, g := range glyphs {
		if err := r.SetGlyph(g.column, g.text, g.wide); err != nil {
			return nil, fmt.Errorf("decode row glyph: %w", err)
		}
	}
	r.SetWrap(wrap)
	return r, nil
}

func decodeGlyph(data []byte) (glyphMsg, error) {
	var g glyphMsg
	err := walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		switch {
		case num == fieldGlyphColumn && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			g.column = int(min(v, uint64(row.MaxWidth)))
			return n, nil
		case num == fieldGlyphText && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			g.text = s
			return n, nil
		case num == fieldGlyphWide && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			g.wide = protowire.DecodeBool(v)
			return n, nil
		default:
			return protowire.ConsumeFieldValue(num, typ, data), nil
		}
	})
	if err == nil && g.text == "" {
		err = fmt.Errorf("%w: glyph at column %d has no text", ErrMalformed, g.column)
	}
	return g, err
}

func decodeRun(data []byte) (row.Run, error) {
	var run row.Run
	err := walk(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		if typ != protowire.VarintType {
			return protowire.ConsumeFieldValue(num, typ, data), nil
		}
		v, n := protowire.ConsumeVarint(data)
		switch num {
		case fieldRunMode:
			run.Attr.Mode = int16(uint16(v))
		case fieldRunFG:
			run.Attr.FG = uint32(v)
		case fieldRunBG:
			run.Attr.BG = uint32(v)
		case fieldRunLen:
			run.Len = int(min(v, uint64(row.MaxWidth)+1))
		}
		return n, nil
	})
	if err == nil && run.Len < 1 {
		err = fmt.Errorf("%w: empty attribute run", ErrMalformed)
	}
	return run, err
}

// walk calls fn for every field in data. fn returns the number of bytes of
// the field value it consumed, or a negative protowire error code.
func walk(data []byte, fn func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]
		n, err := fn(num, typ, data)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %w", ErrMalformed, num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return nil
}
