package protocol

import "pkt.systems/gridrow/internal/row"

// RowDump is the JSON view of a row used for inspection.
type RowDump struct {
	ID    int       `json:"id"`
	Width int       `json:"width"`
	Wrap  bool      `json:"wrap,omitempty"`
	Text  string    `json:"text"`
	Wide  []int     `json:"wide,omitempty"`
	Runs  []RunDump `json:"runs"`
}

// RunDump is the JSON view of an attribute run.
type RunDump struct {
	Start int    `json:"start"`
	Len   int    `json:"len"`
	Attr  string `json:"attr"`
}

// DumpRow describes r for human inspection.
func DumpRow(r *row.Row) RowDump {
	d := RowDump{
		ID:    r.ID(),
		Width: r.Width(),
		Wrap:  r.Wrap(),
		Text:  r.Text(),
	}
	for col, c := range r.Cells() {
		if c.Wide() {
			d.Wide = append(d.Wide, col)
		}
	}
	start := 0
	for _, run := range r.Runs() {
		d.Runs = append(d.Runs, RunDump{Start: start, Len: run.Len, Attr: run.Attr.String()})
		start += run.Len
	}
	return d
}
