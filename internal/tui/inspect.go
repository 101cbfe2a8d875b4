package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshInspect lists the constraints of the region under the inspect
// point with their current values.
func (m *Model) refreshInspect() {
	p := m.inspectPoint()
	r, idx, ok := m.board.Locate(p)
	if !ok {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showInspect = false
		m.status = fmt.Sprintf("no region at (%.3f, %.3f): on a boundary", p.X, p.Y)
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "boundary", Width: 10},
		{Title: "want", Width: 6},
		{Title: "value", Width: 12},
		{Title: "holds", Width: 6},
	}
	rows := make([]table.Row, 0, len(r.Constraints))
	for i, c := range r.Constraints {
		want := "> 0"
		if c.Sign < 0 {
			want = "< 0"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			c.Boundary.Shape().Kind.String(),
			want,
			fmt.Sprintf("%.4g", c.Boundary.Eval(p)),
			strconv.FormatBool(c.Holds(p)),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.status = fmt.Sprintf("region %d  parity %d  at (%.3f, %.3f)", idx, r.Parity, p.X, p.Y)
}
