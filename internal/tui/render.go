package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"confgrid/internal/geom"
	"confgrid/internal/render"
)

// cellAspect is the height of a terminal cell over its width.
const cellAspect = 2.0

// fitViewport widens vp along one axis so that a w×h cell grid shows
// world space undistorted.
func fitViewport(vp geom.Viewport, w, h int) geom.Viewport {
	if w <= 0 || h <= 0 {
		return vp
	}
	c := vp.Center()
	screen := float64(w) / (float64(h) * cellAspect)
	vw, vh := vp.Rect.Width(), vp.Rect.Height()
	if vw/vh < screen {
		half := vh * screen / 2
		return geom.NewViewport(c.X-half, vp.Min.Y, c.X+half, vp.Max.Y)
	}
	half := vw / screen / 2
	return geom.NewViewport(vp.Min.X, c.Y-half, vp.Max.X, c.Y+half)
}

// cellToWorld maps the center of map cell (cx, cy) to world coordinates.
func (m Model) cellToWorld(cx, cy, w, h int) (geom.Point, bool) {
	if w <= 1 || h <= 1 || cx < 0 || cy < 0 || cx >= w || cy >= h {
		return geom.Point{}, false
	}
	return fitViewport(m.vp, w, h).Sample(cx, cy, w, h), true
}

// renderBoard paints each cell with the color of the region under its
// center and overlays the boundaries as braille dots on the 2x4 micro-grid.
func (m Model) renderBoard(w, h int) string {
	dv := fitViewport(m.vp, w, h)
	br := newBrailleBuf(w, h)
	if m.showBounds {
		br.setMask(render.EdgeMask(m.board.Boundaries, dv, w*2, h*4))
	}
	for _, f := range m.board.Foci {
		x, y := dv.Pixel(f, w*2, h*4)
		mx, my := int(x), int(y)
		br.setPixel(mx, my)
		br.setPixel(mx+1, my)
		br.setPixel(mx, my+1)
		br.setPixel(mx+1, my+1)
	}

	styles := make(map[string]lipgloss.Style)
	style := func(c color.Color) lipgloss.Style {
		hex := render.CSSColor(c)
		s, ok := styles[hex]
		if !ok {
			s = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Foreground(inkFg)
			styles[hex] = s
		}
		return s
	}

	lines := make([]string, h)
	var sb, run strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		var cur string
		var curStyle lipgloss.Style
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(curStyle.Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < w; x++ {
			c, ok := m.board.ColorAt(dv.Sample(x, y, w, h))
			if !ok {
				c = color.Black
			}
			glyph := ' '
			if g := br.cell(x, y); g != 0 {
				glyph = g
			}
			if m.hovering && x == m.hoverCellX && y == m.hoverCellY {
				flush()
				cur = ""
				sb.WriteString(style(c).Foreground(hoverFg).Render("+"))
				continue
			}
			if hex := render.CSSColor(c); hex != cur {
				flush()
				cur, curStyle = hex, style(c)
			}
			run.WriteRune(glyph)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
