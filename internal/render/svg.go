package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"confgrid/internal/checker"
	"confgrid/internal/geom"
)

const (
	boundaryStyle = "fill:none;stroke:black;stroke-width:1"
	focusStyle    = "fill:black"
	// circles wider than this many pixels are drawn as their tangent line
	// nearest to the viewport
	maxPixelRadius = 1e6
)

// WriteSVG draws the boundaries of b and its foci as a size×size SVG of
// the viewport, region fills left out.
func WriteSVG(w io.Writer, b checker.Board, vp geom.Viewport, size int) error {
	if size < 2 {
		return fmt.Errorf("%w, got %d", ErrResolution, size)
	}
	if !vp.Valid() {
		return ErrViewport
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:white")

	px := func(p geom.Point) (int, int) {
		x, y := vp.Pixel(p, size, size)
		return int(math.Round(x)), int(math.Round(y))
	}
	line := func(s geom.Shape) {
		a, c, ok := clipLine(s.Normal, s.Offset, vp)
		if !ok {
			return
		}
		x1, y1 := px(a)
		x2, y2 := px(c)
		canvas.Line(x1, y1, x2, y2, boundaryStyle)
	}

	scale := float64(size) / vp.Rect.Width()
	for _, bd := range b.Boundaries {
		s := bd.Shape()
		switch s.Kind {
		case geom.KindLine:
			line(s)
		case geom.KindCircle:
			if s.Radius*scale > maxPixelRadius {
				line(tangentNear(s, vp.Center()))
				continue
			}
			cx, cy := px(s.Center)
			canvas.Circle(cx, cy, int(math.Round(s.Radius*scale)), boundaryStyle)
		}
	}
	for _, f := range b.Foci {
		x, y := px(f)
		canvas.Circle(x, y, 3, focusStyle)
	}
	canvas.End()
	return ew.err
}

// tangentNear returns the tangent of circle s at its point closest to q.
func tangentNear(s geom.Shape, q geom.Point) geom.Shape {
	d := q.Minus(s.Center)
	if d.Magnitude() == 0 {
		d = geom.Pt(1, 0)
	}
	n := d.Unit()
	t := s.Center.Plus(n.Times(s.Radius))
	return geom.Shape{Kind: geom.KindLine, Normal: n, Offset: n.X*t.X + n.Y*t.Y}
}

// clipLine clips the line normal·p = offset (unit normal) to the viewport
// rectangle and returns the end points of the visible segment.
func clipLine(normal geom.Point, offset float64, vp geom.Viewport) (geom.Point, geom.Point, bool) {
	p0 := normal.Times(offset)
	dir := geom.Pt(-normal.Y, normal.X)
	lo, hi := math.Inf(-1), math.Inf(1)
	clip := func(p, d, from, to float64) bool {
		if d == 0 {
			return p >= from && p <= to
		}
		t1, t2 := (from-p)/d, (to-p)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		lo, hi = math.Max(lo, t1), math.Min(hi, t2)
		return lo <= hi
	}
	if !clip(p0.X, dir.X, vp.Min.X, vp.Max.X) || !clip(p0.Y, dir.Y, vp.Min.Y, vp.Max.Y) {
		return geom.Point{}, geom.Point{}, false
	}
	return p0.Plus(dir.Times(lo)), p0.Plus(dir.Times(hi)), true
}

// CSSColor formats c as #rrggbb.
func CSSColor(c color.Color) string {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
