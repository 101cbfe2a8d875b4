package geom

import "math"

// Line is the set of points p with Normal·p = Offset.
// Eval is positive on the side the normal points to, unless inverted.
type Line struct {
	Normal Point
	Offset float64

	inverted bool
}

// NewLine returns the line normal·p = offset with the normal scaled to unit
// length (the offset is scaled along with it).
func NewLine(normal Point, offset float64) *Line {
	n := math.Hypot(normal.X, normal.Y)
	if n == 0 || n == 1 {
		return &Line{Normal: normal, Offset: offset}
	}
	return &Line{Normal: Pt(normal.X/n, normal.Y/n), Offset: offset / n}
}

func (l *Line) IsPoint() bool { return false }

func (l *Line) Eval(p Point) float64 {
	return sign(l.inverted, dot(l.Normal, p)-l.Offset)
}

func (l *Line) Shape() Shape {
	return Shape{Kind: KindLine, Normal: l.Normal, Offset: l.Offset}
}

func (l *Line) FlipInsideOut() { l.inverted = !l.inverted }

func (l *Line) Inverted() bool { return l.inverted }
