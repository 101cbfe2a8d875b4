package geom

import "fmt"

// Kind tags the geometric variant of a boundary's zero set.
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindPoint:
		return "point"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Shape describes the zero set of a boundary. Only the fields of its Kind
// are meaningful: Normal/Offset for lines, Center/Radius for circles,
// Center for points.
type Shape struct {
	Kind   Kind
	Normal Point
	Offset float64
	Center Point
	Radius float64
}

// Boundary is a curve given by a signed implicit equation. Eval is zero on
// the curve and has a stable sign on either side of it.
type Boundary interface {
	IsPoint() bool
	Eval(p Point) float64
	Shape() Shape
}

// Orientable is a boundary whose sign convention can be toggled.
type Orientable interface {
	Boundary
	FlipInsideOut()
	Inverted() bool
}

func sign(inverted bool, v float64) float64 {
	if inverted {
		return -v
	}
	return v
}
