package geom

import "math"

// Circle is a canonical circle with a center and a non-negative radius.
// Eval is negative inside, positive outside, unless inverted.
type Circle struct {
	Center Point
	Radius float64

	// power is |Center|² - Radius², the constant term of the expanded
	// equation |p|² - 2 Center·p + power.
	power    float64
	inverted bool
}

// NewCircle returns the circle with the given center and radius. Negative
// radii are clamped to zero.
func NewCircle(center Point, radius float64) *Circle {
	if radius < 0 {
		radius = 0
	}
	return &Circle{Center: center, Radius: radius, power: norm2(center) - radius*radius}
}

// NewCircleThrough returns the circle centered at center passing through q.
// The constant term is derived from q directly, which keeps Eval's sign
// exact for circles whose center lies very far from the origin.
func NewCircleThrough(center, q Point) *Circle {
	d := center.Minus(q)
	return &Circle{
		Center: center,
		Radius: math.Hypot(d.X, d.Y),
		power:  2*dot(center, q) - norm2(q),
	}
}

func (c *Circle) IsPoint() bool { return c.Radius == 0 }

func (c *Circle) Eval(p Point) float64 {
	return sign(c.inverted, norm2(p)-2*dot(c.Center, p)+c.power)
}

func (c *Circle) Shape() Shape {
	if c.IsPoint() {
		return Shape{Kind: KindPoint, Center: c.Center}
	}
	return Shape{Kind: KindCircle, Center: c.Center, Radius: c.Radius}
}

func (c *Circle) FlipInsideOut() { c.inverted = !c.inverted }

func (c *Circle) Inverted() bool { return c.inverted }
