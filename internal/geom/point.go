package geom

import jgeom "github.com/jbeda/geom"

// Point is an immutable position in the plane.
type Point = jgeom.Coord

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

func norm2(p Point) float64 {
	return dot(p, p)
}
