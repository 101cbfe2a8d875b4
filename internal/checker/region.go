package checker

import (
	"image/color"

	"confgrid/internal/geom"
)

// Interval is a pair of consecutive pencil parameters, an angle or a ratio.
type Interval struct {
	Low  float64
	High float64
}

// BoundedRegion is the strip between two consecutive members of one pencil.
type BoundedRegion struct {
	Lower  geom.Boundary
	Upper  geom.Boundary
	Parity int
}

// Constraint is the strict inequality Sign·Eval(p) > 0 against a boundary.
type Constraint struct {
	Boundary geom.Boundary
	Sign     int
}

// Above is Eval(p) > 0.
func Above(b geom.Boundary) Constraint { return Constraint{Boundary: b, Sign: 1} }

// Below is Eval(p) < 0.
func Below(b geom.Boundary) Constraint { return Constraint{Boundary: b, Sign: -1} }

func (c Constraint) Holds(p geom.Point) bool {
	v := c.Boundary.Eval(p)
	if c.Sign > 0 {
		return v > 0
	}
	return v < 0
}

func (c Constraint) String() string {
	if c.Sign > 0 {
		return c.Boundary.Shape().Kind.String() + " > 0"
	}
	return c.Boundary.Shape().Kind.String() + " < 0"
}

// Region is a conjunction of constraints painted with one color.
type Region struct {
	Constraints []Constraint
	Parity      int
	Color       color.Color
}

// Contains reports whether every constraint holds at p.
func (r Region) Contains(p geom.Point) bool {
	for _, c := range r.Constraints {
		if !c.Holds(p) {
			return false
		}
	}
	return true
}

// Palette maps a parity key to a color.
type Palette [2]color.Color

// DefaultPalette is yellow and lawn green.
func DefaultPalette() Palette {
	return Palette{
		color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
		color.RGBA{R: 0x7C, G: 0xFC, B: 0x00, A: 0xFF},
	}
}

func parity(n int) int {
	return ((n % 2) + 2) % 2
}
