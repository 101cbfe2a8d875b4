package checker

import (
	"fmt"
	"math"

	"confgrid/internal/geom"
)

// Foci of the elliptic pencil. The angle mapping in geom.Cot assumes them.
var (
	EllipticFocus1 = geom.Pt(0, 1)
	EllipticFocus2 = geom.Pt(0, -1)
)

// GetVerticalBound returns the elliptic-pencil member whose center has the
// given x-coordinate. ±Inf are the two orientations of the line x = 0.
func GetVerticalBound(centerX float64) geom.Orientable {
	switch {
	case math.IsInf(centerX, 1):
		return geom.NewLine(geom.Pt(-1, 0), 0)
	case math.IsInf(centerX, -1):
		return geom.NewLine(geom.Pt(1, 0), 0)
	}
	return geom.NewCircleThrough(geom.Pt(centerX, 0), EllipticFocus1)
}

// VerticalRegions builds the elliptic pencil for the given angle intervals.
// Each pair is oriented so that the symmetric difference of the two
// boundaries is exactly the angular sector between them. The returned
// boundaries are the lower bound of every interval. A full-turn interval,
// as AngleGrid yields for a single sector, pairs one member with its own
// flip so the two lobes are its two sides.
func VerticalRegions(angles []Interval) ([]geom.Boundary, []BoundedRegion, error) {
	boundaries := make([]geom.Boundary, 0, len(angles))
	regions := make([]BoundedRegion, 0, len(angles))
	for i, iv := range angles {
		lowerX, err := geom.Cot(iv.Low)
		if err != nil {
			return nil, nil, fmt.Errorf("vertical region %d: %w", i, err)
		}
		upperX, err := geom.Cot(iv.High)
		if err != nil {
			return nil, nil, fmt.Errorf("vertical region %d: %w", i, err)
		}
		lower := GetVerticalBound(lowerX)
		var upper geom.Orientable
		if fullTurn(iv) {
			upper = GetVerticalBound(lowerX)
			upper.FlipInsideOut()
		} else {
			upper = GetVerticalBound(upperX)
			normalize(lower, upper)
		}
		boundaries = append(boundaries, lower)
		regions = append(regions, BoundedRegion{Lower: lower, Upper: upper, Parity: parity(i)})
	}
	return boundaries, regions, nil
}

// fullTurnTol absorbs the rounding of Mod(offset+π, π) against offset.
const fullTurnTol = 1e-12

// fullTurn reports whether both ends of iv name the same pencil member.
func fullTurn(iv Interval) bool {
	w := math.Abs(iv.High - iv.Low)
	return w < fullTurnTol || math.Pi-w < fullTurnTol
}

// normalize applies the orientation flips. An interval that wraps past π
// has an upper circle centered right of the lower one; a lower line with
// normal +x is the π member starting a sector; an upper line with normal
// -x is the 0 member closing one and is read as π.
func normalize(lower, upper geom.Orientable) {
	ls, us := lower.Shape(), upper.Shape()
	switch {
	case ls.Kind == geom.KindCircle && us.Kind == geom.KindCircle:
		if us.Center.X > ls.Center.X {
			upper.FlipInsideOut()
		}
	case ls.Kind == geom.KindLine && us.Kind == geom.KindCircle:
		if ls.Normal.X > 0 {
			lower.FlipInsideOut()
		}
	case ls.Kind == geom.KindCircle && us.Kind == geom.KindLine:
		if us.Normal.X < 0 {
			upper.FlipInsideOut()
		}
	}
}
