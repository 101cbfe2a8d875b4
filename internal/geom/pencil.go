package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned for pencil parameters outside their range.
var ErrDomain = errors.New("geom: parameter outside domain")

// Cot maps a tangent angle a ∈ [0, π], measured at the focus (0, 1), to the
// x-coordinate of the center of the elliptic-pencil circle through (0, ±1).
// The end points map to ±Inf, where the circle degenerates to the line x = 0.
func Cot(a float64) (float64, error) {
	if math.IsNaN(a) || a < 0 || a > math.Pi {
		return 0, fmt.Errorf("%w: tangent angle a at focus must satisfy 0 <= a <= π, got %v", ErrDomain, a)
	}
	switch a {
	case 0:
		return math.Inf(1), nil
	case math.Pi:
		return math.Inf(-1), nil
	}
	return 1 / math.Tan(a), nil
}

// Mod reduces x into the closed interval [0, p] for p > 0. Values already
// in range are returned unchanged; positive multiples of p map to p and
// negative multiples to 0, as stepping by p one period at a time would.
func Mod(x, p float64) float64 {
	if 0 <= x && x <= p {
		return x
	}
	r := math.Mod(x, p)
	if x > p {
		if r == 0 {
			return p
		}
		return r
	}
	if r < 0 {
		r += p
	}
	return r
}
