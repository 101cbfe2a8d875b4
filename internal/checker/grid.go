package checker

import (
	"math"

	"confgrid/internal/geom"
)

// AngleGrid splits [0, π) into sectors intervals of width π/sectors,
// rotated by offset. Wrapped intervals have Low > High.
func AngleGrid(offset float64, sectors int) []Interval {
	if sectors < 1 {
		return nil
	}
	off := geom.Mod(offset, math.Pi)
	step := math.Pi / float64(sectors)
	grid := make([]Interval, sectors)
	for i := range grid {
		grid[i] = Interval{
			Low:  geom.Mod(float64(i)*step+off, math.Pi),
			High: geom.Mod(float64(i+1)*step+off, math.Pi),
		}
	}
	return grid
}

// RatioLadder lists the Apollonian ratios bounding the horizontal bands:
// 0, e^-2, e^-1.5, ..., e^2, +Inf.
func RatioLadder() []float64 {
	ladder := []float64{0}
	for i := -4; i <= 4; i++ {
		ladder = append(ladder, math.Exp(0.5*float64(i)))
	}
	return append(ladder, math.Inf(1))
}

// RatioGrid returns the consecutive intervals of RatioLadder: 10 bands, so
// a board has 2 × sectors × 10 regions.
func RatioGrid() []Interval {
	ladder := RatioLadder()
	grid := make([]Interval, 0, len(ladder)-1)
	for i := 0; i+1 < len(ladder); i++ {
		grid = append(grid, Interval{Low: ladder[i], High: ladder[i+1]})
	}
	return grid
}
