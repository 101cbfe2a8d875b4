package checker

import "confgrid/internal/geom"

// HorizontalRegions builds the Apollonian pencil of the two foci for the
// given ratio intervals. No orientation pass is needed: Eval of an
// Apollonian circle is increasing in the squared-distance ratio.
func HorizontalRegions(ratios []Interval, focus1, focus2 geom.Point) ([]geom.Boundary, []BoundedRegion) {
	boundaries := make([]geom.Boundary, 0, len(ratios))
	regions := make([]BoundedRegion, 0, len(ratios))
	for i, iv := range ratios {
		lower := geom.NewApollonianCircle(focus1, focus2, iv.Low)
		upper := geom.NewApollonianCircle(focus1, focus2, iv.High)
		boundaries = append(boundaries, lower)
		regions = append(regions, BoundedRegion{Lower: lower, Upper: upper, Parity: parity(i)})
	}
	return boundaries, regions
}
