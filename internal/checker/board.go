package checker

import (
	"fmt"
	"image/color"

	"confgrid/internal/geom"
)

// Board is one frame of the checkerboard: the colored regions and every
// boundary curve to outline.
type Board struct {
	Regions    []Region
	Boundaries []geom.Boundary
	Foci       [2]geom.Point
}

// MakeCheckerboard combines the two pencils. Every (band, sector) cell
// contributes two regions, one per lobe of the sector's symmetric
// difference, both painted with the cell's parity color.
func MakeCheckerboard(angles, ratios []Interval, focus1, focus2 geom.Point, pal Palette) (Board, error) {
	vBounds, vRegions, err := VerticalRegions(angles)
	if err != nil {
		return Board{}, err
	}
	hBounds, hRegions := HorizontalRegions(ratios, focus1, focus2)

	b := Board{
		Regions:    make([]Region, 0, 2*len(vRegions)*len(hRegions)),
		Boundaries: append(vBounds, hBounds...),
		Foci:       [2]geom.Point{focus1, focus2},
	}
	for _, h := range hRegions {
		band := []Constraint{Above(h.Lower)}
		if !h.Upper.IsPoint() {
			band = append(band, Below(h.Upper))
		}
		for _, v := range vRegions {
			key := parity(h.Parity + v.Parity)
			lobe1 := append([]Constraint{Below(v.Lower), Above(v.Upper)}, band...)
			lobe2 := append([]Constraint{Above(v.Lower), Below(v.Upper)}, band...)
			b.Regions = append(b.Regions,
				Region{Constraints: lobe1, Parity: key, Color: pal[key]},
				Region{Constraints: lobe2, Parity: key, Color: pal[key]},
			)
		}
	}
	return b, nil
}

// Locate returns the first region containing p and its index.
func (b Board) Locate(p geom.Point) (Region, int, bool) {
	for i, r := range b.Regions {
		if r.Contains(p) {
			return r, i, true
		}
	}
	return Region{}, -1, false
}

// ColorAt returns the color painted at p, or false on a boundary.
func (b Board) ColorAt(p geom.Point) (color.Color, bool) {
	r, _, ok := b.Locate(p)
	if !ok {
		return nil, false
	}
	return r.Color, true
}

// Frame builds the board for one angular offset of the elliptic pencil.
func Frame(offset float64, cfg Config) (Board, error) {
	if err := cfg.Validate(); err != nil {
		return Board{}, err
	}
	b, err := MakeCheckerboard(AngleGrid(offset, cfg.Sectors), RatioGrid(), EllipticFocus1, EllipticFocus2, cfg.Palette)
	if err != nil {
		return Board{}, fmt.Errorf("checker: offset %v: %w", offset, err)
	}
	return b, nil
}
