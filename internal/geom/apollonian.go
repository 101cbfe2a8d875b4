package geom

import "math"

// ApollonianCircle is the locus |p-Focus1|² = Ratio·|p-Focus2|². Ratio 0
// collapses it onto Focus1 and Ratio +Inf onto Focus2. Its orientation is
// fixed: Eval grows with the ratio of squared distances.
type ApollonianCircle struct {
	Focus1 Point
	Focus2 Point
	Ratio  float64
}

func NewApollonianCircle(focus1, focus2 Point, ratio float64) *ApollonianCircle {
	return &ApollonianCircle{Focus1: focus1, Focus2: focus2, Ratio: ratio}
}

func (a *ApollonianCircle) IsPoint() bool {
	return a.Ratio == 0 || math.IsInf(a.Ratio, 1)
}

func (a *ApollonianCircle) Eval(p Point) float64 {
	switch {
	case a.Ratio == 0:
		return norm2(p.Minus(a.Focus1))
	case math.IsInf(a.Ratio, 1):
		return norm2(p.Minus(a.Focus2))
	}
	return norm2(p.Minus(a.Focus1)) - a.Ratio*norm2(p.Minus(a.Focus2))
}

// Shape returns the focus for the degenerate ratios, the perpendicular
// bisector of the foci for ratio 1, and the proper circle otherwise.
func (a *ApollonianCircle) Shape() Shape {
	k := a.Ratio
	switch {
	case k == 0:
		return Shape{Kind: KindPoint, Center: a.Focus1}
	case math.IsInf(k, 1):
		return Shape{Kind: KindPoint, Center: a.Focus2}
	case k == 1:
		l := NewLine(a.Focus2.Minus(a.Focus1), (norm2(a.Focus2)-norm2(a.Focus1))/2)
		return l.Shape()
	}
	c := a.Focus1.Minus(a.Focus2.Times(k)).Times(1 / (1 - k))
	r2 := norm2(c) - (norm2(a.Focus1)-k*norm2(a.Focus2))/(1-k)
	return Shape{Kind: KindCircle, Center: c, Radius: math.Sqrt(math.Max(r2, 0))}
}
