package geom

import jgeom "github.com/jbeda/geom"

// Viewport is the world-space window sampled by a renderer. Pixel rows grow
// downward while world y grows upward.
type Viewport struct {
	jgeom.Rect
}

func NewViewport(minX, minY, maxX, maxY float64) Viewport {
	return Viewport{jgeom.Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}}
}

// Square returns the viewport [-half, half]².
func Square(half float64) Viewport {
	return NewViewport(-half, -half, half, half)
}

func (v Viewport) Valid() bool {
	return v.Rect.Width() > 0 && v.Rect.Height() > 0
}

// Center returns the midpoint of the window.
func (v Viewport) Center() Point {
	return Pt((v.Min.X+v.Max.X)/2, (v.Min.Y+v.Max.Y)/2)
}

// Sample maps the center of pixel (i, j) of a w×h raster into world space.
func (v Viewport) Sample(i, j, w, h int) Point {
	nx := (float64(i) + 0.5) / float64(w)
	ny := (float64(j) + 0.5) / float64(h)
	return Pt(v.Min.X+nx*v.Rect.Width(), v.Max.Y-ny*v.Rect.Height())
}

// Pixel maps a world point to continuous raster coordinates of a w×h raster.
func (v Viewport) Pixel(p Point, w, h int) (float64, float64) {
	nx := (p.X - v.Min.X) / v.Rect.Width()
	ny := (v.Max.Y - p.Y) / v.Rect.Height()
	return nx * float64(w), ny * float64(h)
}

// Zoom scales the window around its center; f > 1 zooms in.
func (v Viewport) Zoom(f float64) Viewport {
	if f <= 0 {
		return v
	}
	c := v.Center()
	hw := v.Rect.Width() / 2 / f
	hh := v.Rect.Height() / 2 / f
	return NewViewport(c.X-hw, c.Y-hh, c.X+hw, c.Y+hh)
}

// Pan shifts the window by fractions of its width and height.
func (v Viewport) Pan(fx, fy float64) Viewport {
	dx := fx * v.Rect.Width()
	dy := fy * v.Rect.Height()
	return NewViewport(v.Min.X+dx, v.Min.Y+dy, v.Max.X+dx, v.Max.Y+dy)
}
