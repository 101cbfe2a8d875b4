// Package render turns checkerboard frames into images: a raster through
// gg, an animated GIF of a sweep, and an SVG of the boundary curves.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"confgrid/internal/checker"
	"confgrid/internal/geom"
	"confgrid/internal/logging"
)

var (
	ErrResolution = errors.New("render: resolution must be at least 2")
	ErrViewport   = errors.New("render: empty viewport")
)

// Renderer turns one board into a res×res image of the viewport.
type Renderer interface {
	Render(b checker.Board, vp geom.Viewport, res int) (image.Image, error)
}

// Nop renders nothing.
type Nop struct{}

func (Nop) Render(checker.Board, geom.Viewport, int) (image.Image, error) { return nil, nil }

// Raster paints every pixel with the color of the region containing its
// center, outlines the boundaries and marks the foci.
type Raster struct {
	// Outline colors boundary pixels and the foci. Nil disables the
	// boundary overlay; the foci are then drawn in black.
	Outline color.Color
	// Supersample renders at this multiple of the resolution and scales
	// the result down.
	Supersample int
	// FocusRadius is the radius of the focus markers in output pixels.
	FocusRadius float64
}

func NewRaster() *Raster {
	return &Raster{Outline: color.Black, Supersample: 1, FocusRadius: 2}
}

func (r *Raster) Render(b checker.Board, vp geom.Viewport, res int) (image.Image, error) {
	if res < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrResolution, res)
	}
	if !vp.Valid() {
		return nil, ErrViewport
	}
	start := time.Now()
	ss := max(r.Supersample, 1)
	n := res * ss

	dc := gg.NewContext(n, n)
	defer dc.Close()

	ink := color.Color(color.Black)
	if r.Outline != nil {
		ink = r.Outline
	}
	dc.ClearWithColor(gg.FromColor(ink))

	paint := make([]gg.RGBA, len(b.Regions))
	for i, reg := range b.Regions {
		paint[i] = gg.FromColor(reg.Color)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if _, idx, ok := b.Locate(vp.Sample(i, j, n, n)); ok {
				dc.SetPixel(i, j, paint[idx])
			}
		}
	}

	if r.Outline != nil {
		edge := EdgeMask(b.Boundaries, vp, n, n)
		c := gg.FromColor(r.Outline)
		for k, on := range edge {
			if on {
				dc.SetPixel(k%n, k/n, c)
			}
		}
	}

	if r.FocusRadius > 0 {
		dc.SetColor(ink)
		for _, f := range b.Foci {
			x, y := vp.Pixel(f, n, n)
			dc.DrawCircle(x, y, r.FocusRadius*float64(ss))
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("render: focus: %w", err)
			}
		}
	}

	img := dc.Image()
	if ss > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, res, res))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	logging.Logger().Debug("rendered frame", "res", res, "supersample", ss, "regions", len(b.Regions), "took", time.Since(start))
	return img, nil
}

// EdgeMask marks the samples of a w×h grid over vp where some boundary
// changes sign towards the right or lower neighbour. Point boundaries
// have no sign change and are skipped.
func EdgeMask(bounds []geom.Boundary, vp geom.Viewport, w, h int) []bool {
	mask := make([]bool, w*h)
	pts := make([]geom.Point, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			pts[j*w+i] = vp.Sample(i, j, w, h)
		}
	}
	pos := make([]bool, w*h)
	for _, bd := range bounds {
		if bd.IsPoint() {
			continue
		}
		for k, p := range pts {
			pos[k] = bd.Eval(p) > 0
		}
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				k := j*w + i
				if i+1 < w && pos[k] != pos[k+1] {
					mask[k] = true
				}
				if j+1 < h && pos[k] != pos[k+w] {
					mask[k] = true
				}
			}
		}
	}
	return mask
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return gg.FromImage(img).SavePNG(path)
}
