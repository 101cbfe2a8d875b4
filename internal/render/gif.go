package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"
)

// EncodeGIF writes frames as a looping animation, delay in 100ths of a
// second per frame. Frames with at most 256 distinct colors are stored
// exactly; otherwise they are dithered onto the Plan 9 palette.
func EncodeGIF(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return errors.New("render: no frames to encode")
	}
	for i, img := range frames {
		if img == nil {
			return fmt.Errorf("render: frame %d is empty", i)
		}
	}
	pal, exact := framePalette(frames)
	anim := &gif.GIF{}
	for _, img := range frames {
		b := img.Bounds()
		p := image.NewPaletted(b, pal)
		if exact {
			draw.Draw(p, b, img, b.Min, draw.Src)
		} else {
			draw.FloydSteinberg.Draw(p, b, img, b.Min)
		}
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

func framePalette(frames []image.Image) (color.Palette, bool) {
	seen := make(map[color.RGBA]struct{})
	var pal color.Palette
	for _, img := range frames {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				if _, ok := seen[c]; ok {
					continue
				}
				if len(pal) == 256 {
					return palette.Plan9, false
				}
				seen[c] = struct{}{}
				pal = append(pal, c)
			}
		}
	}
	return pal, true
}
