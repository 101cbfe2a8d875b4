package tui

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits of a braille cell, indexed [column][row]
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

// setMask sets every micro-pixel flagged in a row-major (2w)×(4h) mask.
func (b *brailleBuf) setMask(mask []bool) {
	mw := b.w * 2
	for k, on := range mask {
		if on {
			b.setPixel(k%mw, k/mw)
		}
	}
}

// cell returns the glyph of cell (x, y), or 0 if it is empty.
func (b *brailleBuf) cell(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return 0
	}
	return rune(0x2800 + int(mask))
}
