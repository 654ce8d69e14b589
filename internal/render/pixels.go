package render

import (
	"image"
	"image/color"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// PaletteImage renders a w×h cell buffer into an RGBA image, magnifying each
// cell to scale×scale pixels. It returns nil when cells does not match w×h.
func PaletteImage(cells []uint8, w, h int, palette []color.RGBA, scale int) *image.RGBA {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPaletteRGBA(base.Pix, cells, palette)
	if scale == 1 {
		return base
	}

	out := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		srcRow := base.Pix[(y/scale)*base.Stride:]
		dstRow := out.Pix[y*out.Stride:]
		for x := 0; x < w*scale; x++ {
			copy(dstRow[x*4:x*4+4], srcRow[(x/scale)*4:(x/scale)*4+4])
		}
	}
	return out
}
