package render

import "image/color"

// fillLevelRGBA converts palette levels into RGBA pixels in buf. When the
// palette is empty the buffer is cleared to transparent black.
func fillLevelRGBA(buf []byte, levels []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range levels {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, lv := range levels {
		idx := int(lv)
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
