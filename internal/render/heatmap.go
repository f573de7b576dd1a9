package render

import (
	"image"
	"image/color"

	"wavesweep/internal/core"
)

const heatRampSize = 256

var heatColors = buildHeatColors()

// HeatColors returns the 256-entry heat ramp used for field rendering,
// running black through red and yellow up to white.
func HeatColors() []color.RGBA {
	return heatColors
}

// HeatPalette returns the ramp as a color.Palette for paletted images.
func HeatPalette() color.Palette {
	pal := make(color.Palette, len(heatColors))
	for i, c := range heatColors {
		pal[i] = c
	}
	return pal
}

func buildHeatColors() []color.RGBA {
	colors := make([]color.RGBA, heatRampSize)
	for i := range colors {
		t := float64(i) / float64(heatRampSize-1)
		colors[i] = heatColorAt(t)
	}
	return colors
}

// heatColorAt maps t in [0,1] onto the ramp in three linear segments.
func heatColorAt(t float64) color.RGBA {
	switch {
	case t < 1.0/3.0:
		return color.RGBA{R: ramp(t * 3), A: 255}
	case t < 2.0/3.0:
		return color.RGBA{R: 255, G: ramp((t - 1.0/3.0) * 3), A: 255}
	default:
		v := ramp((t - 2.0/3.0) * 3)
		return color.RGBA{R: 255, G: 255, B: v, A: 255}
	}
}

func ramp(t float64) uint8 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 255
	}
	return uint8(t*255 + 0.5)
}

// Quantize maps the slice values onto palette levels, normalized to the
// slice's own min and max. A flat slice maps to level zero everywhere.
func Quantize(s core.Slice) []uint8 {
	levels := make([]uint8, len(s.Data))
	lo, hi := s.Min(), s.Max()
	span := hi - lo
	if span <= 0 {
		return levels
	}
	scale := float64(heatRampSize-1) / span
	for i, v := range s.Data {
		levels[i] = uint8((v-lo)*scale + 0.5)
	}
	return levels
}

// HeatmapImage renders the slice as a paletted image, one pixel per cell.
func HeatmapImage(s core.Slice) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, s.W, s.H), HeatPalette())
	copy(img.Pix, Quantize(s))
	return img
}
