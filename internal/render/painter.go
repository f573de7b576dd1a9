//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"wavesweep/internal/core"
)

// SlicePainter updates a single RGBA image from field slice data.
type SlicePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  []color.RGBA
}

// NewSlicePainter allocates a painter for a slice of size w*h.
func NewSlicePainter(w, h int) *SlicePainter {
	sp := &SlicePainter{w: w, h: h, buf: make([]byte, 4*w*h), pal: HeatColors()}
	sp.img = ebiten.NewImage(w, h)
	return sp
}

// Blit uploads the slice into the painter image and draws it scaled.
func (sp *SlicePainter) Blit(dst *ebiten.Image, s core.Slice, scale int) {
	if len(s.Data) != sp.w*sp.h {
		return
	}
	fillLevelRGBA(sp.buf, Quantize(s), sp.pal)
	sp.img.ReplacePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Size returns the dimensions of the underlying image.
func (sp *SlicePainter) Size() (int, int) { return sp.w, sp.h }
