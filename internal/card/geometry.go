package card

import (
	"image"
	"image/color"
	"math"
)

// Anti-aliased circle rasterizers. Coverage is computed per pixel from
// the distance to the circle edge, then source-over blended.

func fillCircle(dst *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	minX, maxX := int(cx-r)-1, int(cx+r)+2
	minY, maxY := int(cy-r)-1, int(cy+r)+2
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			cov := r + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			blendPixel(dst, x, y, c, cov)
		}
	}
}

func strokeCircle(dst *image.NRGBA, cx, cy, r, width float64, c color.NRGBA) {
	if r <= 0 || width <= 0 {
		return
	}
	half := width / 2
	out := r + half + 1
	minX, maxX := int(cx-out)-1, int(cx+out)+2
	minY, maxY := int(cy-out)-1, int(cy+out)+2
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Abs(math.Sqrt(dx*dx+dy*dy) - r)
			cov := half + 0.5 - dist
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			blendPixel(dst, x, y, c, cov)
		}
	}
}

func blendPixel(dst *image.NRGBA, x, y int, c color.NRGBA, cov float64) {
	b := dst.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	a := uint32(float64(c.A) * cov)
	if a == 0 {
		return
	}
	ia := 255 - a
	off := dst.PixOffset(x, y)
	pix := dst.Pix
	pix[off] = uint8((uint32(c.R)*a + uint32(pix[off])*ia) / 255)
	pix[off+1] = uint8((uint32(c.G)*a + uint32(pix[off+1])*ia) / 255)
	pix[off+2] = uint8((uint32(c.B)*a + uint32(pix[off+2])*ia) / 255)
	pix[off+3] = uint8(a + uint32(pix[off+3])*ia/255)
}
