package card

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// textBox is the measured pixel bounding box of a string, together with
// the fixed-point origin offsets needed to draw it at a given top-left
// corner.
type textBox struct {
	W, H       int
	minX, minY fixed.Int26_6
}

func measureString(face font.Face, s string) textBox {
	bounds, _ := font.BoundString(face, s)
	return textBox{
		W:    (bounds.Max.X - bounds.Min.X).Ceil(),
		H:    (bounds.Max.Y - bounds.Min.Y).Ceil(),
		minX: bounds.Min.X,
		minY: bounds.Min.Y,
	}
}

// drawStringAt draws s with its measured bounding box anchored at the
// top-left corner (x, y).
func drawStringAt(dst *image.NRGBA, face font.Face, s string, x, y int, c color.NRGBA) {
	box := measureString(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - box.minX,
			Y: fixed.I(y) - box.minY,
		},
	}
	d.DrawString(s)
}

// drawStringCentered centers s on the anchor point by half its measured
// extents. Every centered text element on the card goes through here.
func drawStringCentered(dst *image.NRGBA, face font.Face, s string, cx, cy int, c color.NRGBA) {
	box := measureString(face, s)
	drawStringAt(dst, face, s, cx-box.W/2, cy-box.H/2, c)
}
