package card

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/stampcard/internal/util"
)

// LoadIcon loads the stamp icon from a file path or http(s) URL,
// converts it to grayscale and resizes it to the given square size.
// An empty path returns (nil, nil); a nil icon is a valid degraded
// state, filled cells then render as plain discs.
func LoadIcon(path string, size int) (*image.NRGBA, error) {
	if path == "" {
		return nil, nil
	}
	var (
		img image.Image
		err error
	)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		var raw []byte
		raw, err = util.GetBytes(path)
		if err == nil {
			img, err = imaging.Decode(bytes.NewReader(raw))
		}
	} else {
		img, err = imaging.Open(path)
	}
	if err != nil {
		return nil, err
	}
	gray := imaging.Grayscale(img)
	return imaging.Resize(gray, size, size, imaging.Lanczos), nil
}

// overlayIcon tints the icon in the given color onto dst, centered on
// (cx, cy). The icon's luminance becomes transparency: dark pixels end
// up opaque, light pixels vanish.
func overlayIcon(dst *image.NRGBA, icon *image.NRGBA, cx, cy int, c color.NRGBA) {
	b := icon.Bounds()
	x0 := cx - b.Dx()/2
	y0 := cy - b.Dy()/2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			off := icon.PixOffset(x, y)
			lum := icon.Pix[off]
			srcA := icon.Pix[off+3]
			// Respect the source alpha so transparent icon padding
			// stays transparent.
			alpha := float64(255-lum) * float64(srcA) / (255 * 255)
			if alpha <= 0 {
				continue
			}
			blendPixel(dst, x0+x-b.Min.X, y0+y-b.Min.Y, c, alpha)
		}
	}
}
