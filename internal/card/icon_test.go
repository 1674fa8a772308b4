package card

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadIconEmptyPath(t *testing.T) {
	icon, err := LoadIcon("", 86)
	require.NoError(t, err)
	assert.Nil(t, icon)
}

func TestLoadIconMissingFile(t *testing.T) {
	icon, err := LoadIcon(filepath.Join(t.TempDir(), "missing.png"), 86)
	assert.Error(t, err)
	assert.Nil(t, icon)
}

func TestLoadIconResizesToSquare(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 200, 120))
	path := writeTestPNG(t, src)

	icon, err := LoadIcon(path, 86)
	require.NoError(t, err)
	require.NotNil(t, icon)
	assert.Equal(t, 86, icon.Bounds().Dx())
	assert.Equal(t, 86, icon.Bounds().Dy())
}

func TestOverlayIconLuminanceBecomesTransparency(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	// Left column dark, right column light, both opaque.
	icon := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	icon.Pix = []uint8{0, 0, 0, 255, 255, 255, 255, 255}

	white := color.NRGBA{255, 255, 255, 255}
	overlayIcon(dst, icon, 10, 10, white)

	assert.Equal(t, white, dst.NRGBAAt(9, 10), "dark icon pixel must be opaque")
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(10, 10), "light icon pixel must stay transparent")
}
