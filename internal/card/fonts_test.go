package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/image/font/basicfont"
)

func TestFontSourceAlwaysResolves(t *testing.T) {
	src := LoadFontSource([]string{"/definitely/not/a/font.ttf"})
	face := src.Face(50)
	require.NotNil(t, face, "embedded fallback must kick in")

	box := measureString(face, "THANK YOU")
	assert.Greater(t, box.W, 0)
	assert.Greater(t, box.H, 0)
}

func TestFacesFillEverySlot(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	fonts := LoadFontSource(cfg.FontPaths).Faces(cfg)

	assert.NotNil(t, fonts.Title)
	assert.NotNil(t, fonts.Subtitle)
	assert.NotNil(t, fonts.Footer)
	assert.NotNil(t, fonts.Logo)

	// A bigger point size must measure wider for the same string.
	big := measureString(fonts.Title, "COFFEE SHOP")
	small := measureString(fonts.Footer, "COFFEE SHOP")
	assert.Greater(t, big.W, small.W)
}

func TestFaceMintsIndependentHandles(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	src := LoadFontSource(cfg.FontPaths)

	a := src.Face(cfg.SubtitleFontSize)
	b := src.Face(cfg.SubtitleFontSize)

	// Each caller gets its own face handle (faces carry per-use
	// buffers), yet metrics agree so output stays deterministic.
	if _, bitmap := a.(*basicfont.Face); !bitmap {
		assert.NotSame(t, a, b)
	}
	assert.Equal(t, measureString(a, cfg.Subtitle), measureString(b, cfg.Subtitle))
}

func TestZeroFontSourceFallsBack(t *testing.T) {
	var src FontSource
	assert.Equal(t, basicfont.Face7x13, src.Face(120))
}
