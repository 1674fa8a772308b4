package card

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FontSet holds the faces used for one render pass. An opentype.Face
// carries mutable rasterization buffers and is not safe for concurrent
// use, so a set is minted per pass and never shared; see FontSource.
type FontSet struct {
	Title    font.Face
	Subtitle font.Face
	Footer   font.Face
	Logo     font.Face
}

// FontSource is the parsed font backing all card text. Parsing happens
// once per renderer; its methods are safe to call from any goroutine.
// The zero value falls back to the built-in bitmap face.
type FontSource struct {
	font *opentype.Font
}

// LoadFontSource resolves the card font. Candidate font files are
// tried in order, then the embedded Go bold font. It never fails; the
// worst case is every element on basicfont metrics, which the layout
// absorbs.
func LoadFontSource(paths []string) FontSource {
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if parsed, err := opentype.Parse(raw); err == nil {
			return FontSource{font: parsed}
		}
	}
	if parsed, err := opentype.Parse(gobold.TTF); err == nil {
		return FontSource{font: parsed}
	}
	return FontSource{}
}

// Face mints a fresh face at the given size. Faces from the same
// source and size measure identically, so per-pass faces keep the
// output deterministic.
func (s FontSource) Face(size float64) font.Face {
	if s.font == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// Faces mints the per-element face set for one render pass.
func (s FontSource) Faces(cfg Config) FontSet {
	return FontSet{
		Title:    s.Face(cfg.TitleFontSize),
		Subtitle: s.Face(cfg.SubtitleFontSize),
		Footer:   s.Face(cfg.FooterFontSize),
		Logo:     s.Face(cfg.LogoFontSize),
	}
}
