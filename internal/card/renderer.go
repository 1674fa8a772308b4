package card

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"

	"github.com/disintegration/imaging"

	"golang.org/x/image/font/basicfont"
)

// ContentType is the MIME type of every buffer Render returns.
const ContentType = "image/png"

// Renderer draws loyalty stamp cards. It is immutable once built:
// font source, icon and layout are resolved in NewRenderer, so a
// single Renderer is safe for concurrent use without coordination.
// Faces are minted per render pass because an opentype.Face is not
// safe to share between goroutines.
type Renderer struct {
	cfg    Config
	faces  func() FontSet
	icon   *image.NRGBA
	layout Layout
	log    *slog.Logger
}

// NewRenderer loads fonts and the optional stamp icon and precomputes
// the layout. Asset failures degrade the visuals and are logged; they
// never fail construction.
func NewRenderer(cfg Config, log *slog.Logger) *Renderer {
	cfg.Defaults()
	if log == nil {
		log = slog.Default()
	}

	src := LoadFontSource(cfg.FontPaths)

	iconSize := int(float64(cfg.CellRadius) * cfg.IconScale)
	icon, err := LoadIcon(cfg.IconPath, iconSize)
	if err != nil {
		log.Warn("stamp icon unavailable, using plain discs", "path", cfg.IconPath, "error", err)
		icon = nil
	}

	return &Renderer{
		cfg:    cfg,
		faces:  func() FontSet { return src.Faces(cfg) },
		icon:   icon,
		layout: computeLayout(cfg, src.Faces(cfg)),
		log:    log,
	}
}

// Layout exposes the precomputed geometry, mainly for callers that
// need to reason about the card (and for tests).
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws the card for the given visit count and returns PNG
// bytes. The count is clamped to [0,10]; index i gets a stamp when
// i < visits. Render never fails: any panic while drawing is converted
// into a placeholder error image of the same canvas size, so the
// delivery pipeline always receives a well-formed payload.
func (r *Renderer) Render(visits int) (out []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("card render failed", "visits", visits, "panic", rec)
			out = r.errorCard(fmt.Sprint(rec))
		}
	}()

	visits = Clamp(visits)
	cfg := r.cfg
	l := r.layout
	fonts := r.faces()

	canvas := imaging.New(cfg.Width, cfg.Height, cfg.Background)

	drawStringAt(canvas, fonts.Title, cfg.Title, l.TitleX, l.TitleY, cfg.Foreground)

	strokeCircle(canvas, float64(l.LogoCX), float64(l.LogoCY), float64(cfg.LogoOuterR), cfg.StrokeWidth, cfg.Foreground)
	strokeCircle(canvas, float64(l.LogoCX), float64(l.LogoCY), float64(cfg.LogoInnerR), cfg.StrokeWidth, cfg.Foreground)
	drawStringCentered(canvas, fonts.Logo, cfg.LogoLabel, l.LogoCX, l.LogoCY, cfg.Foreground)

	drawStringAt(canvas, fonts.Subtitle, cfg.Subtitle, l.SubtitleX, l.SubtitleY, cfg.Foreground)

	for i, cell := range l.Cells {
		if i < visits {
			r.drawStamp(canvas, cell.X, cell.Y)
		} else {
			strokeCircle(canvas, float64(cell.X), float64(cell.Y), float64(cfg.CellRadius), cfg.StrokeWidth, cfg.Foreground)
		}
	}

	drawStringAt(canvas, fonts.Footer, cfg.Footer, l.FooterX, l.FooterY, cfg.Foreground)

	return encodePNG(canvas)
}

func (r *Renderer) drawStamp(canvas *image.NRGBA, cx, cy int) {
	fillCircle(canvas, float64(cx), float64(cy), float64(r.cfg.CellRadius), r.cfg.StampColor)
	if r.icon != nil {
		overlayIcon(canvas, r.icon, cx, cy, r.cfg.Foreground)
	}
}

// errorCard is the last-resort output: a canvas-sized placeholder with
// a short diagnostic, drawn with nothing that can itself fail.
func (r *Renderer) errorCard(msg string) []byte {
	w, h := r.cfg.Width, r.cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 1080, 1080
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{16, 16, 20, 255}), image.Point{}, draw.Src)
	band := image.NewUniform(color.NRGBA{60, 16, 20, 255})
	draw.Draw(img, image.Rect(0, h/2-60, w, h/2+60), band, image.Point{}, draw.Over)

	white := color.NRGBA{255, 255, 255, 255}
	drawStringAt(img, basicfont.Face7x13, "CARD RENDER ERROR", 40, h/2-30, white)
	drawStringAt(img, basicfont.Face7x13, trimText(msg, 120), 40, h/2, white)

	return encodePNG(img)
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Unreachable with a valid image and an in-memory buffer; the
		// panic lands in Render's recover and yields the placeholder,
		// never an empty payload.
		panic(err)
	}
	return buf.Bytes()
}

func trimText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
