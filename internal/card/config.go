package card

import "image/color"

// Config holds every tunable of the stamp-card renderer: canvas size,
// palette, texts, spacing constants and the optional stamp icon source.
// Zero fields are filled by Defaults, so callers only set what they
// want to override.
type Config struct {
	Width  int
	Height int

	Background color.NRGBA
	Foreground color.NRGBA
	StampColor color.NRGBA

	Title     string
	LogoLabel string
	Subtitle  string
	Footer    string

	// Vertical anchors, in pixels from the canvas top.
	TitleY          int // top edge of the title text
	LogoCenterY     int // center of the concentric logo rings
	SubtitleTargetY int // desired top edge of the subtitle
	GridTopMinY     int // floor for the first grid row center
	FooterOffset    int // footer top edge, measured from the canvas bottom

	LogoOuterR int
	LogoInnerR int

	CellRadius int
	RowGap     int // center-to-center row spacing
	ColGap     int // center-to-center column spacing

	// IconScale sizes the stamp icon relative to the cell radius.
	IconScale float64

	// MinClearance is the required gap between the subtitle bottom and
	// the top edge of the first grid row. FooterClearance is the gap
	// kept between the second row bottom and the footer when the grid
	// has to be pulled back up.
	MinClearance    int
	FooterClearance int

	StrokeWidth float64

	TitleFontSize    float64
	SubtitleFontSize float64
	FooterFontSize   float64
	LogoFontSize     float64

	// FontPaths are candidate font files tried in order before the
	// embedded fallback fonts.
	FontPaths []string

	// IconPath is a file path or http(s) URL of the stamp icon.
	// Empty or unreadable means filled cells render as plain discs.
	IconPath string
}

// Defaults fills unset fields with the stock coffee-card values.
func (c *Config) Defaults() {
	if c.Width == 0 {
		c.Width = 1080
	}
	if c.Height == 0 {
		c.Height = 1080
	}
	if c.Background == (color.NRGBA{}) {
		c.Background = color.NRGBA{0, 0, 0, 255}
	}
	if c.Foreground == (color.NRGBA{}) {
		c.Foreground = color.NRGBA{255, 255, 255, 255}
	}
	if c.StampColor == (color.NRGBA{}) {
		c.StampColor = color.NRGBA{220, 53, 69, 255}
	}
	if c.Title == "" {
		c.Title = "COFFEE SHOP"
	}
	if c.LogoLabel == "" {
		c.LogoLabel = "LOGO"
	}
	if c.Subtitle == "" {
		c.Subtitle = "THANK YOU FOR VISITING TODAY!"
	}
	if c.Footer == "" {
		c.Footer = "10 STAMPS = 1 FREE COFFEE"
	}
	if c.TitleY == 0 {
		c.TitleY = 56
	}
	if c.LogoCenterY == 0 {
		c.LogoCenterY = 300
	}
	if c.SubtitleTargetY == 0 {
		c.SubtitleTargetY = 540
	}
	if c.GridTopMinY == 0 {
		c.GridTopMinY = 740
	}
	if c.FooterOffset == 0 {
		c.FooterOffset = 74
	}
	if c.LogoOuterR == 0 {
		c.LogoOuterR = 100
	}
	if c.LogoInnerR == 0 {
		c.LogoInnerR = 80
	}
	if c.CellRadius == 0 {
		c.CellRadius = 72
	}
	if c.RowGap == 0 {
		c.RowGap = 180
	}
	if c.ColGap == 0 {
		c.ColGap = 180
	}
	if c.IconScale == 0 {
		c.IconScale = 1.2
	}
	if c.MinClearance == 0 {
		c.MinClearance = 100
	}
	if c.FooterClearance == 0 {
		c.FooterClearance = 4
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = 6
	}
	if c.TitleFontSize == 0 {
		c.TitleFontSize = 120
	}
	if c.SubtitleFontSize == 0 {
		c.SubtitleFontSize = 50
	}
	if c.FooterFontSize == 0 {
		c.FooterFontSize = 40
	}
	if c.LogoFontSize == 0 {
		c.LogoFontSize = 40
	}
	if c.FontPaths == nil {
		c.FontPaths = []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		}
	}
}

// FooterY returns the footer top edge in canvas coordinates.
func (c *Config) FooterY() int {
	return c.Height - c.FooterOffset
}

// Clamp normalizes a visit count into the card's [0,10] domain.
// Out-of-range values are silently pulled to the nearest boundary.
func Clamp(visits int) int {
	if visits < 0 {
		return 0
	}
	if visits > CellCount {
		return CellCount
	}
	return visits
}
