package card

import "image"

// CellCount is the number of stamp positions on the card, laid out as
// GridRows x GridCols in row-major order.
const (
	CellCount = 10
	GridRows  = 2
	GridCols  = 5
)

// Layout carries every computed anchor of the card. It is a pure
// function of the config and the measured font extents; the visit count
// only ever selects which cells are filled, never where they sit.
type Layout struct {
	TitleX, TitleY int

	LogoCX, LogoCY int

	SubtitleX, SubtitleY int
	SubtitleBottom       int

	// GridTopY is the center Y of the first row.
	GridTopY int
	Cells    [CellCount]image.Point

	FooterX, FooterY int
}

func computeLayout(cfg Config, fonts FontSet) Layout {
	var l Layout

	title := measureString(fonts.Title, cfg.Title)
	l.TitleX = (cfg.Width - title.W) / 2
	l.TitleY = cfg.TitleY

	l.LogoCX = cfg.Width / 2
	l.LogoCY = cfg.LogoCenterY

	// The subtitle sits at its target offset unless the logo's measured
	// bottom edge pushes it down.
	sub := measureString(fonts.Subtitle, cfg.Subtitle)
	l.SubtitleX = (cfg.Width - sub.W) / 2
	l.SubtitleY = max(cfg.SubtitleTargetY, cfg.LogoCenterY+cfg.LogoOuterR+40)
	l.SubtitleBottom = l.SubtitleY + sub.H

	// Same rule one step down: the first row center never rises above
	// its fixed floor and never crowds the subtitle. If abnormally tall
	// font metrics would push the grid into the footer, it is pulled
	// back up instead.
	top := max(cfg.GridTopMinY, l.SubtitleBottom+cfg.MinClearance+cfg.CellRadius)
	maxTop := cfg.FooterY() - cfg.FooterClearance - cfg.CellRadius - cfg.RowGap
	l.GridTopY = min(top, maxTop)

	leftX := (cfg.Width - (GridCols-1)*cfg.ColGap) / 2
	k := 0
	for row := 0; row < GridRows; row++ {
		y := l.GridTopY + row*cfg.RowGap
		for col := 0; col < GridCols; col++ {
			l.Cells[k] = image.Pt(leftX+col*cfg.ColGap, y)
			k++
		}
	}

	foot := measureString(fonts.Footer, cfg.Footer)
	l.FooterX = (cfg.Width - foot.W) / 2
	l.FooterY = cfg.FooterY()

	return l
}
