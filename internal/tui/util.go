package tui

import (
	"image"
	"unicode/utf8"

	"mtoohey.com/dock/internal/util"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// draw is a wrapper for t.screen.SetContent that sets a point on the screen to
// the given rune and style.
func (t *tui) draw(p image.Point, r rune, s tcell.Style) {
	t.screen.SetContent(p.X, p.Y, r, nil, s)
}

// fill sets every cell of r to the given rune and style.
func (t *tui) fill(r image.Rectangle, c rune, s tcell.Style) {
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			t.draw(image.Pt(x, y), c, s)
		}
	}
}

// clear blanks r.
func (t *tui) clear(r image.Rectangle) {
	t.fill(r, ' ', styleDefault)
}

func (t *tui) drawString(o image.Point, maxX int, s string, style tcell.Style) (stopX int) {
	c := o
	for r, rl := utf8.DecodeRuneInString(s); len(s) > 0; r, rl = utf8.DecodeRuneInString(s) {
		w := runewidth.RuneWidth(r)
		if c.X+w >= maxX && !(c.X+w == maxX && len(s) == rl) {
			for ; c.X < maxX; c.X++ {
				t.draw(c, '…', style)
			}
			return c.X
		}
		t.draw(c, r, style)

		c.X += w
		s = s[rl:]
	}
	return c.X
}

// box draws a single line border just inside r.
func (t *tui) box(r image.Rectangle, style tcell.Style) {
	if r.Dx() < 2 || r.Dy() < 2 {
		t.fill(r, '░', style)
		return
	}

	maxX, maxY := r.Max.X-1, r.Max.Y-1
	for x := r.Min.X + 1; x < maxX; x++ {
		t.draw(image.Pt(x, r.Min.Y), '─', style)
		t.draw(image.Pt(x, maxY), '─', style)
	}
	for y := r.Min.Y + 1; y < maxY; y++ {
		t.draw(image.Pt(r.Min.X, y), '│', style)
		t.draw(image.Pt(maxX, y), '│', style)
	}
	t.draw(r.Min, '┌', style)
	t.draw(image.Pt(maxX, r.Min.Y), '┐', style)
	t.draw(image.Pt(r.Min.X, maxY), '└', style)
	t.draw(image.Pt(maxX, maxY), '┘', style)
}

// centeredString draws s in the middle of r.
func (t *tui) centeredString(r image.Rectangle, s string) {
	textOrigin := image.Point{
		X: r.Min.X + util.Max(r.Dx()-runewidth.StringWidth(s), 0)/2,
		Y: r.Min.Y + (r.Dy() / 2),
	}
	t.drawString(textOrigin, r.Max.X, s, styleDim.Italic(true))
}

func vSplitFixedBottom(r image.Rectangle, bottomH int) (top, bottom image.Rectangle) {
	topMaxY := util.Max(r.Max.Y-bottomH-1, r.Min.Y)
	bottomMinY := util.Min(topMaxY+1, r.Max.Y)
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X, topMaxY),
		image.Rect(r.Min.X, bottomMinY, r.Max.X, r.Max.Y)
}

var (
	styleDefault = tcell.StyleDefault
	styleDim     = styleDefault.Dim(true)
	styleBorder  = styleDefault.Foreground(tcell.ColorGray)
	styleLabel   = styleDefault.Bold(true)
	styleHandle  = styleDim.Foreground(tcell.ColorGray)
	styleHover   = styleDefault.Foreground(tcell.ColorAqua)
	styleActive  = styleDefault.Background(tcell.ColorAqua).Foreground(tcell.ColorBlack)
)
