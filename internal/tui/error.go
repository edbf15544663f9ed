package tui

import (
	"image"

	"mtoohey.com/dock/internal/dock"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// glyphRunes stands in for the pointer shape, which terminals do not let us
// change.
var glyphRunes = map[dock.Glyph]string{
	dock.GlyphDefault:   "",
	dock.GlyphColResize: "⇔ resize",
	dock.GlyphRowResize: "⇕ resize",
}

func (t *tui) drawStatus() {
	t.clear(t.statusR)
	x := t.drawString(t.statusR.Min, t.statusR.Max.X, t.preset.Name, styleDim)
	if s := glyphRunes[t.glyph]; s != "" {
		t.drawString(image.Pt(x+2, t.statusR.Min.Y), t.statusR.Max.X, s, styleHover)
	}
	t.drawError()
}

func (t *tui) drawError() {
	if t.visibleErr == nil {
		return
	}

	errString := t.visibleErr.Error()
	errLen := runewidth.StringWidth(errString)

	style := styleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)

	if errLen+2 > t.statusR.Dx() {
		t.draw(t.statusR.Min, ' ', style)
		t.drawString(t.statusR.Min.Add(image.Pt(1, 0)), t.statusR.Max.X-1, errString, style)
	} else {
		padP := t.statusR.Min.Add(image.Pt(t.statusR.Dx()-errLen-2, 0))
		t.draw(padP, ' ', style)
		t.drawString(padP.Add(image.Pt(1, 0)), t.statusR.Max.X-1, errString, style)
	}
	t.draw(t.statusR.Max.Add(image.Pt(-1, -1)), ' ', style)
}
