package dock

import (
	"testing"

	"mtoohey.com/dock/internal/testutil/assert"
)

// threeWay builds a horizontal split over R(0, 0, 100, 50) with the
// geometry a layout engine would resolve for ratios 0.2:0.5:0.3 and a gap of 7.
func threeWay(t *testing.T) (*Dock, *fakeHost, NodeID, []NodeID) {
	t.Helper()

	d, h := newTestDock()
	s, err := d.CreateSplit(Root, Horizontal, []float64{0.2, 0.5, 0.3})
	assert.NoError(t, err)

	var panels []NodeID
	for _, name := range []string{"hierarchy", "viewport", "inspector"} {
		p, err := d.CreatePanel(s, name)
		assert.NoError(t, err)
		panels = append(panels, p)
	}

	h.rects[s] = R(0, 0, 100, 50)
	h.rects[panels[0]] = R(0, 0, 17.2, 50)
	h.rects[panels[1]] = R(24.2, 0, 67.2, 50)
	h.rects[panels[2]] = R(74.2, 0, 100, 50)

	update(d)

	handles, err := d.Handles(s)
	assert.NoError(t, err)
	return d, h, s, handles
}

func TestDock_Drag(t *testing.T) {
	t.Run("first handle right", func(t *testing.T) {
		d, _, s, handles := threeWay(t)
		var sess Session

		fi := &FrameInput{Cursor: Pt(19, 10), HasCursor: true}
		d.Update(&sess, fi)
		assert.Equal(t, Hovering, sess.State())
		assert.Equal(t, GlyphColResize, fi.Glyph)
		hovered, _ := sess.Hovered()
		assert.Equal(t, handles[0], hovered)

		fi = &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed}
		d.Update(&sess, fi)
		assert.Equal(t, Dragging, sess.State())

		fi = &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Delta: Pt(10, 3), Primary: Pressed}
		d.Update(&sess, fi)
		assert.Equal(t, GlyphColResize, fi.Glyph)

		r, _ := d.Ratios(s)
		assert.SliceInDelta(t, []float64{0.3, 0.4, 0.3}, r, 1e-9)
		assert.InDelta(t, 0.7, r[0]+r[1], 1e-12)

		fi = &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Primary: JustReleased}
		d.Update(&sess, fi)
		assert.Equal(t, Idle, sess.State())
		assert.Equal(t, GlyphDefault, fi.Glyph)
	})

	t.Run("drag leaves handle rectangle", func(t *testing.T) {
		d, _, s, _ := threeWay(t)
		var sess Session

		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed})
		assert.Equal(t, Dragging, sess.State())

		d.Update(&sess, &FrameInput{Cursor: Pt(14, 10), HasCursor: true, Delta: Pt(-5, 0), Primary: Pressed})
		d.Update(&sess, &FrameInput{Cursor: Pt(9, 10), HasCursor: true, Delta: Pt(-5, 0), Primary: Pressed})
		assert.Equal(t, Dragging, sess.State())

		r, _ := d.Ratios(s)
		assert.SliceInDelta(t, []float64{0.1, 0.6, 0.3}, r, 1e-9)
	})

	t.Run("vertical uses y", func(t *testing.T) {
		d, h := newTestDock()
		s, _ := d.CreateSplit(Root, Vertical, []float64{0.5, 0.5})
		a, _ := d.CreatePanel(s, "top")
		_, _ = d.CreatePanel(s, "bottom")
		h.rects[s] = R(0, 0, 40, 200)
		h.rects[a] = R(0, 0, 40, 96.5)
		update(d)

		var sess Session
		fi := &FrameInput{Cursor: Pt(20, 97), HasCursor: true, Primary: JustPressed}
		d.Update(&sess, fi)
		assert.Equal(t, GlyphRowResize, fi.Glyph)

		d.Update(&sess, &FrameInput{Cursor: Pt(60, 117), HasCursor: true, Delta: Pt(40, 20), Primary: Pressed})
		r, _ := d.Ratios(s)
		assert.SliceInDelta(t, []float64{0.6, 0.4}, r, 1e-9)
	})

	t.Run("only one handle at a time", func(t *testing.T) {
		d, _, s, handles := threeWay(t)
		var sess Session

		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed})

		// pointer now over the second handle, but the first stays active
		d.Update(&sess, &FrameInput{Cursor: Pt(69, 10), HasCursor: true, Primary: Pressed})
		active, _ := sess.Active()
		assert.Equal(t, handles[0], active)

		r, _ := d.Ratios(s)
		assert.Equal(t, []float64{0.2, 0.5, 0.3}, r)
	})

	t.Run("press outside handles", func(t *testing.T) {
		d, _, _, _ := threeWay(t)
		var sess Session

		d.Update(&sess, &FrameInput{Cursor: Pt(40, 10), HasCursor: true, Primary: JustPressed})
		assert.Equal(t, Idle, sess.State())

		// sliding onto a handle with the button already held does not grab it
		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Delta: Pt(-21, 0), Primary: Pressed})
		assert.Equal(t, Hovering, sess.State())
	})

	t.Run("handle removed mid drag", func(t *testing.T) {
		d, _, s, _ := threeWay(t)
		var sess Session

		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed})
		assert.NoError(t, d.SetRatios(s, []float64{1}))

		fi := &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Delta: Pt(10, 0), Primary: Pressed}
		d.Update(&sess, fi)
		assert.Equal(t, Idle, sess.State())
		assert.Equal(t, GlyphDefault, fi.Glyph)

		r, _ := d.Ratios(s)
		assert.Equal(t, []float64{1}, r)
	})

	t.Run("split removed mid drag", func(t *testing.T) {
		d, _, s, _ := threeWay(t)
		var sess Session

		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed})
		assert.NoError(t, d.Remove(s))

		d.Update(&sess, &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Delta: Pt(10, 0), Primary: Pressed})
		assert.Equal(t, Idle, sess.State())
	})

	t.Run("unresolved split geometry keeps drag", func(t *testing.T) {
		d, h, s, _ := threeWay(t)
		var sess Session

		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed})
		delete(h.rects, s)

		d.Update(&sess, &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Delta: Pt(10, 0), Primary: Pressed})
		assert.Equal(t, Dragging, sess.State())

		r, _ := d.Ratios(s)
		assert.Equal(t, []float64{0.2, 0.5, 0.3}, r)
	})

	t.Run("no cursor while held", func(t *testing.T) {
		d, _, s, handles := threeWay(t)
		var sess Session

		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed})

		fi := &FrameInput{Cursor: Pt(29, 10), Delta: Pt(10, 0), Primary: Pressed}
		d.Update(&sess, fi)
		assert.Equal(t, Dragging, sess.State())
		assert.Equal(t, GlyphDefault, fi.Glyph)
		active, _ := sess.Active()
		assert.Equal(t, handles[0], active)

		r, _ := d.Ratios(s)
		assert.Equal(t, []float64{0.2, 0.5, 0.3}, r)

		// the drag picks up again once the cursor is back
		d.Update(&sess, &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Delta: Pt(10, 0), Primary: Pressed})
		r, _ = d.Ratios(s)
		assert.SliceInDelta(t, []float64{0.3, 0.4, 0.3}, r, 1e-9)
	})

	t.Run("pointer leaves window", func(t *testing.T) {
		d, _, _, _ := threeWay(t)
		var sess Session
		var p Pointer

		d.Update(&sess, p.Frame(Pt(19, 10), true, false))
		d.Update(&sess, p.Frame(Pt(19, 10), true, true))
		assert.Equal(t, Dragging, sess.State())

		fi := p.Frame(Pt(-1, -1), false, true)
		d.Update(&sess, fi)
		assert.Equal(t, Idle, sess.State())
		assert.Equal(t, GlyphDefault, fi.Glyph)
	})
}

func TestDock_DragPushesLayout(t *testing.T) {
	d, h, s, _ := threeWay(t)
	var sess Session

	d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true, Primary: JustPressed})
	writes := h.specWrites

	d.Update(&sess, &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Delta: Pt(10, 0), Primary: Pressed})
	assert.Equal(t, writes+1, h.specWrites)
	assert.Equal(t, Horizontal, h.specs[s].Orientation)
	assert.SliceInDelta(t, []float64{0.3, 0.4, 0.3}, h.specs[s].Tracks, 1e-9)

	// nothing moved, so nothing is pushed
	d.Update(&sess, &FrameInput{Cursor: Pt(29, 10), HasCursor: true, Primary: Pressed})
	assert.Equal(t, writes+1, h.specWrites)
}

func TestDock_CursorGlyphReset(t *testing.T) {
	t.Run("no hover", func(t *testing.T) {
		d, _, _, _ := threeWay(t)
		fi := &FrameInput{Cursor: Pt(40, 10), HasCursor: true, Glyph: GlyphRowResize}
		d.Update(&Session{}, fi)
		assert.Equal(t, GlyphDefault, fi.Glyph)
	})

	t.Run("no cursor", func(t *testing.T) {
		d, _, _, _ := threeWay(t)
		var sess Session
		d.Update(&sess, &FrameInput{Cursor: Pt(19, 10), HasCursor: true})
		assert.Equal(t, Hovering, sess.State())

		fi := &FrameInput{Glyph: GlyphColResize}
		d.Update(&sess, fi)
		assert.Equal(t, Idle, sess.State())
		assert.Equal(t, GlyphDefault, fi.Glyph)
	})
}

func TestPointer_Frame(t *testing.T) {
	var p Pointer

	fi := p.Frame(Pt(3, 4), true, false)
	assert.Equal(t, &FrameInput{Cursor: Pt(3, 4), HasCursor: true, Primary: Released}, fi)

	fi = p.Frame(Pt(5, 4), true, true)
	assert.Equal(t, &FrameInput{Cursor: Pt(5, 4), HasCursor: true, Delta: Pt(2, 0), Primary: JustPressed}, fi)

	fi = p.Frame(Pt(5, 1), true, true)
	assert.Equal(t, &FrameInput{Cursor: Pt(5, 1), HasCursor: true, Delta: Pt(0, -3), Primary: Pressed}, fi)

	fi = p.Idle()
	assert.Equal(t, &FrameInput{Cursor: Pt(5, 1), HasCursor: true, Primary: Pressed}, fi)

	fi = p.Frame(Pt(5, 1), true, false)
	assert.Equal(t, JustReleased, fi.Primary)

	fi = p.Frame(Pt(9, 9), false, false)
	assert.Equal(t, &FrameInput{Cursor: Pt(9, 9), Primary: Released}, fi)

	// no delta across a gap in samples
	fi = p.Frame(Pt(1, 1), true, false)
	assert.Equal(t, Point{}, fi.Delta)
}
