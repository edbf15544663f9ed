package layout

import (
	"testing"

	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/testutil/assert"
)

func TestTracks(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, Tracks(100, 7, nil, false))
	})

	t.Run("single", func(t *testing.T) {
		assert.Equal(t, []Span{{Start: 0, Size: 100}}, Tracks(100, 7, []float64{0.4}, false))
	})

	t.Run("proportional", func(t *testing.T) {
		spans := Tracks(100, 7, []float64{0.2, 0.5, 0.3}, false)
		assert.Equal(t, 3, len(spans))

		assert.InDelta(t, 0, spans[0].Start, 1e-9)
		assert.InDelta(t, 17.2, spans[0].Size, 1e-9)
		assert.InDelta(t, 24.2, spans[1].Start, 1e-9)
		assert.InDelta(t, 43, spans[1].Size, 1e-9)
		assert.InDelta(t, 74.2, spans[2].Start, 1e-9)
		assert.InDelta(t, 25.8, spans[2].Size, 1e-9)

		// gaps of exactly 7 between tracks
		assert.InDelta(t, 7, spans[1].Start-(spans[0].Start+spans[0].Size), 1e-9)
		assert.InDelta(t, 7, spans[2].Start-(spans[1].Start+spans[1].Size), 1e-9)
	})

	t.Run("snapped", func(t *testing.T) {
		assert.Equal(t, []Span{
			{Start: 0, Size: 17},
			{Start: 24, Size: 43},
			{Start: 74, Size: 26},
		}, Tracks(100, 7, []float64{0.2, 0.5, 0.3}, true))
	})

	t.Run("snapped sizes cover extent", func(t *testing.T) {
		for extent := 10.0; extent < 200; extent += 3 {
			spans := Tracks(extent, 1, []float64{1, 1, 1, 0.7, 2.3}, true)
			var total float64
			for _, s := range spans {
				total += s.Size
			}
			assert.Equal(t, extent-4, total)

			last := spans[len(spans)-1]
			assert.Equal(t, extent, last.Start+last.Size)
		}
	})

	t.Run("smaller than gaps", func(t *testing.T) {
		for _, s := range Tracks(5, 7, []float64{1, 1}, false) {
			assert.Equal(t, 0.0, s.Size)
		}
	})
}

func TestEngine_SetLayoutSpec(t *testing.T) {
	e := New(dock.R(0, 0, 100, 50))
	d := dock.New(e, nil)
	s, err := d.CreateSplit(dock.Root, dock.Horizontal, []float64{0.2, 0.5, 0.3})
	assert.NoError(t, err)

	d.Update(&dock.Session{}, &dock.FrameInput{})
	d.Update(&dock.Session{}, &dock.FrameInput{})
	assert.Equal(t, 1, e.Writes())

	spec, ok := e.Spec(s)
	assert.True(t, ok)
	e.SetLayoutSpec(s, spec)
	assert.Equal(t, 1, e.Writes())

	spec.Gap = 3
	e.SetLayoutSpec(s, spec)
	assert.Equal(t, 2, e.Writes())
}

func TestEngine_Commit(t *testing.T) {
	e := New(dock.R(0, 0, 110, 60))
	e.Padding = 5
	e.Snap = true

	d := dock.New(e, nil)
	outer, _ := d.CreateSplit(dock.Root, dock.Horizontal, []float64{0.2, 0.5, 0.3})
	a, _ := d.CreatePanel(outer, "a")
	b, _ := d.CreatePanel(outer, "b")
	inner, _ := d.CreateSplit(outer, dock.Vertical, []float64{0.5, 0.5})
	c, _ := d.CreatePanel(inner, "c")
	dd, _ := d.CreatePanel(inner, "d")

	// nothing is resolved before the first commit
	_, ok := e.ResolveRect(outer)
	assert.False(t, ok)

	var sess dock.Session
	d.Update(&sess, &dock.FrameInput{})
	e.Commit()

	for id, expected := range map[dock.NodeID]dock.Rect{
		outer: dock.R(5, 5, 105, 55),
		a:     dock.R(5, 5, 22, 55),
		b:     dock.R(29, 5, 72, 55),
		inner: dock.R(79, 5, 105, 55),
		c:     dock.R(79, 5, 105, 27),
		dd:    dock.R(79, 34, 105, 55),
	} {
		actual, ok := e.ResolveRect(id)
		assert.True(t, ok)
		assert.Equal(t, expected, actual)
	}

	// handles are placed from committed geometry on the following frame
	d.Update(&sess, &dock.FrameInput{})
	handles, _ := d.Handles(outer)
	r, ok := d.HandleRect(handles[0])
	assert.True(t, ok)
	assert.Equal(t, dock.R(22, 5, 27, 55), r)

	handles, _ = d.Handles(inner)
	r, ok = d.HandleRect(handles[0])
	assert.True(t, ok)
	assert.Equal(t, dock.R(79, 27, 105, 32), r)
}

func TestEngine_UntrackedChildren(t *testing.T) {
	e := New(dock.R(0, 0, 100, 10))
	d := dock.New(e, nil)
	s, _ := d.CreateSplit(dock.Root, dock.Horizontal, []float64{0.5, 0.5})
	_, _ = d.CreatePanel(s, "a")
	_, _ = d.CreatePanel(s, "b")
	extra, _ := d.CreatePanel(s, "c")

	d.Update(&dock.Session{}, &dock.FrameInput{})
	e.Commit()

	_, ok := e.ResolveRect(extra)
	assert.False(t, ok)

	assert.NoError(t, d.SetRatios(s, []float64{0.4, 0.3, 0.3}))
	d.Update(&dock.Session{}, &dock.FrameInput{})
	e.Commit()

	_, ok = e.ResolveRect(extra)
	assert.True(t, ok)
}

func TestEngine_Despawn(t *testing.T) {
	e := New(dock.R(0, 0, 100, 10))
	d := dock.New(e, nil)
	s, _ := d.CreateSplit(dock.Root, dock.Horizontal, []float64{0.5, 0.5})
	p, _ := d.CreatePanel(s, "a")

	d.Update(&dock.Session{}, &dock.FrameInput{})
	e.Commit()

	assert.NoError(t, d.Remove(s))
	e.Commit()

	_, ok := e.ResolveRect(s)
	assert.False(t, ok)
	_, ok = e.ResolveRect(p)
	assert.False(t, ok)
	_, ok = e.Spec(s)
	assert.False(t, ok)
}

// TestDrag runs the full loop: the drag changes ratios, the dock pushes a new
// spec, the engine commits new geometry, and the handle follows one frame
// later.
func TestDrag(t *testing.T) {
	e := New(dock.R(0, 0, 107, 20))
	e.Snap = true
	d := dock.New(e, nil)
	s, _ := d.CreateSplit(dock.Root, dock.Horizontal, []float64{0.5, 0.5})
	_, _ = d.CreatePanel(s, "left")
	_, _ = d.CreatePanel(s, "right")

	var sess dock.Session
	var p dock.Pointer
	frame := func(x float64, down bool) *dock.FrameInput {
		fi := p.Frame(dock.Pt(x, 10), true, down)
		d.Update(&sess, fi)
		e.Commit()
		return fi
	}

	frame(0, false)
	frame(0, false)

	handles, _ := d.Handles(s)
	r, _ := d.HandleRect(handles[0])
	assert.Equal(t, dock.R(50, 0, 55, 20), r)

	fi := frame(51, false)
	assert.Equal(t, dock.GlyphColResize, fi.Glyph)
	frame(51, true)
	frame(72.4, true)

	ratios, _ := d.Ratios(s)
	assert.SliceInDelta(t, []float64{0.7, 0.3}, ratios, 1e-9)

	// the handle has followed the pointer, so releasing leaves it hovered
	fi = frame(72.4, false)
	assert.Equal(t, dock.Hovering, sess.State())
	assert.Equal(t, dock.GlyphColResize, fi.Glyph)

	r, _ = d.HandleRect(handles[0])
	assert.Equal(t, dock.R(70, 0, 75, 20), r)

	fi = frame(90, false)
	assert.Equal(t, dock.Idle, sess.State())
	assert.Equal(t, dock.GlyphDefault, fi.Glyph)
}
