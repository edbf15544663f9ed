package dock

import (
	"mtoohey.com/dock/internal/util"

	"golang.org/x/exp/slices"
)

// Update runs one frame. Passes run in a fixed order:
//
//  1. the cursor glyph is reset to GlyphDefault;
//  2. splits whose orientation or ratios changed push a new LayoutSpec;
//  3. handles are spawned or despawned to match each split's ratio count;
//  4. handles are placed using the geometry committed by the previous frame;
//  5. hover and drag are evaluated against in, updating sess;
//  6. splits resized by the drag push their new LayoutSpec.
//
// A drag therefore reaches the host in the frame it happens, and its handle is
// placed on the new geometry in the next one. Panels created or renamed since
// the last frame are then passed to the host's PanelDecorator, if it has one.
func (d *Dock) Update(sess *Session, in Input) {
	in.SetCursorGlyph(GlyphDefault)

	d.syncLayout()
	d.syncHandles()
	d.positionHandles()
	d.interact(sess, in)
	d.syncLayout()

	d.decoratePanels()
}

// forEach calls fn for every live node of kind in slot order.
func (d *Dock) forEach(kind NodeKind, fn func(id NodeID, n *node)) {
	for i := 1; i < len(d.nodes); i++ {
		n := &d.nodes[i]
		if !n.live || n.kind != kind {
			continue
		}
		fn(NodeID{index: uint32(i), gen: n.gen}, n)
	}
}

func (d *Dock) syncLayout() {
	d.forEach(KindSplit, func(id NodeID, n *node) {
		if n.split.emitted == n.split.rev {
			return
		}

		d.host.SetLayoutSpec(id, LayoutSpec{
			Orientation: n.split.orientation,
			Tracks:      slices.Clone(n.split.ratios),
			Gap:         d.Gap,
		})
		n.split.emitted = n.split.rev
	})
}

func (d *Dock) syncHandles() {
	// collect first: spawning handles can grow d.nodes
	var splits []NodeID
	d.forEach(KindSplit, func(id NodeID, n *node) {
		if len(n.split.handles) != len(n.split.ratios)-1 {
			splits = append(splits, id)
		}
	})

	for _, id := range splits {
		want := len(d.lookup(id).split.ratios) - 1

		for {
			s := d.lookup(id).split
			if len(s.handles) <= want {
				break
			}

			last := s.handles[len(s.handles)-1]
			s.handles = s.handles[:len(s.handles)-1]
			d.host.Despawn(last)
			d.release(last)
			d.logf("despawned handle %v of split %v", last, id)
		}

		for {
			s := d.lookup(id).split
			if len(s.handles) >= want {
				break
			}

			h, err := d.attach(KindHandle, id)
			if err != nil {
				// id was resolved above and nothing can remove it in between
				panic(err)
			}

			s = d.lookup(id).split
			d.lookup(h).handle = &handle{index: len(s.handles)}
			s.handles = append(s.handles, h)
			d.logf("spawned handle %v of split %v", h, id)
		}
	}
}

func (d *Dock) positionHandles() {
	thickness := util.Max(d.Gap-2, 1)

	d.forEach(KindSplit, func(id NodeID, n *node) {
		for _, h := range n.split.handles {
			d.lookup(h).handle.placed = false
		}

		r, ok := d.host.ResolveRect(id)
		if !ok {
			return
		}

		for _, h := range n.split.handles {
			hn := d.lookup(h).handle
			if hn.index >= len(n.children) {
				continue
			}

			c, ok := d.host.ResolveRect(n.children[hn.index])
			if !ok {
				continue
			}

			if n.split.orientation == Horizontal {
				hn.rect = R(c.Max.X, r.Min.Y, c.Max.X+thickness, r.Max.Y)
			} else {
				hn.rect = R(r.Min.X, c.Max.Y, r.Max.X, c.Max.Y+thickness)
			}
			hn.placed = true
		}
	})
}

// resolveHandle returns the handle and split nodes for handle id, or false if
// either has gone away.
func (d *Dock) resolveHandle(id NodeID) (*node, *node, bool) {
	h := d.lookup(id)
	if h == nil || h.kind != KindHandle {
		return nil, nil, false
	}

	p := d.lookup(h.parent)
	if p == nil || p.kind != KindSplit || h.handle.index+1 >= len(p.split.ratios) {
		return nil, nil, false
	}

	return h, p, true
}

func (d *Dock) interact(sess *Session, in Input) {
	if active, ok := sess.Active(); ok {
		h, p, ok := d.resolveHandle(active)
		if !ok {
			d.logf("aborted drag of handle %v: handle is gone", active)
			sess.reset()
			return
		}

		if in.Button().Down() {
			// a frame without a cursor holds the drag but moves nothing
			if _, ok := in.CursorPosition(); ok {
				in.SetCursorGlyph(p.split.orientation.Glyph())
				d.drag(h, p, in.PointerDelta())
			}
			return
		}

		d.logf("finished drag of handle %v", active)
		sess.reset()
		// fall through so a release over the handle keeps it hovered
	}

	sess.hovered = Root

	pos, ok := in.CursorPosition()
	if !ok {
		return
	}

	var found NodeID
	d.forEach(KindHandle, func(id NodeID, n *node) {
		if found.IsRoot() && n.handle.placed && n.handle.rect.Contains(pos) {
			found = id
		}
	})
	if found.IsRoot() {
		return
	}

	_, p, ok := d.resolveHandle(found)
	if !ok {
		return
	}

	sess.hovered = found
	in.SetCursorGlyph(p.split.orientation.Glyph())

	if in.Button() == JustPressed {
		sess.active = found
		d.logf("started drag of handle %v", found)
	}
}

// drag applies one frame of pointer movement to the ratios either side of h.
func (d *Dock) drag(h, p *node, displacement Point) {
	s := p.split

	r, ok := d.host.ResolveRect(h.parent)
	if !ok {
		return
	}

	extent := s.orientation.extent(r)
	moved := s.orientation.primary(displacement)
	if extent <= 0 || moved == 0 {
		return
	}

	delta := moved / extent * util.Sum(s.ratios...)
	ratios := Resize(s.ratios, h.handle.index, delta)
	if slices.Equal(ratios, s.ratios) {
		return
	}

	s.ratios = ratios
	s.rev++
}

func (d *Dock) decoratePanels() {
	dec, ok := d.host.(PanelDecorator)
	if !ok {
		return
	}

	d.forEach(KindPanel, func(id NodeID, n *node) {
		if n.panel.decorated == n.panel.rev {
			return
		}

		dec.DecoratePanel(id, n.panel.name)
		n.panel.decorated = n.panel.rev
	})
}

func (d *Dock) logf(format string, v ...any) {
	if d.logger != nil {
		d.logger.Printf(format, v...)
	}
}
