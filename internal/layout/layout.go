// Package layout is a small grid layout engine for dock trees. It resolves a
// rectangle for every split and panel from the split's LayoutSpec, committing
// results once per frame so that readers always see a consistent layout.
package layout

import (
	"math"

	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/util"

	"golang.org/x/exp/slices"
)

// Span is a one-dimensional track: Start is the offset from the start of the
// container and Size the track's length.
type Span struct {
	Start, Size float64
}

// Tracks divides extent into len(ratios) tracks separated by gap. Each track
// gets extent minus the gaps in proportion to its ratio. If snap is set, track
// boundaries are rounded to whole units while the tracks still cover the
// available space exactly.
func Tracks(extent, gap float64, ratios []float64, snap bool) []Span {
	if len(ratios) == 0 {
		return nil
	}

	avail := util.Max(extent-gap*float64(len(ratios)-1), 0)
	sum := util.Sum(ratios...)

	spans := make([]Span, len(ratios))
	var acc, prevEdge float64
	for i, r := range ratios {
		acc += r

		edge := avail
		if i < len(ratios)-1 && sum > 0 {
			edge = avail * acc / sum
			if snap {
				edge = math.Round(edge)
			}
		}
		if sum <= 0 {
			edge = avail * float64(i+1) / float64(len(ratios))
		}

		spans[i] = Span{
			Start: prevEdge + gap*float64(i),
			Size:  util.Max(edge-prevEdge, 0),
		}
		prevEdge = util.Max(edge, prevEdge)
	}

	return spans
}

type entry struct {
	parent   dock.NodeID
	kind     dock.NodeKind
	children []dock.NodeID
	spec     *dock.LayoutSpec
}

// Engine implements dock.Host. Specs and tree changes are staged and only
// become visible through ResolveRect after Commit.
type Engine struct {
	// Padding is left empty around the viewport.
	Padding float64
	// Snap rounds track boundaries to whole units, for cell-based hosts.
	Snap bool

	viewport dock.Rect
	entries  map[dock.NodeID]*entry
	roots    []dock.NodeID
	rects    map[dock.NodeID]dock.Rect
	writes   int
}

// New creates an engine laying out into viewport.
func New(viewport dock.Rect) *Engine {
	return &Engine{
		viewport: viewport,
		entries:  map[dock.NodeID]*entry{},
		rects:    map[dock.NodeID]dock.Rect{},
	}
}

// SetViewport changes the area top-level nodes fill, from the next Commit.
func (e *Engine) SetViewport(r dock.Rect) {
	e.viewport = r
}

// Viewport returns the area top-level nodes fill.
func (e *Engine) Viewport() dock.Rect {
	return e.viewport
}

func (e *Engine) Spawn(id, parent dock.NodeID, kind dock.NodeKind) {
	e.entries[id] = &entry{parent: parent, kind: kind}

	if parent.IsRoot() {
		e.roots = append(e.roots, id)
		return
	}

	if p, ok := e.entries[parent]; ok {
		p.children = append(p.children, id)
	}
}

func (e *Engine) Despawn(id dock.NodeID) {
	en, ok := e.entries[id]
	if !ok {
		return
	}

	if en.parent.IsRoot() {
		e.roots = remove(e.roots, id)
	} else if p, ok := e.entries[en.parent]; ok {
		p.children = remove(p.children, id)
	}

	e.despawn(id)
}

func (e *Engine) despawn(id dock.NodeID) {
	en, ok := e.entries[id]
	if !ok {
		return
	}

	for _, c := range en.children {
		e.despawn(c)
	}

	delete(e.entries, id)
	delete(e.rects, id)
}

func remove(ids []dock.NodeID, id dock.NodeID) []dock.NodeID {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

func (e *Engine) SetLayoutSpec(id dock.NodeID, spec dock.LayoutSpec) {
	en, ok := e.entries[id]
	if !ok {
		return
	}

	if en.spec != nil && en.spec.Orientation == spec.Orientation &&
		en.spec.Gap == spec.Gap && slices.Equal(en.spec.Tracks, spec.Tracks) {
		return
	}

	spec.Tracks = slices.Clone(spec.Tracks)
	en.spec = &spec
	e.writes++
}

// Writes returns how many times SetLayoutSpec changed a spec.
func (e *Engine) Writes() int {
	return e.writes
}

// Spec returns the staged spec of split id.
func (e *Engine) Spec(id dock.NodeID) (dock.LayoutSpec, bool) {
	en, ok := e.entries[id]
	if !ok || en.spec == nil {
		return dock.LayoutSpec{}, false
	}
	return *en.spec, true
}

func (e *Engine) ResolveRect(id dock.NodeID) (dock.Rect, bool) {
	r, ok := e.rects[id]
	return r, ok
}

// Commit lays out the whole tree using the staged specs.
func (e *Engine) Commit() {
	e.rects = make(map[dock.NodeID]dock.Rect, len(e.entries))

	area := e.viewport.Inset(e.Padding)
	for _, id := range e.roots {
		e.place(id, area)
	}
}

func (e *Engine) place(id dock.NodeID, r dock.Rect) {
	en := e.entries[id]
	if en.kind == dock.KindHandle {
		return
	}

	e.rects[id] = r
	if en.spec == nil {
		return
	}

	var content []dock.NodeID
	for _, c := range en.children {
		if e.entries[c].kind != dock.KindHandle {
			content = append(content, c)
		}
	}

	horizontal := en.spec.Orientation == dock.Horizontal
	extent := r.Dy()
	if horizontal {
		extent = r.Dx()
	}

	// children without a track are left unresolved
	for i, s := range Tracks(extent, en.spec.Gap, en.spec.Tracks, e.Snap) {
		if i >= len(content) {
			break
		}

		cr := r
		if horizontal {
			cr.Min.X = r.Min.X + s.Start
			cr.Max.X = cr.Min.X + s.Size
		} else {
			cr.Min.Y = r.Min.Y + s.Start
			cr.Max.Y = cr.Min.Y + s.Size
		}
		e.place(content[i], cr)
	}
}

var _ dock.Host = &Engine{}
