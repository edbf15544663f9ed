package dock

import "golang.org/x/exp/slices"

// fakeHost records what the dock asks of its host and serves rectangles
// from a map that tests fill in directly.
type fakeHost struct {
	rects      map[NodeID]Rect
	specs      map[NodeID]LayoutSpec
	specWrites int

	kinds     map[NodeID]NodeKind
	children  map[NodeID][]NodeID
	despawned []NodeID

	decorated map[NodeID]string
	decorates int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		rects:     map[NodeID]Rect{},
		specs:     map[NodeID]LayoutSpec{},
		kinds:     map[NodeID]NodeKind{},
		children:  map[NodeID][]NodeID{},
		decorated: map[NodeID]string{},
	}
}

func (fh *fakeHost) ResolveRect(id NodeID) (Rect, bool) {
	r, ok := fh.rects[id]
	return r, ok
}

func (fh *fakeHost) SetLayoutSpec(id NodeID, spec LayoutSpec) {
	fh.specs[id] = spec
	fh.specWrites++
}

func (fh *fakeHost) Spawn(id, parent NodeID, kind NodeKind) {
	fh.kinds[id] = kind
	fh.children[parent] = append(fh.children[parent], id)
}

func (fh *fakeHost) Despawn(id NodeID) {
	for p, cs := range fh.children {
		if i := slices.Index(cs, id); i >= 0 {
			fh.children[p] = slices.Delete(cs, i, i+1)
		}
	}
	fh.despawn(id)
}

func (fh *fakeHost) despawn(id NodeID) {
	for _, c := range fh.children[id] {
		fh.despawn(c)
	}
	delete(fh.children, id)
	delete(fh.kinds, id)
	fh.despawned = append(fh.despawned, id)
}

func (fh *fakeHost) DecoratePanel(id NodeID, name string) {
	fh.decorated[id] = name
	fh.decorates++
}

func (fh *fakeHost) countKind(kind NodeKind) int {
	n := 0
	for _, k := range fh.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

var (
	_ Host           = &fakeHost{}
	_ PanelDecorator = &fakeHost{}
)
