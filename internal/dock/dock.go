// Package dock implements a split-tree panel layout with draggable splitter
// handles.
//
// A Dock owns a tree of splits and panels. Each split divides its rectangle
// between its children along one axis according to a list of ratios, and gets
// one invisible handle between every pair of neighbouring children. Geometry
// is computed by a host LayoutEngine; the dock pushes split configurations to
// it and reads resolved rectangles back, one frame later.
//
// All work happens in Update, which must be called once per frame from a
// single goroutine.
package dock

import (
	"fmt"
	"log"
	"math"

	"mtoohey.com/dock/internal/util"

	"golang.org/x/exp/slices"
)

const (
	// DefaultGap is the space between neighbouring children of a split.
	DefaultGap = 7.0

	// MinRatio is the smallest ratio a child may have.
	MinRatio = 0.1
)

type node struct {
	// gen is the generation of the node occupying the slot, or of its last
	// occupant when the slot is free.
	gen      uint32
	live     bool
	kind     NodeKind
	parent   NodeID
	children []NodeID

	split  *split
	panel  *panel
	handle *handle
}

type split struct {
	orientation Orientation
	ratios      []float64
	handles     []NodeID

	// rev is bumped on every change to orientation or ratios. emitted is the
	// rev last pushed to the layout engine.
	rev, emitted uint64
}

type panel struct {
	name           string
	rev, decorated uint64
}

type handle struct {
	index  int
	rect   Rect
	placed bool
}

// Dock is a forest of splits and panels.
type Dock struct {
	// Gap is the space between the tracks of every split. It must be set
	// before the first Update.
	Gap float64

	host   Host
	logger *log.Logger

	nodes []node
	free  []uint32
	roots []NodeID
}

// New creates an empty dock that lays out through host.
func New(host Host, logger *log.Logger) *Dock {
	return &Dock{
		Gap:    DefaultGap,
		host:   host,
		logger: logger,
		// slot 0 is reserved so that the zero NodeID never resolves
		nodes: make([]node, 1),
	}
}

// validateRatios checks ratios against the invariants every split keeps.
func validateRatios(ratios []float64) error {
	if len(ratios) == 0 {
		return fmt.Errorf("%w: at least one ratio is required", ErrInvalidRatios)
	}

	for i, r := range ratios {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < MinRatio {
			return fmt.Errorf("%w: ratio %d is %v, must be at least %v", ErrInvalidRatios, i, r, MinRatio)
		}
	}

	return nil
}

// lookup returns the node for id, or nil if id does not resolve.
func (d *Dock) lookup(id NodeID) *node {
	if id.index == 0 || int(id.index) >= len(d.nodes) {
		return nil
	}

	n := &d.nodes[id.index]
	if !n.live || n.gen != id.gen {
		return nil
	}

	return n
}

func (d *Dock) lookupKind(id NodeID, kind NodeKind) (*node, error) {
	n := d.lookup(id)
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}

	if n.kind != kind {
		return nil, fmt.Errorf("%w: %v is a %v, not a %v", ErrWrongKind, id, n.kind, kind)
	}

	return n, nil
}

// alloc reserves a slot and returns its ID. The returned node pointer is only
// valid until the next alloc.
func (d *Dock) alloc(kind NodeKind, parent NodeID) (NodeID, *node) {
	var idx uint32
	if l := len(d.free); l > 0 {
		idx = d.free[l-1]
		d.free = d.free[:l-1]
	} else {
		d.nodes = append(d.nodes, node{})
		idx = uint32(len(d.nodes) - 1)
	}

	n := &d.nodes[idx]
	// generations continue from where the previous occupant left off so that
	// stale IDs never match
	gen := n.gen + 1
	*n = node{gen: gen, live: true, kind: kind, parent: parent}

	return NodeID{index: idx, gen: gen}, n
}

// attach validates parent and spawns a new node under it.
func (d *Dock) attach(kind NodeKind, parent NodeID) (NodeID, error) {
	if !parent.IsRoot() {
		if _, err := d.lookupKind(parent, KindSplit); err != nil {
			return NodeID{}, fmt.Errorf("failed to resolve parent: %w", err)
		}
	}

	id, _ := d.alloc(kind, parent)

	if parent.IsRoot() {
		d.roots = append(d.roots, id)
	} else if kind != KindHandle {
		p := d.lookup(parent)
		p.children = append(p.children, id)
	}

	d.host.Spawn(id, parent, kind)

	return id, nil
}

// CreateSplit adds a split as the last child of parent, which must be Root or
// another split.
func (d *Dock) CreateSplit(parent NodeID, orientation Orientation, ratios []float64) (NodeID, error) {
	if err := validateRatios(ratios); err != nil {
		return NodeID{}, err
	}

	id, err := d.attach(KindSplit, parent)
	if err != nil {
		return NodeID{}, err
	}

	d.lookup(id).split = &split{
		orientation: orientation,
		ratios:      slices.Clone(ratios),
		rev:         1,
	}

	return id, nil
}

// CreatePanel adds a named leaf as the last child of parent, which must be Root
// or a split.
func (d *Dock) CreatePanel(parent NodeID, name string) (NodeID, error) {
	id, err := d.attach(KindPanel, parent)
	if err != nil {
		return NodeID{}, err
	}

	d.lookup(id).panel = &panel{name: name, rev: 1}

	return id, nil
}

// SetRatios replaces the ratios of split id. If ratios is invalid the split is
// left unchanged. Setting the current ratios again is a no-op.
func (d *Dock) SetRatios(id NodeID, ratios []float64) error {
	n, err := d.lookupKind(id, KindSplit)
	if err != nil {
		return err
	}

	if err := validateRatios(ratios); err != nil {
		return err
	}

	if slices.Equal(n.split.ratios, ratios) {
		return nil
	}

	n.split.ratios = slices.Clone(ratios)
	n.split.rev++

	return nil
}

// Ratios returns a copy of the ratios of split id.
func (d *Dock) Ratios(id NodeID) ([]float64, error) {
	n, err := d.lookupKind(id, KindSplit)
	if err != nil {
		return nil, err
	}

	return slices.Clone(n.split.ratios), nil
}

// SetOrientation changes the axis of split id.
func (d *Dock) SetOrientation(id NodeID, o Orientation) error {
	n, err := d.lookupKind(id, KindSplit)
	if err != nil {
		return err
	}

	if n.split.orientation != o {
		n.split.orientation = o
		n.split.rev++
	}

	return nil
}

// Orientation returns the axis of split id.
func (d *Dock) Orientation(id NodeID) (Orientation, error) {
	n, err := d.lookupKind(id, KindSplit)
	if err != nil {
		return 0, err
	}

	return n.split.orientation, nil
}

// EvenRatios gives every child of split id the same share, keeping the current
// total.
func (d *Dock) EvenRatios(id NodeID) error {
	n, err := d.lookupKind(id, KindSplit)
	if err != nil {
		return err
	}

	ratios := make([]float64, len(n.split.ratios))
	even := util.Sum(n.split.ratios...) / float64(len(ratios))
	for i := range ratios {
		ratios[i] = even
	}

	if err := d.SetRatios(id, ratios); err != nil {
		return fmt.Errorf("failed to even out ratios: %w", err)
	}

	return nil
}

// SetPanelName renames panel id.
func (d *Dock) SetPanelName(id NodeID, name string) error {
	n, err := d.lookupKind(id, KindPanel)
	if err != nil {
		return err
	}

	if n.panel.name != name {
		n.panel.name = name
		n.panel.rev++
	}

	return nil
}

// PanelName returns the name of panel id.
func (d *Dock) PanelName(id NodeID) (string, error) {
	n, err := d.lookupKind(id, KindPanel)
	if err != nil {
		return "", err
	}

	return n.panel.name, nil
}

// Children returns the content children of split id in visual order. Handles
// are not included.
func (d *Dock) Children(id NodeID) ([]NodeID, error) {
	n, err := d.lookupKind(id, KindSplit)
	if err != nil {
		return nil, err
	}

	return slices.Clone(n.children), nil
}

// Handles returns the handles of split id ordered by index. The list reflects
// the ratio count as of the last Update.
func (d *Dock) Handles(id NodeID) ([]NodeID, error) {
	n, err := d.lookupKind(id, KindSplit)
	if err != nil {
		return nil, err
	}

	return slices.Clone(n.split.handles), nil
}

// HandleIndex returns which ratio pair handle id controls, and its split.
func (d *Dock) HandleIndex(id NodeID) (parent NodeID, index int, err error) {
	n, err := d.lookupKind(id, KindHandle)
	if err != nil {
		return NodeID{}, 0, err
	}

	return n.parent, n.handle.index, nil
}

// HandleRect returns the rectangle of handle id as placed by the last Update.
// It returns false if the handle could not be placed.
func (d *Dock) HandleRect(id NodeID) (Rect, bool) {
	n := d.lookup(id)
	if n == nil || n.kind != KindHandle || !n.handle.placed {
		return Rect{}, false
	}

	return n.handle.rect, true
}

// Kind returns the kind of node id, or false if id does not resolve.
func (d *Dock) Kind(id NodeID) (NodeKind, bool) {
	n := d.lookup(id)
	if n == nil {
		return 0, false
	}
	return n.kind, true
}

// Remove deletes id together with its handles and, recursively, its children.
// Removing a child of a split does not change the split's ratios.
func (d *Dock) Remove(id NodeID) error {
	n := d.lookup(id)
	if n == nil {
		return fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}

	if n.kind == KindHandle {
		return fmt.Errorf("%w: handles are owned by their split", ErrWrongKind)
	}

	if n.parent.IsRoot() {
		if i := slices.Index(d.roots, id); i >= 0 {
			d.roots = slices.Delete(d.roots, i, i+1)
		}
	} else if p := d.lookup(n.parent); p != nil {
		if i := slices.Index(p.children, id); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}

	d.host.Despawn(id)
	d.release(id)

	return nil
}

// release frees the slot of id and everything below it without notifying the
// host, which despawns recursively on its own.
func (d *Dock) release(id NodeID) {
	n := d.lookup(id)
	if n == nil {
		return
	}

	var below []NodeID
	below = append(below, n.children...)
	if n.split != nil {
		below = append(below, n.split.handles...)
	}

	*n = node{gen: n.gen}
	d.free = append(d.free, id.index)

	for _, c := range below {
		d.release(c)
	}
}
