package dock

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Node describes a split or panel visited by Walk.
type Node struct {
	ID     NodeID
	Kind   NodeKind
	Parent NodeID
	// Path locates the node by position: the index among top-level nodes,
	// followed by the child index at each level below, joined by "/".
	Path  string
	Depth int
}

// Walk visits every split and panel depth first, parents before children, in
// visual order. Returning false from fn skips the children of that node.
func (d *Dock) Walk(fn func(Node) bool) {
	for i, id := range d.roots {
		d.walk(id, strconv.Itoa(i), 0, fn)
	}
}

func (d *Dock) walk(id NodeID, path string, depth int, fn func(Node) bool) {
	n := d.lookup(id)
	if n == nil {
		return
	}

	if !fn(Node{ID: id, Kind: n.kind, Parent: n.parent, Path: path, Depth: depth}) {
		return
	}

	// fn may have modified the dock; re-resolve before descending
	n = d.lookup(id)
	if n == nil {
		return
	}

	for i, c := range slices.Clone(n.children) {
		d.walk(c, path+"/"+strconv.Itoa(i), depth+1, fn)
	}
}

// Lookup resolves a path as produced by Walk.
func (d *Dock) Lookup(path string) (NodeID, error) {
	parts := strings.Split(path, "/")

	level := d.roots
	var id NodeID
	for _, p := range parts {
		i, err := strconv.Atoi(p)
		if err != nil || i < 0 || i >= len(level) {
			return NodeID{}, fmt.Errorf("%w: no node at path %q", ErrUnknownNode, path)
		}

		id = level[i]
		level = d.lookup(id).children
	}

	return id, nil
}

// Snapshot is the ratios of every split keyed by path.
type Snapshot map[string][]float64

// Snapshot captures the ratios of every split.
func (d *Dock) Snapshot() Snapshot {
	s := Snapshot{}
	d.Walk(func(n Node) bool {
		if n.Kind == KindSplit {
			s[n.Path] = slices.Clone(d.lookup(n.ID).split.ratios)
		}
		return true
	})
	return s
}

// Restore applies a snapshot. Entries whose path does not name a split, or
// whose ratio count differs from the split's current count, are skipped and
// reported in the returned error; all other entries are still applied.
func (d *Dock) Restore(s Snapshot) error {
	var skipped []string

	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	for _, p := range paths {
		id, err := d.Lookup(p)
		if err != nil {
			skipped = append(skipped, p)
			continue
		}

		n := d.lookup(id)
		if n.kind != KindSplit || len(n.split.ratios) != len(s[p]) {
			skipped = append(skipped, p)
			continue
		}

		if err := d.SetRatios(id, s[p]); err != nil {
			skipped = append(skipped, p)
		}
	}

	if len(skipped) > 0 {
		return fmt.Errorf("failed to restore splits at %s", strings.Join(skipped, ", "))
	}

	return nil
}
