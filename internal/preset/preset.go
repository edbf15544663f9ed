// Package preset contains named dock layouts.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"mtoohey.com/dock/internal/dock"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrNotFound is returned by Find when no preset matches a query.
var ErrNotFound = errors.New("no matching preset")

// Preset builds a dock layout.
type Preset struct {
	Name        string
	Description string

	build func(d *dock.Dock) error
}

// Build adds the preset's splits and panels to d as a new top-level tree.
func (p Preset) Build(d *dock.Dock) error {
	if err := p.build(d); err != nil {
		return fmt.Errorf("failed to build preset %s: %w", p.Name, err)
	}

	return nil
}

// spec is a declarative layout: a panel when Name is set, a split otherwise.
type spec struct {
	Name        string
	Orientation dock.Orientation
	Ratios      []float64
	Children    []spec
}

func (s spec) build(d *dock.Dock, parent dock.NodeID) error {
	if s.Name != "" {
		_, err := d.CreatePanel(parent, s.Name)
		return err
	}

	id, err := d.CreateSplit(parent, s.Orientation, s.Ratios)
	if err != nil {
		return err
	}

	for _, c := range s.Children {
		if err := c.build(d, id); err != nil {
			return err
		}
	}

	return nil
}

func fromSpec(name, description string, s spec) Preset {
	return Preset{
		Name:        name,
		Description: description,
		build: func(d *dock.Dock) error {
			return s.build(d, dock.Root)
		},
	}
}

func panel(name string) spec {
	return spec{Name: name}
}

// All lists the built-in presets. The first is the default.
var All = []Preset{
	fromSpec("editor", "hierarchy, viewport, and a stacked inspector and assets column", spec{
		Orientation: dock.Horizontal,
		Ratios:      []float64{0.2, 0.5, 0.3},
		Children: []spec{
			panel("Hierarchy"),
			panel("Viewport"),
			{
				Orientation: dock.Vertical,
				Ratios:      []float64{0.5, 0.5},
				Children:    []spec{panel("Inspector"), panel("Assets")},
			},
		},
	}),
	fromSpec("columns", "three side by side columns", spec{
		Orientation: dock.Horizontal,
		Ratios:      []float64{1, 1, 1},
		Children:    []spec{panel("Left"), panel("Middle"), panel("Right")},
	}),
	fromSpec("rows", "three stacked rows", spec{
		Orientation: dock.Vertical,
		Ratios:      []float64{1, 1, 1},
		Children:    []spec{panel("Top"), panel("Middle"), panel("Bottom")},
	}),
	fromSpec("quad", "two rows of two panels", spec{
		Orientation: dock.Vertical,
		Ratios:      []float64{0.5, 0.5},
		Children: []spec{
			{
				Orientation: dock.Horizontal,
				Ratios:      []float64{0.5, 0.5},
				Children:    []spec{panel("North West"), panel("North East")},
			},
			{
				Orientation: dock.Horizontal,
				Ratios:      []float64{0.5, 0.5},
				Children:    []spec{panel("South West"), panel("South East")},
			},
		},
	}),
	fromSpec("single", "one panel filling the whole screen", spec{
		Orientation: dock.Horizontal,
		Ratios:      []float64{1},
		Children:    []spec{panel("Main")},
	}),
}

// Flat returns a preset with a single split of len(ratios) numbered panels.
func Flat(o dock.Orientation, ratios []float64) Preset {
	s := spec{Orientation: o, Ratios: ratios}
	for i := range ratios {
		s.Children = append(s.Children, panel("Panel "+strconv.Itoa(i+1)))
	}

	return fromSpec("flat-"+o.String(), fmt.Sprintf("%d %s panels", len(ratios), o), s)
}

// Find returns the preset named query, or failing that, the preset whose name
// is the closest fuzzy match.
func Find(query string) (Preset, error) {
	names := make([]string, len(All))
	for i, p := range All {
		if p.Name == query {
			return p, nil
		}
		names[i] = p.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}

	sort.Sort(ranks)
	return byName(ranks[0].Target), nil
}

func byName(name string) Preset {
	for _, p := range All {
		if p.Name == name {
			return p
		}
	}
	panic(fmt.Sprintf(`unknown preset "%s"`, name))
}

// Search returns the presets matching query, best match first. An empty query
// matches every preset.
func Search(query string) []Preset {
	if query == "" {
		return All
	}

	names := make([]string, len(All))
	for i, p := range All {
		names[i] = p.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	found := make([]Preset, len(ranks))
	for i, r := range ranks {
		found[i] = byName(r.Target)
	}
	return found
}
