package preset

import (
	"testing"

	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/layout"
	"mtoohey.com/dock/internal/testutil/assert"
)

func TestFind(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		p, err := Find("quad")
		assert.NoError(t, err)
		assert.Equal(t, "quad", p.Name)
	})

	t.Run("fuzzy", func(t *testing.T) {
		p, err := Find("edt")
		assert.NoError(t, err)
		assert.Equal(t, "editor", p.Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		p, err := Find("COL")
		assert.NoError(t, err)
		assert.Equal(t, "columns", p.Name)
	})

	t.Run("none", func(t *testing.T) {
		_, err := Find("zzz")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSearch(t *testing.T) {
	assert.Equal(t, len(All), len(Search("")))

	found := Search("s")
	assert.True(t, len(found) > 0)
	for _, p := range found {
		assert.True(t, p.Name != "quad")
	}
}

func TestBuild(t *testing.T) {
	for _, p := range append(All, Flat(dock.Vertical, []float64{0.2, 0.3, 0.5})) {
		t.Run(p.Name, func(t *testing.T) {
			d := dock.New(layout.New(dock.R(0, 0, 80, 24)), nil)
			assert.NoError(t, p.Build(d))

			d.Walk(func(n dock.Node) bool {
				if n.Kind != dock.KindSplit {
					return true
				}

				ratios, err := d.Ratios(n.ID)
				assert.NoError(t, err)
				children, err := d.Children(n.ID)
				assert.NoError(t, err)
				assert.Equal(t, len(ratios), len(children))
				return true
			})
		})
	}
}

func TestEditor(t *testing.T) {
	p, _ := Find("editor")
	d := dock.New(layout.New(dock.R(0, 0, 80, 24)), nil)
	assert.NoError(t, p.Build(d))

	assert.Equal(t, dock.Snapshot{
		"0":   {0.2, 0.5, 0.3},
		"0/2": {0.5, 0.5},
	}, d.Snapshot())

	id, err := d.Lookup("0/2/1")
	assert.NoError(t, err)
	name, err := d.PanelName(id)
	assert.NoError(t, err)
	assert.Equal(t, "Assets", name)
}
