// Package render resolves a layout at a fixed size and prints the geometry of
// every node, without an interactive host.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"mtoohey.com/dock/internal/cmd"
	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/layout"
	"mtoohey.com/dock/internal/preset"
	"mtoohey.com/dock/internal/util"
)

type Cmd struct {
	Preset string `arg:"" default:"editor" help:"Query selecting the layout to print. Ignored when --ratios is given."`

	Orientation dock.Orientation `short:"o" default:"horizontal" help:"Orientation of the split built from --ratios."`
	Ratios      []float64        `short:"r" help:"Print a single split with these ratios instead of a preset."`

	Width   float64 `short:"W" default:"1280" help:"Width of the viewport."`
	Height  float64 `short:"H" default:"720" help:"Height of the viewport."`
	Padding float64 `short:"p" default:"0" help:"Space left empty around the viewport."`
	Snap    bool    `short:"s" help:"Round track boundaries to whole units."`
}

func (c *Cmd) Run(g cmd.Globals) error {
	p := preset.Flat(c.Orientation, c.Ratios)
	if len(c.Ratios) == 0 {
		var err error
		p, err = preset.Find(c.Preset)
		if err != nil {
			return err
		}
	}

	lines, err := Resolve(p, g.Gap, c.Padding, dock.R(0, 0, c.Width, c.Height), c.Snap)
	if err != nil {
		return err
	}

	return write(os.Stdout, lines)
}

// Resolve builds p into a fresh dock laid out in viewport and returns a table
// describing every node.
func Resolve(p preset.Preset, gap, padding float64, viewport dock.Rect, snap bool) ([]string, error) {
	e := layout.New(viewport)
	e.Padding = padding
	e.Snap = snap

	d := dock.New(e, nil)
	d.Gap = gap
	if err := p.Build(d); err != nil {
		return nil, err
	}

	// the first frame stages the layout, the second places the handles
	var sess dock.Session
	for i := 0; i < 2; i++ {
		d.Update(&sess, &dock.FrameInput{})
		e.Commit()
	}

	rows := [][]string{{"path", "kind", "name", "rect"}}
	d.Walk(func(n dock.Node) bool {
		var name string
		if n.Kind == dock.KindPanel {
			name, _ = d.PanelName(n.ID)
		}
		rows = append(rows, []string{n.Path, n.Kind.String(), name, rectString(e.ResolveRect(n.ID))})

		if n.Kind == dock.KindSplit {
			handles, _ := d.Handles(n.ID)
			for i, h := range handles {
				rows = append(rows, []string{
					n.Path + "/h" + strconv.Itoa(i),
					dock.KindHandle.String(),
					"",
					rectString(d.HandleRect(h)),
				})
			}
		}
		return true
	})

	return util.Table(rows), nil
}

func rectString(r dock.Rect, ok bool) string {
	if !ok {
		return "unresolved"
	}
	return r.String()
}

func write(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	return nil
}
