package preset

import (
	"fmt"

	"mtoohey.com/dock/internal/util"
)

type Cmd struct {
	Query string `arg:"" optional:"" help:"Only list presets fuzzily matching this query."`
}

func (c *Cmd) Run() error {
	found := Search(c.Query)
	if len(found) == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, c.Query)
	}

	rows := [][]string{{"name", "description"}}
	for _, p := range found {
		rows = append(rows, []string{p.Name, p.Description})
	}

	for _, l := range util.Table(rows) {
		if _, err := fmt.Println(l); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	return nil
}
