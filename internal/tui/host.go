package tui

import (
	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/layout"
)

// host lays the dock out with a layout.Engine and keeps the labels of
// decorated panels for drawing.
type host struct {
	*layout.Engine

	labels map[dock.NodeID]string
}

func (h *host) DecoratePanel(id dock.NodeID, name string) {
	h.labels[id] = name
}

func (h *host) Despawn(id dock.NodeID) {
	h.Engine.Despawn(id)
	delete(h.labels, id)
}

var (
	_ dock.Host           = &host{}
	_ dock.PanelDecorator = &host{}
)
