package dock

// State is the phase of a drag session.
type State uint8

const (
	Idle State = iota
	Hovering
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Session tracks pointer interaction with handles. At most one handle is
// dragged at a time. A Session is only modified by Dock.Update.
type Session struct {
	hovered NodeID
	active  NodeID
}

// State returns the current phase of the session.
func (s *Session) State() State {
	switch {
	case !s.active.IsRoot():
		return Dragging
	case !s.hovered.IsRoot():
		return Hovering
	default:
		return Idle
	}
}

// Hovered returns the handle under the pointer, if any. While dragging this is
// the dragged handle.
func (s *Session) Hovered() (NodeID, bool) {
	return s.hovered, !s.hovered.IsRoot()
}

// Active returns the handle being dragged, if any.
func (s *Session) Active() (NodeID, bool) {
	return s.active, !s.active.IsRoot()
}

func (s *Session) reset() {
	s.hovered = Root
	s.active = Root
}
