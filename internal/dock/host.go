package dock

import "fmt"

// NodeID identifies a split, panel or handle. IDs are never reused: once a
// node is removed, every copy of its ID fails to resolve, even if its storage
// slot is handed to a new node.
type NodeID struct {
	index uint32
	gen   uint32
}

// Root is the zero NodeID. It is the parent of top-level splits and panels,
// and never refers to a node itself.
var Root NodeID

// IsRoot reports whether id is the zero NodeID.
func (id NodeID) IsRoot() bool {
	return id == Root
}

func (id NodeID) String() string {
	if id.IsRoot() {
		return "root"
	}
	return fmt.Sprintf("%d.%d", id.index, id.gen)
}

// NodeKind distinguishes the kinds of node the dock creates.
type NodeKind uint8

const (
	KindSplit NodeKind = iota + 1
	KindPanel
	// KindHandle nodes take no space in their parent's tracks; their
	// rectangle is placed by the dock itself.
	KindHandle
)

func (k NodeKind) String() string {
	switch k {
	case KindSplit:
		return "split"
	case KindPanel:
		return "panel"
	case KindHandle:
		return "handle"
	default:
		return fmt.Sprintf("NodeKind(%d)", k)
	}
}

// LayoutSpec is the grid configuration for a split: a single row (Horizontal)
// or column (Vertical) of flexible tracks sized in proportion to Tracks, with
// Gap units between neighbouring tracks.
type LayoutSpec struct {
	Orientation Orientation
	Tracks      []float64
	Gap         float64
}

// LayoutEngine resolves node geometry. The dock only ever reads rectangles
// from it and pushes split configurations into it.
type LayoutEngine interface {
	// ResolveRect returns the most recently committed rectangle of id. It
	// returns false when id has not been laid out yet.
	ResolveRect(id NodeID) (Rect, bool)

	// SetLayoutSpec configures the tracks of split id. Calling it again with
	// an equal spec must be a no-op.
	SetLayoutSpec(id NodeID, spec LayoutSpec)
}

// SceneGraph mirrors the dock's node tree into the host.
type SceneGraph interface {
	// Spawn adds id as the last child of parent.
	Spawn(id, parent NodeID, kind NodeKind)

	// Despawn removes id and, recursively, all of its children.
	Despawn(id NodeID)
}

// Host is everything the dock needs from its embedding application.
type Host interface {
	LayoutEngine
	SceneGraph
}

// PanelDecorator is optionally implemented by a Host that renders panel
// chrome. DecoratePanel is called during Update for every panel created or
// renamed since the previous call.
type PanelDecorator interface {
	DecoratePanel(id NodeID, name string)
}

// ButtonState is the state of the primary pointer button for one frame.
type ButtonState uint8

const (
	Released ButtonState = iota
	JustPressed
	Pressed
	JustReleased
)

// Down reports whether the button is held during the frame.
func (b ButtonState) Down() bool {
	return b == JustPressed || b == Pressed
}

func (b ButtonState) String() string {
	switch b {
	case Released:
		return "released"
	case JustPressed:
		return "just pressed"
	case Pressed:
		return "pressed"
	case JustReleased:
		return "just released"
	default:
		return fmt.Sprintf("ButtonState(%d)", b)
	}
}

// Glyph is the pointer cursor shape requested by the dock.
type Glyph uint8

const (
	GlyphDefault Glyph = iota
	GlyphColResize
	GlyphRowResize
)

func (g Glyph) String() string {
	switch g {
	case GlyphDefault:
		return "default"
	case GlyphColResize:
		return "col-resize"
	case GlyphRowResize:
		return "row-resize"
	default:
		return fmt.Sprintf("Glyph(%d)", g)
	}
}

// Input is the pointer state for a single frame.
type Input interface {
	// CursorPosition returns the pointer position, or false when there is no
	// pointer over the window.
	CursorPosition() (Point, bool)

	// PointerDelta returns how far the pointer moved since the previous
	// frame.
	PointerDelta() Point

	// Button returns the primary button state.
	Button() ButtonState

	// SetCursorGlyph requests a cursor shape.
	SetCursorGlyph(Glyph)
}
