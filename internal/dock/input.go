package dock

// FrameInput is a plain Input whose fields are filled in by the host before
// each frame. The glyph requested by the dock is written back to Glyph.
type FrameInput struct {
	Cursor    Point
	HasCursor bool
	Delta     Point
	Primary   ButtonState
	Glyph     Glyph
}

func (fi *FrameInput) CursorPosition() (Point, bool) {
	return fi.Cursor, fi.HasCursor
}

func (fi *FrameInput) PointerDelta() Point {
	return fi.Delta
}

func (fi *FrameInput) Button() ButtonState {
	return fi.Primary
}

func (fi *FrameInput) SetCursorGlyph(g Glyph) {
	fi.Glyph = g
}

var _ Input = &FrameInput{}

// Pointer turns a stream of absolute pointer samples into per-frame input,
// deriving the movement delta and the button edge transitions.
type Pointer struct {
	last    Point
	hasLast bool
	down    bool
}

// Frame records a sample and returns the input for the frame it starts.
// inside is false when the pointer has left the window; a button held at that
// point is reported as released.
func (p *Pointer) Frame(pos Point, inside, down bool) *FrameInput {
	fi := &FrameInput{Cursor: pos, HasCursor: inside}

	if inside && p.hasLast {
		fi.Delta = pos.Sub(p.last)
	}

	if !inside {
		down = false
	}

	switch {
	case down && !p.down:
		fi.Primary = JustPressed
	case down:
		fi.Primary = Pressed
	case p.down:
		fi.Primary = JustReleased
	default:
		fi.Primary = Released
	}

	p.down = down
	p.last = pos
	p.hasLast = inside

	return fi
}

// Idle returns the input for a frame without a new pointer sample, such as a
// frame triggered by a resize or a remote command. The button keeps its
// previous level and the pointer does not move.
func (p *Pointer) Idle() *FrameInput {
	fi := &FrameInput{Cursor: p.last, HasCursor: p.hasLast}
	if p.down {
		fi.Primary = Pressed
	}
	return fi
}
