package dock

import "fmt"

// Orientation is the axis along which a split arranges its children.
type Orientation uint8

const (
	// Horizontal arranges children left to right.
	Horizontal Orientation = iota

	// Vertical arranges children top to bottom.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", o)
	}
}

// ParseOrientation is the inverse of Orientation.String.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return 0, fmt.Errorf(`must be one of "horizontal","vertical" but got "%s"`, s)
	}
}

// primary returns the component of p along o.
func (o Orientation) primary(p Point) float64 {
	if o == Vertical {
		return p.Y
	}
	return p.X
}

// extent returns the size of r along o.
func (o Orientation) extent(r Rect) float64 {
	if o == Vertical {
		return r.Dy()
	}
	return r.Dx()
}

// Glyph returns the resize cursor for handles of a split with orientation o.
func (o Orientation) Glyph() Glyph {
	if o == Vertical {
		return GlyphRowResize
	}
	return GlyphColResize
}
