package protocol

import "encoding/gob"

func init() {
	gob.Register(Error(""))
	gob.Register(State{})
	gob.Register(GetState{})
	gob.Register(SetRatios{})
	gob.Register(EvenRatios(""))
}

// Message is equivalent to any, but expresses that the given value is expected
// to be a protocol message.
type Message any

// Error reports that a request could not be applied.
type Error string

func (e Error) Error() string {
	return string(e)
}

// State is the complete layout of the dock. It is sent once to each newly
// connected client, and again in reply to every request.
type State struct {
	// Preset is the name of the preset the layout was built from.
	Preset string

	// Splits contains every split in depth-first order.
	Splits []Split

	// Version is the version of the server. This should be checked to ensure
	// compatibility with the client.
	Version string
}

// Split describes one split of the layout.
type Split struct {
	// Path locates the split: the index among top-level nodes, followed by
	// the child index at each level below, joined by "/".
	Path string

	// Orientation is either "horizontal" or "vertical".
	Orientation string

	// Ratios are the shares of each child.
	Ratios []float64
}

// GetState requests the current State.
type GetState struct{}

// SetRatios requests that the ratios of the split at Path be replaced.
type SetRatios struct {
	Path   string
	Ratios []float64
}

// EvenRatios requests that every child of the split at the given path get the
// same share.
type EvenRatios string
