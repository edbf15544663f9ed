package cmd

// Globals contains constant values that apply to multiple commands.
type Globals struct {
	// Gap is the space left between neighbouring panels, in cells. Handles
	// are two cells narrower than the gap, with a minimum of one cell.
	Gap float64 `short:"g" default:"3" help:"Space left between neighbouring panels, in cells."`
	// UnixSocket is the path of the socket to bind or connect to, depending on
	// the command. No socket is used if this flag is not provided.
	UnixSocket string `short:"u" help:"The path of the socket to bind or connect to, depending on the command. No socket is used if this flag is not provided."`
}
