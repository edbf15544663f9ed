// Package remote controls a running tui over its Unix socket.
package remote

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"mtoohey.com/dock/internal/cmd"
	"mtoohey.com/dock/internal/protocol"
	"mtoohey.com/dock/internal/unixsocketconn"

	"github.com/alecthomas/kong"
)

const defaultTemplate = "{{ range .Splits }}{{ .Path }} {{ .Orientation }}{{ range .Ratios }} {{ printf \"%.3g\" . }}{{ end }}\n{{ end }}"

type Cmd struct {
	Get struct {
		Template string `arg:"" optional:"" help:"Template using Go text/template syntax, executed with the layout state."`
	} `cmd:"" default:"withargs" help:"Display the current layout."`

	Set struct {
		Path   string    `arg:"" help:"Path of the split to change, such as 0/2."`
		Ratios []float64 `arg:"" help:"New ratios, one per child."`
	} `cmd:"" help:"Replace the ratios of a split."`
	Even struct {
		Path string `arg:"" help:"Path of the split to change, such as 0/2."`
	} `cmd:"" help:"Give every child of a split the same share."`
}

// ErrNoSocket is returned when no socket was given to connect to.
var ErrNoSocket = errors.New("no unix socket provided")

func (c *Cmd) Run(ctx *kong.Context, g cmd.Globals) (err error) {
	if g.UnixSocket == "" {
		return fmt.Errorf("%w: pass one with --unix-socket", ErrNoSocket)
	}

	conn, err := unixsocketconn.Dial(g.UnixSocket)
	if err != nil {
		return fmt.Errorf("failed to create connection: %w", err)
	}
	defer func() {
		closeErr := conn.Close()

		if err == nil {
			err = closeErr
		}
	}()

	state, err := receiveState(conn)
	if err != nil {
		return fmt.Errorf("failed to receive initial state: %w", err)
	}

	if state.Version != protocol.Version {
		return fmt.Errorf(`server version "%s" does not match remote version "%s"`,
			state.Version, protocol.Version)
	}

	var m protocol.Message
	command := strings.Split(ctx.Command(), " ")[1]
	switch command {
	case "get":
		templateText := c.Get.Template
		if templateText == "" {
			templateText = defaultTemplate
		} else {
			// kong's default:"withargs" runs this subcommand for any
			// arguments, so make sure it was actually asked for rather than
			// printing a mistyped subcommand back as a template
			getFound := false
			for _, arg := range ctx.Args {
				if arg == "get" {
					getFound = true
					break
				}
			}
			if !getFound {
				return fmt.Errorf("expected subcommand")
			}
		}

		return printState(os.Stdout, templateText, state)

	case "set":
		m = protocol.SetRatios{Path: c.Set.Path, Ratios: c.Set.Ratios}

	case "even":
		m = protocol.EvenRatios(c.Even.Path)

	default:
		panic(fmt.Sprintf(`unhandled command "%s"`, command))
	}

	if err := conn.Send(m); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	if _, err := receiveState(conn); err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}

	return nil
}

// receiveState waits for the next message, which must be either a State or
// an Error.
func receiveState(conn protocol.Conn) (protocol.State, error) {
	m, err := conn.Receive()
	if err != nil {
		return protocol.State{}, err
	}

	switch m := m.(type) {
	case protocol.State:
		return m, nil
	case protocol.Error:
		return protocol.State{}, m
	default:
		return protocol.State{}, fmt.Errorf("message was of unexpected type %T", m)
	}
}

func printState(w io.Writer, templateText string, state protocol.State) error {
	t, err := template.New("state").Parse(templateText)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(w, state)
}
