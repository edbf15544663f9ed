package tui

import (
	"fmt"
	"io"
	"log"
	"os"

	"mtoohey.com/dock/internal/cmd"
	"mtoohey.com/dock/internal/dock"
	"mtoohey.com/dock/internal/preset"
	"mtoohey.com/dock/internal/protocol"
	"mtoohey.com/dock/internal/state"
	"mtoohey.com/dock/internal/unixsocketconn"

	"github.com/gdamore/tcell/v2"
)

type Cmd struct {
	// Preset is a query selecting the layout to show.
	Preset string `arg:"" default:"editor" help:"Query selecting the layout to show."`
	// Restore controls whether ratios saved by a previous session are applied
	// on startup.
	Restore bool `negatable:"true" default:"true" help:"Apply ratios saved by a previous session on startup."`
	// Save controls whether ratios are saved on exit.
	Save bool `negatable:"true" default:"true" help:"Save ratios on exit."`
	// LogPath is the path of the file logs should be output to.
	LogPath string `short:"l" type:"path" help:"The path of the file logs should be output to."`
}

func (c Cmd) Run(g cmd.Globals) (err error) {
	out := io.Discard
	if c.LogPath != "" {
		f, err := os.OpenFile(c.LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.LstdFlags)

	p, err := preset.Find(c.Preset)
	if err != nil {
		return err
	}

	var statePath string
	if c.Restore || c.Save {
		statePath, err = state.Path(p.Name)
		if err != nil {
			return err
		}
	}

	var snap dock.Snapshot
	if c.Restore {
		snap, err = state.Load(statePath)
		if err != nil {
			return err
		}
	}

	var l protocol.Listener
	if g.UnixSocket != "" {
		l = &unixsocketconn.UnixSocketListener{SocketPath: g.UnixSocket}
		if err := l.Listen(); err != nil {
			return fmt.Errorf("failed to listen on %s: %w", g.UnixSocket, err)
		}
		logger.Printf("listening on %s", l)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		if l != nil {
			_ = l.Close()
		}
		return fmt.Errorf("failed to create screen: %w", err)
	}

	t, err := newTUI(c, g, logger, p, snap, screen)
	if err != nil {
		if l != nil {
			_ = l.Close()
		}
		return fmt.Errorf("failed to create tui: %w", err)
	}

	err = t.loop(l)

	if c.Save {
		if saveErr := state.Save(statePath, t.dock.Snapshot()); saveErr != nil && err == nil {
			err = saveErr
		}
	}

	return err
}
