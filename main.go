package main

import (
	"os"

	"mtoohey.com/dock/internal/cmd"
	"mtoohey.com/dock/internal/preset"
	"mtoohey.com/dock/internal/remote"
	"mtoohey.com/dock/internal/render"
	"mtoohey.com/dock/internal/tui"

	"github.com/alecthomas/kong"
)

type cli struct {
	cmd.Globals

	TUI     tui.Cmd    `cmd:"" default:"withargs" help:"Show a layout and resize it with the mouse."`
	Print   render.Cmd `cmd:"" help:"Resolve a layout at a fixed size and print every rectangle."`
	Remote  remote.Cmd `cmd:"" help:"Control a running tui over its unix socket."`
	Presets preset.Cmd `cmd:"" help:"List the available layouts."`
}

func main() {
	var c cli
	parser := kong.Must(&c, append([]kong.Option{
		kong.Name("dock"),
		kong.Description("Resizable split layouts in the terminal."),
		kong.UsageOnError(),
	}, cmd.TypeMappers...)...)

	cfgArgs, err := cmd.LoadGlobalsConfig()
	parser.FatalIfErrorf(err)

	ctx, err := parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	parser.FatalIfErrorf(ctx.Run(c.Globals))
}
