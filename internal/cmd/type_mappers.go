package cmd

import (
	"reflect"

	"mtoohey.com/dock/internal/dock"

	"github.com/alecthomas/kong"
)

// TypeMappers contains all the kong.TypeMapper options that should be used
// when parsing at the top-level.
var TypeMappers = []kong.Option{
	kong.TypeMapper(reflect.TypeOf(dock.Orientation(0)), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("string", &s); err != nil {
			return err
		}

		o, err := dock.ParseOrientation(s)
		if err != nil {
			return err
		}

		target.Set(reflect.ValueOf(o))
		return nil
	})),
}
