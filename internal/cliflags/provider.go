// Package cliflags implements a koanf.Provider that exposes the flags
// explicitly set on a urfave/cli context.
package cliflags

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/maps"
	"github.com/urfave/cli/v2"
)

// CLIFlags is a koanf provider backed by a flat map of flag values.
type CLIFlags struct {
	mp map[string]any
}

// Provider collects every flag the user actually set on ctx. Defaults
// are left out so they cannot shadow env or file values. cb maps a flag
// name to a config key; returning "" drops the flag. If delim is not
// empty the resulting keys are unflattened by it.
func Provider(ctx *cli.Context, delim string, cb func(string) string) *CLIFlags {
	flags := map[string]cli.Flag{}
	for _, flag := range ctx.App.VisibleFlags() {
		flags[flag.Names()[0]] = flag
	}
	if ctx.Command != nil {
		for _, flag := range ctx.Command.VisibleFlags() {
			flags[flag.Names()[0]] = flag
		}
	}

	mp := make(map[string]any)
	for name, flag := range flags {
		if !ctx.IsSet(name) {
			continue
		}

		value, err := flagValue(ctx, flag)
		if err != nil {
			continue
		}

		key := name
		if cb != nil {
			key = cb(name)
		}
		if key == "" {
			continue
		}
		mp[key] = value
	}

	if delim != "" {
		mp = maps.Unflatten(mp, delim)
	}

	return &CLIFlags{mp: mp}
}

// ReadBytes is not supported by the cliflags provider.
func (c *CLIFlags) ReadBytes() ([]byte, error) {
	return nil, errors.New("cliflags provider does not support this method")
}

// Read returns the collected flag map.
func (c *CLIFlags) Read() (map[string]any, error) {
	return c.mp, nil
}

func flagValue(ctx *cli.Context, flag cli.Flag) (any, error) {
	name := flag.Names()[0]

	switch flag.(type) {
	case *cli.StringFlag:
		return ctx.String(name), nil
	case *cli.PathFlag:
		return ctx.Path(name), nil
	case *cli.StringSliceFlag:
		return ctx.StringSlice(name), nil
	case *cli.IntFlag:
		return ctx.Int(name), nil
	case *cli.Int64Flag:
		return ctx.Int64(name), nil
	case *cli.BoolFlag:
		return ctx.Bool(name), nil
	case *cli.Float64Flag:
		return ctx.Float64(name), nil
	case *cli.DurationFlag:
		return ctx.Duration(name), nil
	}

	return nil, fmt.Errorf("unsupported flag type %T", flag)
}
