package cmds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/telton/console/console"
	"github.com/telton/console/internal/logger"
	"github.com/telton/console/style"
	"github.com/telton/console/table"
)

func tableCmd() *cli.Command {
	return &cli.Command{
		Name:    "table",
		Aliases: []string{"t"},
		Usage:   "render rows as a box-drawn table",
		Description: `Table reads rows from a file, or from stdin when no file is given, and
prints them as a table. The first row is the header unless --header or
--no-headers is used.

YAML and JSON input is a list of rows, each a list of cells or a mapping
of column name to cell. CSV input is one row per record.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Input format (yaml, json, csv)",
				Value:   "yaml",
				Validator: func(s string) error {
					switch s {
					case "yaml", "json", "csv":
						return nil
					}
					return fmt.Errorf("unknown input format: %s", s)
				},
			},
			&cli.BoolFlag{Name: "ascii", Usage: "Draw borders with + - |"},
			&cli.BoolFlag{Name: "compact", Usage: "Omit separators between body rows"},
			&cli.BoolFlag{Name: "no-outer-border", Usage: "Omit the frame around the table"},
			&cli.BoolFlag{Name: "no-inner-border", Usage: "Omit lines between columns and rows"},
			&cli.StringFlag{
				Name:  "border-color",
				Usage: "Border color name, or none",
				Validator: func(s string) error {
					_, err := style.ParseColor(s)
					return err
				},
			},
			&cli.StringSliceFlag{
				Name:  "header",
				Usage: "Header cell; repeat once per column",
			},
			&cli.BoolFlag{Name: "no-headers", Usage: "Treat every row as a body row"},
			&cli.StringFlag{
				Name:  "as-log",
				Usage: "Write lines as console log lines at this level instead of plain output",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt := runtimeFrom(ctx)

			opts, err := tableOptions(rt, c)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(c)
			if err != nil {
				return err
			}
			defer closeIn()

			rows, err := readRows(in, c.String("input"))
			if err != nil {
				return err
			}

			logger.Debug("Rendering table",
				"file", c.StringArg("file"),
				"rows", len(rows),
				"ascii", opts.ASCII,
				"compact", opts.Compact,
				"no_outer_border", opts.NoOuterBorder,
				"no_inner_border", opts.NoInnerBorder)

			if c.IsSet("as-log") {
				level, err := console.ParseLevel(c.String("as-log"))
				if err != nil {
					return err
				}
				return rt.console.Table(level, rows, opts)
			}

			lines, err := table.New(rt.console.Engine()).Render(rows, opts)
			if err != nil {
				return fmt.Errorf("render table: %w", err)
			}

			w := stdout(c)
			for line := range lines {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return fmt.Errorf("write table: %w", err)
				}
			}
			return nil
		},
	}
}

// tableOptions layers the command flags over the configured defaults.
func tableOptions(rt *runtime, c *cli.Command) (table.Options, error) {
	opts, err := rt.cfg.TableOptions()
	if err != nil {
		return opts, err
	}

	if c.IsSet("ascii") {
		opts.ASCII = c.Bool("ascii")
	}
	if c.IsSet("compact") {
		opts.Compact = c.Bool("compact")
	}
	if c.IsSet("no-outer-border") {
		opts.NoOuterBorder = c.Bool("no-outer-border")
	}
	if c.IsSet("no-inner-border") {
		opts.NoInnerBorder = c.Bool("no-inner-border")
	}
	if c.IsSet("border-color") {
		color, err := style.ParseColor(c.String("border-color"))
		if err != nil {
			return opts, err
		}
		opts.BorderColor = color
	}
	opts.Headers = c.StringSlice("header")
	opts.NoHeaders = c.Bool("no-headers")

	return opts, nil
}

func openInput(c *cli.Command) (io.Reader, func(), error) {
	path := c.StringArg("file")
	if path == "" || path == "-" {
		return stdin(c), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("input file does not exist: %s", path)
		}
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
