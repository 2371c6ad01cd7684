package cmds

import (
	"context"
	"errors"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/telton/console/console"
)

func logCmd() *cli.Command {
	return &cli.Command{
		Name:      "log",
		Aliases:   []string{"l"},
		Usage:     "write one leveled log line",
		ArgsUsage: "<message...>",
		Description: `Log writes its arguments, joined by spaces, as one console log line.
Lines at error level and above go to stderr.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "Level of the line (debug, info, notice, warning, error, critical, alert, emergency)",
				Value:   "info",
				Validator: func(s string) error {
					_, err := console.ParseLevel(s)
					return err
				},
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "Replace the level tag for this line",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rt := runtimeFrom(ctx)

			if c.Args().Len() == 0 {
				return errors.New("missing required argument: <message>")
			}

			level, err := console.ParseLevel(c.String("level"))
			if err != nil {
				return err
			}
			if c.IsSet("tag") {
				if err := rt.console.SetLevelTag(level, c.String("tag"), true); err != nil {
					return err
				}
			}

			rt.console.Log(level, strings.Join(c.Args().Slice(), " "))
			return nil
		},
	}
}
