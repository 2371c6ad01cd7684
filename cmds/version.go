package cmds

import (
	"context"
	"fmt"
	goruntime "runtime"

	"github.com/urfave/cli/v3"

	"github.com/telton/console/internal/version"
	"github.com/telton/console/ui"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Usage:   "Show version information",
		Aliases: []string{"v"},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := stdout(cmd)
			fmt.Fprintln(w, ui.NewLabelValue("console", version.Get()).Render())
			fmt.Fprintln(w, ui.NewLabelValue("go", goruntime.Version()).WithIndent(2).Render())
			return nil
		},
	}
}
