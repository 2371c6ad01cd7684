package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/console/console"
	"github.com/telton/console/style"
	"github.com/telton/console/ui"
)

func colorsCmd() *cli.Command {
	return &cli.Command{
		Name:  "colors",
		Usage: "list the color, attribute and level names with samples",
		Action: func(ctx context.Context, c *cli.Command) error {
			con := runtimeFrom(ctx).console
			e := con.Engine()
			w := stdout(c)

			colors := ui.NewTable(e).WithHeaders("name", "fg", "bg", "sample")
			for _, color := range style.Colors() {
				colors.AddRow(
					color.String(),
					color.FgCode(),
					color.BgCode(),
					e.Foreground(color, "text")+" "+e.Background(color, "back"),
				)
			}

			attrs := ui.NewTable(e).WithHeaders("name", "set", "unset", "sample")
			for _, a := range style.Attributes() {
				set, unset := a.Codes()
				attrs.AddRow(a.String(), set, unset, e.Attr(a, "text"))
			}

			levels := ui.NewTable(e).WithHeaders("level", "name", "tag")
			for _, l := range console.Levels() {
				name := l.String()
				if e.Colors() {
					name = ui.LevelStyle(l).Render(name)
				}
				levels.AddRow(int(l), name, con.LevelTag(l))
			}

			for _, section := range []struct {
				title string
				note  string
				table *ui.TableBuilder
			}{
				{"Colors", `use "<name>" or "<name>Back"`, colors},
				{"Attributes", `use "<name>"`, attrs},
				{"Levels", "use the name or the number", levels},
			} {
				out, err := section.table.Render()
				if err != nil {
					return err
				}
				fmt.Fprintln(w, ui.NewHeader(section.title).WithNote(section.note).Render())
				fmt.Fprintln(w, out)
			}
			return nil
		},
	}
}
