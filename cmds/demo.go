package cmds

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/telton/console/console"
	"github.com/telton/console/style"
	"github.com/telton/console/table"
	"github.com/telton/console/ui"
)

// demoRows is a four-column table with empty cells, keyed by column name.
var demoRows = []table.KeyedRow{
	{Keys: []string{"col1", "col2", "col3", "col4"}, Values: []any{"row1-1", "row1-2", "", ""}},
	{Keys: []string{"col1", "col2", "col3", "col4"}, Values: []any{"row2-1", "row2-2", "", "row2-4"}},
}

// demoTables lists the border combinations shown by the demo.
var demoTables = []table.Options{
	{},
	{ASCII: true},
	{Compact: true},
	{ASCII: true, Compact: true},
	{NoOuterBorder: true},
	{ASCII: true, NoOuterBorder: true},
	{Compact: true, NoOuterBorder: true},
	{ASCII: true, Compact: true, NoOuterBorder: true},
	{NoInnerBorder: true},
	{ASCII: true, NoInnerBorder: true},
	{Compact: true, NoInnerBorder: true},
	{ASCII: true, Compact: true, NoInnerBorder: true},
	{NoOuterBorder: true, NoInnerBorder: true},
	{Headers: []string{"First Column", "Second Column", "Third Column", "Fourth Column"}},
	{NoHeaders: true},
}

func demoCmd() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "show every log level, style and table layout",
		Action: func(ctx context.Context, c *cli.Command) error {
			rt := runtimeFrom(ctx)

			// The demo changes settings as it goes, so it gets its own console.
			con, err := rt.cfg.NewConsole(stdout(c), stderr(c))
			if err != nil {
				return err
			}
			if err := con.SetLevel(int(console.LevelDebug)); err != nil {
				return err
			}

			w := stdout(c)
			section := func(title string) {
				fmt.Fprintln(w, ui.NewHeader(title).WithMargin().Render())
			}

			section("Log levels")
			demoLevels(con)

			section("Styling")
			if err := demoStyles(con); err != nil {
				return err
			}

			section("Runtime settings")
			demoSettings(con, rt.cfg.Console.Colors, rt.cfg.Console.Timestamps)

			section("Tables")
			if err := demoTable(con, rt.cfg.Table.BorderColor); err != nil {
				return err
			}

			section("Level tags")
			if err := demoTags(con); err != nil {
				return err
			}

			return nil
		},
	}
}

func demoLevels(con *console.Console) {
	con.Debugf("This is a debug message.")
	con.Infof("This is an info message.")
	con.Noticef("This is a notice message.")
	con.Warnf("This is a warning message.")
	con.Errorf("This is an error message.")
	con.Criticalf("This is a critical message.")
	con.Alertf("This is an alert message.")
	con.Emergencyf("This is an emergency message.")
}

func demoStyles(con *console.Console) error {
	e := con.Engine()

	cyanBack, err := e.Named("cyanBack")
	if err != nil {
		return err
	}

	con.Infof("This is a link: %s", e.Link("https://github.com/telton/console"))
	con.Infof("%s %s %s %s %s",
		e.Foreground(style.Green, "You can"),
		cyanBack("mix"),
		e.Foreground(style.Magenta, "and"),
		e.Foreground(style.Gray, "match"),
		e.Apply("the colors", style.LightBlue, style.Yellow))
	con.Infof("%s %s", e.Attr(style.Underscore, "and style"), e.Attr(style.Bold, "the text"))
	con.Log(console.LevelInfo, e.Apply("You can "+e.Reset("reset")+" all styles within", style.Cyan, style.NoColor, style.Bold, style.Underscore))
	return nil
}

func demoSettings(con *console.Console, colors, timestamps bool) {
	con.SetColors(false)
	con.Warnf("Now colors are turned off.")
	con.Alertf("This doesn't look alerting enough...")

	con.SetTimestampFormat("02.01. 15:04:05.000")
	con.Criticalf("What year is it?!")
	con.SetTimestampFormat("15:04:05")
	con.Noticef("You can change the timestamp format during runtime.")

	con.SetTimestamps(false)
	con.Warnf("Timestamps are now disabled!")

	con.SetTimestampFormat("")
	con.SetColors(colors)
	con.SetTimestamps(timestamps)
	con.Noticef("Restore the defaults by passing them back.")
}

func demoTable(con *console.Console, borderColor string) error {
	e := con.Engine()

	con.Infof("This is a table:")
	err := con.Table(console.LevelInfo, []table.Row{
		{e.Foreground(style.Yellow, "Johnson"), 25, "john@acme.com"},
		{e.Foreground(style.Yellow, "Jane"), 24, "jane@example.com"},
	}, table.Options{
		Compact:     true,
		BorderColor: style.Green,
		Headers:     []string{"name", "age", "email"},
	})
	if err != nil {
		return err
	}

	rows, err := table.FromKeyed(demoRows)
	if err != nil {
		return err
	}
	color, err := style.ParseColor(borderColor)
	if err != nil {
		return err
	}

	for i, opts := range demoTables {
		opts.BorderColor = color

		con.Infof("")
		con.Infof("Table config #%d: %s", i, describeOptions(opts))
		con.Infof("")
		if err := con.Table(console.LevelInfo, rows, opts); err != nil {
			return fmt.Errorf("table config #%d: %w", i, err)
		}
	}
	return nil
}

func demoTags(con *console.Console) error {
	con.Emergencyf("This has a really long tag")
	if err := con.SetLevelTag(console.LevelInfo, "INFORMATION", true); err != nil {
		return err
	}
	con.Infof("You can also adjust the tag for each log level.")
	con.Infof("The padding on the right gets adjusted automatically.")
	if err := con.SetLevelTag(console.LevelEmergency, "EMERG", true); err != nil {
		return err
	}
	con.Emergencyf("Now the tag is shorter.")

	for _, tag := range []struct {
		level console.Level
		tag   string
	}{
		{console.LevelWarning, "WARN"},
		{console.LevelCritical, "CRIT"},
		{console.LevelNotice, "NOTI"},
		{console.LevelInfo, "INFO"},
	} {
		if err := con.SetLevelTag(tag.level, tag.tag, true); err != nil {
			return err
		}
	}
	con.Infof("And even shorter")
	con.Emergencyf("This is fine.")
	return nil
}

// describeOptions names the flags set in opts.
func describeOptions(opts table.Options) string {
	var names []string
	for _, flag := range []struct {
		name string
		set  bool
	}{
		{"ascii", opts.ASCII},
		{"compact", opts.Compact},
		{"noOuterBorder", opts.NoOuterBorder},
		{"noInnerBorder", opts.NoInnerBorder},
		{"headers", len(opts.Headers) > 0},
		{"noHeaders", opts.NoHeaders},
	} {
		if flag.set {
			names = append(names, flag.name)
		}
	}
	if len(names) == 0 {
		return "defaults"
	}
	return strings.Join(names, ", ")
}
