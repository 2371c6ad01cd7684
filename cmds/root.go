package cmds

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/telton/console/console"
	"github.com/telton/console/internal/config"
	"github.com/telton/console/internal/logger"
)

// runtime is what every command needs once the global flags are resolved.
type runtime struct {
	cfg     *config.Config
	console *console.Console
}

type runtimeKey struct{}

func runtimeFrom(ctx context.Context) *runtime {
	rt, _ := ctx.Value(runtimeKey{}).(*runtime)
	return rt
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:  "console",
		Usage: "styled log lines and box-drawn tables for shell scripts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
				Sources: cli.EnvVars("CONSOLE_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "min-level",
				Usage: "Lowest console level written (debug, info, notice, warning, error, critical, alert, emergency or 0-7)",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "When to emit colors (auto, always, never)",
				Value: "auto",
				Validator: func(s string) error {
					switch s {
					case "auto", "always", "never":
						return nil
					}
					return fmt.Errorf("unknown color mode: %s", s)
				},
			},
			&cli.BoolFlag{
				Name:  "no-timestamps",
				Usage: "Omit the timestamp prefix of log lines",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Diagnostic log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("CONSOLE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Diagnostic log format (text, json, console)",
				Value: "text",
				Validator: func(s string) error {
					switch s {
					case "text", "json", "console":
						return nil
					}
					return fmt.Errorf("unknown log format: %s", s)
				},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			tableCmd(),
			logCmd(),
			demoCmd(),
			colorsCmd(),
			versionCmd(),
		},
	}
}

// setup loads configuration, applies the global flags and builds the
// console shared by the subcommands.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger.Setup(&logger.Config{
		Level:  logger.ParseLevelFromString(cmd.String("log-level")),
		Format: cmd.String("log-format"),
		Output: stderr(cmd),
	})

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return ctx, fmt.Errorf("environment: %w", err)
	}

	switch cmd.String("color") {
	case "always":
		cfg.Console.Colors = true
	case "never":
		cfg.Console.Colors = false
	default:
		cfg.Console.Colors = cfg.Console.Colors && isTerminal(stdout(cmd))
	}
	if cmd.Bool("no-timestamps") {
		cfg.Console.Timestamps = false
	}
	if cmd.IsSet("min-level") {
		cfg.Console.Level = cmd.String("min-level")
	}

	con, err := cfg.NewConsole(stdout(cmd), stderr(cmd))
	if err != nil {
		return ctx, err
	}

	logger.Debug("Console ready",
		"config", cmd.String("config"),
		"level", cfg.Console.Level,
		"colors", cfg.Console.Colors,
		"timestamps", cfg.Console.Timestamps)

	return context.WithValue(ctx, runtimeKey{}, &runtime{cfg: cfg, console: con}), nil
}

// Execute runs the console CLI with args, which include the program name.
func Execute(ctx context.Context, args []string) error {
	return newRootCmd().Run(ctx, args)
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
