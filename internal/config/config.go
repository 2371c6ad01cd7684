// Package config loads console settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/telton/console/console"
	"github.com/telton/console/style"
	"github.com/telton/console/table"
)

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConsoleConfig configures the console output.
type ConsoleConfig struct {
	Level           string            `yaml:"level"`
	Timestamps      bool              `yaml:"timestamps"`
	TimestampFormat string            `yaml:"timestamp_format"`
	Colors          bool              `yaml:"colors"`
	EOL             string            `yaml:"eol"`
	Tags            map[string]string `yaml:"tags"`
}

// TableConfig holds the default table options.
type TableConfig struct {
	ASCII         bool   `yaml:"ascii"`
	Compact       bool   `yaml:"compact"`
	NoOuterBorder bool   `yaml:"no_outer_border"`
	NoInnerBorder bool   `yaml:"no_inner_border"`
	BorderColor   string `yaml:"border_color"`
}

// Config is the file format of the console CLI.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Console ConsoleConfig `yaml:"console"`
	Table   TableConfig   `yaml:"table"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Console: ConsoleConfig{
			Level:           console.LevelDebug.String(),
			Timestamps:      true,
			TimestampFormat: console.DefaultTimestampFormat,
			Colors:          true,
			EOL:             "\n",
		},
		Table: TableConfig{
			BorderColor: style.Gray.String(),
		},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is empty.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides settings from environment variables found by lookup.
// NO_COLOR disables colors whatever its value.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CONSOLE_LEVEL"); ok && v != "" {
		c.Console.Level = v
	}
	if v, ok := lookup("CONSOLE_TIMESTAMP_FORMAT"); ok && v != "" {
		c.Console.TimestampFormat = v
	}
	if v, ok := lookup("CONSOLE_TIMESTAMPS"); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CONSOLE_TIMESTAMPS: %w", err)
		}
		c.Console.Timestamps = enabled
	}
	if _, ok := lookup("NO_COLOR"); ok {
		c.Console.Colors = false
	}
	return nil
}

// NewConsole builds a console writing to out and errOut.
func (c *Config) NewConsole(out, errOut io.Writer) (*console.Console, error) {
	level, err := console.ParseLevel(c.Console.Level)
	if err != nil {
		return nil, fmt.Errorf("console level: %w", err)
	}

	con, err := console.New(&console.Config{
		Level:           level,
		Timestamps:      c.Console.Timestamps,
		TimestampFormat: c.Console.TimestampFormat,
		Colors:          c.Console.Colors,
		EOL:             unescapeEOL(c.Console.EOL),
		Out:             out,
		Err:             errOut,
	})
	if err != nil {
		return nil, err
	}

	for name, tag := range c.Console.Tags {
		l, err := console.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("console tag: %w", err)
		}
		if err := con.SetLevelTag(l, tag, false); err != nil {
			return nil, err
		}
	}
	if len(c.Console.Tags) > 0 {
		// Re-pad once every custom tag is in place.
		_ = con.SetLevelTag(console.LevelDebug, con.LevelTag(console.LevelDebug), true)
	}

	return con, nil
}

// TableOptions converts the table section into renderer options.
func (c *Config) TableOptions() (table.Options, error) {
	color, err := style.ParseColor(c.Table.BorderColor)
	if err != nil {
		return table.Options{}, fmt.Errorf("border color: %w", err)
	}

	return table.Options{
		ASCII:         c.Table.ASCII,
		Compact:       c.Table.Compact,
		NoOuterBorder: c.Table.NoOuterBorder,
		NoInnerBorder: c.Table.NoInnerBorder,
		BorderColor:   color,
	}, nil
}

// unescapeEOL lets the file spell line endings as "\r\n".
func unescapeEOL(s string) string {
	return strings.NewReplacer(`\r`, "\r", `\n`, "\n").Replace(s)
}
