package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telton/console/console"
	"github.com/telton/console/style"
	"github.com/telton/console/table"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Default(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
console:
  level: notice
  timestamps: false
  eol: '\r\n'
  tags:
    info: INFORMATION
table:
  ascii: true
  compact: true
  border_color: green
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "notice", cfg.Console.Level)
	assert.False(t, cfg.Console.Timestamps)
	assert.True(t, cfg.Console.Colors, "unset keys keep their defaults")
	assert.Equal(t, console.DefaultTimestampFormat, cfg.Console.TimestampFormat)
	assert.Equal(t, map[string]string{"info": "INFORMATION"}, cfg.Console.Tags)

	opts, err := cfg.TableOptions()
	require.NoError(t, err)
	assert.Equal(t, table.Options{ASCII: true, Compact: true, BorderColor: style.Green}, opts)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	_, err = Load(writeConfig(t, "console: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CONSOLE_LEVEL":            "error",
		"CONSOLE_TIMESTAMP_FORMAT": "15:04",
		"CONSOLE_TIMESTAMPS":       "false",
		"NO_COLOR":                 "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, "error", cfg.Console.Level)
	assert.Equal(t, "15:04", cfg.Console.TimestampFormat)
	assert.False(t, cfg.Console.Timestamps)
	assert.False(t, cfg.Console.Colors)

	env["CONSOLE_TIMESTAMPS"] = "sometimes"
	require.Error(t, Default().ApplyEnv(lookup))
}

func TestNewConsole(t *testing.T) {
	cfg := Default()
	cfg.Console.Level = "warning"
	cfg.Console.Timestamps = false
	cfg.Console.Tags = map[string]string{"warning": "WARN", "error": "ERR"}

	var out, errOut bytes.Buffer
	con, err := cfg.NewConsole(&out, &errOut)
	require.NoError(t, err)

	con.Infof("hidden")
	con.Warnf("shown")

	assert.Equal(t, "[WARN     ] shown\n", style.Strip(out.String()))
	assert.Equal(t, "ERR      ", con.LevelTag(console.LevelError))
}

func TestNewConsole_Errors(t *testing.T) {
	cfg := Default()
	cfg.Console.Level = "loud"
	_, err := cfg.NewConsole(nil, nil)
	require.ErrorIs(t, err, console.ErrUnknownLevel)

	cfg = Default()
	cfg.Console.Tags = map[string]string{"trace": "TRC"}
	_, err = cfg.NewConsole(nil, nil)
	require.ErrorIs(t, err, console.ErrUnknownLevel)
}

func TestTableOptions_UnknownColor(t *testing.T) {
	cfg := Default()
	cfg.Table.BorderColor = "chartreuse"
	_, err := cfg.TableOptions()
	require.ErrorIs(t, err, style.ErrUnknownStyle)
}
