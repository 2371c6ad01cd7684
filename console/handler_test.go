package console

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	tc := newTestConsole(t, func(cfg *Config) { cfg.Level = LevelInfo })
	logger := slog.New(NewHandler(tc.Console))

	logger.Debug("hidden")
	logger.Info("Rendering table", "file", "data.yaml", "rows", 3)
	logger.Warn("Slow terminal", "note", "took a while")
	logger.Error("Render failed", "err", "ragged rows")

	assert.Equal(t,
		"[INFO     ] Rendering table file=data.yaml rows=3\n"+
			"[WARNING  ] Slow terminal note=\"took a while\"\n",
		tc.out.String())
	assert.Equal(t, "[ERROR    ] Render failed err=\"ragged rows\"\n", tc.err.String())
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	tc := newTestConsole(t, nil)
	logger := slog.New(NewHandler(tc.Console)).
		With("cmd", "table").
		WithGroup("opts").
		With("ascii", true)

	logger.Info("start", "compact", false, slog.Group("border", "color", "gray"))

	assert.Equal(t, "[INFO     ] start cmd=table opts.ascii=true opts.compact=false opts.border.color=gray\n", tc.out.String())
}

func TestHandler_Enabled(t *testing.T) {
	tc := newTestConsole(t, func(cfg *Config) { cfg.Level = LevelError })
	h := NewHandler(tc.Console)

	assert.False(t, h.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
	assert.True(t, h.Enabled(t.Context(), SlogEmergency))
}
