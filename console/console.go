package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/telton/console/style"
	"github.com/telton/console/table"
)

// DefaultTimestampFormat is day.month.year hours:minutes:seconds.milliseconds.
const DefaultTimestampFormat = "02.01.06 15:04:05.000"

// Config holds console settings.
type Config struct {
	Level           Level
	Timestamps      bool
	TimestampFormat string
	Colors          bool
	EOL             string
	Out             io.Writer
	Err             io.Writer
}

// DefaultConfig returns timestamps and colors on, every level shown,
// CRLF line endings, stdout and stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:           LevelDebug,
		Timestamps:      true,
		TimestampFormat: DefaultTimestampFormat,
		Colors:          true,
		EOL:             "\r\n",
		Out:             os.Stdout,
		Err:             os.Stderr,
	}
}

// Format describes how a raw line is styled and where it goes.
type Format struct {
	Foreground style.Color
	Background style.Color
	Attributes []style.Attribute
	// Stderr sends the line to the error writer.
	Stderr bool
}

var levelFormats = map[Level]Format{
	LevelDebug:     {Foreground: style.Gray},
	LevelInfo:      {},
	LevelNotice:    {Foreground: style.Blue},
	LevelWarning:   {Foreground: style.Yellow},
	LevelError:     {Foreground: style.Red, Stderr: true},
	LevelCritical:  {Foreground: style.Magenta, Attributes: []style.Attribute{style.Bold}, Stderr: true},
	LevelAlert:     {Background: style.Yellow, Attributes: []style.Attribute{style.Bold}, Stderr: true},
	LevelEmergency: {Background: style.Red, Attributes: []style.Attribute{style.Bold}, Stderr: true},
}

// Option configures a Console.
type Option func(*Console)

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

// Console writes leveled, optionally timestamped and colored lines. It is
// safe for concurrent use.
type Console struct {
	mu     sync.Mutex
	cfg    Config
	tags   map[Level]string
	engine *style.Engine
	now    func() time.Time
}

// New returns a Console for cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config, opts ...Option) (*Console, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if !cfg.Level.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrLevelRange, int(cfg.Level))
	}

	c := &Console{
		cfg:    *cfg,
		tags:   defaultTags(),
		engine: style.New(style.WithColors(cfg.Colors)),
		now:    time.Now,
	}
	if c.cfg.TimestampFormat == "" {
		c.cfg.TimestampFormat = DefaultTimestampFormat
	}
	if c.cfg.EOL == "" {
		c.cfg.EOL = "\r\n"
	}
	if c.cfg.Out == nil {
		c.cfg.Out = os.Stdout
	}
	if c.cfg.Err == nil {
		c.cfg.Err = os.Stderr
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func defaultTags() map[Level]string {
	tags := make(map[Level]string, len(levelNames))
	for _, l := range Levels() {
		tags[l] = strings.ToUpper(l.String())
	}
	padTags(tags)
	return tags
}

// padTags right-trims every tag and pads it to the widest one.
func padTags(tags map[Level]string) {
	width := 0
	for l, tag := range tags {
		tags[l] = strings.TrimRight(tag, " ")
		width = max(width, style.Width(tags[l]))
	}
	for l, tag := range tags {
		tags[l] = tag + strings.Repeat(" ", width-style.Width(tag))
	}
}

// Engine returns the style engine the console colors with.
func (c *Console) Engine() *style.Engine {
	return c.engine
}

// SetLevel sets the minimum level written. Emergency lines are always written.
func (c *Console) SetLevel(level int) error {
	if !Level(level).Valid() {
		return fmt.Errorf("%w: %d", ErrLevelRange, level)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Level = Level(level)
	return nil
}

// Level returns the minimum level written.
func (c *Console) Level() Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Level
}

// SetTimestamps toggles the timestamp prefix.
func (c *Console) SetTimestamps(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Timestamps = enabled
}

// SetTimestampFormat sets the time layout of the prefix. An empty layout
// restores DefaultTimestampFormat.
func (c *Console) SetTimestampFormat(layout string) {
	if layout == "" {
		layout = DefaultTimestampFormat
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.TimestampFormat = layout
}

// SetColors toggles escape code emission.
func (c *Console) SetColors(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SetColors(enabled)
}

// SetLevelTag replaces the tag shown for level. With autoAdjust every tag
// is re-padded to the width of the widest.
func (c *Console) SetLevelTag(level Level, tag string, autoAdjust bool) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownLevel, level)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[level] = tag
	if autoAdjust {
		padTags(c.tags)
	}
	return nil
}

// LevelTag returns the tag shown for level.
func (c *Console) LevelTag(level Level) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tags[level]
}

// Enabled reports whether a line at level would be written.
func (c *Console) Enabled(level Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabledLocked(level)
}

func (c *Console) enabledLocked(level Level) bool {
	return level >= c.cfg.Level || level == LevelEmergency
}

// Log writes msg at level.
func (c *Console) Log(level Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !level.Valid() || !c.enabledLocked(level) {
		return
	}
	c.writeLocked("["+c.tags[level]+"] "+msg, levelFormats[level], c.cfg.EOL)
}

// Logf formats according to a fmt format specifier and writes at level.
func (c *Console) Logf(level Level, format string, args ...any) {
	c.Log(level, fmt.Sprintf(format, args...))
}

func (c *Console) Debugf(format string, args ...any) { c.Logf(LevelDebug, format, args...) }

func (c *Console) Infof(format string, args ...any) { c.Logf(LevelInfo, format, args...) }

func (c *Console) Noticef(format string, args ...any) { c.Logf(LevelNotice, format, args...) }

func (c *Console) Warnf(format string, args ...any) { c.Logf(LevelWarning, format, args...) }

func (c *Console) Errorf(format string, args ...any) { c.Logf(LevelError, format, args...) }

func (c *Console) Criticalf(format string, args ...any) { c.Logf(LevelCritical, format, args...) }

func (c *Console) Alertf(format string, args ...any) { c.Logf(LevelAlert, format, args...) }

func (c *Console) Emergencyf(format string, args ...any) { c.Logf(LevelEmergency, format, args...) }

// Write writes msg styled by f without a line ending.
func (c *Console) Write(msg string, f Format) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLocked(msg, f, "")
}

// Writeln writes msg styled by f followed by the configured line ending.
func (c *Console) Writeln(msg string, f Format) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLocked(msg, f, c.cfg.EOL)
}

// Table renders rows and writes every line at level. Nothing is written
// when rendering fails.
func (c *Console) Table(level Level, rows []table.Row, opts table.Options) error {
	c.mu.Lock()
	engine := style.New(style.WithColors(c.engine.Colors()))
	c.mu.Unlock()

	lines, err := table.New(engine).Render(rows, opts)
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for line := range lines {
		c.Log(level, line)
	}
	return nil
}

func (c *Console) writeLocked(msg string, f Format, eol string) {
	msg = c.engine.Apply(msg, f.Foreground, f.Background, f.Attributes...)

	if c.cfg.Timestamps {
		msg = "[" + c.now().Format(c.cfg.TimestampFormat) + "] " + msg
	}

	w := c.cfg.Out
	if f.Stderr {
		w = c.cfg.Err
	}
	_, _ = io.WriteString(w, msg+eol)
}
