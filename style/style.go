package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ErrUnknownStyle is returned when a color or attribute name is not recognized.
var ErrUnknownStyle = errors.New("unknown style")

const (
	csi   = "\x1b["
	reset = csi + "0m"
)

// Func styles a piece of text.
type Func func(text string) string

// Engine applies ANSI styling. It carries its own settings instead of
// process-wide flags, so callers construct one and pass it around.
type Engine struct {
	colors bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithColors enables or disables escape code emission.
func WithColors(enabled bool) Option {
	return func(e *Engine) {
		e.colors = enabled
	}
}

// New returns an Engine with colors enabled unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{colors: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plain returns an Engine that never emits escape codes.
func Plain() *Engine {
	return New(WithColors(false))
}

// Colors reports whether the engine emits escape codes.
func (e *Engine) Colors() bool {
	return e != nil && e.colors
}

// SetColors toggles escape code emission.
func (e *Engine) SetColors(enabled bool) {
	e.colors = enabled
}

// Apply wraps text in a set sequence for the requested colors and
// attributes and closes it with the matching unset sequence, so styles
// nest without resetting the surrounding text.
func (e *Engine) Apply(text string, fg, bg Color, attrs ...Attribute) string {
	if !e.Colors() {
		return text
	}

	var set, unset []string
	if fg != NoColor {
		set = append(set, strconv.Itoa(fg.FgCode()))
		unset = append(unset, strconv.Itoa(Default.FgCode()))
	}
	if bg != NoColor {
		set = append(set, strconv.Itoa(bg.BgCode()))
		unset = append(unset, strconv.Itoa(Default.BgCode()))
	}
	for _, a := range attrs {
		codes, ok := attributeTable[a]
		if !ok {
			continue
		}
		set = append(set, strconv.Itoa(codes.set))
		unset = append(unset, strconv.Itoa(codes.unset))
	}

	if len(set) == 0 {
		return text
	}

	return sgr(set) + text + sgr(unset)
}

// Foreground colors text.
func (e *Engine) Foreground(c Color, text string) string {
	return e.Apply(text, c, NoColor)
}

// Background colors the text background.
func (e *Engine) Background(c Color, text string) string {
	return e.Apply(text, NoColor, c)
}

// Attr applies a single attribute.
func (e *Engine) Attr(a Attribute, text string) string {
	return e.Apply(text, NoColor, NoColor, a)
}

// Link renders a URL as blue underscored text.
func (e *Engine) Link(url string) string {
	return e.Foreground(Blue, e.Attr(Underscore, url))
}

// Reset prefixes text with a full reset, clearing any enclosing style.
func (e *Engine) Reset(text string) string {
	if !e.Colors() {
		return text
	}
	return reset + text
}

// Named resolves a style shortcut by name: a color ("red", "light_blue"),
// a background color with a "Back" suffix ("yellowBack") or an attribute
// ("bold").
func (e *Engine) Named(name string) (Func, error) {
	key := normalize(name)

	if a, err := ParseAttribute(key); err == nil {
		return func(text string) string { return e.Attr(a, text) }, nil
	}

	if color, ok := strings.CutSuffix(key, "back"); ok {
		if c, err := ParseColor(color); err == nil && c != NoColor {
			return func(text string) string { return e.Background(c, text) }, nil
		}
	}

	if c, err := ParseColor(key); err == nil && c != NoColor {
		return func(text string) string { return e.Foreground(c, text) }, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, name)
}

// Strip removes escape sequences from s, leaving every visible character.
// It is idempotent.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansi.Strip(s)
}

// Width returns the number of terminal cells s occupies once its escape
// sequences are removed. Wide runes count as two cells.
func Width(s string) int {
	return ansi.StringWidth(Strip(s))
}

func sgr(codes []string) string {
	return csi + strings.Join(codes, ";") + "m"
}
