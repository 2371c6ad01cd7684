package console

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// slog levels for the console severities slog does not define.
const (
	SlogNotice    = slog.Level(2)
	SlogCritical  = slog.Level(12)
	SlogAlert     = slog.Level(16)
	SlogEmergency = slog.Level(20)
)

// FromSlog maps a slog level onto the nearest console level at or below it.
func FromSlog(l slog.Level) Level {
	switch {
	case l < slog.LevelInfo:
		return LevelDebug
	case l < SlogNotice:
		return LevelInfo
	case l < slog.LevelWarn:
		return LevelNotice
	case l < slog.LevelError:
		return LevelWarning
	case l < SlogCritical:
		return LevelError
	case l < SlogAlert:
		return LevelCritical
	case l < SlogEmergency:
		return LevelAlert
	default:
		return LevelEmergency
	}
}

// Handler is a slog.Handler that writes records through a Console. The
// message is followed by the record's attributes as key=value pairs.
type Handler struct {
	console *Console
	// preformatted holds attributes from WithAttrs, already qualified
	// by the groups open when they were added.
	preformatted string
	groups       []string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a Handler writing to c.
func NewHandler(c *Console) *Handler {
	return &Handler{console: c}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return h.console.Enabled(FromSlog(l))
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.preformatted)

	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, prefix, a)
		return true
	})

	h.console.Log(FromSlog(r.Level), b.String())
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.preformatted)
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		appendAttr(&b, prefix, a)
	}

	h2 := *h
	h2.preformatted = b.String()
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.groups = append(append([]string(nil), h.groups...), name)
	return &h2
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return strconv.Quote(s)
	}
	return s
}
