package table

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/telton/console/style"
)

var (
	// ErrRaggedRows is returned when rows disagree on their columns.
	ErrRaggedRows = errors.New("rows have inconsistent columns")
	// ErrInvalidOptions is returned for option combinations that cannot be rendered.
	ErrInvalidOptions = errors.New("invalid table configuration")
)

// Options controls how a table is drawn. The border flags are independent
// and may be combined freely.
type Options struct {
	// ASCII draws with + - | instead of box-drawing glyphs.
	ASCII bool
	// Compact omits separators between body rows and draws the header
	// divider with the body glyphs.
	Compact bool
	// NoOuterBorder drops the left and right verticals and the top and
	// bottom borders.
	NoOuterBorder bool
	// NoInnerBorder drops verticals between columns, separators between
	// body rows and the header divider.
	NoInnerBorder bool
	// BorderColor styles every border glyph. NoColor leaves them plain.
	BorderColor style.Color
	// Headers replaces the header row; every data row is then a body row.
	Headers []string
	// NoHeaders renders every data row as a body row with no header line.
	NoHeaders bool
}

// DefaultOptions returns Unicode borders drawn in gray.
func DefaultOptions() Options {
	return Options{BorderColor: style.Gray}
}

func (o Options) validate() error {
	if o.NoHeaders && len(o.Headers) > 0 {
		return fmt.Errorf("%w: headers given together with no-headers", ErrInvalidOptions)
	}
	if !o.BorderColor.Valid() {
		return fmt.Errorf("%w: border color %s", ErrInvalidOptions, o.BorderColor)
	}
	return nil
}

// Renderer lays out rows as box-drawn text. It holds no state between
// calls besides the style engine used for border colors.
type Renderer struct {
	engine *style.Engine
}

// New returns a Renderer that colors borders with engine. A nil engine
// renders without escape codes.
func New(engine *style.Engine) *Renderer {
	if engine == nil {
		engine = style.Plain()
	}
	return &Renderer{engine: engine}
}

// Render validates rows against opts and returns the display lines as a
// lazy sequence. Lines carry no terminator. On error nothing is rendered.
func (r *Renderer) Render(rows []Row, opts Options) (iter.Seq[string], error) {
	l, err := r.prepare(rows, opts)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return func(func(string) bool) {}, nil
	}
	return l.lines, nil
}

// Lines is Render collected into a slice.
func (r *Renderer) Lines(rows []Row, opts Options) ([]string, error) {
	seq, err := r.Render(rows, opts)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Render renders rows with colored borders.
func Render(rows []Row, opts Options) (iter.Seq[string], error) {
	return New(style.New()).Render(rows, opts)
}

// Lines renders rows with colored borders into a slice.
func Lines(rows []Row, opts Options) ([]string, error) {
	return New(style.New()).Lines(rows, opts)
}

type layout struct {
	opts   Options
	glyphs glyphs
	engine *style.Engine
	widths []int
	header []string
	body   [][]string
}

func (r *Renderer) prepare(rows []Row, opts Options) (*layout, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 && len(opts.Headers) == 0 {
		return nil, nil
	}

	columns := len(opts.Headers)
	if len(rows) > 0 {
		columns = len(rows[0])
	}
	if len(opts.Headers) > 0 && len(opts.Headers) != columns {
		return nil, fmt.Errorf("%w: %d headers for %d columns", ErrInvalidOptions, len(opts.Headers), columns)
	}

	cells := make([][]string, 0, len(rows)+1)
	if len(opts.Headers) > 0 {
		cells = append(cells, slices.Clone(opts.Headers))
	}
	for i, row := range rows {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), columns)
		}
		line := make([]string, columns)
		for j, v := range row {
			line[j] = Cell(v)
		}
		cells = append(cells, line)
	}

	l := &layout{
		opts:   opts,
		glyphs: selectGlyphs(opts.ASCII, opts.Compact),
		engine: r.engine,
		widths: columnWidths(cells, columns),
	}
	if opts.NoHeaders {
		l.body = cells
	} else {
		l.header, l.body = cells[0], cells[1:]
	}

	return l, nil
}

// columnWidths returns the widest visible cell of every column.
func columnWidths(cells [][]string, columns int) []int {
	widths := make([]int, columns)
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], style.Width(cell))
		}
	}
	return widths
}

func (l *layout) lines(yield func(string) bool) {
	if !l.opts.NoOuterBorder {
		if !yield(l.separator(roleTop)) {
			return
		}
	}

	if l.header != nil {
		if !yield(l.row(l.header)) {
			return
		}
		// A header without a body closes the frame directly.
		if len(l.body) == 0 {
			if !l.opts.NoOuterBorder {
				yield(l.separator(roleBottom))
			}
			return
		}
		if !l.opts.NoInnerBorder {
			if !yield(l.separator(roleHeader)) {
				return
			}
		}
	}

	for i, cells := range l.body {
		if !yield(l.row(cells)) {
			return
		}

		last := i == len(l.body)-1
		switch {
		case last && !l.opts.NoOuterBorder:
			if !yield(l.separator(roleBottom)) {
				return
			}
		case !last && !l.opts.NoInnerBorder && !l.opts.Compact:
			if !yield(l.separator(roleBody)) {
				return
			}
		}
	}
}

// separator draws a horizontal line for role.
func (l *layout) separator(role separatorRole) string {
	j := l.glyphs.junctions(role)

	if len(l.widths) == 0 {
		return l.border(j.start + j.run + j.end)
	}

	var b strings.Builder
	for i, w := range l.widths {
		switch {
		case i == 0:
			if !l.opts.NoOuterBorder {
				b.WriteString(j.start)
			}
		case l.opts.NoInnerBorder:
			b.WriteString(j.run)
		default:
			b.WriteString(j.mid)
		}
		b.WriteString(strings.Repeat(j.run, l.runLength(i, w)))
	}
	if !l.opts.NoOuterBorder {
		b.WriteString(j.end)
	}

	return l.border(b.String())
}

// runLength is the number of run glyphs drawn under column i so that
// junctions line up with the verticals of the row lines.
func (l *layout) runLength(i, width int) int {
	edge := i == 0 || i == len(l.widths)-1

	switch {
	case l.opts.NoOuterBorder:
		if edge {
			return width + 1
		}
		return width + 2
	case l.opts.NoInnerBorder:
		if len(l.widths) == 1 {
			return width + 2
		}
		if edge {
			return width + 1
		}
		return width
	default:
		return width + 2
	}
}

// row draws one line of cells, each left-aligned and padded to its
// column's visible width.
func (l *layout) row(cells []string) string {
	vertical := l.border(l.glyphs.vertical)

	var b strings.Builder
	for i, cell := range cells {
		if (i == 0 && !l.opts.NoOuterBorder) || (i > 0 && !l.opts.NoInnerBorder) {
			b.WriteString(vertical)
			b.WriteByte(' ')
		}
		b.WriteString(pad(cell, l.widths[i]))
		b.WriteByte(' ')
	}
	if !l.opts.NoOuterBorder {
		b.WriteString(vertical)
	}

	return b.String()
}

func (l *layout) border(s string) string {
	if l.opts.BorderColor == style.NoColor {
		return s
	}
	return l.engine.Foreground(l.opts.BorderColor, s)
}

// pad right-pads s with spaces to width visible cells. Escape codes in s
// do not count.
func pad(s string, width int) string {
	if n := width - style.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
