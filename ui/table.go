package ui

import (
	"strings"

	"github.com/telton/console/style"
	"github.com/telton/console/table"
)

// TableBuilder collects rows for a box-drawn table
type TableBuilder struct {
	renderer *table.Renderer
	opts     table.Options
	rows     []table.Row
}

// NewTable creates a table builder that styles borders with engine
func NewTable(engine *style.Engine) *TableBuilder {
	return &TableBuilder{
		renderer: table.New(engine),
		opts:     table.DefaultOptions(),
	}
}

// WithOptions replaces the render options, keeping any headers already set
func (t *TableBuilder) WithOptions(opts table.Options) *TableBuilder {
	if len(opts.Headers) == 0 {
		opts.Headers = t.opts.Headers
	}
	t.opts = opts
	return t
}

// WithHeaders sets the header row
func (t *TableBuilder) WithHeaders(headers ...string) *TableBuilder {
	t.opts.Headers = headers
	return t
}

// AddRow adds a data row to the table
func (t *TableBuilder) AddRow(cells ...any) *TableBuilder {
	t.rows = append(t.rows, table.Row(cells))
	return t
}

// Lines renders the table into display lines
func (t *TableBuilder) Lines() ([]string, error) {
	return t.renderer.Lines(t.rows, t.opts)
}

// Render outputs the formatted table as one newline-separated string
func (t *TableBuilder) Render() (string, error) {
	lines, err := t.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
