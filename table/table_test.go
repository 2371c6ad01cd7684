package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telton/console/style"
)

var people = []Row{
	{"name", "age"},
	{"Johnson", 25},
	{"Jane", 24},
}

// sample is the four-column table with empty cells used by the demo command.
var sample = []Row{
	{"row1-1", "row1-2", "", ""},
	{"row2-1", "row2-2", "", "row2-4"},
}

func plainLines(t *testing.T, rows []Row, opts Options) []string {
	t.Helper()
	lines, err := New(nil).Lines(rows, opts)
	require.NoError(t, err)
	return lines
}

func TestRender_Golden(t *testing.T) {
	tests := []struct {
		name     string
		rows     []Row
		opts     Options
		expected []string
	}{
		{
			name: "default",
			rows: people,
			expected: []string{
				"┌─────────┬─────┐",
				"│ name    │ age │",
				"╞═════════╪═════╡",
				"│ Johnson │ 25  │",
				"├─────────┼─────┤",
				"│ Jane    │ 24  │",
				"└─────────┴─────┘",
			},
		},
		{
			name: "ascii",
			rows: people,
			opts: Options{ASCII: true},
			expected: []string{
				"+---------+-----+",
				"| name    | age |",
				"+=========+=====+",
				"| Johnson | 25  |",
				"+---------+-----+",
				"| Jane    | 24  |",
				"+---------+-----+",
			},
		},
		{
			name: "compact",
			rows: people,
			opts: Options{Compact: true},
			expected: []string{
				"┌─────────┬─────┐",
				"│ name    │ age │",
				"├─────────┼─────┤",
				"│ Johnson │ 25  │",
				"│ Jane    │ 24  │",
				"└─────────┴─────┘",
			},
		},
		{
			name: "ascii compact",
			rows: people,
			opts: Options{ASCII: true, Compact: true},
			expected: []string{
				"+---------+-----+",
				"| name    | age |",
				"+---------+-----+",
				"| Johnson | 25  |",
				"| Jane    | 24  |",
				"+---------+-----+",
			},
		},
		{
			name: "no outer border",
			rows: people,
			opts: Options{NoOuterBorder: true},
			expected: []string{
				"name    │ age ",
				"════════╪════",
				"Johnson │ 25  ",
				"────────┼────",
				"Jane    │ 24  ",
			},
		},
		{
			name: "no outer border compact",
			rows: people,
			opts: Options{NoOuterBorder: true, Compact: true},
			expected: []string{
				"name    │ age ",
				"────────┼────",
				"Johnson │ 25  ",
				"Jane    │ 24  ",
			},
		},
		{
			name: "no inner border",
			rows: people,
			opts: Options{NoInnerBorder: true},
			expected: []string{
				"┌─────────────┐",
				"│ name    age │",
				"│ Johnson 25  │",
				"│ Jane    24  │",
				"└─────────────┘",
			},
		},
		{
			name: "no inner border ascii",
			rows: people,
			opts: Options{NoInnerBorder: true, ASCII: true},
			expected: []string{
				"+-------------+",
				"| name    age |",
				"| Johnson 25  |",
				"| Jane    24  |",
				"+-------------+",
			},
		},
		{
			name: "no borders",
			rows: people,
			opts: Options{NoOuterBorder: true, NoInnerBorder: true},
			expected: []string{
				"name    age ",
				"Johnson 25  ",
				"Jane    24  ",
			},
		},
		{
			name: "sample with empty cells",
			rows: sample,
			expected: []string{
				"┌────────┬────────┬──┬────────┐",
				"│ row1-1 │ row1-2 │  │        │",
				"╞════════╪════════╪══╪════════╡",
				"│ row2-1 │ row2-2 │  │ row2-4 │",
				"└────────┴────────┴──┴────────┘",
			},
		},
		{
			name: "explicit headers",
			rows: []Row{{"a", "b"}},
			opts: Options{Headers: []string{"First", "Second"}},
			expected: []string{
				"┌───────┬────────┐",
				"│ First │ Second │",
				"╞═══════╪════════╡",
				"│ a     │ b      │",
				"└───────┴────────┘",
			},
		},
		{
			name: "no headers",
			rows: []Row{{"a", "bb"}, {"ccc", "d"}},
			opts: Options{NoHeaders: true},
			expected: []string{
				"┌─────┬────┐",
				"│ a   │ bb │",
				"├─────┼────┤",
				"│ ccc │ d  │",
				"└─────┴────┘",
			},
		},
		{
			name: "header only",
			rows: []Row{{"name", "age"}},
			expected: []string{
				"┌──────┬─────┐",
				"│ name │ age │",
				"└──────┴─────┘",
			},
		},
		{
			name: "explicit headers without data",
			opts: Options{Headers: []string{"id"}, ASCII: true},
			expected: []string{
				"+----+",
				"| id |",
				"+----+",
			},
		},
		{
			name: "zero columns",
			rows: []Row{{}},
			expected: []string{
				"┌─┐",
				"│",
				"└─┘",
			},
		},
		{
			name: "single column without inner border",
			rows: []Row{{"x"}, {"yy"}},
			opts: Options{NoInnerBorder: true},
			expected: []string{
				"┌────┐",
				"│ x  │",
				"│ yy │",
				"└────┘",
			},
		},
		{
			name: "wide runes",
			rows: []Row{{"名前", "age"}, {"表", 1}},
			expected: []string{
				"┌──────┬─────┐",
				"│ 名前 │ age │",
				"╞══════╪═════╡",
				"│ 表   │ 1   │",
				"└──────┴─────┘",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, plainLines(t, tt.rows, tt.opts))
		})
	}
}

func TestRender_SingleBodyRowClosesTable(t *testing.T) {
	lines := plainLines(t, []Row{{"h"}, {"v"}}, Options{Compact: true})
	require.NotEmpty(t, lines)
	assert.Equal(t, "└───┘", lines[len(lines)-1])
}

func TestRender_Empty(t *testing.T) {
	seq, err := New(nil).Render(nil, DefaultOptions())
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
	}
	assert.Zero(t, count)

	lines, err := Lines([]Row{}, Options{NoHeaders: true})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		opts Options
		err  error
	}{
		{
			name: "ragged rows",
			rows: []Row{{"a", "b"}, {"c"}},
			err:  ErrRaggedRows,
		},
		{
			name: "row wider than header",
			rows: []Row{{"a"}, {"b", "c"}},
			err:  ErrRaggedRows,
		},
		{
			name: "headers with no-headers",
			rows: []Row{{"a"}},
			opts: Options{Headers: []string{"h"}, NoHeaders: true},
			err:  ErrInvalidOptions,
		},
		{
			name: "header count mismatch",
			rows: []Row{{"a", "b"}},
			opts: Options{Headers: []string{"h"}},
			err:  ErrInvalidOptions,
		},
		{
			name: "unknown border color",
			rows: []Row{{"a"}},
			opts: Options{BorderColor: style.Color(99)},
			err:  ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(nil).Render(tt.rows, tt.opts)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, seq)
		})
	}
}

func TestRender_RowWidthsAlign(t *testing.T) {
	engine := style.New()
	styled := []Row{
		{engine.Foreground(style.Yellow, "Johnson"), "25", "john@acme.com"},
		{engine.Apply("Jane", style.NoColor, style.Red, style.Bold), 24, []string{"jane@example.com", "j@example.com"}},
		{"名前", nil, engine.Link("https://example.com")},
	}

	for mask := range 16 {
		opts := Options{
			ASCII:         mask&1 != 0,
			Compact:       mask&2 != 0,
			NoOuterBorder: mask&4 != 0,
			NoInnerBorder: mask&8 != 0,
			BorderColor:   style.Green,
		}

		for name, rows := range map[string][]Row{"people": people, "sample": sample, "styled": styled} {
			t.Run(fmt.Sprintf("%s/%+v", name, opts), func(t *testing.T) {
				lines, err := New(engine).Lines(rows, opts)
				require.NoError(t, err)

				width := -1
				for _, line := range lines {
					if isSeparator(line) {
						continue
					}
					if width < 0 {
						width = style.Width(line)
					}
					assert.Equal(t, width, style.Width(line), "line %q", style.Strip(line))
				}
				assert.Positive(t, width)
			})
		}
	}
}

func TestRender_BorderColor(t *testing.T) {
	engine := style.New()
	opts := Options{BorderColor: style.Green}

	colored, err := New(engine).Lines(people, opts)
	require.NoError(t, err)
	plain := plainLines(t, people, Options{})

	require.Len(t, colored, len(plain))
	for i := range colored {
		assert.Equal(t, plain[i], style.Strip(colored[i]))
	}

	assert.Equal(t, engine.Foreground(style.Green, "┌─────────┬─────┐"), colored[0])
	assert.True(t, strings.HasPrefix(colored[1], engine.Foreground(style.Green, "│")))
}

func TestRender_BorderColorWithColorsDisabled(t *testing.T) {
	lines, err := New(style.Plain()).Lines(people, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, plainLines(t, people, Options{}), lines)
}

func TestRender_StyledCellsPadByVisibleWidth(t *testing.T) {
	engine := style.New()
	rows := []Row{
		{"name", "age"},
		{engine.Foreground(style.Yellow, "Johnson"), "25"},
		{engine.Foreground(style.Yellow, "Jane"), "24"},
	}

	lines, err := New(engine).Lines(rows, Options{Compact: true})
	require.NoError(t, err)

	expected := []string{
		"┌─────────┬─────┐",
		"│ name    │ age │",
		"├─────────┼─────┤",
		"│ Johnson │ 25  │",
		"│ Jane    │ 24  │",
		"└─────────┴─────┘",
	}
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = style.Strip(line)
	}
	assert.Equal(t, expected, stripped)
	assert.Contains(t, lines[4], engine.Foreground(style.Yellow, "Jane")+"    ")
}

func TestRender_StopsEarly(t *testing.T) {
	seq, err := Render(people, DefaultOptions())
	require.NoError(t, err)

	var got []string
	for line := range seq {
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	headers := []string{"a"}
	rows := []Row{{1}}
	_, err := Lines(rows, Options{Headers: headers})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, headers)
	assert.Equal(t, []Row{{1}}, rows)
}

// isSeparator reports whether line consists only of border glyphs.
func isSeparator(line string) bool {
	line = style.Strip(line)
	return line != "" && strings.Trim(line, "─═┌┬┐├┼┤└┴┘╞╪╡+-=") == ""
}
