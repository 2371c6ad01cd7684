package table

type separatorRole int

const (
	roleTop separatorRole = iota
	roleHeader
	roleBody
	roleBottom
)

// junctionSet is the glyphs of one horizontal line: the corner or T at
// each end, the crossing between columns, and the run glyph.
type junctionSet struct {
	start, mid, end, run string
}

type glyphs struct {
	vertical string
	top      junctionSet
	header   junctionSet
	body     junctionSet
	bottom   junctionSet
}

var (
	unicodeGlyphs = glyphs{
		vertical: "│",
		top:      junctionSet{"┌", "┬", "┐", "─"},
		header:   junctionSet{"╞", "╪", "╡", "═"},
		body:     junctionSet{"├", "┼", "┤", "─"},
		bottom:   junctionSet{"└", "┴", "┘", "─"},
	}
	asciiGlyphs = glyphs{
		vertical: "|",
		top:      junctionSet{"+", "+", "+", "-"},
		header:   junctionSet{"+", "+", "+", "="},
		body:     junctionSet{"+", "+", "+", "-"},
		bottom:   junctionSet{"+", "+", "+", "-"},
	}
)

func selectGlyphs(ascii, compact bool) glyphs {
	g := unicodeGlyphs
	if ascii {
		g = asciiGlyphs
	}
	if compact {
		g.header = g.body
	}
	return g
}

func (g glyphs) junctions(role separatorRole) junctionSet {
	switch role {
	case roleTop:
		return g.top
	case roleHeader:
		return g.header
	case roleBottom:
		return g.bottom
	default:
		return g.body
	}
}
