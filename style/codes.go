package style

import (
	"fmt"
	"strings"
)

// Color is one of the 16 ANSI terminal colors plus the terminal default.
// The zero value, NoColor, requests no color at all.
type Color int

const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	LightGray
	Gray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
	Default
)

type colorCodes struct {
	name string
	fg   int
	bg   int
}

var colorTable = map[Color]colorCodes{
	Black:        {"black", 30, 40},
	Red:          {"red", 31, 41},
	Green:        {"green", 32, 42},
	Yellow:       {"yellow", 33, 43},
	Blue:         {"blue", 34, 44},
	Magenta:      {"magenta", 35, 45},
	Cyan:         {"cyan", 36, 46},
	LightGray:    {"light_gray", 37, 47},
	Gray:         {"gray", 90, 100},
	LightRed:     {"light_red", 91, 101},
	LightGreen:   {"light_green", 92, 102},
	LightYellow:  {"light_yellow", 93, 103},
	LightBlue:    {"light_blue", 94, 104},
	LightMagenta: {"light_magenta", 95, 105},
	LightCyan:    {"light_cyan", 96, 106},
	White:        {"white", 97, 107},
	Default:      {"default", 39, 49},
}

// Colors returns every named color in code order.
func Colors() []Color {
	colors := make([]Color, 0, len(colorTable))
	for c := Black; c <= Default; c++ {
		colors = append(colors, c)
	}
	return colors
}

// Valid reports whether c is NoColor or a known color.
func (c Color) Valid() bool {
	if c == NoColor {
		return true
	}
	_, ok := colorTable[c]
	return ok
}

func (c Color) String() string {
	if c == NoColor {
		return "none"
	}
	if codes, ok := colorTable[c]; ok {
		return codes.name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// FgCode returns the SGR foreground code for c, or 0 for NoColor.
func (c Color) FgCode() int {
	return colorTable[c].fg
}

// BgCode returns the SGR background code for c, or 0 for NoColor.
func (c Color) BgCode() int {
	return colorTable[c].bg
}

// ParseColor resolves a color name such as "red", "light_blue" or
// "LightBlue". The names "none" and "" resolve to NoColor.
func ParseColor(name string) (Color, error) {
	key := normalize(name)
	if key == "" || key == "none" {
		return NoColor, nil
	}
	for c, codes := range colorTable {
		if normalize(codes.name) == key {
			return c, nil
		}
	}
	return NoColor, fmt.Errorf("%w: color %q", ErrUnknownStyle, name)
}

// Attribute is a text attribute toggled by a set/unset SGR pair.
type Attribute int

const (
	Bold Attribute = iota + 1
	Underscore
	Blink
	Reverse
	Conceal
)

type attrCodes struct {
	name  string
	set   int
	unset int
}

var attributeTable = map[Attribute]attrCodes{
	Bold:       {"bold", 1, 22},
	Underscore: {"underscore", 4, 24},
	Blink:      {"blink", 5, 25},
	Reverse:    {"reverse", 7, 27},
	Conceal:    {"conceal", 8, 28},
}

// Attributes returns every attribute in code order.
func Attributes() []Attribute {
	return []Attribute{Bold, Underscore, Blink, Reverse, Conceal}
}

func (a Attribute) String() string {
	if codes, ok := attributeTable[a]; ok {
		return codes.name
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Codes returns the SGR codes that turn a on and off.
func (a Attribute) Codes() (set, unset int) {
	codes := attributeTable[a]
	return codes.set, codes.unset
}

// ParseAttribute resolves an attribute name such as "bold".
func ParseAttribute(name string) (Attribute, error) {
	key := normalize(name)
	for a, codes := range attributeTable {
		if codes.name == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: attribute %q", ErrUnknownStyle, name)
}

// normalize folds "LightBlue", "light-blue" and "light_blue" to "lightblue".
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}
