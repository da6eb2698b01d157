package color

import (
	"fmt"
	"strings"
)

// Coloring selects one of the anaglyph filter pairs listed at
// https://en.wikipedia.org/wiki/Anaglyph_3D#Anaglyphic_color_channels.
type Coloring int

const (
	RedGreen Coloring = iota
	RedBlue
	RedCyan
	Anachrome
	Mirachrome
	Trioscopic
	Colorcode3D
	MagentaCyan
)

// ColorPair holds the normalised (0..1) RGB weights of the left and right
// filters.
type ColorPair struct {
	Left  [3]float32
	Right [3]float32
}

// Filter colors, scaled from 8-bit values.
var (
	PureRed     = rgb(255, 0, 0)
	PureGreen   = rgb(0, 255, 0)
	PureBlue    = rgb(0, 0, 255)
	PureCyan    = rgb(0, 255, 255)
	DarkRed     = rgb(204, 0, 0)
	Cyan        = rgb(153, 204, 255)
	PureMagenta = rgb(255, 0, 255)
	Amber       = rgb(255, 191, 0)
	DarkBlue    = rgb(0, 0, 153)
)

func rgb(r, g, b float32) [3]float32 {
	return [3]float32{r / 255, g / 255, b / 255}
}

var colorings = []struct {
	c    Coloring
	name string
	pair ColorPair
}{
	{RedGreen, "red-green", ColorPair{PureRed, PureGreen}},
	{RedBlue, "red-blue", ColorPair{PureRed, PureBlue}},
	{RedCyan, "red-cyan", ColorPair{PureRed, PureCyan}},
	{Anachrome, "anachrome", ColorPair{DarkRed, Cyan}},
	{Mirachrome, "mirachrome", ColorPair{DarkRed, Cyan}},
	{Trioscopic, "trioscopic", ColorPair{PureGreen, PureMagenta}},
	{Colorcode3D, "colorcode-3d", ColorPair{Amber, DarkBlue}},
	{MagentaCyan, "magenta-cyan", ColorPair{PureMagenta, PureCyan}},
}

// All returns every coloring in declaration order.
func All() []Coloring {
	out := make([]Coloring, len(colorings))
	for i, e := range colorings {
		out[i] = e.c
	}
	return out
}

// Pair returns the filter colors for c. Out-of-range values fall back to
// RedCyan.
func (c Coloring) Pair() ColorPair {
	if c < 0 || int(c) >= len(colorings) {
		return colorings[RedCyan].pair
	}
	return colorings[c].pair
}

func (c Coloring) String() string {
	if c < 0 || int(c) >= len(colorings) {
		return fmt.Sprintf("Coloring(%d)", int(c))
	}
	return colorings[c].name
}

// ParseColoring converts a coloring name such as "red-cyan" to a Coloring.
// Matching ignores case, and underscores are accepted in place of dashes.
func ParseColoring(s string) (Coloring, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, e := range colorings {
		if e.name == name {
			return e.c, nil
		}
	}
	return 0, fmt.Errorf("unknown coloring: %q", s)
}
