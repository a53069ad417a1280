package display

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the 24-bit colours used for tiles
type Palette struct {
	Red    colorful.Color
	Black  colorful.Color
	Back   colorful.Color
	Paired colorful.Color
	Wrong  colorful.Color
	Felt   colorful.Color
}

// DefaultPalette returns the standard table colours
func DefaultPalette() Palette {
	red := mustHex("#d7263d")
	black := mustHex("#e8e8e8")
	felt := mustHex("#0b3d2e")
	return Palette{
		Red:    red,
		Black:  black,
		Back:   mustHex("#3a6ea5"),
		Paired: black.BlendLab(felt, 0.55).Clamped(),
		Wrong:  red.BlendLab(colorful.Color{R: 1, G: 0.85, B: 0.2}, 0.35).Clamped(),
		Felt:   felt,
	}
}

// Paint wraps s in a truecolor foreground escape
func (p Palette) Paint(s string, fg colorful.Color) string {
	r, g, b := fg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// PaintOn wraps s in truecolor foreground and background escapes
func (p Palette) PaintOn(s string, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m",
		r1, g1, b1, r2, g2, b2, s)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("display: bad colour %q: %v", s, err))
	}
	return c
}
