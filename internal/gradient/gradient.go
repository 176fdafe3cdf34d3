// Package gradient colors text with a per-character linear gradient
// between two RGB endpoints.
package gradient

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex parses a 6-digit hex color, with or without the leading '#'.
func Hex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustHex is Hex for hardcoded palette constants. It panics on bad input.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates each channel as round(start + (end-start)*f).
func Lerp(start, end RGB, f float64) RGB {
	return RGB{
		R: lerpChannel(start.R, end.R, f),
		G: lerpChannel(start.G, end.G, f),
		B: lerpChannel(start.B, end.B, f),
	}
}

func lerpChannel(start, end uint8, f float64) uint8 {
	v := math.Round(float64(start) + (float64(end)-float64(start))*f)
	return uint8(math.Max(0, math.Min(255, v)))
}

// Renderer emits gradient text using the escape sequences of one color profile.
type Renderer struct {
	Profile termenv.Profile
}

// NewRenderer returns a renderer for the given profile.
func NewRenderer(p termenv.Profile) Renderer {
	return Renderer{Profile: p}
}

// Detect returns a renderer matching what stdout and the environment support.
func Detect() Renderer {
	return Renderer{Profile: termenv.EnvColorProfile()}
}

// Line colors each character of text, moving from start to end.
// The factor is 0 for a single character, so it gets the start color.
func (r Renderer) Line(text string, start, end RGB) string {
	chars := []rune(text)
	n := len(chars)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	for i, ch := range chars {
		f := 0.0
		if n > 1 {
			f = float64(i) / float64(n-1)
		}
		b.WriteString(r.paint(string(ch), Lerp(start, end, f)))
	}
	return b.String()
}

// Lines applies Line to every newline-separated line independently, so each
// line runs the full gradient from start to end.
func (r Renderer) Lines(text string, start, end RGB) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = r.Line(line, start, end)
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) paint(ch string, c RGB) string {
	var seq string
	switch r.Profile {
	case termenv.Ascii:
		return ch
	case termenv.TrueColor:
		seq = fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
	default:
		seq = r.Profile.Convert(termenv.RGBColor(c.Hex())).Sequence(false)
	}
	return termenv.CSI + seq + "m" + ch + termenv.CSI + termenv.ResetSeq + "m"
}
