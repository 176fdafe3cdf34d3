package tui

import (
	"strings"
)

// digitMap maps each digit character (0-9) and the colon to a 5-line block glyph.
// Digits are 4 chars wide except 1, the colon is 1 char wide.
var digitMap = map[rune][5]string{
	'0': {"████", "█  █", "█  █", "█  █", "████"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"████", "   █", "████", "█   ", "████"},
	'3': {"████", "   █", "████", "   █", "████"},
	'4': {"█  █", "█  █", "████", "   █", "   █"},
	'5': {"████", "█   ", "████", "   █", "████"},
	'6': {"████", "█   ", "████", "█  █", "████"},
	'7': {"████", "   █", "  █ ", " █  ", " █  "},
	'8': {"████", "█  █", "████", "█  █", "████"},
	'9': {"████", "█  █", "████", "   █", "████"},
	':': {" ", "█", " ", "█", " "},
}

// bigClock renders a clock string like "25:00" as five lines of block glyphs.
// Characters without a glyph are skipped. Returns "" when the result would
// not fit in width columns.
func bigClock(clock string, width int) string {
	lines := [5]string{}
	for _, ch := range clock {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}

	if lines[0] == "" || len([]rune(lines[0]))+4 > width {
		return ""
	}

	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines[:], "\n")
}
