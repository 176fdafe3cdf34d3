package gradient

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

var cellRe = regexp.MustCompile(`\x1b\[38;2;(\d+);(\d+);(\d+)m(.)\x1b\[0m`)

type cell struct {
	color RGB
	char  string
}

func parseCells(t *testing.T, s string) []cell {
	t.Helper()
	var cells []cell
	for _, m := range cellRe.FindAllStringSubmatch(s, -1) {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		cells = append(cells, cell{color: RGB{uint8(r), uint8(g), uint8(b)}, char: m[4]})
	}
	return cells
}

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ff0000", RGB{255, 0, 0}, false},
		{"00ff00", RGB{0, 255, 0}, false},
		{"#7C6FE0", RGB{0x7c, 0x6f, 0xe0}, false},
		{"#fff", RGB{}, true},
		{"#ff0000aa", RGB{}, true},
		{"#gggggg", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustHex_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex() should panic on malformed input")
		}
	}()
	MustHex("nope")
}

func TestLerp(t *testing.T) {
	start := RGB{0, 0, 0}
	end := RGB{255, 100, 10}

	if got := Lerp(start, end, 0); got != start {
		t.Errorf("Lerp(f=0) = %+v, want %+v", got, start)
	}
	if got := Lerp(start, end, 1); got != end {
		t.Errorf("Lerp(f=1) = %+v, want %+v", got, end)
	}
	// 127.5 -> 128, 50, 5
	if got := Lerp(start, end, 0.5); got != (RGB{128, 50, 5}) {
		t.Errorf("Lerp(f=0.5) = %+v", got)
	}
	// descending channel
	if got := Lerp(RGB{200, 200, 200}, RGB{100, 100, 100}, 0.25); got != (RGB{175, 175, 175}) {
		t.Errorf("Lerp descending = %+v", got)
	}
}

func TestRenderer_Line(t *testing.T) {
	r := NewRenderer(termenv.TrueColor)
	start := MustHex("#ff0000")
	end := MustHex("#0000ff")

	t.Run("empty text", func(t *testing.T) {
		if got := r.Line("", start, end); got != "" {
			t.Errorf("Line(\"\") = %q, want empty", got)
		}
	})

	t.Run("single character uses start color", func(t *testing.T) {
		cells := parseCells(t, r.Line("x", start, end))
		if len(cells) != 1 {
			t.Fatalf("got %d cells, want 1", len(cells))
		}
		if cells[0].color != start {
			t.Errorf("color = %+v, want %+v", cells[0].color, start)
		}
	})

	t.Run("endpoints and count", func(t *testing.T) {
		text := "Focus time!"
		cells := parseCells(t, r.Line(text, start, end))
		if len(cells) != len([]rune(text)) {
			t.Fatalf("got %d cells, want %d", len(cells), len([]rune(text)))
		}
		if cells[0].color != start {
			t.Errorf("first color = %+v, want %+v", cells[0].color, start)
		}
		if cells[len(cells)-1].color != end {
			t.Errorf("last color = %+v, want %+v", cells[len(cells)-1].color, end)
		}
		var rebuilt strings.Builder
		for _, c := range cells {
			rebuilt.WriteString(c.char)
		}
		if rebuilt.String() != text {
			t.Errorf("characters = %q, want %q", rebuilt.String(), text)
		}
	})

	t.Run("midpoint", func(t *testing.T) {
		cells := parseCells(t, r.Line("abc", start, end))
		if cells[1].color != (RGB{128, 0, 128}) {
			t.Errorf("midpoint = %+v, want {128 0 128}", cells[1].color)
		}
	})

	t.Run("multibyte characters count once", func(t *testing.T) {
		text := "█▓░"
		out := r.Line(text, start, end)
		if got := strings.Count(out, "\x1b[38;2;"); got != 3 {
			t.Errorf("escape count = %d, want 3", got)
		}
	})
}

func TestRenderer_Lines(t *testing.T) {
	r := NewRenderer(termenv.TrueColor)
	start := MustHex("#112233")
	end := MustHex("#ddeeff")

	text := "first line\nsecond\nx"
	out := r.Lines(text, start, end)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	for i, line := range lines {
		cells := parseCells(t, line)
		if cells[0].color != start {
			t.Errorf("line %d first color = %+v, want %+v", i, cells[0].color, start)
		}
		if i < 2 && cells[len(cells)-1].color != end {
			t.Errorf("line %d last color = %+v, want %+v", i, cells[len(cells)-1].color, end)
		}
	}

	if got := r.Lines("a\n\nb", start, end); strings.Count(got, "\n") != 2 {
		t.Errorf("blank lines should be preserved, got %q", got)
	}
}

func TestRenderer_AsciiProfile(t *testing.T) {
	r := NewRenderer(termenv.Ascii)
	if got := r.Line("plain", MustHex("#000000"), MustHex("#ffffff")); got != "plain" {
		t.Errorf("Line() with Ascii profile = %q, want plain text", got)
	}
}

func TestRenderer_ANSI256Profile(t *testing.T) {
	r := NewRenderer(termenv.ANSI256)
	out := r.Line("ab", MustHex("#ff0000"), MustHex("#0000ff"))
	if !strings.Contains(out, "\x1b[38;5;") {
		t.Errorf("Line() with ANSI256 profile should use 256-color escapes, got %q", out)
	}
}
