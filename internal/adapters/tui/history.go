package tui

import (
	"fmt"
	"io"

	"github.com/xvierd/sprint-cli/internal/domain"
	"github.com/xvierd/sprint-cli/internal/gradient"
	"github.com/xvierd/sprint-cli/internal/ports"
)

// HistoryView prints recent sessions, one per line.
type HistoryView struct {
	out      io.Writer
	palette  Palette
	gradient gradient.Renderer
}

// Ensure HistoryView implements ports.HistoryView.
var _ ports.HistoryView = (*HistoryView)(nil)

// NewHistoryView creates a history view writing to out.
func NewHistoryView(out io.Writer, palette Palette, renderer gradient.Renderer) *HistoryView {
	return &HistoryView{out: out, palette: palette, gradient: renderer}
}

// Empty tells the user there is nothing to list yet.
func (v *HistoryView) Empty(logPath string) {
	fmt.Fprintln(v.out, v.palette.Warning.Render(fmt.Sprintf("⚠ No session history yet (%s). Finish a session first!", logPath)))
}

// Entries prints each entry with a dimmed timestamp and colored details.
func (v *HistoryView) Entries(entries []domain.LogEntry) {
	fmt.Fprintln(v.out, v.palette.Title.Render(fmt.Sprintf("📜 Recent sessions (%d):", len(entries))))
	fmt.Fprintln(v.out)
	for _, e := range entries {
		fmt.Fprintf(v.out, "%s %s\n", v.palette.Dim.Render(e.Timestamp+"]"), v.palette.Details.Render(e.Details))
	}
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, v.gradient.Line("Keep the streak going!", v.palette.ClosingStart, v.palette.ClosingEnd))
}
