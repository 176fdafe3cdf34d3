package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/xvierd/sprint-cli/internal/domain"
	"github.com/xvierd/sprint-cli/internal/gradient"
	"github.com/xvierd/sprint-cli/internal/ports"
)

const (
	barFilled = "█"
	barEmpty  = "░"
)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r" + termenv.CSI + termenv.EraseEntireLineSeq

// CountdownView renders a running session as a single line redrawn in place.
type CountdownView struct {
	out      io.Writer
	palette  Palette
	gradient gradient.Renderer
	width    func() int
}

// Ensure CountdownView implements ports.TimerView.
var _ ports.TimerView = (*CountdownView)(nil)

// NewCountdownView creates a countdown view writing to out.
func NewCountdownView(out io.Writer, palette Palette, renderer gradient.Renderer) *CountdownView {
	return &CountdownView{
		out:      out,
		palette:  palette,
		gradient: renderer,
		width:    getTerminalWidth,
	}
}

// Start prints the session header and the session length in block digits.
func (v *CountdownView) Start(session *domain.Session) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, v.palette.Title.Render("  🎯 "+session.Task)+
		v.palette.Dim.Render(fmt.Sprintf("  %sm", domain.FormatMinutes(session.Minutes))))

	if big := bigClock(domain.FormatClock(session.TotalSeconds()), v.width()); big != "" {
		fmt.Fprintln(v.out)
		fmt.Fprintln(v.out, v.gradient.Lines(big, v.palette.ClosingStart, v.palette.ClosingEnd))
	}
	fmt.Fprintln(v.out)
}

// Tick redraws the status line.
func (v *CountdownView) Tick(tick domain.Tick) {
	fmt.Fprint(v.out, clearLine+v.statusLine(tick))
}

func (v *CountdownView) statusLine(tick domain.Tick) string {
	var b strings.Builder

	b.WriteString(v.palette.Accent.Render("  ⏳ " + tick.Clock()))
	b.WriteString("  ")
	b.WriteString(v.progressBar(tick))
	b.WriteString(v.palette.Dim.Render(fmt.Sprintf("  %3d%%", int(tick.Elapsed()*100))))

	if tick.FinalSprint {
		b.WriteString(v.palette.Sprint.Render("  🔥 FINAL SPRINT!"))
	}
	return b.String()
}

// progressBar draws Filled filled cells followed by the empty remainder.
func (v *CountdownView) progressBar(tick domain.Tick) string {
	filled := min(max(tick.Filled, 0), tick.BarWidth)
	return v.palette.Filled.Render(strings.Repeat(barFilled, filled)) +
		v.palette.Empty.Render(strings.Repeat(barEmpty, tick.BarWidth-filled))
}

// Motivate prints a message on its own line; the next tick redraws below it.
func (v *CountdownView) Motivate(message string) {
	fmt.Fprintln(v.out, clearLine+v.palette.Details.Render("  💬 "+message))
}

// Complete prints the gradient banner.
func (v *CountdownView) Complete(session *domain.Session) {
	fmt.Fprint(v.out, clearLine)
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, v.gradient.Lines(Banner(), v.palette.BannerStart, v.palette.BannerEnd))
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, v.palette.Accent.Render(fmt.Sprintf("  ✅ %s (%sm)", session.Task, domain.FormatMinutes(session.Minutes))))
}

// Farewell prints the closing message.
func (v *CountdownView) Farewell(_ *domain.Session, logPath string) {
	fmt.Fprintln(v.out, v.palette.Dim.Render("  Logged to "+logPath))
	fmt.Fprintln(v.out, "  "+v.gradient.Line("Great work! Take a short break before the next one.", v.palette.ClosingStart, v.palette.ClosingEnd))
}

// Abandon notes that the session ended early.
func (v *CountdownView) Abandon(session *domain.Session) {
	fmt.Fprint(v.out, clearLine)
	fmt.Fprintln(v.out, v.palette.Warning.Render(fmt.Sprintf("  Session %q abandoned; nothing was logged.", session.Task)))
}
