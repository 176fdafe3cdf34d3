// Package tui provides the terminal user interface: bubbletea prompts for
// configuring a session, the in-place countdown line, the completion banner
// and the history listing.
package tui

import (
	"os"
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/gradient"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// Palette is the set of lipgloss styles and gradient endpoints derived from a theme.
type Palette struct {
	Title   lipgloss.Style
	Accent  lipgloss.Style
	Dim     lipgloss.Style
	Details lipgloss.Style
	Sprint  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Filled  lipgloss.Style
	Empty   lipgloss.Style

	BannerStart, BannerEnd   gradient.RGB
	ClosingStart, ClosingEnd gradient.RGB
}

// NewPalette builds the styles for theme. Colors are assumed valid; config
// validation rejects malformed hex before we get here.
func NewPalette(theme *config.ThemeConfig) Palette {
	t := resolveTheme(theme)
	return Palette{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorAccent)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorAccent)).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorDim)),
		Details: lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorDetails)),
		Sprint:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorSprint)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorWarning)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorError)).Bold(true),
		Filled:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorAccent)),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorDim)).Faint(true),

		BannerStart:  gradient.MustHex(t.BannerGradientStart),
		BannerEnd:    gradient.MustHex(t.BannerGradientEnd),
		ClosingStart: gradient.MustHex(t.ClosingGradientStart),
		ClosingEnd:   gradient.MustHex(t.ClosingGradientEnd),
	}
}

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}
