package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/domain"
	"github.com/xvierd/sprint-cli/internal/ports"
)

// PickerItem represents one option in the picker.
type PickerItem struct {
	Label string
	Desc  string
}

type pickerModel struct {
	title   string
	items   []PickerItem
	cursor  int
	chosen  bool
	aborted bool
	palette Palette
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(msg.String()[0] - '1')
			if idx < len(m.items) {
				m.cursor = idx
				m.chosen = true
				return m, tea.Quit
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.palette.Title.Render("  "+m.title) + "\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			arrow := m.palette.Accent.Render("▸")
			line := m.palette.Accent.Render(fmt.Sprintf(" %-10s %s", item.Label, item.Desc))
			b.WriteString(fmt.Sprintf("  %s%s\n", arrow, line))
		} else {
			b.WriteString(m.palette.Dim.Render(fmt.Sprintf("    %-10s %s", item.Label, item.Desc)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.palette.Dim.Render("  ↑/↓ navigate · enter select · esc quit") + "\n")

	return b.String()
}

type textPromptModel struct {
	title    string
	input    textinput.Model
	validate func(string) error
	err      error
	done     bool
	aborted  bool
	palette  Palette
}

func (m textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.err = nil
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPromptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.palette.Title.Render("  "+m.title) + " ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.palette.Error.Render("  ✗ "+m.err.Error()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.palette.Dim.Render("  enter confirm · esc quit") + "\n")

	return b.String()
}

// Prompter asks for the session configuration using bubbletea programs.
type Prompter struct {
	palette Palette
	opts    []tea.ProgramOption
}

// Ensure Prompter implements ports.Prompter.
var _ ports.Prompter = (*Prompter)(nil)

// NewPrompter creates a prompter. opts are passed to every tea.Program.
func NewPrompter(palette Palette, opts ...tea.ProgramOption) *Prompter {
	return &Prompter{palette: palette, opts: opts}
}

func (p *Prompter) newTaskModel(validate func(string) error) textPromptModel {
	ti := textinput.New()
	ti.Placeholder = "What are you working on?"
	ti.CharLimit = 120
	ti.Width = min(50, getTerminalWidth()-20)
	ti.Focus()

	return textPromptModel{
		title:    "Task:",
		input:    ti,
		validate: validate,
		palette:  p.palette,
	}
}

// PromptTask asks for a task name. The model keeps re-prompting while
// validate rejects the input.
func (p *Prompter) PromptTask(validate func(string) error) (string, error) {
	result, err := tea.NewProgram(p.newTaskModel(validate), p.opts...).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run task prompt: %w", err)
	}

	final := result.(textPromptModel)
	if final.aborted {
		return "", domain.ErrCancelled
	}
	return strings.TrimSpace(final.input.Value()), nil
}

func (p *Prompter) newPresetModel(presets []config.Preset) pickerModel {
	items := make([]PickerItem, 0, len(presets))
	for _, preset := range presets {
		items = append(items, PickerItem{
			Label: preset.Name,
			Desc:  domain.FormatMinutes(preset.Minutes) + " min",
		})
	}
	return pickerModel{
		title:   "Duration:",
		items:   items,
		palette: p.palette,
	}
}

// PromptPreset asks the user to pick a duration preset.
func (p *Prompter) PromptPreset(presets []config.Preset) (config.Preset, error) {
	if len(presets) == 0 {
		return config.Preset{}, fmt.Errorf("no duration presets configured")
	}

	result, err := tea.NewProgram(p.newPresetModel(presets), p.opts...).Run()
	if err != nil {
		return config.Preset{}, fmt.Errorf("failed to run duration picker: %w", err)
	}

	final := result.(pickerModel)
	if final.aborted {
		return config.Preset{}, domain.ErrCancelled
	}
	return presets[final.cursor], nil
}
