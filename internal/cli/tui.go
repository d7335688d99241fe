package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/render"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// frameworkHints are shown next to each choice in the picker.
var frameworkHints = map[render.Framework]string{
	render.React:        "function component, .tsx/.jsx",
	render.ReactServer:  "React server component",
	render.Vue:          "single-file component",
	render.Angular:      "standalone component",
	render.Laravel:      "Blade view",
	render.Svelte:       "Svelte component",
	render.Solid:        "Solid component",
	render.WebComponent: "custom element",
	render.Raw:          "plain .svg files",
}

// =============================================================================
// FrameworkPickerModel - Interactive framework selection
// =============================================================================

// FrameworkPickerModel is the bubbletea model init uses to choose a
// framework.
type FrameworkPickerModel struct {
	Choices  []render.Framework
	Cursor   int
	Selected render.Framework // empty until confirmed
	Aborted  bool
}

// NewFrameworkPickerModel creates a picker over every framework.
func NewFrameworkPickerModel() FrameworkPickerModel {
	return FrameworkPickerModel{Choices: render.Frameworks()}
}

func (m FrameworkPickerModel) Init() tea.Cmd {
	return nil
}

func (m FrameworkPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Choices)-1 {
			m.Cursor++
		}
	case "enter", " ":
		m.Selected = m.Choices[m.Cursor]
		return m, tea.Quit
	}
	return m, nil
}

func (m FrameworkPickerModel) View() string {
	if m.Selected != "" || m.Aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select Framework"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, fw := range m.Choices {
		cursor, style := "  ", listNormalStyle
		if i == m.Cursor {
			cursor, style = "▸ ", listSelectedStyle
		}
		b.WriteString(fmt.Sprintf("%s%-24s %s\n", cursor, style.Render(fw.String()), listDimStyle.Render(frameworkHints[fw])))
	}
	return b.String()
}

// pickFramework runs the picker on the terminal.
func pickFramework() (render.Framework, error) {
	final, err := tea.NewProgram(NewFrameworkPickerModel()).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "framework picker")
	}
	m := final.(FrameworkPickerModel)
	if m.Aborted || m.Selected == "" {
		return "", errors.New(errors.ErrCodeConfigInvalid, "no framework selected")
	}
	return m.Selected, nil
}
