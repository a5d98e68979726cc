package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/typekit/variant"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	memberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	compareStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entry struct {
	literal string
	value   *variant.Value
}

type inspectorModel struct {
	input   textinput.Model
	current *entry
	prev    *entry
}

func newInspectorModel() *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "enter a literal (5, 5.5, hello)"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	return &inspectorModel{input: ti}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			literal := m.input.Value()
			if literal != "" {
				m.prev = m.current
				m.current = &entry{literal: literal, value: classify(literal)}
				m.input.SetValue("")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Type Inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.current != nil {
		tag, _ := m.current.value.TypeTag().Get()
		b.WriteString(fmt.Sprintf("literal  %q\n", m.current.literal))
		b.WriteString("member   " + memberStyle.Render(tag.String()) + "\n")
		b.WriteString("string   " + valueStyle.Render(m.current.value.String()) + "\n")

		if m.prev != nil {
			cmp := m.current.value.Compare(m.prev.value)
			b.WriteString("compare  " + compareStyle.Render(
				fmt.Sprintf("%s vs previous %q = %+d", relation(cmp), m.prev.literal, cmp)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter inspect • esc quit"))
	return b.String()
}

func relation(cmp int) string {
	switch {
	case cmp < 0:
		return "less"
	case cmp > 0:
		return "greater"
	default:
		return "equal"
	}
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInspectorModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
