package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "p":
		return m, m.loadCategoriesCmd()
	case "a":
		m.screen = screenAdminPin
		m.input.Reset()
		m.input.Placeholder = "PIN"
		m.input.EchoMode = textinput.EchoPassword
		m.input.Focus()
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) viewHome() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("🎭 Mímica Master"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Act it out, guess it, win!"))
	sb.WriteString("\n\n")
	sb.WriteString("  enter  play\n")
	sb.WriteString("  a      admin\n")
	sb.WriteString("  ctrl+t toggle dark mode\n")
	sb.WriteString("  q      quit\n")

	if m.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(m.errText))
	}

	return m.center(sb.String())
}

// center places content in the middle of the terminal when dimensions
// are known, and returns it as-is otherwise (e.g. in tests).
func (m *Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
