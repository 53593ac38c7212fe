package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type MenuModel struct {
	items  []string
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Sign in", "Sign up"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(SignedOutNotice); ok {
		m.status = notice.Reason
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		m.status = ""
		if m.idx == 0 {
			return m, navigate(pageLogin)
		}
		return m, navigate(pageRegister)
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2 // "<marker> <id>"

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(titleStyle.Render("Unlimited movies, TV shows, and more."))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		marker := " "
		if i == m.idx {
			marker = ">"
		}
		line := fmt.Sprintf("%-*s %-*s", idColWidth, fmt.Sprintf("%s %d", marker, i+1), actionColWidth, item)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("GO-FLIX", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
