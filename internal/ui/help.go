package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Grid",
			items: []helpItem{
				{"enter", "Next field / new row from last"},
				{"tab/shift+tab", "Move between fields"},
				{"↑/↓", "Move between rows"},
				{"ctrl+n", "Add row"},
				{"ctrl+x", "Remove row"},
				{"ctrl+r", "Reset grid"},
			},
		},
		{
			title: "Autocomplete",
			items: []helpItem{
				{"type 2+ chars", "Open candidate list"},
				{"↑/↓", "Highlight candidate"},
				{"enter", "Commit candidate"},
				{"esc", "Close dropdown"},
			},
		},
		{
			title: "Actions",
			items: []helpItem{
				{"ctrl+o", "Import CSV"},
				{"ctrl+g", "Generate labels"},
				{"ctrl+f", "Cycle label format"},
				{"ctrl+t", "Cycle theme"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"f1", "Toggle help"},
				{"ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(15)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
