package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderResult shows the outcome of a successful generation run.
func (m Model) renderResult() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.SuccessText.Render(fmt.Sprintf("Generated %d labels", m.result.LabelCount)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Download:"))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(m.result.DownloadURL))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("press any key to return to the grid"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Success)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
