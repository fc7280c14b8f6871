package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleImportKey processes keyboard input for the CSV import prompt.
func (m Model) handleImportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewEntry
		m.importInput.Blur()
		m.applyFocus()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.uploading {
			return m, nil
		}
		path := strings.TrimSpace(m.importInput.Value())
		if path == "" {
			return m, nil
		}
		if !strings.HasSuffix(strings.ToLower(path), ".csv") {
			m.setStatus("Please choose a CSV file", true)
			return m, nil
		}
		m.uploading = true
		m.clearStatus()
		return m, uploadCmd(m.ctx, m.client, path)
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

// renderImport renders the CSV import prompt.
func (m Model) renderImport() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Import items from CSV"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("The file is parsed by the label service; expected columns are"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render("SKU, Price, Quantity. Importing replaces the current grid."))
	b.WriteString("\n\n")
	b.WriteString(m.importInput.View())
	b.WriteString("\n\n")
	if m.uploading {
		b.WriteString(styles.WarningText.Render("Uploading..."))
	} else if m.status.text != "" {
		b.WriteString(m.renderStatusText())
	} else {
		b.WriteString(styles.MutedText.Render("enter upload · esc cancel"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
