package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rewined/labelgrid/internal/grid"
	"github.com/rewined/labelgrid/internal/state"
)

const (
	skuFieldWidth   = 28
	priceFieldWidth = 10
	qtyFieldWidth   = 6
)

// renderEntry renders the main item grid with the dropdown and status line.
func (m Model) renderEntry() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n\n")

	// Column headers
	header := fmt.Sprintf("    %-*s  %-*s  %-*s",
		skuFieldWidth+2, "SKU / Description",
		priceFieldWidth+2, "Price",
		qtyFieldWidth+2, "Qty")
	b.WriteString(styles.FaintText.Render(header))
	b.WriteString("\n")

	removable := m.grid.RemoveControlsVisible()
	for i, row := range m.grid.Rows() {
		b.WriteString(m.renderRow(i, row, removable))
		b.WriteString("\n")
		if i == m.focusRow && row.Cursor.IsOpen() {
			b.WriteString(m.renderDropdown(row))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderTotals())
	b.WriteString("\n")
	if m.status.text != "" {
		b.WriteString(m.renderStatusText())
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderRow(index int, row *grid.Row, removable bool) string {
	styles := m.theme.Styles()

	marker := "  "
	if index == m.focusRow {
		marker = styles.AccentText.Render("▸ ")
	}

	in := m.inputs[row.ID]
	if in == nil {
		return marker
	}

	remove := "   "
	if removable {
		remove = styles.DangerText.Render(" ✕ ")
	}

	return marker +
		in.sku.View() + "  " +
		in.price.View() + "  " +
		in.qty.View() +
		remove
}

// renderDropdown paints the open candidate list under the focused SKU field.
func (m Model) renderDropdown(row *grid.Row) string {
	styles := m.theme.Styles()

	var lines []string
	for i, p := range row.Cursor.Candidates() {
		title := fmt.Sprintf("%s - $%.2f", p.SKU, p.Price)
		detail := fmt.Sprintf("%s (Case: %d)", p.Description, p.CaseQty)
		if p.Description == "" {
			detail = fmt.Sprintf("(Case: %d)", p.CaseQty)
		}
		line := styles.Text.Render(title) + "\n" + styles.MutedText.Render("  "+truncate(detail, 44))
		if i == row.Cursor.Index() {
			line = styles.Selected.Render(title) + "\n" + styles.Selected.Render("  "+truncate(detail, 44))
		}
		lines = append(lines, line)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		PaddingLeft(1).
		PaddingRight(1).
		Render(strings.Join(lines, "\n"))

	// Indent under the SKU column
	indented := make([]string, 0)
	for _, line := range strings.Split(box, "\n") {
		indented = append(indented, "    "+line)
	}
	return strings.Join(indented, "\n") + "\n"
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	logo := styles.Logo.Render("LABELGRID")
	title := styles.MutedText.Render("Label Generator")

	catalog := m.renderCatalogStatus()
	format := styles.MutedText.Render("Format: ") + styles.Text.Render(m.currentFormat().Name)

	left := logo + "  " + title
	right := catalog + "   " + format
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderCatalogStatus() string {
	styles := m.theme.Styles()
	snap := m.store.Snapshot()
	switch snap.Source {
	case state.SourceRemote:
		return styles.SuccessText.Render("● catalog") + styles.MutedText.Render(fmt.Sprintf(" %d products", len(snap.Products)))
	case state.SourceFallback:
		return styles.WarningText.Render("● catalog") + styles.MutedText.Render(" built-in")
	default:
		return styles.FaintText.Render("○ catalog loading")
	}
}

func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	hints := []string{
		"enter next",
		"ctrl+n row",
		"ctrl+x remove",
		"ctrl+o import",
		"ctrl+f format",
		"ctrl+g generate",
		"f1 help",
	}
	return styles.FaintText.Render(strings.Join(hints, " · "))
}

// renderTotals summarizes what a submission would currently produce.
func (m Model) renderTotals() string {
	styles := m.theme.Styles()

	snap := m.store.Snapshot()
	items := grid.Collect(m.grid.Rows(), snap.Products)
	labels := grid.LabelCount(items)

	parts := []string{
		styles.MutedText.Render("Items: ") + styles.Text.Render(fmt.Sprintf("%d", len(items))),
		styles.MutedText.Render("Labels: ") + styles.Text.Render(fmt.Sprintf("%d", labels)),
	}
	if m.generating {
		parts = append(parts, styles.WarningText.Render("Generating..."))
	}
	return strings.Join(parts, "   ")
}

func (m Model) renderStatusText() string {
	styles := m.theme.Styles()
	if m.status.isErr {
		return styles.DangerText.Render(m.status.text)
	}
	return styles.SuccessText.Render(m.status.text)
}
