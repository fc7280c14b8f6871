package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rewined/labelgrid/internal/catalog"
	"github.com/rewined/labelgrid/internal/grid"
	"github.com/rewined/labelgrid/internal/toolkit"
)

// rowInputs mirrors one grid row for editing. Values flow input -> row on
// every keystroke; the row stays authoritative for collection.
type rowInputs struct {
	sku   textinput.Model
	price textinput.Model
	qty   textinput.Model
}

func (m *Model) newRowInputs(row *grid.Row) *rowInputs {
	in := &rowInputs{
		sku:   textinput.New(),
		price: textinput.New(),
		qty:   textinput.New(),
	}
	in.sku.Placeholder = "SKU or Description"
	in.sku.CharLimit = 64
	in.sku.Width = skuFieldWidth
	in.price.Placeholder = "Price"
	in.price.CharLimit = 12
	in.price.Width = priceFieldWidth
	in.qty.Placeholder = "QTY"
	in.qty.CharLimit = 6
	in.qty.Width = qtyFieldWidth

	in.sku.SetValue(row.SKU)
	in.price.SetValue(row.Price)
	in.qty.SetValue(row.Qty)
	return in
}

// rebuildInputs recreates the input mirrors from the grid, used after bulk
// operations (import, reset) replace every row.
func (m *Model) rebuildInputs() {
	m.inputs = make(map[int]*rowInputs)
	for _, row := range m.grid.Rows() {
		m.inputs[row.ID] = m.newRowInputs(row)
	}
	if m.focusRow >= m.grid.Len() {
		m.focusRow = m.grid.Len() - 1
	}
	if m.focusRow < 0 {
		m.focusRow = 0
	}
}

// refreshInputStyles is a hook for theme cycling; textinput carries no theme
// state of ours today, so recreating styles is unnecessary.
func (m *Model) refreshInputStyles() {}

// focusedRow returns the row that owns keyboard focus.
func (m *Model) focusedRow() *grid.Row {
	rows := m.grid.Rows()
	if len(rows) == 0 {
		return nil
	}
	if m.focusRow >= len(rows) {
		m.focusRow = len(rows) - 1
	}
	if m.focusRow < 0 {
		m.focusRow = 0
	}
	return rows[m.focusRow]
}

// applyFocus moves textinput focus to the active row and field.
func (m *Model) applyFocus() {
	for _, in := range m.inputs {
		in.sku.Blur()
		in.price.Blur()
		in.qty.Blur()
	}
	row := m.focusedRow()
	if row == nil {
		return
	}
	in := m.inputs[row.ID]
	if in == nil {
		in = m.newRowInputs(row)
		m.inputs[row.ID] = in
	}
	switch m.focusField {
	case fieldPrice:
		in.price.Focus()
	case fieldQty:
		in.qty.Focus()
	default:
		in.sku.Focus()
	}
}

// moveRowFocus shifts focus up or down one row, keeping the field. Leaving a
// row closes its dropdown, the TUI analogue of clicking outside it.
func (m *Model) moveRowFocus(delta int) {
	row := m.focusedRow()
	if row == nil {
		return
	}
	next := m.focusRow + delta
	if next < 0 || next >= m.grid.Len() {
		return
	}
	row.Cursor.Close()
	m.focusRow = next
	m.applyFocus()
}

// advanceField implements the structural Enter flow: next field in the row,
// or a fresh row from the last field.
func (m *Model) advanceField() {
	row := m.focusedRow()
	if row == nil {
		return
	}
	row.Cursor.Close()
	if m.focusField < fieldQty {
		m.focusField++
		m.applyFocus()
		return
	}
	m.addRow()
}

// retreatField mirrors advanceField without row creation.
func (m *Model) retreatField() {
	row := m.focusedRow()
	if row == nil {
		return
	}
	row.Cursor.Close()
	if m.focusField > fieldSKU {
		m.focusField--
	} else if m.focusRow > 0 {
		m.focusRow--
		m.focusField = fieldQty
	}
	m.applyFocus()
}

// addRow appends a fresh row and focuses its SKU field.
func (m *Model) addRow() {
	if row := m.focusedRow(); row != nil {
		row.Cursor.Close()
	}
	r := m.grid.AddRow()
	m.inputs[r.ID] = m.newRowInputs(r)
	m.focusRow = m.grid.Len() - 1
	m.focusField = fieldSKU
	m.applyFocus()
}

// removeFocusedRow removes the focused row unless it is the only one.
func (m *Model) removeFocusedRow() {
	row := m.focusedRow()
	if row == nil {
		return
	}
	if !m.grid.RemoveRow(row.ID) {
		return
	}
	delete(m.inputs, row.ID)
	if m.focusRow >= m.grid.Len() {
		m.focusRow = m.grid.Len() - 1
	}
	m.applyFocus()
}

// resetGrid clears everything back to a single blank row.
func (m *Model) resetGrid() {
	m.grid.Reset()
	m.focusRow = 0
	m.focusField = fieldSKU
	m.rebuildInputs()
	m.applyFocus()
	m.clearStatus()
}

// refreshCandidates recomputes the dropdown for a row's SKU text. The
// catalog is read from the store at match time, never cached, so a load that
// finishes mid-session takes effect on the next keystroke.
func (m *Model) refreshCandidates(row *grid.Row) {
	snap := m.store.Snapshot()
	limit := catalog.DefaultMatchLimit
	if m.config != nil && m.config.MatchLimit > 0 {
		limit = m.config.MatchLimit
	}
	row.Cursor.SetCandidates(catalog.Match(row.SKU, snap.Products, limit))
}

// handleEntryKey processes keyboard input for the entry grid.
func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.focusedRow()
	if row == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if row.Cursor.IsOpen() {
			row.Cursor.Next()
		} else {
			m.moveRowFocus(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if row.Cursor.IsOpen() {
			row.Cursor.Prev()
		} else {
			m.moveRowFocus(-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if row.Cursor.IsOpen() {
			row.Cursor.Close()
		} else {
			m.clearStatus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		// With an open dropdown Enter commits and stays in-row; otherwise
		// it advances structurally.
		if row.Cursor.IsOpen() {
			if _, ok := m.grid.Commit(row); ok {
				if in := m.inputs[row.ID]; in != nil {
					in.sku.SetValue(row.SKU)
					in.price.SetValue(row.Price)
				}
				m.focusField = fieldQty
				m.applyFocus()
				return m, nil
			}
			row.Cursor.Close()
		}
		m.advanceField()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.advanceFieldNoAdd()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.retreatField()
		return m, nil

	case key.Matches(msg, m.keys.AddRow):
		m.addRow()
		return m, nil

	case key.Matches(msg, m.keys.RemoveRow):
		m.removeFocusedRow()
		return m, nil

	case key.Matches(msg, m.keys.ResetGrid):
		m.resetGrid()
		return m, nil

	case key.Matches(msg, m.keys.CycleFormat):
		m.cycleFormat()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Import):
		m.currentView = ViewImport
		m.importInput.SetValue("")
		m.importInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Generate):
		return m.startGenerate()
	}

	return m.updateFocusedInput(msg, row)
}

// advanceFieldNoAdd is the Tab flow: wraps across rows without creating one.
func (m *Model) advanceFieldNoAdd() {
	row := m.focusedRow()
	if row == nil {
		return
	}
	row.Cursor.Close()
	if m.focusField < fieldQty {
		m.focusField++
	} else if m.focusRow+1 < m.grid.Len() {
		m.focusRow++
		m.focusField = fieldSKU
	} else {
		m.focusRow = 0
		m.focusField = fieldSKU
	}
	m.applyFocus()
}

// updateFocusedInput forwards a key to the focused textinput and syncs the
// new value back into the row.
func (m Model) updateFocusedInput(msg tea.KeyMsg, row *grid.Row) (tea.Model, tea.Cmd) {
	in := m.inputs[row.ID]
	if in == nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focusField {
	case fieldPrice:
		in.price, cmd = in.price.Update(msg)
		row.Price = in.price.Value()
	case fieldQty:
		in.qty, cmd = in.qty.Update(msg)
		row.Qty = in.qty.Value()
	default:
		in.sku, cmd = in.sku.Update(msg)
		row.SKU = in.sku.Value()
		m.refreshCandidates(row)
	}
	return m, cmd
}

// startGenerate validates, packages, and submits the current grid.
func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.generating {
		// Submission disabled while a request is pending.
		return m, nil
	}

	snap := m.store.Snapshot()
	items := grid.Collect(m.grid.Rows(), snap.Products)
	if len(items) == 0 {
		m.setStatus("Add at least one item with a valid SKU, price, and quantity", true)
		return m, nil
	}

	req, err := toolkit.BuildGenerateRequest(items, m.currentFormat().Key)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.generating = true
	m.clearStatus()
	return m, generateCmd(m.ctx, m.client, req)
}

func (m Model) handleGenerateDone(msg generateDoneMsg) (tea.Model, tea.Cmd) {
	m.generating = false
	if msg.err != nil {
		m.setStatus(msg.err.Error(), true)
		return m, nil
	}
	if !msg.resp.Success {
		m.setStatus(msg.resp.Message(), true)
		return m, nil
	}
	m.result = msg.resp
	m.currentView = ViewResult
	m.clearStatus()
	return m, nil
}

func (m Model) handleImportDone(msg importDoneMsg) (tea.Model, tea.Cmd) {
	m.uploading = false
	if msg.err != nil {
		// Grid state stays untouched on transport failure.
		m.setStatus(msg.err.Error(), true)
		return m, nil
	}
	if !msg.resp.Success {
		text := msg.resp.Error
		if text == "" {
			text = "Upload failed"
		}
		m.setStatus(text, true)
		return m, nil
	}

	m.grid.ReplaceAll(seedsFromImport(msg.resp.Data))
	m.focusRow = m.grid.Len() - 1
	m.focusField = fieldSKU
	m.rebuildInputs()
	m.applyFocus()
	m.currentView = ViewEntry
	m.setStatus("Loaded "+strconv.Itoa(msg.resp.RowCount)+" items from CSV", false)
	return m, nil
}

// seedsFromImport converts server-parsed rows into grid seeds. A zero price
// seeds an empty field so the placeholder shows instead of "0".
func seedsFromImport(rows []toolkit.ImportRow) []grid.Seed {
	seeds := make([]grid.Seed, 0, len(rows))
	for _, r := range rows {
		seed := grid.Seed{SKU: strings.TrimSpace(r.SKU)}
		if r.Price > 0 {
			seed.Price = strconv.FormatFloat(r.Price, 'f', -1, 64)
		}
		if r.Quantity >= 1 {
			seed.Qty = strconv.Itoa(r.Quantity)
		}
		seeds = append(seeds, seed)
	}
	return seeds
}
