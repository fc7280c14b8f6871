package grid

// Row is one user-editable entry line: the single source of truth for what
// the user has typed. The rendering layer projects rows onto the screen and
// the collector reads them back; neither scrapes widget state.
//
// Price and Qty stay raw strings until collection so partially typed values
// never fail early.
type Row struct {
	ID     int
	SKU    string
	Price  string
	Qty    string
	Cursor Cursor
}

// Seed pre-fills a row during bulk replacement (CSV import).
type Seed struct {
	SKU   string
	Price string
	Qty   string
}

func newRow(id int) *Row {
	return &Row{ID: id, Qty: "1"}
}
