package toolkit

// Format describes one printable label sheet layout.
type Format struct {
	Key           string  `json:"id"`
	Name          string  `json:"name"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Columns       int     `json:"columns"`
	Rows          int     `json:"rows"`
	LabelsPerPage int     `json:"labels_per_page"`
}

// DefaultFormatKey is the sheet layout selected when prefs carry none.
const DefaultFormatKey = "avery_5160"

// DefaultFormats returns the built-in sheet layouts, used when the /formats
// endpoint is unavailable. Mirrors the service's own format table.
func DefaultFormats() []Format {
	return []Format{
		{Key: "avery_5160", Name: `Avery 5160/5260 (1" x 2-5/8")`, Width: 2.625, Height: 1.0, Columns: 3, Rows: 10, LabelsPerPage: 30},
		{Key: "avery_5163", Name: `Avery 5163/5263 (2" x 4")`, Width: 4.0, Height: 2.0, Columns: 2, Rows: 5, LabelsPerPage: 10},
		{Key: "avery_5167", Name: `Avery 5167/5267 (1/2" x 1-3/4")`, Width: 1.75, Height: 0.5, Columns: 4, Rows: 20, LabelsPerPage: 80},
		{Key: "avery_8163", Name: `Avery 8163 (2" x 4")`, Width: 4.0, Height: 2.0, Columns: 2, Rows: 5, LabelsPerPage: 10},
		{Key: "custom_square", Name: `Custom Square (2" x 2")`, Width: 2.0, Height: 2.0, Columns: 4, Rows: 5, LabelsPerPage: 20},
	}
}

// FormatIndex returns the position of key within formats, or 0 when absent so
// callers always land on a valid selection.
func FormatIndex(formats []Format, key string) int {
	for i, f := range formats {
		if f.Key == key {
			return i
		}
	}
	return 0
}
