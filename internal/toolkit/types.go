package toolkit

import (
	"fmt"

	"github.com/rewined/labelgrid/internal/grid"
)

// GenerateRequest is the payload for /labels/generate.
type GenerateRequest struct {
	Items  []grid.Item `json:"items"`
	Format string      `json:"format"`
}

// GenerateResponse mirrors the /labels/generate reply.
type GenerateResponse struct {
	Success     bool   `json:"success"`
	LabelCount  int    `json:"label_count"`
	DownloadURL string `json:"download_url"`
	Error       string `json:"error"`
}

// Message returns the failure message for a display, substituting a generic
// fallback when the server supplied none.
func (r GenerateResponse) Message() string {
	if r.Success {
		return ""
	}
	if r.Error != "" {
		return r.Error
	}
	return "Generation failed"
}

// ImportRow is one structured row the server parsed out of an uploaded CSV.
type ImportRow struct {
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ImportResponse mirrors the /labels/upload reply. Only Data feeds the grid.
type ImportResponse struct {
	Success  bool        `json:"success"`
	Data     []ImportRow `json:"data"`
	RowCount int         `json:"row_count"`
	Error    string      `json:"error"`
}

// BuildGenerateRequest packages validated items and a format key into a
// request. Validation already happened during collection; the only failure
// mode is an empty item list, which callers must surface before submitting.
func BuildGenerateRequest(items []grid.Item, format string) (GenerateRequest, error) {
	if len(items) == 0 {
		return GenerateRequest{}, fmt.Errorf("no items to generate")
	}
	return GenerateRequest{Items: items, Format: format}, nil
}
