package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// CSVReader reads delimited-text exports.
type CSVReader struct{}

// Format returns the reader name.
func (r *CSVReader) Format() string { return "csv" }

// Read parses a CSV stream into a raw grid. Rows may be ragged; the grid is
// padded to a fixed width. No row is treated as a header here.
func (r *CSVReader) Read(src io.Reader) (model.Grid, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return padGrid(records), nil
}
