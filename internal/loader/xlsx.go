package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// XLSXReader reads Excel .xlsx workbooks. Only the first sheet is read.
type XLSXReader struct{}

// Format returns the reader name.
func (r *XLSXReader) Format() string { return "xlsx" }

// Read parses an xlsx stream into a raw grid.
func (r *XLSXReader) Read(src io.Reader) (model.Grid, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return padGrid(rows), nil
}
