package loader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shakinm/xlsReader/xls"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// XLSReader reads legacy Excel .xls workbooks. Only the first sheet is read.
type XLSReader struct{}

// Format returns the reader name.
func (r *XLSReader) Format() string { return "xls" }

// Read parses an xls stream into a raw grid. The stream is buffered in full
// because the BIFF parser needs random access.
func (r *XLSReader) Read(src io.Reader) (model.Grid, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("buffering xls: %w", err)
	}

	book, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	sheet, err := book.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("reading first sheet: %w", err)
	}

	var rows [][]string
	for _, xlsRow := range sheet.GetRows() {
		var cells []string
		for _, col := range xlsRow.GetCols() {
			cells = append(cells, col.GetString())
		}
		rows = append(rows, cells)
	}
	return padGrid(rows), nil
}
