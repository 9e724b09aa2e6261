package loader

import (
	"errors"
	"strings"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// ErrHeaderNotFound is returned by Clean when no row in the grid qualifies
// as a header row.
var ErrHeaderNotFound = errors.New("no valid header row found")

// minHeaderCells is the minimum number of non-blank cells a row needs to be
// treated as the header. Sparse title and spacer rows fall below it.
const minHeaderCells = 3

// Clean locates the header row in a raw grid and returns the labeled table.
//
// Fully-empty rows are dropped first and never count toward the header
// search. The header is the first remaining row with at least minHeaderCells
// non-blank cells; every row after it becomes a record, in original order.
// Column names are the trimmed string form of the header cells, duplicates
// kept. A qualifying header with no rows after it yields an empty table.
func Clean(grid model.Grid) (model.Table, error) {
	var rows model.Grid
	for _, row := range grid {
		if !rowBlank(row) {
			rows = append(rows, row)
		}
	}

	for i, row := range rows {
		if countNonBlank(row) < minHeaderCells {
			continue
		}

		columns := make([]string, len(row))
		for j, cell := range row {
			columns[j] = strings.TrimSpace(cell)
		}

		records := make([]model.Record, 0, len(rows)-i-1)
		for _, dataRow := range rows[i+1:] {
			rec := make(model.Record, len(columns))
			for j, name := range columns {
				if j < len(dataRow) {
					rec[name] = dataRow[j]
				}
			}
			records = append(records, rec)
		}

		return model.Table{Columns: columns, Records: records}, nil
	}

	return model.Table{}, ErrHeaderNotFound
}

func rowBlank(row []string) bool {
	return countNonBlank(row) == 0
}

func countNonBlank(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}
