package model

// Grid is a raw two-dimensional cell grid read from an export file with no
// assumed header. Column count is fixed across rows.
type Grid [][]string

// Record maps a column name to the cell value for one row. Duplicate header
// names collapse last-write-wins, matching the source exports.
type Record map[string]string

// Table is a cleaned, labeled table: the trimmed header names plus every row
// that followed the header, in original order.
type Table struct {
	Columns []string
	Records []Record
}

// HasColumn reports whether name is one of the table's column names.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
