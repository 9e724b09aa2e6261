package loader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// Reader converts one export format into a raw cell grid.
type Reader interface {
	Read(r io.Reader) (model.Grid, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// ForPath returns the reader matching the file extension, or nil.
func (r *Registry) ForPath(path string) Reader {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return r.readers[ext]
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{})
	r.Register(&XLSReader{})
	return r
}

// padGrid normalizes ragged rows to a fixed column count. Both CSV files and
// spreadsheet libraries drop trailing empty cells per row.
func padGrid(rows [][]string) model.Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(model.Grid, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		grid[i] = padded
	}
	return grid
}
