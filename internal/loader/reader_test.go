package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVReader_PadsRaggedRows(t *testing.T) {
	csv := "Summary\nCPT Code,Payment Amount,Balance\n99213,0,10\n"

	r := &CSVReader{}
	grid, err := r.Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, grid, 3)
	for _, row := range grid {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, "Summary", grid[0][0])
	assert.Equal(t, "", grid[0][2])
}

func TestCSVReader_BadQuoting(t *testing.T) {
	r := &CSVReader{}
	_, err := r.Read(strings.NewReader("a,b,c\n\"unterminated\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading CSV")
}

func TestCSVReader_Format(t *testing.T) {
	assert.Equal(t, "csv", (&CSVReader{}).Format())
}

func TestXLSXReader_ReadsFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Clinic Report"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"CPT Code", "Payment Amount", "Balance"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{"99213", 0, 125.5}))

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))

	src, err := os.Open(path)
	require.NoError(t, err)
	defer src.Close()

	grid, err := (&XLSXReader{}).Read(src)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(grid), 4)

	table, err := Clean(grid)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "99213", table.Records[0]["CPT Code"])
	assert.Equal(t, "0", table.Records[0]["Payment Amount"])
	assert.Equal(t, "125.5", table.Records[0]["Balance"])
}

func TestXLSReader_Format(t *testing.T) {
	assert.Equal(t, "xls", (&XLSReader{}).Format())
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVReader{})
	require.NotNil(t, r.Get("csv"))
	assert.Equal(t, "csv", r.Get("CSV").Format())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("parquet"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVReader{})
	assert.Panics(t, func() { r.Register(&CSVReader{}) })
}

func TestRegistry_ForPath(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, "csv", r.ForPath("/tmp/export.csv").Format())
	assert.Equal(t, "xlsx", r.ForPath("Billing.XLSX").Format())
	assert.Equal(t, "xls", r.ForPath("legacy.xls").Format())
	assert.Nil(t, r.ForPath("notes.txt"))
	assert.Nil(t, r.ForPath("noext"))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	for _, format := range []string{"csv", "xlsx", "xls"} {
		assert.NotNil(t, r.Get(format), "missing reader for %s", format)
	}
}
