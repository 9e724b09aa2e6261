package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denialscope-dev/denialscope/internal/model"
)

func TestClean_HeaderAfterTitleAndEmptyRows(t *testing.T) {
	grid := model.Grid{
		{"Clinic Billing Report", "", "", "", ""},
		{"", "", "", "", ""},
		{"CPT Code", "Payment Amount", "Balance", "Denial Reason", "Insurance Company Name"},
		{"99213", "0", "125.00", "No auth", "Aetna"},
		{"99214", "80.00", "0", "", "Cigna"},
	}

	table, err := Clean(grid)
	require.NoError(t, err)
	assert.Equal(t, []string{"CPT Code", "Payment Amount", "Balance", "Denial Reason", "Insurance Company Name"}, table.Columns)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "99213", table.Records[0]["CPT Code"])
	assert.Equal(t, "Cigna", table.Records[1]["Insurance Company Name"])
}

func TestClean_NoQualifyingHeader(t *testing.T) {
	grid := model.Grid{
		{"title", "", ""},
		{"a", "b", ""},
		{"", "x", "y"},
	}

	_, err := Clean(grid)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestClean_EmptyGrid(t *testing.T) {
	_, err := Clean(model.Grid{})
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestClean_HeaderWithNoDataRows(t *testing.T) {
	grid := model.Grid{
		{"CPT Code", "Payment Amount", "Balance"},
	}

	table, err := Clean(grid)
	require.NoError(t, err)
	assert.Empty(t, table.Records)
	assert.Len(t, table.Columns, 3)
}

func TestClean_TrimsHeaderNames(t *testing.T) {
	grid := model.Grid{
		{"  CPT Code ", "Payment Amount", " Balance"},
		{"99213", "0", "10"},
	}

	table, err := Clean(grid)
	require.NoError(t, err)
	assert.Equal(t, []string{"CPT Code", "Payment Amount", "Balance"}, table.Columns)
	assert.Equal(t, "99213", table.Records[0]["CPT Code"])
}

func TestClean_DuplicateHeadersKept(t *testing.T) {
	grid := model.Grid{
		{"CPT Code", "Amount", "Amount"},
		{"99213", "first", "second"},
	}

	table, err := Clean(grid)
	require.NoError(t, err)
	// Column list keeps both; map lookup is last-write-wins.
	assert.Equal(t, []string{"CPT Code", "Amount", "Amount"}, table.Columns)
	assert.Equal(t, "second", table.Records[0]["Amount"])
}

func TestClean_EmptyRowsDoNotCountAsRecords(t *testing.T) {
	grid := model.Grid{
		{"CPT Code", "Payment Amount", "Balance"},
		{"", "", ""},
		{"99213", "0", "10"},
		{"   ", "", " "},
	}

	table, err := Clean(grid)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "99213", table.Records[0]["CPT Code"])
}

func TestClean_ShortDataRow(t *testing.T) {
	grid := model.Grid{
		{"CPT Code", "Payment Amount", "Balance"},
		{"99213"},
	}

	table, err := Clean(grid)
	require.NoError(t, err)
	assert.Equal(t, "99213", table.Records[0]["CPT Code"])
	assert.Equal(t, "", table.Records[0]["Balance"])
}
