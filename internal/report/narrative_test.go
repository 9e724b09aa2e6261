package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denialscope-dev/denialscope/internal/model"
)

func deniedAnalysis() model.Analysis {
	return model.Analysis{
		TotalRecords: 10,
		DeniedCount:  6,
		Signal:       "Payment Amount",
		RankedCodes: []model.CodeCount{
			{Code: "99213", Count: 3},
			{Code: "99214", Count: 2},
			{Code: "97110", Count: 1},
		},
		CodeRates: []model.CodeRate{
			{Code: "99213", Rate: 0.75},
			{Code: "99214", Rate: 0.5},
		},
		PayerBreakdown: []model.BreakdownRow{
			{Name: "Aetna", Count: 3},
			{Name: "Cigna", Count: 3},
			{Name: "United", Count: 1},
		},
		ProviderBreakdown: []model.BreakdownRow{
			{Name: "Dr. Lee", Count: 4},
		},
	}
}

func TestRootCauses_NamesTopThreeCodes(t *testing.T) {
	a := deniedAnalysis()
	a.RankedCodes = append(a.RankedCodes, model.CodeCount{Code: "99499", Count: 1})

	text := RootCauses(a)
	assert.Contains(t, text, "99213, 99214, 97110")
	assert.NotContains(t, text, "99499")
}

func TestRootCauses_FewerThanThreeCodes(t *testing.T) {
	a := deniedAnalysis()
	a.RankedCodes = a.RankedCodes[:1]

	text := RootCauses(a)
	assert.Contains(t, text, "CPT codes like 99213 ")
}

func TestRootCauses_AllTiedPayersListed(t *testing.T) {
	text := RootCauses(deniedAnalysis())
	assert.Contains(t, text, "Aetna, Cigna")
	assert.NotContains(t, text, "United")
}

func TestRootCauses_ProvidersListed(t *testing.T) {
	text := RootCauses(deniedAnalysis())
	assert.Contains(t, text, "(Dr. Lee)")
}

func TestRootCauses_IncludesGenericCatalog(t *testing.T) {
	text := RootCauses(deniedAnalysis())
	assert.Contains(t, text, "Modifier issues")
	assert.Contains(t, text, "Prior authorization problems")
	assert.Contains(t, text, "Payer-specific policies")
}

func TestRootCauses_NoBreakdownsOmitsTrendLines(t *testing.T) {
	a := deniedAnalysis()
	a.PayerBreakdown = nil
	a.ProviderBreakdown = nil

	text := RootCauses(a)
	assert.NotContains(t, text, "Significant denials from payers")
	assert.NotContains(t, text, "certain physicians")
}

func TestRootCauses_NoDenials(t *testing.T) {
	assert.Equal(t, NoDenialsRootCauses, RootCauses(model.Analysis{TotalRecords: 4}))
}

func TestFixes_StaticRegardlessOfData(t *testing.T) {
	a := deniedAnalysis()
	b := deniedAnalysis()
	b.RankedCodes = b.RankedCodes[:1]
	b.PayerBreakdown = nil

	assert.Equal(t, Fixes(a), Fixes(b))
	assert.Contains(t, Fixes(a), "Documentation Improvements")
	assert.Contains(t, Fixes(a), "Appeals and Corrected Claim Submissions")
}

func TestFixes_NoDenials(t *testing.T) {
	assert.Equal(t, NoDenialsFixes, Fixes(model.Analysis{}))
}

func TestCharts_OnePerBreakdown(t *testing.T) {
	specs := Charts(deniedAnalysis())
	require.Len(t, specs, 2)
	assert.Equal(t, model.ChartKindHBar, specs[0].Kind)
	assert.Equal(t, "Denials by Insurance Company", specs[0].Title)
	assert.Equal(t, "Denials by Physician", specs[1].Title)
	assert.Equal(t, "Number of Denials", specs[0].ValueAxis)
}

func TestCharts_NoneWithoutBreakdowns(t *testing.T) {
	a := deniedAnalysis()
	a.PayerBreakdown = nil
	a.ProviderBreakdown = nil
	assert.Empty(t, Charts(a))
}

func TestBuild_AssemblesEverything(t *testing.T) {
	rep := Build(deniedAnalysis())
	assert.NotEmpty(t, rep.RootCauses)
	assert.NotEmpty(t, rep.Fixes)
	assert.Len(t, rep.Charts, 2)
	assert.Equal(t, 6, rep.Analysis.DeniedCount)
}
