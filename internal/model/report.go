package model

// ChartKindHBar is the only chart kind the analysis produces.
const ChartKindHBar = "hbar"

// ChartSpec describes one rendering-ready chart. The presentation layer
// decides how to draw it.
type ChartSpec struct {
	Kind         string
	Title        string
	CategoryAxis string
	ValueAxis    string
	Rows         []BreakdownRow
}

// Report is an Analysis plus the assembled narrative and chart descriptors.
type Report struct {
	Analysis   Analysis
	RootCauses string
	Fixes      string
	Charts     []ChartSpec
}
