// Package report assembles the presentation outputs of a denial analysis:
// narrative text, chart descriptors, and the rendered report document.
package report

import (
	"github.com/denialscope-dev/denialscope/internal/model"
)

// Build assembles the full report for an analysis.
func Build(a model.Analysis) model.Report {
	return model.Report{
		Analysis:   a,
		RootCauses: RootCauses(a),
		Fixes:      Fixes(a),
		Charts:     Charts(a),
	}
}

// Charts returns one horizontal-bar descriptor per breakdown that was
// computed. A no-denials analysis produces no charts.
func Charts(a model.Analysis) []model.ChartSpec {
	var specs []model.ChartSpec
	if len(a.PayerBreakdown) > 0 {
		specs = append(specs, model.ChartSpec{
			Kind:         model.ChartKindHBar,
			Title:        "Denials by Insurance Company",
			CategoryAxis: "Insurance Company",
			ValueAxis:    "Number of Denials",
			Rows:         a.PayerBreakdown,
		})
	}
	if len(a.ProviderBreakdown) > 0 {
		specs = append(specs, model.ChartSpec{
			Kind:         model.ChartKindHBar,
			Title:        "Denials by Physician",
			CategoryAxis: "Physician Name",
			ValueAxis:    "Number of Denials",
			Rows:         a.ProviderBreakdown,
		})
	}
	return specs
}
