package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// WriteMarkdown renders the full report as a markdown document. previewRows
// caps how many records of the cleaned table are shown in the preview.
func WriteMarkdown(w io.Writer, t model.Table, rep model.Report, previewRows int) error {
	var b strings.Builder

	b.WriteString("# Medical Billing Denial Analysis\n\n")

	a := rep.Analysis
	for _, warn := range a.Warnings {
		fmt.Fprintf(&b, "> Warning: %s\n\n", warn)
	}

	b.WriteString("## Detected Columns\n\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Join(t.Columns, ", "))

	b.WriteString("## Data Preview\n\n")
	writePreview(&b, t, previewRows)

	fmt.Fprintf(&b, "Records analyzed: %d. Denied: %d.\n\n", a.TotalRecords, a.DeniedCount)

	b.WriteString("## Top CPT Codes by Denial Count\n\n")
	if a.NoDenials() {
		b.WriteString("It appears there are no denied claims in the uploaded data.\n\n")
	} else {
		b.WriteString("| CPT Code | Denial Count |\n|---|---|\n")
		for _, cc := range a.RankedCodes {
			fmt.Fprintf(&b, "| %s | %d |\n", cc.Code, cc.Count)
		}
		b.WriteString("\n")

		b.WriteString("## CPT Codes by Denial Rate\n\n")
		b.WriteString("| CPT Code | Denial Rate |\n|---|---|\n")
		for _, cr := range a.CodeRates {
			fmt.Fprintf(&b, "| %s | %.2f |\n", cr.Code, cr.Rate)
		}
		b.WriteString("\n")

		for _, chart := range rep.Charts {
			fmt.Fprintf(&b, "## %s\n\n", chart.Title)
			fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", chart.CategoryAxis, chart.ValueAxis)
			for _, row := range chart.Rows {
				fmt.Fprintf(&b, "| %s | %d |\n", row.Name, row.Count)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Detecting Root Causes\n\n")
	b.WriteString(rep.RootCauses)
	b.WriteString("\n\n## Recommending Fixes and Strategies\n\n")
	b.WriteString(rep.Fixes)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writePreview(b *strings.Builder, t model.Table, previewRows int) {
	if len(t.Columns) == 0 || len(t.Records) == 0 {
		b.WriteString("(no records)\n\n")
		return
	}

	b.WriteString("| " + strings.Join(t.Columns, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(t.Columns)) + "\n")
	for i, rec := range t.Records {
		if i == previewRows {
			break
		}
		cells := make([]string, len(t.Columns))
		for j, name := range t.Columns {
			cells[j] = rec[name]
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}
