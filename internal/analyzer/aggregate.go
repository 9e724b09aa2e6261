package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// Aggregate derives the denial flag for every record and computes the
// frequency and rate aggregates over the table.
//
// Two independent column checks apply. Absence of every classification
// column ({Denial Reason, Payment Amount, Balance}) degrades to "no records
// denied" and is reported as a warning on the result. Absence of CPT Code
// aborts with MissingColumnError; any warnings already gathered are still
// attached to the returned Analysis so the caller can surface both.
func Aggregate(t model.Table) (model.Analysis, error) {
	var warnings []string
	if !hasDenialSignal(t) {
		warnings = append(warnings, MissingColumnError{
			Columns: []string{ColDenialReason, ColPaymentAmount, ColBalance},
		}.Error()+"; treating all records as not denied")
	}

	if !t.HasColumn(ColCPTCode) {
		return model.Analysis{Warnings: warnings},
			MissingColumnError{Columns: []string{ColCPTCode}}
	}

	flags, signal, err := classifyTable(t)
	if err != nil {
		return model.Analysis{Warnings: warnings}, fmt.Errorf("classifying records: %w", err)
	}

	analysis := model.Analysis{
		TotalRecords: len(t.Records),
		Signal:       signal,
		Warnings:     warnings,
	}
	for _, f := range flags {
		if f {
			analysis.DeniedCount++
		}
	}
	if analysis.DeniedCount == 0 {
		return analysis, nil
	}

	analysis.RankedCodes = rankedCodes(t, flags)
	analysis.CodeRates = codeRates(t, flags)
	if t.HasColumn(ColPayer) {
		analysis.PayerBreakdown = deniedBreakdown(t, flags, ColPayer)
	}
	if t.HasColumn(ColProvider) {
		analysis.ProviderBreakdown = deniedBreakdown(t, flags, ColProvider)
	}
	return analysis, nil
}

func hasDenialSignal(t model.Table) bool {
	for _, r := range denialRules {
		if t.HasColumn(r.column) {
			return true
		}
	}
	return false
}

// tally counts string values while remembering first-appearance order, so
// descending sorts stay stable against the source order.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (c *tally) add(value string) {
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value]++
}

// rankedCodes counts denied records per CPT code, descending by count, ties
// in first-appearance order among denied records. Blank codes are skipped.
func rankedCodes(t model.Table, flags []bool) []model.CodeCount {
	counter := newTally()
	for i, rec := range t.Records {
		if !flags[i] {
			continue
		}
		code := rec[ColCPTCode]
		if strings.TrimSpace(code) == "" {
			continue
		}
		counter.add(code)
	}

	ranked := make([]model.CodeCount, 0, len(counter.order))
	for _, code := range counter.order {
		ranked = append(ranked, model.CodeCount{Code: code, Count: counter.counts[code]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// codeRates computes denied/total per CPT code over the FULL table, so codes
// that were never denied still appear with a rate of zero. Descending by
// rate, ties in first-appearance order.
func codeRates(t model.Table, flags []bool) []model.CodeRate {
	totals := newTally()
	denied := make(map[string]int)
	for i, rec := range t.Records {
		code := rec[ColCPTCode]
		if strings.TrimSpace(code) == "" {
			continue
		}
		totals.add(code)
		if flags[i] {
			denied[code]++
		}
	}

	rates := make([]model.CodeRate, 0, len(totals.order))
	for _, code := range totals.order {
		rates = append(rates, model.CodeRate{
			Code: code,
			Rate: float64(denied[code]) / float64(totals.counts[code]),
		})
	}
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].Rate > rates[j].Rate
	})
	return rates
}

// deniedBreakdown counts denied records per value of column, descending by
// count, ties in first-appearance order. Blank values are skipped.
func deniedBreakdown(t model.Table, flags []bool, column string) []model.BreakdownRow {
	counter := newTally()
	for i, rec := range t.Records {
		if !flags[i] {
			continue
		}
		name := rec[column]
		if strings.TrimSpace(name) == "" {
			continue
		}
		counter.add(name)
	}

	rows := make([]model.BreakdownRow, 0, len(counter.order))
	for _, name := range counter.order {
		rows = append(rows, model.BreakdownRow{Name: name, Count: counter.counts[name]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}
