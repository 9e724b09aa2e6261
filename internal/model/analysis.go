package model

// CodeCount is one row of the ranked denied-code list.
type CodeCount struct {
	Code  string
	Count int
}

// CodeRate is one row of the denial-rate table: denied records divided by
// total records for a code, over the full table.
type CodeRate struct {
	Code string
	Rate float64
}

// BreakdownRow is one row of a payer or provider denial breakdown.
type BreakdownRow struct {
	Name  string
	Count int
}

// Analysis holds the aggregates computed from one cleaned table.
type Analysis struct {
	TotalRecords int
	DeniedCount  int

	// Signal is the column the denial flag was derived from, empty when no
	// classification column exists.
	Signal string

	RankedCodes       []CodeCount
	CodeRates         []CodeRate
	PayerBreakdown    []BreakdownRow
	ProviderBreakdown []BreakdownRow

	// Warnings are user-facing messages for degraded (non-fatal) conditions,
	// such as having no denial classification column at all.
	Warnings []string
}

// NoDenials reports whether the table contained no denied records.
func (a Analysis) NoDenials() bool {
	return a.DeniedCount == 0
}
