package analyzer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// Recognized column names, matched case-sensitively after header trimming.
const (
	ColCPTCode       = "CPT Code"
	ColPaymentAmount = "Payment Amount"
	ColBalance       = "Balance"
	ColDenialReason  = "Denial Reason"
	ColPayer         = "Insurance Company Name"
	ColProvider      = "Physician Name"
)

// RecognizedColumns lists every optional column the analysis understands,
// for user-facing guidance.
var RecognizedColumns = []string{
	ColCPTCode,
	ColPaymentAmount,
	ColBalance,
	ColDenialReason,
	ColPayer,
	ColProvider,
}

// classifier decides the denial flag from one cell value.
type classifier func(value string) (bool, error)

// rule pairs a column name with the classifier applied when that column is
// the best available denial signal.
type rule struct {
	column   string
	classify classifier
}

// denialRules is the fixed signal priority: an explicit denial reason beats
// a zero payment, which beats an outstanding balance.
var denialRules = []rule{
	{ColDenialReason, byDenialReason},
	{ColPaymentAmount, byZeroPayment},
	{ColBalance, byPositiveBalance},
}

func byDenialReason(value string) (bool, error) {
	return strings.TrimSpace(value) != "", nil
}

func byZeroPayment(value string) (bool, error) {
	amount, ok, err := parseAmount(value)
	if err != nil || !ok {
		return false, err
	}
	return amount.IsZero(), nil
}

func byPositiveBalance(value string) (bool, error) {
	amount, ok, err := parseAmount(value)
	if err != nil || !ok {
		return false, err
	}
	return amount.IsPositive(), nil
}

// parseAmount parses a money cell. Blank cells carry no signal (ok=false);
// non-blank cells that fail to parse are a processing fault.
func parseAmount(value string) (decimal.Decimal, bool, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	return d, true, nil
}

// classifyTable derives the denial flag for every record. The rule is chosen
// once for the whole table: the first rule whose column exists applies to all
// records. With no rule column present, every flag is false.
func classifyTable(t model.Table) (flags []bool, signal string, err error) {
	flags = make([]bool, len(t.Records))

	var active *rule
	for i := range denialRules {
		if t.HasColumn(denialRules[i].column) {
			active = &denialRules[i]
			break
		}
	}
	if active == nil {
		return flags, "", nil
	}

	for i, rec := range t.Records {
		flag, err := active.classify(rec[active.column])
		if err != nil {
			return nil, "", CellError{Column: active.column, Row: i + 1, Err: err}
		}
		flags[i] = flag
	}
	return flags, active.column, nil
}
