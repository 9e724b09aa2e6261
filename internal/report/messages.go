package report

import (
	"errors"
	"strings"

	"github.com/denialscope-dev/denialscope/internal/analyzer"
	"github.com/denialscope-dev/denialscope/internal/loader"
)

// UserMessage maps a loader or analyzer error to one of the three
// user-facing message categories. Anything unrecognized is a processing
// failure with the underlying detail.
func UserMessage(err error) string {
	var missing analyzer.MissingColumnError
	switch {
	case errors.Is(err, loader.ErrHeaderNotFound):
		return "no valid header found; please check the uploaded file"
	case errors.As(err, &missing):
		return missing.Error() + " (recognized columns: " +
			strings.Join(analyzer.RecognizedColumns, ", ") + ")"
	default:
		return "processing failed: " + err.Error()
	}
}
