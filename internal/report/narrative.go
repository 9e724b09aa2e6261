package report

import (
	"fmt"
	"strings"

	"github.com/denialscope-dev/denialscope/internal/model"
)

// Placeholder narratives for the zero-denials outcome.
const (
	NoDenialsRootCauses = "No significant denials to analyze for root causes."
	NoDenialsFixes      = "No specific fixes needed based on current data."
)

// topNarrativeCodes is how many ranked codes the root-cause text names.
const topNarrativeCodes = 3

// cause is one entry of the generic root-cause catalog.
type cause struct {
	name string
	desc string
}

// potentialCauses is the fixed catalog of common RCM denial root causes,
// appended to every non-empty root-cause narrative.
var potentialCauses = []cause{
	{"Modifier issues", "Often, denials occur due to incorrect or missing modifiers for CPT codes, especially when performed with other procedures or under specific circumstances."},
	{"LCD/NCD mismatch", "Local Coverage Determinations (LCDs) and National Coverage Determinations (NCDs) define medical necessity for certain services. Mismatches can lead to denials."},
	{"Bundling edits (NCCI)", "National Correct Coding Initiative (NCCI) edits prevent unbundling of services. If two codes are bundled, billing them separately can lead to denial."},
	{"Lack of documentation", "Insufficient or missing clinical documentation to support the services billed is a frequent cause of denials."},
	{"Prior authorization problems", "Services requiring pre-approval from the insurance company, if not obtained or incorrectly obtained, will be denied."},
	{"Credentialing or provider enrollment issues", "If the physician is not properly credentialed or enrolled with a specific payer, claims will be denied."},
	{"Payer-specific policies", "Some payers have unique billing guidelines or medical policies that, if not followed, lead to denials."},
}

// RootCauses assembles the root-cause narrative for an analysis. The text
// names the top ranked codes and every payer/provider tied for the maximum
// breakdown count, then the fixed catalog of generic causes.
func RootCauses(a model.Analysis) string {
	if a.NoDenials() {
		return NoDenialsRootCauses
	}

	var b strings.Builder
	b.WriteString("Based on the analysis of top denied CPTs and payer/provider trends, here are potential root causes:\n\n")

	if len(a.RankedCodes) > 0 {
		codes := make([]string, 0, topNarrativeCodes)
		for i, cc := range a.RankedCodes {
			if i == topNarrativeCodes {
				break
			}
			codes = append(codes, cc.Code)
		}
		fmt.Fprintf(&b, "- High denial counts for CPT codes like %s suggest potential issues with documentation, coding, or medical necessity for these specific procedures.\n",
			strings.Join(codes, ", "))
	}

	if payers := maxTied(a.PayerBreakdown); len(payers) > 0 {
		fmt.Fprintf(&b, "- Significant denials from payers like %s could indicate payer-specific policy mismatches, prior authorization hurdles, or even provider credentialing issues with these entities.\n",
			strings.Join(payers, ", "))
	}

	if providers := maxTied(a.ProviderBreakdown); len(providers) > 0 {
		fmt.Fprintf(&b, "- If certain physicians (%s) have a disproportionately high denial rate, it might point to consistent documentation gaps, incorrect coding practices, or issues with their specific service lines.\n",
			strings.Join(providers, ", "))
	}

	b.WriteString("\nGeneral considerations that are common root causes for denials include:\n")
	for _, c := range potentialCauses {
		fmt.Fprintf(&b, "- **%s**: %s\n", c.name, c.desc)
	}

	return b.String()
}

// maxTied returns every name tied for the maximum count. The breakdown is
// sorted descending, so ties sit at the front.
func maxTied(rows []model.BreakdownRow) []string {
	if len(rows) == 0 {
		return nil
	}
	top := rows[0].Count
	var names []string
	for _, r := range rows {
		if r.Count != top {
			break
		}
		names = append(names, r.Name)
	}
	return names
}

// Fixes returns the recommended-fixes narrative. The text is static and
// independent of the data.
func Fixes(a model.Analysis) string {
	if a.NoDenials() {
		return NoDenialsFixes
	}

	var b strings.Builder
	b.WriteString("Based on the identified root causes, here are recommended fixes and strategies:\n\n")
	b.WriteString("- **Documentation Improvements**: For frequently denied CPTs, review and enhance clinical documentation to ensure it fully supports the medical necessity of the services billed. Conduct audits of physician notes.\n")
	b.WriteString("- **Coding Accuracy Review**: Implement regular audits of coding practices, focusing on correct modifier usage, NCCI edits, and payer-specific coding guidelines. Consider specialized training for coders on problematic CPTs.\n")
	b.WriteString("- **Prior Authorization Workflow Enhancement**: Streamline the prior authorization process. Ensure all services requiring pre-approval are identified early and authorizations are obtained correctly and timely.\n")
	b.WriteString("- **Payer-Specific Appeal Language and Process**: Develop tailored appeal templates and strategies for frequent deniers. Engage with specific payers to understand their denial patterns and resolve systematic issues.\n")
	b.WriteString("- **Provider Credentialing and Enrollment Verification**: Regularly verify that all physicians are properly credentialed and enrolled with all participating insurance companies to avoid denials due to provider eligibility.\n")
	b.WriteString("- **Front Desk and Workflow Changes**: Implement changes to the front desk or coding workflow to prevent similar issues from occurring. This could involve verifying insurance eligibility more thoroughly or confirming prior authorizations before service.\n")
	b.WriteString("- **Payer Education and Communication**: Identify opportunities for direct communication with payers to address systemic denial issues and clarify billing requirements.\n")
	b.WriteString("- **Appeals and Corrected Claim Submissions**: Establish a robust process for timely appeals of denied claims and submission of corrected claims once the root cause is addressed.\n")
	return b.String()
}
