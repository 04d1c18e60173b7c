package onboarding

import (
	"fmt"
	"strings"
)

// GateResult is the outcome of the activation checks. Errors holds one message
// per violated rule and is empty, never nil, when Passed.
type GateResult struct {
	Passed bool     `json:"passed"`
	Errors []string `json:"errors"`
}

// EvaluateGates checks whether rec may move to active.
func EvaluateGates(rec Record, docs []Document) GateResult {
	ordered := append([]Document(nil), docs...)
	SortDocuments(ordered)

	errs := []string{}

	var incomplete []string
	for _, d := range ordered {
		if d.IsRequired && !IsSatisfied(d) {
			incomplete = append(incomplete, fmt.Sprintf("%s (%s)", d.Title, d.Status))
		}
	}
	if len(incomplete) > 0 {
		errs = append(errs, "Required documents not completed: "+strings.Join(incomplete, ", "))
	}

	if !rec.EmployeeFileComplete {
		errs = append(errs, "Employee file has not been marked complete")
	}

	var rejected []string
	for _, d := range ordered {
		if d.Status != DocRejected {
			continue
		}
		reason := "no reason given"
		if d.RejectionReason != nil && *d.RejectionReason != "" {
			reason = *d.RejectionReason
		}
		rejected = append(rejected, fmt.Sprintf("%s (reason: %s)", d.Title, reason))
	}
	if len(rejected) > 0 {
		errs = append(errs, "Rejected documents must be re-submitted: "+strings.Join(rejected, ", "))
	}

	return GateResult{Passed: len(errs) == 0, Errors: errs}
}
