package reach

import "github.com/abdidvp/reachdrift/internal/domain"

// Classify assigns exactly one classification to a file from its two reports.
//
// If property mode proved no line unreachable the file is
// NoUnreachableDetected and the coverage report is never read, so it may be
// nil. Otherwise the file is Matched when coverage mode has at least one goal
// on any of those lines, whatever the goal's own status, and Discrepancy when
// it has none.
func Classify(path string, coverage, property *domain.VerificationReport) domain.FileResult {
	result := domain.FileResult{
		Path:   path,
		Checks: ReachabilityChecks(property),
	}

	unreachable := UnreachableLines(property)
	if unreachable.Empty() {
		result.Classification = domain.NoUnreachableDetected
		return result
	}
	result.UnreachableLines = unreachable

	result.Observations = GoalsAt(coverage, unreachable)
	if len(result.Observations) > 0 {
		result.Classification = domain.Matched
	} else {
		result.Classification = domain.Discrepancy
	}
	return result
}
