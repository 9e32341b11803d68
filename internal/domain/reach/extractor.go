package reach

import "github.com/abdidvp/reachdrift/internal/domain"

// ReachabilityChecks returns every reachability check in a property-mode
// report, in scan order, with its location and status.
func ReachabilityChecks(property *domain.VerificationReport) []domain.PropertyCheck {
	if property == nil {
		return nil
	}
	var checks []domain.PropertyCheck
	for _, rec := range property.Records {
		if rec.Kind != domain.RecordResult {
			continue
		}
		for _, c := range rec.Checks {
			if c.IsReachability() {
				checks = append(checks, c)
			}
		}
	}
	return checks
}

// UnreachableLines returns the lines whose reachability check was proved,
// i.e. status SUCCESS, deduplicated in scan order.
func UnreachableLines(property *domain.VerificationReport) domain.LineSet {
	var lines domain.LineSet
	for _, c := range ReachabilityChecks(property) {
		if c.Status == domain.StatusSuccess {
			lines = lines.Add(c.Location.Line)
		}
	}
	return lines
}

// GoalsAt returns a (line, status) observation for every coverage goal
// located on one of the target lines. Goals are reported in scan order and
// repeated lines are kept, since each goal carries its own status.
func GoalsAt(coverage *domain.VerificationReport, target domain.LineSet) []domain.Observation {
	if coverage == nil || target.Empty() {
		return nil
	}
	var obs []domain.Observation
	for _, rec := range coverage.Records {
		if rec.Kind != domain.RecordGoals {
			continue
		}
		for _, g := range rec.Goals {
			if target.Contains(g.Location.Line) {
				obs = append(obs, domain.Observation{Line: g.Location.Line, Status: g.Status})
			}
		}
	}
	return obs
}
