package reach_test

import "github.com/abdidvp/reachdrift/internal/domain"

func reachCheck(line int, status domain.Status) domain.PropertyCheck {
	return domain.PropertyCheck{
		Property: "main.reachability_check.1",
		Kind:     domain.CheckReachability,
		Location: domain.SourceLocation{File: "test.rs", Line: line},
		Status:   status,
	}
}

func assertion(line int, status domain.Status) domain.PropertyCheck {
	return domain.PropertyCheck{
		Property: "main.assertion.1",
		Kind:     domain.CheckOrdinary,
		Location: domain.SourceLocation{File: "test.rs", Line: line},
		Status:   status,
	}
}

func goal(line int, status domain.Status) domain.Goal {
	return domain.Goal{
		Goal:     "main.coverage.1",
		Location: domain.SourceLocation{File: "test.rs", Line: line},
		Status:   status,
	}
}

func propertyReport(checks ...domain.PropertyCheck) *domain.VerificationReport {
	return &domain.VerificationReport{Records: []domain.Record{
		{Kind: domain.RecordOther},
		{Kind: domain.RecordResult, Checks: checks},
	}}
}

func coverageReport(goals ...domain.Goal) *domain.VerificationReport {
	return &domain.VerificationReport{Records: []domain.Record{
		{Kind: domain.RecordOther},
		{Kind: domain.RecordGoals, Goals: goals},
	}}
}
