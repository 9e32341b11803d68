package tui_test

import (
	"errors"
	"testing"

	"github.com/abdidvp/reachdrift/internal/adapters/outbound/tui"
	"github.com/abdidvp/reachdrift/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderFileResult_Matched(t *testing.T) {
	r := domain.FileResult{
		Path:             "reach/matched/test.rs",
		Classification:   domain.Matched,
		UnreachableLines: domain.NewLineSet(10, 12),
		Observations:     []domain.Observation{{Line: 10, Status: domain.StatusFailure}},
		Checks: []domain.PropertyCheck{
			{Property: "main.reachability_check.1", Kind: domain.CheckReachability, Location: domain.SourceLocation{Line: 10}, Status: domain.StatusSuccess},
		},
	}

	output := tui.RenderFileResult(r)
	assert.Contains(t, output, "reach/matched/test.rs")
	assert.Contains(t, output, "matched")
	assert.Contains(t, output, "10,12")
	assert.Contains(t, output, "main.reachability_check.1")
	assert.Contains(t, output, "line 10")
	assert.NotContains(t, output, "has no goal")
}

func TestRenderFileResult_DiscrepancyHint(t *testing.T) {
	r := domain.FileResult{
		Path:             "d.rs",
		Classification:   domain.Discrepancy,
		UnreachableLines: domain.NewLineSet(12),
	}
	assert.Contains(t, tui.RenderFileResult(r), "has no goal")
}

func TestRenderFileResult_Failed(t *testing.T) {
	r := domain.FailedResult("b.rs", errors.New("boom"))
	output := tui.RenderFileResult(r)
	assert.Contains(t, output, "failed")
	assert.Contains(t, output, "boom")
}
