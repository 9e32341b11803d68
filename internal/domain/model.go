package domain

import (
	"slices"
	"time"
)

// Classification is the verdict for one input file.
type Classification string

const (
	NoUnreachableDetected Classification = "no_unreachable_detected"
	Discrepancy           Classification = "discrepancy"
	Matched               Classification = "matched"
	Failed                Classification = "failed"
)

// LineSet is a deduplicated set of line numbers kept in insertion order.
type LineSet []int

// NewLineSet builds a LineSet from lines, dropping repeats.
func NewLineSet(lines ...int) LineSet {
	var s LineSet
	for _, l := range lines {
		s = s.Add(l)
	}
	return s
}

// Add returns s with line appended unless it is already present.
func (s LineSet) Add(line int) LineSet {
	if s.Contains(line) {
		return s
	}
	return append(s, line)
}

func (s LineSet) Contains(line int) bool { return slices.Contains(s, line) }

func (s LineSet) Empty() bool { return len(s) == 0 }

// Observation is a coverage goal found at a line property mode proved unreachable.
type Observation struct {
	Line   int    `json:"line"`
	Status Status `json:"status"`
}

// FileResult holds the classification of a single input file.
type FileResult struct {
	Path             string          `json:"path"`
	Classification   Classification  `json:"classification"`
	UnreachableLines LineSet         `json:"unreachable_lines,omitempty"`
	Observations     []Observation   `json:"observations,omitempty"`
	Checks           []PropertyCheck `json:"reachability_checks,omitempty"`
	Error            string          `json:"error,omitempty"`
	Cause            error           `json:"-"`
}

// FailedResult attributes err to the file at path.
func FailedResult(path string, err error) FileResult {
	return FileResult{
		Path:           path,
		Classification: Failed,
		Error:          err.Error(),
		Cause:          err,
	}
}

// Failure names a file whose processing did not complete.
type Failure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Summary is the result of one batch. It is a value: With returns a new
// Summary and never mutates the receiver's lists.
type Summary struct {
	RunID         string        `json:"run_id,omitempty"`
	Root          string        `json:"root,omitempty"`
	CommitHash    string        `json:"commit_hash,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
	NoUnreachable []string      `json:"no_unreachable_detected"`
	Discrepancies []string      `json:"discrepancies"`
	Matches       []string      `json:"matches"`
	Failures      []Failure     `json:"failures"`
	Results       []FileResult  `json:"results,omitempty"`
}

// NewSummary returns an empty Summary whose lists encode as [] rather than null.
func NewSummary() Summary {
	return Summary{
		NoUnreachable: []string{},
		Discrepancies: []string{},
		Matches:       []string{},
		Failures:      []Failure{},
	}
}

// With folds r into a copy of s.
func (s Summary) With(r FileResult) Summary {
	next := s
	next.Results = append(slices.Clone(s.Results), r)

	switch r.Classification {
	case NoUnreachableDetected:
		next.NoUnreachable = append(slices.Clone(s.NoUnreachable), r.Path)
	case Discrepancy:
		next.Discrepancies = append(slices.Clone(s.Discrepancies), r.Path)
	case Matched:
		next.Matches = append(slices.Clone(s.Matches), r.Path)
	default:
		next.Failures = append(slices.Clone(s.Failures), Failure{Path: r.Path, Error: r.Error})
	}
	return next
}

// Fold builds a Summary from results in order.
func Fold(results []FileResult) Summary {
	s := NewSummary()
	for _, r := range results {
		s = s.With(r)
	}
	return s
}

// Files returns the number of files folded into s.
func (s Summary) Files() int {
	return len(s.NoUnreachable) + len(s.Discrepancies) + len(s.Matches) + len(s.Failures)
}

// Clean reports whether the batch found no discrepancies and no failures.
func (s Summary) Clean() bool {
	return len(s.Discrepancies) == 0 && len(s.Failures) == 0
}

// RunEntry is one line of the run history.
type RunEntry struct {
	RunID         string `json:"run_id"`
	Timestamp     string `json:"timestamp"`
	CommitHash    string `json:"commit_hash,omitempty"`
	Files         int    `json:"files"`
	NoUnreachable int    `json:"no_unreachable_detected"`
	Discrepancies int    `json:"discrepancies"`
	Matches       int    `json:"matches"`
	Failures      int    `json:"failures"`
}

// Entry condenses s into a history entry.
func (s Summary) Entry() RunEntry {
	return RunEntry{
		RunID:         s.RunID,
		Timestamp:     s.StartedAt.Format(time.RFC3339),
		CommitHash:    s.CommitHash,
		Files:         s.Files(),
		NoUnreachable: len(s.NoUnreachable),
		Discrepancies: len(s.Discrepancies),
		Matches:       len(s.Matches),
		Failures:      len(s.Failures),
	}
}
