package domain

// Status is the proof status the verifier attaches to a property check or
// coverage goal. Values outside the known set are kept verbatim.
type Status string

const (
	StatusSuccess      Status = "SUCCESS"
	StatusFailure      Status = "FAILURE"
	StatusUndetermined Status = "UNDETERMINED"
	StatusUnreachable  Status = "UNREACHABLE"
	StatusSatisfied    Status = "SATISFIED"
	StatusUnsatisfied  Status = "UNSATISFIED"
)

// CheckKind distinguishes reachability checks from every other property.
type CheckKind string

const (
	CheckOrdinary     CheckKind = "ordinary"
	CheckReachability CheckKind = "reachability_check"
)

// RecordKind tags the variant of a top-level report record.
type RecordKind string

const (
	RecordResult RecordKind = "result"
	RecordGoals  RecordKind = "goals"
	RecordOther  RecordKind = "other"
)

// SourceLocation points at a 1-based line in the verified input.
type SourceLocation struct {
	File     string `json:"file,omitempty"`
	Function string `json:"function,omitempty"`
	Line     int    `json:"line" jsonschema:"oneof_type=string;integer"`
}

// PropertyCheck is one entry of a property-mode result record.
type PropertyCheck struct {
	Property    string         `json:"property,omitempty"`
	Kind        CheckKind      `json:"kind,omitempty"`
	Description string         `json:"description,omitempty"`
	Location    SourceLocation `json:"sourceLocation"`
	Status      Status         `json:"status"`
}

// IsReachability reports whether the check asserts (un)reachability of its location.
func (c PropertyCheck) IsReachability() bool { return c.Kind == CheckReachability }

// Goal is one coverage-mode instrumentation point.
type Goal struct {
	Goal        string         `json:"goal,omitempty"`
	Description string         `json:"description,omitempty"`
	Location    SourceLocation `json:"sourceLocation"`
	Status      Status         `json:"status"`
}

// Record is a single element of the verifier's JSON array. Exactly one of
// Checks or Goals is populated, according to Kind.
type Record struct {
	Kind   RecordKind      `json:"kind"`
	Checks []PropertyCheck `json:"result,omitempty"`
	Goals  []Goal          `json:"goals,omitempty"`
}

// VerificationReport is the structured form of one verifier invocation.
// Skipped counts nested entries dropped because a required field was absent.
type VerificationReport struct {
	Records []Record `json:"records"`
	Skipped int      `json:"skipped,omitempty"`
}

// Mode selects which of the two verifier configurations to run.
type Mode string

const (
	ModeCoverage Mode = "coverage"
	ModeProperty Mode = "property"
)

// Framing names the strategy used to cut the JSON payload out of a transcript.
type Framing string

const (
	// FramingLines strips one preamble line and a one- or three-line footer.
	FramingLines Framing = "lines"
	// FramingBalanced takes the first bracket-balanced JSON array after the preamble.
	FramingBalanced Framing = "balanced"
)

// ValidFramings enumerates all recognized framing strategies.
var ValidFramings = []Framing{FramingBalanced, FramingLines}
