package parser

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/abdidvp/reachdrift/internal/domain"
)

const reachabilityClass = string(domain.CheckReachability)

// ReportParser implements domain.ReportParser for verifier --json-ui transcripts.
type ReportParser struct {
	framing domain.Framing
}

// New creates a ReportParser. An empty framing selects balanced framing.
func New(framing domain.Framing) *ReportParser {
	if framing == "" {
		framing = domain.FramingBalanced
	}
	return &ReportParser{framing: framing}
}

// Parse turns a raw transcript into a report. Nested entries missing a
// required field are skipped and counted rather than failing the report.
func (p *ReportParser) Parse(raw string) (*domain.VerificationReport, error) {
	body, err := payload(raw, p.framing)
	if err != nil {
		return nil, err
	}

	if !gjson.Valid(body) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", domain.ErrMalformedReport)
	}
	root := gjson.Parse(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: payload is not a JSON array", domain.ErrMalformedReport)
	}

	report := &domain.VerificationReport{}
	root.ForEach(func(_, rec gjson.Result) bool {
		record, skipped := decodeRecord(rec)
		report.Records = append(report.Records, record)
		report.Skipped += skipped
		return true
	})
	return report, nil
}

func decodeRecord(rec gjson.Result) (domain.Record, int) {
	if !rec.IsObject() {
		return domain.Record{Kind: domain.RecordOther}, 0
	}

	skipped := 0
	if results := rec.Get("result"); results.IsArray() {
		r := domain.Record{Kind: domain.RecordResult}
		for _, v := range results.Array() {
			c, err := decodeCheck(v)
			if err != nil {
				skipped++
				continue
			}
			r.Checks = append(r.Checks, c)
		}
		return r, skipped
	}

	if goals := rec.Get("goals"); goals.IsArray() {
		r := domain.Record{Kind: domain.RecordGoals}
		for _, v := range goals.Array() {
			g, err := decodeGoal(v)
			if err != nil {
				skipped++
				continue
			}
			r.Goals = append(r.Goals, g)
		}
		return r, skipped
	}

	return domain.Record{Kind: domain.RecordOther}, 0
}

func decodeCheck(v gjson.Result) (domain.PropertyCheck, error) {
	loc, status, err := decodeCommon(v)
	if err != nil {
		return domain.PropertyCheck{}, err
	}
	return domain.PropertyCheck{
		Property:    v.Get("property").String(),
		Kind:        checkKind(v),
		Description: v.Get("description").String(),
		Location:    loc,
		Status:      status,
	}, nil
}

func decodeGoal(v gjson.Result) (domain.Goal, error) {
	loc, status, err := decodeCommon(v)
	if err != nil {
		return domain.Goal{}, err
	}
	return domain.Goal{
		Goal:        v.Get("goal").String(),
		Description: v.Get("description").String(),
		Location:    loc,
		Status:      status,
	}, nil
}

// decodeCommon reads the source location and status every entry must carry.
// The verifier writes line numbers as strings; numbers are accepted too.
func decodeCommon(v gjson.Result) (domain.SourceLocation, domain.Status, error) {
	loc := v.Get("sourceLocation")
	if !loc.IsObject() {
		return domain.SourceLocation{}, "", fmt.Errorf("sourceLocation: %w", domain.ErrMissingField)
	}
	line := loc.Get("line")
	if !line.Exists() || line.Int() <= 0 {
		return domain.SourceLocation{}, "", fmt.Errorf("sourceLocation.line: %w", domain.ErrMissingField)
	}
	status := v.Get("status")
	if status.Type != gjson.String || status.Str == "" {
		return domain.SourceLocation{}, "", fmt.Errorf("status: %w", domain.ErrMissingField)
	}

	return domain.SourceLocation{
		File:     loc.Get("file").String(),
		Function: loc.Get("function").String(),
		Line:     int(line.Int()),
	}, domain.Status(status.Str), nil
}

// checkKind reads an explicit "kind" tag, falling back to the class
// segment of the dotted property id ("main.reachability_check.1").
func checkKind(v gjson.Result) domain.CheckKind {
	if kind := v.Get("kind"); kind.Exists() {
		if kind.String() == reachabilityClass {
			return domain.CheckReachability
		}
		return domain.CheckOrdinary
	}
	if propertyClass(v.Get("property").String()) == reachabilityClass {
		return domain.CheckReachability
	}
	return domain.CheckOrdinary
}

func propertyClass(id string) string {
	parts := strings.Split(id, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-2]
}
