package application

import (
	"fmt"

	"github.com/abdidvp/reachdrift/internal/domain"
	"github.com/abdidvp/reachdrift/internal/domain/reach"
)

// CompareService classifies a pair of existing transcripts without running
// the verifier.
type CompareService struct {
	parser domain.ReportParser
}

func NewCompareService(parser domain.ReportParser) *CompareService {
	return &CompareService{parser: parser}
}

// Compare parses both transcripts and classifies them under path. An empty
// coverage transcript is accepted when property mode proves nothing
// unreachable. Parse failures yield a Failed result.
func (s *CompareService) Compare(path, coverageRaw, propertyRaw string) domain.FileResult {
	property, err := s.parser.Parse(propertyRaw)
	if err != nil {
		return domain.FailedResult(path, fmt.Errorf("property report: %w", err))
	}

	var coverage *domain.VerificationReport
	if coverageRaw != "" || !reach.UnreachableLines(property).Empty() {
		coverage, err = s.parser.Parse(coverageRaw)
		if err != nil {
			return domain.FailedResult(path, fmt.Errorf("coverage report: %w", err))
		}
	}

	return reach.Classify(path, coverage, property)
}
