package parser

import (
	"fmt"
	"strings"

	"github.com/abdidvp/reachdrift/internal/domain"
)

// payload cuts the JSON array out of a verifier transcript.
func payload(raw string, framing domain.Framing) (string, error) {
	body, ok := stripPreamble(strings.TrimSpace(raw))
	if !ok {
		return "", fmt.Errorf("%w: transcript has no payload after the preamble line", domain.ErrMalformedReport)
	}

	switch framing {
	case domain.FramingLines:
		return stripFooterLines(body)
	case domain.FramingBalanced, "":
		return balancedArray(body)
	default:
		return "", fmt.Errorf("unknown framing %q", framing)
	}
}

// stripPreamble drops exactly the first line.
func stripPreamble(s string) (string, bool) {
	_, rest, found := strings.Cut(s, "\n")
	if !found {
		return "", false
	}
	return rest, true
}

// stripFooterLines removes the trailing footer by counting lines from the
// end. A lone "]" on the second-to-last line means a one-line footer; on
// the fourth-from-last line it means a three-line footer. Any other shape
// is rejected.
func stripFooterLines(s string) (string, error) {
	lines := strings.Split(s, "\n")
	n := len(lines)
	if n < 2 {
		return "", fmt.Errorf("%w: too few lines for a payload and footer", domain.ErrMalformedReport)
	}

	switch {
	case isClosingBracket(lines[n-2]):
		return strings.Join(lines[:n-1], "\n"), nil
	case n >= 4 && isClosingBracket(lines[n-4]):
		return strings.Join(lines[:n-3], "\n"), nil
	default:
		return "", fmt.Errorf("%w: unrecognized footer shape", domain.ErrMalformedReport)
	}
}

func isClosingBracket(line string) bool {
	return strings.TrimRight(line, " \t\r") == "]"
}

// balancedArray returns the first JSON array in s, found by bracket
// balance. Brackets inside JSON strings do not count.
func balancedArray(s string) (string, error) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", fmt.Errorf("%w: no JSON array in transcript", domain.ErrMalformedReport)
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unterminated JSON array", domain.ErrMalformedReport)
}
