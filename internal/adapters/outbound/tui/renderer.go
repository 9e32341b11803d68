package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/reachdrift/internal/domain"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	classColors = map[domain.Classification]lipgloss.Color{
		domain.NoUnreachableDetected: skipColor,
		domain.Matched:               success,
		domain.Discrepancy:           warning,
		domain.Failed:                danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary renders the four classification lists of a batch.
func RenderSummary(s *domain.Summary) string {
	var b strings.Builder

	title := headerStyle.Render("reachdrift")
	subtitle := dimStyle.Render("Coverage / property reachability drift")
	counts := fmt.Sprintf("%s  %s  %s  %s",
		classBadge(domain.Matched, len(s.Matches)),
		classBadge(domain.Discrepancy, len(s.Discrepancies)),
		classBadge(domain.NoUnreachableDetected, len(s.NoUnreachable)),
		classBadge(domain.Failed, len(s.Failures)),
	)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + counts))
	b.WriteString("\n")

	renderPathSection(&b, "No unreachable detected", domain.NoUnreachableDetected, s.NoUnreachable)
	renderPathSection(&b, "Discrepancies", domain.Discrepancy, s.Discrepancies)
	renderPathSection(&b, "Matched", domain.Matched, s.Matches)

	if len(s.Failures) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Failed"), dimStyle.Render(fmt.Sprintf("(%d)", len(s.Failures))))
		for _, f := range s.Failures {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"), f.Path)
			fmt.Fprintf(&b, "      %s\n", dimStyle.Render(f.Error))
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n")
	footer := fmt.Sprintf("%d files", s.Files())
	if s.Duration > 0 {
		footer += " in " + s.Duration.Round(time.Millisecond).String()
	}
	if s.CommitHash != "" {
		footer += "  @ " + shortHash(s.CommitHash)
	}
	b.WriteString("  " + dimStyle.Render(footer) + "\n")

	if s.Clean() {
		b.WriteString("  " + passStyle.Render("No drift found.") + "\n")
	}
	return b.String()
}

func renderPathSection(b *strings.Builder, title string, c domain.Classification, paths []string) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n", titleStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(paths))))
	if len(paths) == 0 {
		b.WriteString("    " + faintStyle.Render("none") + "\n")
		return
	}
	icon := lipgloss.NewStyle().Foreground(classColor(c)).Render("●")
	for _, p := range paths {
		fmt.Fprintf(b, "    %s %s\n", icon, p)
	}
}

// RenderDiagnostics returns one `path  line  status` line per observation
// of r, or a single failure line when r failed.
func RenderDiagnostics(r domain.FileResult) string {
	var b strings.Builder
	if r.Classification == domain.Failed {
		fmt.Fprintf(&b, "%s  %s\n", fileStyle.Render(r.Path), failStyle.Render(r.Error))
		return b.String()
	}
	for _, o := range r.Observations {
		fmt.Fprintf(&b, "%s  %d  %s\n", fileStyle.Render(r.Path), o.Line, statusStyle(o.Status).Render(string(o.Status)))
	}
	if r.Classification == domain.Discrepancy {
		fmt.Fprintf(&b, "%s  %s  %s\n", fileStyle.Render(r.Path), formatLines(r.UnreachableLines), warnStyle.Render("no coverage goal"))
	}
	return b.String()
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := shortHash(e.CommitHash)
		if hash == "" {
			hash = "·······"
		}
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			dimStyle.Render(fmt.Sprintf("%d files", e.Files)),
			lipgloss.NewStyle().Foreground(classColor(domain.Discrepancy)).Render(fmt.Sprintf("%d drift", e.Discrepancies)),
			lipgloss.NewStyle().Foreground(classColor(domain.Failed)).Render(fmt.Sprintf("%d failed", e.Failures)),
		)

		if i > 0 {
			diff := e.Discrepancies - entries[i-1].Discrepancies
			if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func classBadge(c domain.Classification, n int) string {
	return lipgloss.NewStyle().Bold(true).Foreground(classColor(c)).Render(fmt.Sprintf("%d %s", n, classLabel(c)))
}

func classLabel(c domain.Classification) string {
	switch c {
	case domain.NoUnreachableDetected:
		return "clean"
	case domain.Discrepancy:
		return "drift"
	default:
		return string(c)
	}
}

func classColor(c domain.Classification) lipgloss.Color {
	if col, ok := classColors[c]; ok {
		return col
	}
	return fg
}

func statusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusSuccess, domain.StatusSatisfied:
		return passStyle
	case domain.StatusFailure, domain.StatusUnsatisfied:
		return failStyle
	default:
		return dimStyle
	}
}

func formatLines(lines domain.LineSet) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return strings.Join(parts, ",")
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
