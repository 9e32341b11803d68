package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/reachdrift/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderFileResult renders the classification of a single file with the
// evidence behind it.
func RenderFileResult(r domain.FileResult) string {
	var b strings.Builder

	verdict := lipgloss.NewStyle().
		Bold(true).
		Foreground(classColor(r.Classification)).
		Render(string(r.Classification))

	b.WriteString(boxStyle.Render(titleStyle.Render(r.Path) + "\n" + verdict))
	b.WriteString("\n")

	if r.Classification == domain.Failed {
		b.WriteString("\n  " + failStyle.Render(r.Error) + "\n")
		return b.String()
	}

	if len(r.UnreachableLines) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s  %s\n", sectionHeaderStyle.Render("Proved unreachable"), formatLines(r.UnreachableLines))
	}

	renderChecks(&b, r.Checks)

	if len(r.Observations) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render("Coverage goals on those lines"),
			dimStyle.Render(fmt.Sprintf("(%d)", len(r.Observations))),
		)
		for _, o := range r.Observations {
			fmt.Fprintf(&b, "    %s line %d  %s\n", passStyle.Render("●"), o.Line, statusStyle(o.Status).Render(string(o.Status)))
		}
	}

	if r.Classification == domain.Discrepancy {
		b.WriteString("\n")
		b.WriteString("  " + hintStyle.Render("Coverage mode has no goal on any line property mode proved unreachable."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderChecks(b *strings.Builder, checks []domain.PropertyCheck) {
	if len(checks) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render("Reachability checks"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(checks))),
	)
	for _, c := range checks {
		line := fmt.Sprintf("    %s line %d  %s", warnStyle.Render("●"), c.Location.Line, statusStyle(c.Status).Render(string(c.Status)))
		if c.Property != "" {
			line += "  " + faintStyle.Render(c.Property)
		}
		b.WriteString(line + "\n")
	}
}
