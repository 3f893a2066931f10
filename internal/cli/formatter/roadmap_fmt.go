package formatter

import (
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// maxStageModules is how many module names a stage lists before collapsing.
const maxStageModules = 6

// FormatRoadmap renders the five roadmap stages for the declared semester.
func FormatRoadmap(resp *contract.RoadmapResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Roadmap · Semester %d", resp.Semester)))
	b.WriteString("\n")
	if resp.Clamped {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Semester adjusted to the study range %d-%d.", domain.MinSemester, domain.MaxSemester)))
		b.WriteString("\n")
	}

	for _, s := range resp.Stages {
		b.WriteString("\n")
		b.WriteString(formatStage(s))
	}
	return b.String()
}

func formatStage(s domain.RoadmapStage) string {
	var b strings.Builder

	marker, title := Dim("○"), StyleFg.Render(s.Name)
	switch {
	case s.Completed:
		marker, title = StyleGreen.Render("✔"), StyleDim.Render(s.Name)
	case s.Current:
		marker, title = StyleHeader.Render("▶"), StyleBold.Render(s.Name)
	}

	fmt.Fprintf(&b, "%s %d. %s  %s", marker, s.Ordinal, title, Dim(s.Semesters))
	if s.CreditTarget > 0 {
		b.WriteString("  " + Dim(Credits(s.CreditTarget)))
	}
	if s.Current {
		b.WriteString("  " + StyleHeader.Render("current"))
	}
	b.WriteString("\n")
	if s.Description != "" {
		b.WriteString("    " + Dim(s.Description) + "\n")
	}

	shown := s.Modules
	if len(shown) > maxStageModules {
		shown = shown[:maxStageModules]
	}
	for _, m := range shown {
		b.WriteString("    · " + m + "\n")
	}
	if extra := len(s.Modules) - len(shown); extra > 0 {
		b.WriteString("    " + Dim(fmt.Sprintf("+%d more", extra)) + "\n")
	}
	return b.String()
}
