package formatter

import (
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/progress"
)

const barWidth = 24

// FormatSummary renders the degree progress with one bar per category and
// the selected career's module set.
func FormatSummary(s *progress.CompletionSummary) string {
	var b strings.Builder
	b.WriteString(Header("Progress"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", PadRight(Bold("Degree"), 32), RenderCredits(s.EarnedCredits, s.TotalRequired, barWidth))
	b.WriteString("\n")
	for _, c := range s.Categories {
		label := Truncate(c.Category.Label(), 30)
		fmt.Fprintf(&b, "%s %s\n", PadRight(label, 32), RenderCredits(c.Earned, c.Required, barWidth))
	}

	if p := s.Path; p != nil {
		b.WriteString("\n")
		b.WriteString(Header(p.Title))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s  %s\n",
			RenderCredits(p.CompletedCP, p.TotalCP, barWidth),
			Dim(fmt.Sprintf("%d/%d modules", p.CompletedCount, p.ModuleCount)))
		for _, m := range p.Modules {
			fmt.Fprintf(&b, "  %s %s %s\n", CheckMark(m.Completed), StyleBlue.Render(m.Code), m.DisplayName())
		}
	}
	return b.String()
}

// FormatOnTrack renders the study pace classification.
func FormatOnTrack(st *progress.OnTrackStatus) string {
	var b strings.Builder
	b.WriteString(TrackIndicator(st.Status))
	b.WriteString("\n")
	b.WriteString(TrackColor(st.Status).Render(st.Message))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d\n", Dim("Semester:"), st.Semester)
	fmt.Fprintf(&b, "%s %d / %d CP expected\n", Dim("Credits:"), st.EarnedCredits, st.ExpectedCredits)
	fmt.Fprintf(&b, "%s %d", Dim("Semesters remaining:"), st.RemainingSemesters)

	if len(st.RecommendedActions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(Bold("Next steps"))
		for _, a := range st.RecommendedActions {
			b.WriteString("\n  • " + a)
		}
	}
	return RenderBox("Study Status", b.String()) + "\n"
}
