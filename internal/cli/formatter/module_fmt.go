package formatter

import (
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// FormatModules renders a module table.
func FormatModules(mods []domain.Module) string {
	var b strings.Builder
	b.WriteString(Header("Modules"))
	b.WriteString("\n\n")

	if len(mods) == 0 {
		b.WriteString(Dim("No modules match."))
		b.WriteString("\n")
		return b.String()
	}

	total := 0
	rows := make([][]string, 0, len(mods))
	for _, m := range mods {
		total += m.Credits
		rows = append(rows, []string{
			StyleBlue.Render(m.Code),
			Truncate(m.DisplayName(), 48),
			fmt.Sprintf("%d", m.Credits),
			SemesterLabel(m.Semester),
			CategoryBadge(m.Category),
		})
	}
	b.WriteString(RenderTable([]string{"CODE", "NAME", "CP", "SEM", "CATEGORY"}, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d modules · %d CP", len(mods), total)))
	b.WriteString("\n")
	return b.String()
}

// FormatModule renders the detail box of one module.
func FormatModule(m *domain.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Code:"), StyleBlue.Render(m.Code))
	if m.NameEN != "" && m.NameEN != m.Name {
		fmt.Fprintf(&b, "%s %s\n", Dim("German name:"), m.Name)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Credits:"), Credits(m.Credits))
	fmt.Fprintf(&b, "%s %s\n", Dim("Semester:"), SemesterLabel(m.Semester))
	fmt.Fprintf(&b, "%s %s", Dim("Category:"), CategoryBadge(m.Category))
	if m.Mandatory {
		b.WriteString(" " + StyleYellow.Render("(mandatory)"))
	}
	if m.Description != "" {
		b.WriteString("\n\n" + m.Description)
	}
	if m.Notes != "" {
		b.WriteString("\n\n" + Dim(m.Notes))
	}
	return RenderBox(m.DisplayName(), b.String()) + "\n"
}

// FormatScoredModules renders the ranked recommendation list of one career.
func FormatScoredModules(resp *contract.ScoredModulesResponse) string {
	var b strings.Builder
	if resp.Career == nil {
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n\n")
		b.WriteString(Dim(fmt.Sprintf("No recommendations for %q.", resp.CareerID)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(Header("Recommended for " + resp.Career.TitleEN))
	b.WriteString("\n\n")
	if len(resp.Modules) == 0 {
		b.WriteString(Dim("No relevant modules found."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Modules))
	done, doneCP, totalCP := 0, 0, 0
	for i, m := range resp.Modules {
		totalCP += m.Credits
		if m.Completed {
			done++
			doneCP += m.Credits
		}
		reason := ""
		if len(m.Reasons) > 0 {
			reason = Dim(Truncate(m.Reasons[0], 36))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			CheckMark(m.Completed),
			StyleBlue.Render(m.Code),
			Truncate(m.DisplayName(), 40),
			fmt.Sprintf("%d", m.Credits),
			fmt.Sprintf("%d", m.RelevanceScore),
			PhaseBadge(m.Phase),
			reason,
		})
	}
	b.WriteString(RenderTable([]string{"#", "", "CODE", "NAME", "CP", "SCORE", "PHASE", "WHY"}, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d/%d completed · %d/%d CP", done, len(resp.Modules), doneCP, totalCP)))
	b.WriteString("\n")
	b.WriteString(originNote(resp.Origin))
	return b.String()
}

// FormatToggle renders the result of toggling one module.
func FormatToggle(resp *contract.ToggleResponse) string {
	mark := StyleGreen.Render("✔ Completed")
	if !resp.Completed {
		mark = StyleYellow.Render("○ Reopened")
	}
	return fmt.Sprintf("%s %s  %s\n", mark, StyleBlue.Render(resp.Code),
		Dim(fmt.Sprintf("%d CP earned (%d%%)", resp.EarnedCredits, resp.Percentage)))
}
