package formatter

import (
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// FormatCareers renders the career path list in the requested language.
func FormatCareers(resp *contract.CareersResponse, lang string) string {
	var b strings.Builder
	b.WriteString(Header("Career Paths"))
	b.WriteString("\n\n")

	if len(resp.Careers) == 0 {
		b.WriteString(Dim("No career paths available."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Careers))
	for _, c := range resp.Careers {
		rows = append(rows, []string{
			StyleBlue.Render(c.ID),
			c.Title(lang),
			fmt.Sprintf("%d", c.ModuleCount()),
			c.SalaryRange(),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "TITLE", "MODULES", "SALARY"}, rows))
	b.WriteString(originNote(resp.Origin))
	return b.String()
}

// FormatCareer renders the detail box of one career path.
func FormatCareer(c *domain.CareerPath, lang string) string {
	var b strings.Builder
	if d := c.Description(lang); d != "" {
		b.WriteString(d)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:"), StyleBlue.Render(c.ID))
	fmt.Fprintf(&b, "%s %s\n", Dim("Salary:"), c.SalaryRange())
	fmt.Fprintf(&b, "%s %s",
		Dim("Salary by level:"),
		fmt.Sprintf("junior %dk · mid %dk · senior %dk", c.Salary.Junior/1000, c.Salary.Mid/1000, c.Salary.Senior/1000))

	if len(c.RequiredSkills) > 0 {
		b.WriteString("\n\n")
		b.WriteString(Bold("Required skills"))
		for _, s := range c.RequiredSkills {
			b.WriteString("\n  • " + s)
		}
	}
	if len(c.RecommendedModules) > 0 {
		b.WriteString("\n\n")
		b.WriteString(Bold(fmt.Sprintf("Recommended modules (%d)", c.ModuleCount())))
		b.WriteString("\n  " + Dim(strings.Join(c.RecommendedModules, ", ")))
	}
	return RenderBox(c.Title(lang), b.String()) + "\n"
}

// FormatProfile renders the stored profile.
func FormatProfile(resp *contract.ProfileResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d", Dim("Semester:"), resp.Profile.Semester)
	if resp.Clamped {
		b.WriteString(" " + StyleYellow.Render("(adjusted to the study range)"))
	}
	b.WriteString("\n")
	if resp.Career != nil {
		fmt.Fprintf(&b, "%s %s %s", Dim("Career:"), resp.Career.TitleEN, Dim("("+resp.Career.ID+")"))
	} else {
		fmt.Fprintf(&b, "%s %s", Dim("Career:"), Dim("not selected"))
	}
	return RenderBox("Profile", b.String()) + "\n"
}

func originNote(o contract.Origin) string {
	if o == contract.OriginBundled {
		return "\n" + Dim("Career data from the bundled catalog.") + "\n"
	}
	return ""
}
