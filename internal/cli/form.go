package cli

import (
	"fmt"

	"github.com/TPSE31/career-roadmap/internal/cli/formatter"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// roadmapHuhTheme returns a huh theme using the Gruvbox palette.
func roadmapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileFormValues is bound to the profile form fields.
type profileFormValues struct {
	Semester int
	CareerID string
}

func semesterOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, domain.MaxSemester)
	for s := domain.MinSemester; s <= domain.MaxSemester; s++ {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Semester %d", s), s))
	}
	return opts
}

// careerOptions lists careers by title with a leading "no career" entry
// whose value clears the selection.
func careerOptions(careers []domain.CareerPath) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(careers)+1)
	opts = append(opts, huh.NewOption("No career goal yet", ""))
	for _, c := range careers {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", c.TitleEN, c.SalaryRange()), c.ID))
	}
	return opts
}

// profileForm asks for the semester and career goal, prefilled from v.
func profileForm(careers []domain.CareerPath, v *profileFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which semester are you in?").
				Options(semesterOptions()...).
				Value(&v.Semester),
			huh.NewSelect[string]().
				Title("Career goal").
				Description("Used to rank modules and lay out the specialization stage").
				Options(careerOptions(careers)...).
				Value(&v.CareerID),
		),
	).WithTheme(roadmapHuhTheme()).WithShowHelp(false)
}
