package cli

import (
	"fmt"

	"github.com/TPSE31/career-roadmap/internal/cli/formatter"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/spf13/cobra"
)

func newCareersCmd(app *App) *cobra.Command {
	lang := &langFlag{value: "en"}

	cmd := &cobra.Command{
		Use:   "careers",
		Short: "List career paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Catalog.ListCareers(cmd.Context())
			if err != nil {
				return contract.Wrap(err, "")
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCareers(resp, lang.value))
			return nil
		},
	}

	cmd.PersistentFlags().Var(lang, "lang", "Display language (en, de)")
	cmd.AddCommand(newCareersShowCmd(app, lang))
	return cmd
}

func newCareersShowCmd(app *App, lang *langFlag) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one career path by id, alias or title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog.GetCareer(cmd.Context(), args[0])
			if err != nil {
				return contract.Wrap(err, contract.ErrUnknownCareer)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCareer(c, lang.value))
			return nil
		},
	}
}

func newModulesCmd(app *App) *cobra.Command {
	var category categoryFlag
	var semester semesterFlag

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List catalog modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := contract.NewModuleQuery()
			q.Category = category.value
			if semester.set {
				q.Semester = semester.value
			}
			mods, err := app.Catalog.ListModules(cmd.Context(), q)
			if err != nil {
				return contract.Wrap(err, "")
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatModules(mods))
			return nil
		},
	}

	cmd.Flags().Var(&category, "category", "Filter by category (mandatory, elective_required, elective_open, general_studies)")
	cmd.Flags().Var(&semester, "semester", "Filter by scheduled semester")
	cmd.AddCommand(newModulesShowCmd(app))
	return cmd
}

func newModulesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show one module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Catalog.GetModule(cmd.Context(), args[0])
			if err != nil {
				return contract.Wrap(err, contract.ErrUnknownModule)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatModule(m))
			return nil
		},
	}
}
