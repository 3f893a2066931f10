package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/TPSE31/career-roadmap/internal/cli/formatter"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	var semester semesterFlag
	var career string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your semester and career goal",
		Long: `Show or update your semester and career goal.

Without flags on an interactive terminal a form opens. --career accepts a
career id, alias or title; an empty value clears the goal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var upd contract.ProfileUpdate
			if semester.set {
				v := semester.value
				upd.Semester = &v
			}
			if cmd.Flags().Changed("career") {
				upd.CareerID = &career
			}

			if upd.Empty() && app.interactive() {
				formUpd, err := runProfileForm(ctx, app)
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
				if err != nil {
					return err
				}
				upd = formUpd
			}

			var resp *contract.ProfileResponse
			var err error
			if upd.Empty() {
				resp, err = app.Profiles.Get(ctx)
			} else {
				resp, err = app.Profiles.Update(ctx, upd)
			}
			if err != nil {
				return contract.Wrap(err, contract.ErrUnknownCareer)
			}
			resp.Clamped = resp.Clamped || semester.clamped
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(resp))
			return nil
		},
	}

	cmd.Flags().Var(&semester, "semester", "Current semester (1-8)")
	cmd.Flags().StringVar(&career, "career", "", "Career goal id, alias or title")
	return cmd
}

// runProfileForm opens the profile form prefilled with the stored values and
// returns the resulting update.
func runProfileForm(ctx context.Context, app *App) (contract.ProfileUpdate, error) {
	current, err := app.Profiles.Get(ctx)
	if err != nil {
		return contract.ProfileUpdate{}, contract.Wrap(err, "")
	}
	careers, err := app.Catalog.ListCareers(ctx)
	if err != nil {
		return contract.ProfileUpdate{}, contract.Wrap(err, "")
	}

	v := profileFormValues{Semester: current.Profile.Semester, CareerID: current.Profile.CareerPathID}
	if err := profileForm(careers.Careers, &v).RunWithContext(ctx); err != nil {
		return contract.ProfileUpdate{}, err
	}
	return contract.ProfileUpdate{Semester: &v.Semester, CareerID: &v.CareerID}, nil
}
