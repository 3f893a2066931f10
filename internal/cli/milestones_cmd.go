package cli

import (
	"fmt"
	"strconv"

	"github.com/TPSE31/career-roadmap/internal/cli/formatter"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/spf13/cobra"
)

func newMilestonesCmd(app *App) *cobra.Command {
	var sync bool

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "List study milestones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if sync {
				resp, err := app.Milestones.Sync(ctx)
				if err != nil {
					return contract.Wrap(err, "")
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSync(resp, app.now()))
				return nil
			}
			ms, err := app.Milestones.List(ctx)
			if err != nil {
				return contract.Wrap(err, "")
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMilestones(ms, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sync, "sync", false, "Evaluate milestones against your credits and create notifications")
	cmd.AddCommand(
		newMilestoneSetCmd(app, "done", "Mark a milestone achieved", true),
		newMilestoneSetCmd(app, "undo", "Mark a milestone pending again", false),
	)
	return cmd
}

func newMilestoneSetCmd(app *App, use, short string, done bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return contract.NewError(contract.ErrInvalidInput, fmt.Sprintf("milestone id %q is not a number", args[0]))
			}
			p, err := app.Milestones.SetCompleted(cmd.Context(), id, done)
			if err != nil {
				return contract.Wrap(err, contract.ErrUnknownMilestone)
			}
			state := formatter.StyleYellow.Render("○ Pending")
			if p.IsDone() {
				state = formatter.StyleGreen.Render("✔ Achieved")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, p.Label)
			return nil
		},
	}
}
