package cli

import (
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/cli/formatter"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [career]",
		Short: "Rank modules for a career (defaults to your profile career)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			career := ""
			if len(args) == 1 {
				career = args[0]
			}
			resp, err := app.Engine.GetScoredModules(cmd.Context(), career)
			if err != nil {
				return contract.Wrap(err, contract.ErrUnknownCareer)
			}
			if strings.TrimSpace(career) == "" && resp.CareerID == "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No career selected. Pass one or run 'roadmap profile --career <id>'."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScoredModules(resp))
			return nil
		},
	}
}

func newRoadmapCmd(app *App) *cobra.Command {
	var semester semesterFlag

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Show the five roadmap stages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Engine.GetRoadmapStages(cmd.Context(), semester.value)
			if err != nil {
				return contract.Wrap(err, "")
			}
			resp.Clamped = resp.Clamped || semester.clamped
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(resp))
			return nil
		},
	}

	cmd.Flags().Var(&semester, "semester", "Semester to lay out (defaults to your profile semester)")
	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show credit progress per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if reset {
				if err := app.Engine.ResetCompletions(ctx); err != nil {
					return contract.Wrap(err, "")
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("All completions cleared."))
			}
			s, err := app.Engine.GetCompletionSummary(ctx)
			if err != nil {
				return contract.Wrap(err, "")
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(s))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Clear every completed module first")
	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether you are on track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := app.Engine.OnTrack(ctx)
			if err != nil {
				return contract.Wrap(err, "")
			}
			out := formatter.FormatOnTrack(st)
			if unread, err := app.Engine.GetUnreadCount(ctx); err == nil && unread > 0 {
				out += formatter.Dim(fmt.Sprintf("%d unread notification(s). Run 'roadmap notifications'.", unread)) + "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <code>",
		Short: "Mark a module completed, or reopen it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Engine.ToggleModule(cmd.Context(), args[0])
			if err != nil {
				return contract.Wrap(err, contract.ErrUnknownModule)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToggle(resp))
			return nil
		},
	}
}
