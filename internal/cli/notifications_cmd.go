package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/cli/formatter"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/notify"
	"github.com/spf13/cobra"
)

// resolveNotificationID matches input against full ids first, then id
// prefixes as shown in the list view.
func resolveNotificationID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", contract.NewError(contract.ErrInvalidInput, "notification id is required")
	}

	all, err := app.Notifications.List(ctx, notify.Filter{})
	if err != nil {
		return "", contract.Wrap(err, "")
	}

	for _, n := range all {
		if n.ID == input {
			return n.ID, nil
		}
	}

	var matches []string
	for _, n := range all {
		if strings.HasPrefix(n.ID, input) {
			matches = append(matches, n.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", contract.NewError(contract.ErrUnknownNotification, fmt.Sprintf("notification not found: %q", input))
	case 1:
		return matches[0], nil
	default:
		return "", contract.NewError(contract.ErrInvalidInput,
			fmt.Sprintf("notification id prefix %q is ambiguous (%d matches)", input, len(matches)))
	}
}

func newNotificationsCmd(app *App) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listNotifications(cmd, app, notify.Filter{Type: domain.NotificationType(typ)})
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Only show one notification type (e.g. milestone_reminder)")
	cmd.AddCommand(
		newNotificationsUnreadCmd(app),
		newNotificationsShowCmd(app),
		newNotificationsReadCmd(app),
		newNotificationsReadAllCmd(app),
		newNotificationsDeleteCmd(app),
	)
	return cmd
}

func listNotifications(cmd *cobra.Command, app *App, f notify.Filter) error {
	ns, err := app.Notifications.List(cmd.Context(), f)
	if err != nil {
		return contract.Wrap(err, "")
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotifications(ns, app.now()))
	return nil
}

func newNotificationsUnreadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unread",
		Short: "List unread notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listNotifications(cmd, app, notify.Filter{UnreadOnly: true})
		},
	}
}

func newNotificationsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveNotificationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			n, err := app.Notifications.Get(ctx, id)
			if err != nil {
				return contract.Wrap(err, contract.ErrUnknownNotification)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotification(n, app.now()))
			return nil
		},
	}
}

func newNotificationsReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveNotificationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Notifications.MarkRead(ctx, id); err != nil {
				return contract.Wrap(err, contract.ErrUnknownNotification)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s read\n", formatter.ShortID(id))
			return nil
		},
	}
}

func newNotificationsReadAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Engine.MarkAllRead(cmd.Context())
			if err != nil {
				return contract.Wrap(err, "")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %d notification(s) read\n", n)
			return nil
		},
	}
}

func newNotificationsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveNotificationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Notifications.Delete(ctx, id); err != nil {
				return contract.Wrap(err, contract.ErrUnknownNotification)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
