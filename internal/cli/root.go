package cli

import (
	"time"

	"github.com/TPSE31/career-roadmap/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog       service.CatalogService
	Profiles      service.ProfileService
	Engine        service.Engine
	Notifications service.NotificationService
	Milestones    service.MilestoneService

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// browser only open when it returns true.
	IsInteractive func() bool

	// Now is the clock used for relative dates. Defaults to time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCmd creates the top-level "roadmap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "roadmap",
		Short:         "Career-oriented study roadmap for the B.Sc. Informatik",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCareersCmd(app),
		newModulesCmd(app),
		newRecommendCmd(app),
		newRoadmapCmd(app),
		newProgressCmd(app),
		newStatusCmd(app),
		newToggleCmd(app),
		newProfileCmd(app),
		newMilestonesCmd(app),
		newNotificationsCmd(app),
		newBrowseCmd(app),
	)

	return root
}
