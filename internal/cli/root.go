package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/mesoforge/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Programs service.ProgramService
	Sessions service.SessionService
	Catalog  service.CatalogService
	Goals    service.GoalService

	// PriorityRatio is the configured priority share, used for display.
	PriorityRatio float64
	// ServerAddr is the default listen address for serve.
	ServerAddr string
	Logger     *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now overrides the wall clock. Nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "mesoforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mesoforge",
		Short:         "Training program synthesis and session coaching",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "Print machine-readable JSON")

	root.AddCommand(
		newGenerateCmd(app),
		newProgramCmd(app),
		newSessionCmd(app),
		newBriefCmd(app),
		newFatigueCmd(app),
		newCatalogCmd(app),
		newGoalsCmd(app),
		newServeCmd(app),
	)

	return root
}
