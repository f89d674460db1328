package cli

import (
	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/spf13/cobra"
)

func newGoalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Goal archetypes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List goal archetypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals := app.Goals.List(cmd.Context())
			views := make([]contract.GoalView, 0, len(goals))
			for _, g := range goals {
				views = append(views, contract.NewGoalView(g))
			}
			return render(cmd, views, func() string {
				return formatter.FormatGoalList(views)
			})
		},
	})

	return cmd
}
