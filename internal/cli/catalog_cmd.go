package cli

import (
	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the exercise catalog",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogListCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import exercises from a JSON or YAML file",
		Long:  "Every entry is validated first; nothing is written unless all entries are new and valid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalog.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd, result, func() string {
				return formatter.FormatImportResult(result)
			})
		},
	}
}

func newCatalogListCmd(app *App) *cobra.Command {
	var muscle string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog exercises",
		RunE: func(cmd *cobra.Command, args []string) error {
			exercises, err := app.Catalog.List(cmd.Context(), muscle)
			if err != nil {
				return err
			}
			entries := make([]contract.CatalogEntry, 0, len(exercises))
			for _, e := range exercises {
				entries = append(entries, contract.NewCatalogEntry(e))
			}
			return render(cmd, entries, func() string {
				if len(entries) == 0 {
					return "No exercises found."
				}
				return formatter.FormatExerciseList(entries)
			})
		},
	}

	cmd.Flags().StringVar(&muscle, "muscle", "", "Only exercises with this primary muscle")

	return cmd
}
