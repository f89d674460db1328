package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Inspect stored programs",
	}

	cmd.AddCommand(
		newProgramListCmd(app),
		newProgramShowCmd(app),
		newProgramDeleteCmd(app),
	)

	return cmd
}

func newProgramListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List programs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			programs, err := app.Programs.List(cmd.Context())
			if err != nil {
				return err
			}

			summaries := make([]contract.ProgramSummary, 0, len(programs))
			for _, p := range programs {
				summaries = append(summaries, contract.NewProgramSummary(p))
			}
			return render(cmd, summaries, func() string {
				if len(summaries) == 0 {
					return "No programs found."
				}
				return formatter.FormatProgramList(summaries, app.now())
			})
		},
	}
}

func newProgramShowCmd(app *App) *cobra.Command {
	var period int

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a program overview or one period in full",
		Long:  "ID may be a full ID, a unique prefix or \"latest\".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Programs.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if period == 0 {
				view := contract.NewProgramView(p)
				return render(cmd, view, func() string {
					return formatter.FormatProgramOverview(view)
				})
			}

			per := p.Period(period)
			if per == nil {
				return fmt.Errorf("program has no period %d", period)
			}
			view := contract.NewPeriodView(*per)
			return render(cmd, view, func() string {
				return formatter.FormatPeriod(view, app.PriorityRatio)
			})
		},
	}

	cmd.Flags().IntVar(&period, "period", 0, "Show one period (1-12) with every prescription")

	return cmd
}

func newProgramDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a program and its logged sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete without --yes")
				}
				confirmed := false
				if err := wizardConfirm(fmt.Sprintf("Delete program %s?", id), &confirmed).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Programs.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted program %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
