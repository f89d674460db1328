package cli

import (
	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Plan a training day and log sets",
	}

	cmd.AddCommand(
		newSessionPlanCmd(app),
		newSessionLogCmd(app),
		newSessionSetsCmd(app),
	)

	return cmd
}

func newSessionPlanCmd(app *App) *cobra.Command {
	var (
		req    contract.SessionPlanRequest
		ratios ratioFlags
	)

	cmd := &cobra.Command{
		Use:     "plan PROGRAM",
		Short:   "Show one day adjusted for readiness and cycle phase",
		Example: `  mesoforge session plan latest --period 3 --day 0 --readiness 72 --phase luteal`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}
			req.ProgramID = id
			req.Ratios = ratios.ratios()

			resp, err := app.Sessions.Plan(ctx, req)
			if err != nil {
				return err
			}
			return render(cmd, resp, func() string {
				return formatter.FormatSessionPlan(resp, app.PriorityRatio)
			})
		},
	}

	cmd.Flags().IntVar(&req.Period, "period", 1, "Period number (1-12)")
	cmd.Flags().IntVar(&req.Day, "day", 0, "Day index (0=Mon .. 6=Sun)")
	cmd.Flags().IntVar(&req.Readiness, "readiness", 75, "Readiness score 0-100")
	cmd.Flags().StringVar(&req.Phase, "phase", "", "Cycle phase: menstrual, follicular, ovulatory, luteal")
	ratios.register(cmd)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var (
		req          contract.LogSetRequest
		rpe, velLoss float64
	)

	cmd := &cobra.Command{
		Use:     "log PROGRAM",
		Short:   "Log one performed set",
		Example: `  mesoforge session log latest --period 3 --day 0 --order 1 --set 2 --reps 8 --rpe 7.5 --velocity-loss 18`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}
			req.ProgramID = id
			if cmd.Flags().Changed("rpe") {
				req.RPE = &rpe
			}
			if cmd.Flags().Changed("velocity-loss") {
				req.VelocityLossPct = &velLoss
			}

			resp, err := app.Sessions.LogSet(ctx, req)
			if err != nil {
				return err
			}
			return render(cmd, resp, func() string {
				return formatter.FormatSetLogged(resp)
			})
		},
	}

	cmd.Flags().IntVar(&req.Period, "period", 1, "Period number (1-12)")
	cmd.Flags().IntVar(&req.Day, "day", 0, "Day index (0=Mon .. 6=Sun)")
	cmd.Flags().IntVar(&req.ExerciseOrder, "order", 0, "Exercise position in the day, starting at 1")
	cmd.Flags().IntVar(&req.SetNumber, "set", 1, "Set number, starting at 1")
	cmd.Flags().IntVar(&req.Reps, "reps", 0, "Repetitions performed")
	cmd.Flags().Float64Var(&rpe, "rpe", 0, "Rate of perceived exertion (1-10)")
	cmd.Flags().Float64Var(&velLoss, "velocity-loss", 0, "Velocity loss in percent")
	_ = cmd.MarkFlagRequired("order")
	_ = cmd.MarkFlagRequired("reps")

	return cmd
}

func newSessionSetsCmd(app *App) *cobra.Command {
	var period, day int

	cmd := &cobra.Command{
		Use:   "sets PROGRAM",
		Short: "List the sets logged for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProgramID(ctx, app, args[0])
			if err != nil {
				return err
			}
			logs, err := app.Sessions.ListSets(ctx, id, period, day)
			if err != nil {
				return err
			}
			return render(cmd, contract.NewSetLogViews(logs), func() string {
				if len(logs) == 0 {
					return "No sets logged."
				}
				return formatter.FormatSetLogs(logs)
			})
		},
	}

	cmd.Flags().IntVar(&period, "period", 1, "Period number (1-12)")
	cmd.Flags().IntVar(&day, "day", 0, "Day index (0=Mon .. 6=Sun)")

	return cmd
}
