package cli

import (
	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/spf13/cobra"
)

func newBriefCmd(app *App) *cobra.Command {
	var (
		req    contract.BriefRequest
		ratios ratioFlags
	)

	cmd := &cobra.Command{
		Use:     "brief",
		Short:   "Pre-session brief from readiness, cycle phase and anatomy",
		Example: `  mesoforge brief --readiness 55 --phase luteal --exercise "Back Squat" --femur-torso 1.3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Ratios = ratios.ratios()
			resp, err := app.Sessions.Brief(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd, resp, func() string {
				return formatter.FormatBrief(*resp)
			})
		},
	}

	cmd.Flags().IntVar(&req.Readiness, "readiness", 75, "Readiness score 0-100")
	cmd.Flags().StringVar(&req.Phase, "phase", "", "Cycle phase: menstrual, follicular, ovulatory, luteal")
	cmd.Flags().StringArrayVar(&req.Exercises, "exercise", nil, "Exercise to check against the anatomy (repeatable)")
	ratios.register(cmd)

	return cmd
}
