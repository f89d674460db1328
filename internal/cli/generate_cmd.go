package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		req         contract.GenerateProgramRequest
		ratios      ratioFlags
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Synthesize a 12-week training program",
		Example: `  mesoforge generate --goal v_taper --frequency 4_upper_lower --sex male
  mesoforge generate --goal hourglass --frequency 3_full_body --sex female --equipment dumbbell,cable --dry-run
  mesoforge generate -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req.Ratios = ratios.ratios()

			if interactive || (req.Goal == "" && app.interactive()) {
				a := generateAnswers{
					goal:       req.Goal,
					frequency:  req.Frequency,
					sex:        req.Sex,
					morphotype: req.Morphotype,
					equipment:  req.Equipment,
				}
				if err := generateForm(ctx, app, &a).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				req.Goal, req.Frequency, req.Sex = a.goal, a.frequency, a.sex
				req.Morphotype, req.Equipment = a.morphotype, a.equipment
				if a.femurTorso != "" {
					v, _ := strconv.ParseFloat(a.femurTorso, 64)
					req.Ratios.FemurToTorso = &v
				}
			}

			if req.Goal == "" || req.Frequency == "" {
				return fmt.Errorf("--goal and --frequency are required (or use --interactive)")
			}

			now := app.now()
			req.Now = &now
			resp, err := app.Programs.Generate(ctx, req)
			if err != nil {
				return err
			}
			return render(cmd, resp, func() string {
				out := formatter.FormatProgramOverview(resp.Program)
				if resp.Persisted {
					return out + "\n" + formatter.StyleGreen.Render("✔ Saved program") + " " + resp.Program.ID
				}
				return out + "\n" + formatter.Dim("Dry run: program not saved.")
			})
		},
	}

	cmd.Flags().StringVar(&req.Goal, "goal", "", "Goal archetype ID (see `mesoforge goals list`)")
	cmd.Flags().StringVar(&req.Frequency, "frequency", "", "Weekly layout: 2_full_body, 3_full_body, 4_upper_lower, 5_hybrid, 6_ppl")
	cmd.Flags().StringVar(&req.Sex, "sex", "", "Biological sex: female, male or other")
	cmd.Flags().StringSliceVar(&req.Equipment, "equipment", nil, "Available equipment types; empty means all")
	cmd.Flags().StringSliceVar(&req.Brands, "brands", nil, "Available machine brands; empty means all")
	cmd.Flags().StringVar(&req.Morphotype, "morphotype", "", "Build: long_limbed, short_torso, long_torso, long_arms, short_arms, balanced")
	cmd.Flags().BoolVar(&req.DryRun, "dry-run", false, "Assemble without saving")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Answer the program questions in a form")
	ratios.register(cmd)

	return cmd
}
