package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/mesoforge/internal/cli/formatter"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/spf13/cobra"
)

func newFatigueCmd(_ *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fatigue",
		Short: "Fatigue kill switch",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check VELOCITY_LOSS",
		Short: "Evaluate a velocity-loss reading in percent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil || v < 0 {
				return fmt.Errorf("invalid velocity loss %q: expected a non-negative percentage", args[0])
			}
			resp := contract.NewFatigueCheckResponse(v)
			return render(cmd, resp, func() string {
				return formatter.FormatFatigueCheck(resp)
			})
		},
	})

	return cmd
}
