package cli

import (
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ratioFlags is the limb-ratio flag set shared by generate, brief and
// session plan.
type ratioFlags struct {
	fs                                                *pflag.FlagSet
	femurTorso, humerusTorso, tibiaFemur, shoulderHip float64
}

func (f *ratioFlags) register(cmd *cobra.Command) {
	f.fs = pflag.NewFlagSet("ratios", pflag.ContinueOnError)
	f.fs.Float64Var(&f.femurTorso, "femur-torso", 0, "Femur to torso length ratio")
	f.fs.Float64Var(&f.humerusTorso, "humerus-torso", 0, "Humerus to torso length ratio")
	f.fs.Float64Var(&f.tibiaFemur, "tibia-femur", 0, "Tibia to femur length ratio")
	f.fs.Float64Var(&f.shoulderHip, "shoulder-hip", 0, "Shoulder to hip width ratio")
	cmd.Flags().AddFlagSet(f.fs)
}

// ratios returns only the measurements that were passed on the command line.
func (f *ratioFlags) ratios() contract.Ratios {
	var r contract.Ratios
	if f.fs == nil {
		return r
	}
	set := func(name string, v float64, dst **float64) {
		if f.fs.Changed(name) {
			val := v
			*dst = &val
		}
	}
	set("femur-torso", f.femurTorso, &r.FemurToTorso)
	set("humerus-torso", f.humerusTorso, &r.HumerusToTorso)
	set("tibia-femur", f.tibiaFemur, &r.TibiaToFemur)
	set("shoulder-hip", f.shoulderHip, &r.ShoulderToHip)
	return r
}
