package assembler

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mesoforge/internal/constraint"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/selector"
)

// why builds the free-text rationale for one prescribed exercise.
func why(sel selector.Selection, periodType domain.PeriodType, profile *domain.AnatomicalProfile) string {
	var parts []string
	if sel.Substitution != nil {
		parts = append(parts, explainSubstitution(sel.Substitution, sel.Exercise.Name, profile))
	}
	if sel.Flag != nil {
		parts = append(parts, fmt.Sprintf("Caution: %s. Consider %s.", sel.Flag.Reason, sel.Flag.Alternative))
	}
	parts = append(parts, purpose(periodType, sel.IsPriority, sel.Muscle))
	return strings.Join(parts, " ")
}

func explainSubstitution(sub *selector.Substitution, chosen string, profile *domain.AnatomicalProfile) string {
	switch sub.Rule {
	case "long_femur_squat":
		if v, ok := ratioOf(profile, func(p *domain.AnatomicalProfile) *float64 { return p.FemurToTorso }); ok && v > constraint.FemurTorsoLimit {
			return fmt.Sprintf("Your femur-to-torso ratio of %.2f exceeds %.2f, so %s replaces %s to keep the torso upright and the lower back unloaded.",
				v, constraint.FemurTorsoLimit, chosen, sub.Original)
		}
		return fmt.Sprintf("Long limbs force a deep forward lean in the %s; %s trains the quads without it.", sub.Original, chosen)
	case "long_arms_bench":
		if v, ok := ratioOf(profile, func(p *domain.AnatomicalProfile) *float64 { return p.HumerusToTorso }); ok && v > constraint.HumerusTorsoLimit {
			return fmt.Sprintf("Your humerus-to-torso ratio of %.2f exceeds %.2f, so %s replaces %s to limit shoulder extension at the bottom.",
				v, constraint.HumerusTorsoLimit, chosen, sub.Original)
		}
		return fmt.Sprintf("Long arms lengthen the %s stroke; %s lets the shoulders move freely.", sub.Original, chosen)
	case "long_arms_overhead":
		return fmt.Sprintf("Long arms make the %s bar path awkward; %s keeps the shoulders in a safer plane.", sub.Original, chosen)
	case "short_torso_squat":
		return fmt.Sprintf("A short torso shifts the %s onto the hips; %s targets the glutes directly.", sub.Original, chosen)
	case "long_torso_deadlift":
		return fmt.Sprintf("A long torso increases spinal shear in the %s; %s loads the hamstrings with less lever.", sub.Original, chosen)
	case "short_arms_dip":
		return fmt.Sprintf("Short arms limit depth on the %s; %s gives the chest a full stretch.", sub.Original, chosen)
	default:
		return fmt.Sprintf("%s replaces %s for your build.", chosen, sub.Original)
	}
}

func ratioOf(p *domain.AnatomicalProfile, field func(*domain.AnatomicalProfile) *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return domain.Ratio(field(p))
}

func purpose(t domain.PeriodType, priority bool, muscle string) string {
	switch {
	case t == domain.PeriodRamp && priority:
		return fmt.Sprintf("Ramp-up: groove the movement pattern for %s at submaximal effort.", muscle)
	case t == domain.PeriodRamp:
		return fmt.Sprintf("Ramp-up: reintroduce %s work with easy sets.", muscle)
	case t == domain.PeriodOverload && priority:
		return fmt.Sprintf("Overload: push volume on %s to drive new growth.", muscle)
	case t == domain.PeriodOverload:
		return fmt.Sprintf("Overload: hold %s steady while priority muscles take the extra volume.", muscle)
	case t == domain.PeriodDeload && priority:
		return fmt.Sprintf("Deload: keep %s moving with light, slow reps to consolidate gains.", muscle)
	case t == domain.PeriodDeload:
		return fmt.Sprintf("Deload: light %s work to recover.", muscle)
	case priority:
		return fmt.Sprintf("Build: progressive hypertrophy work for %s.", muscle)
	default:
		return fmt.Sprintf("Maintain: enough %s volume to preserve balance.", muscle)
	}
}

func priorityJustification(goal domain.GoalArchetype, muscle string, priority bool, ratio float64) string {
	if priority {
		return fmt.Sprintf("%s is a priority muscle for %s and shares %.0f%% of session volume.",
			capitalize(muscle), goalName(goal), ratio*100)
	}
	return fmt.Sprintf("%s is trained at maintenance volume (%.0f%% share) to keep the physique balanced.",
		capitalize(muscle), (1-ratio)*100)
}

func goalName(g domain.GoalArchetype) string {
	if g.Name != "" {
		return g.Name
	}
	return g.ID
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
