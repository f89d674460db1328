// Package constraint classifies exercise and session combinations as banned,
// cautioned or constrained. Every function is pure.
package constraint

import (
	"fmt"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

type DecisionKind string

const (
	DecisionBan     DecisionKind = "ban"
	DecisionCaution DecisionKind = "caution"
)

// Decision is the outcome of an anatomical check.
type Decision struct {
	Kind        DecisionKind
	Rule        string
	Exercise    string
	Reason      string
	Alternative string
}

type anatomicalRule struct {
	name        string
	label       string
	ratio       func(*domain.AnatomicalProfile) *float64
	threshold   float64
	pattern     domain.Pattern
	alternative string
}

// Thresholds shared with the selector's substitution table and rationale.
const (
	FemurTorsoLimit   = 0.85
	HumerusTorsoLimit = 0.52
	TibiaFemurLimit   = 1.05
)

// Movement patterns. Include fragments are the compatibility path for
// untagged catalog rows; Exclude fragments apply to tagged rows too.
var (
	SquatPattern = domain.Pattern{
		Tag:         "squat",
		ExcludeTags: []string{"split_squat"},
		Include:     []string{"squat"},
		Exclude:     []string{"split", "bulgarian"},
	}
	BarbellBenchPattern = domain.Pattern{
		Tag:         "barbell_bench",
		ExcludeTags: []string{"dumbbell_bench"},
		Include:     []string{"bench press", "barbell bench"},
		Exclude:     []string{"dumbbell", "db", "machine", "smith"},
	}
	DeepSquatPattern = domain.Pattern{
		Tag:         "squat",
		ExcludeTags: []string{"box_squat", "split_squat"},
		Include:     []string{"squat"},
		Exclude:     []string{"box", "split", "bulgarian"},
	}
)

// Evaluation order is fixed; the first matching rule wins.
var anatomicalRules = []anatomicalRule{
	{
		name:        "femur_torso",
		label:       "femur-to-torso",
		ratio:       func(p *domain.AnatomicalProfile) *float64 { return p.FemurToTorso },
		threshold:   FemurTorsoLimit,
		pattern:     SquatPattern,
		alternative: "Leg Press or Bulgarian Split Squat",
	},
	{
		name:        "humerus_torso",
		label:       "humerus-to-torso",
		ratio:       func(p *domain.AnatomicalProfile) *float64 { return p.HumerusToTorso },
		threshold:   HumerusTorsoLimit,
		pattern:     BarbellBenchPattern,
		alternative: "Dumbbell Bench Press",
	},
	{
		name:        "tibia_femur",
		label:       "tibia-to-femur",
		ratio:       func(p *domain.AnatomicalProfile) *float64 { return p.TibiaToFemur },
		threshold:   TibiaFemurLimit,
		pattern:     DeepSquatPattern,
		alternative: "Box Squat",
	},
}

// EvaluateAnatomicalConstraint returns a ban when a measured ratio exceeds its
// threshold for a matching exercise name, or nil.
func EvaluateAnatomicalConstraint(profile *domain.AnatomicalProfile, exerciseName string) *Decision {
	if profile == nil {
		return nil
	}
	for _, rule := range anatomicalRules {
		v, ok := domain.Ratio(rule.ratio(profile))
		if !ok || v <= rule.threshold {
			continue
		}
		if !rule.pattern.MatchName(exerciseName) {
			continue
		}
		return rule.decision(exerciseName, v)
	}
	return nil
}

// EvaluateExercise is EvaluateAnatomicalConstraint for a catalog entry, using
// tags when the entry has them.
func EvaluateExercise(profile *domain.AnatomicalProfile, e *domain.Exercise) *Decision {
	if profile == nil || e == nil {
		return nil
	}
	if !e.Tagged() {
		return EvaluateAnatomicalConstraint(profile, e.Name)
	}
	for _, rule := range anatomicalRules {
		v, ok := domain.Ratio(rule.ratio(profile))
		if !ok || v <= rule.threshold {
			continue
		}
		if !rule.pattern.MatchExercise(e) {
			continue
		}
		return rule.decision(e.Name, v)
	}
	return nil
}

func (r anatomicalRule) decision(exerciseName string, value float64) *Decision {
	return &Decision{
		Kind:     DecisionBan,
		Rule:     r.name,
		Exercise: exerciseName,
		Reason: fmt.Sprintf("%s ratio %.2f exceeds %.2f; %s loads the joints unfavourably at this lever length",
			r.label, value, r.threshold, exerciseName),
		Alternative: r.alternative,
	}
}

// CycleConstraint caps intensity and trims volume for a cycle phase.
type CycleConstraint struct {
	Phase           domain.CyclePhase
	MaxRPE          float64
	VolumeReduction float64
	Note            string
}

// EvaluateCyclePhaseConstraint returns the constraint for a phase, or nil when
// the phase imposes none.
func EvaluateCyclePhaseConstraint(phase domain.CyclePhase) *CycleConstraint {
	switch phase {
	case domain.PhaseLuteal:
		return &CycleConstraint{
			Phase:           phase,
			MaxRPE:          7.0,
			VolumeReduction: 0.20,
			Note:            "Luteal phase: RPE capped at 7.0 and volume reduced 20%.",
		}
	case domain.PhaseMenstrual:
		return &CycleConstraint{
			Phase:           phase,
			MaxRPE:          8.0,
			VolumeReduction: 0.10,
			Note:            "Menstrual phase: RPE capped at 8.0 and volume reduced 10%.",
		}
	default:
		return nil
	}
}

// FatigueVelocityLossLimit is the velocity loss, in percent, above which a set
// is force-terminated.
const FatigueVelocityLossLimit = 20.0

// EvaluateFatigueKillSwitch reports whether the current set must stop.
func EvaluateFatigueKillSwitch(velocityLossPct float64) bool {
	return velocityLossPct > FatigueVelocityLossLimit
}

type KillSwitchAction string

const (
	ActionCutAudio     KillSwitchAction = "cut_audio_cues"
	ActionStrongHaptic KillSwitchAction = "strong_haptic_alert"
	ActionAutostopLog  KillSwitchAction = "autolog_autostopped"
)

// KillSwitchActions lists what a session must do when the switch trips.
func KillSwitchActions() []KillSwitchAction {
	return []KillSwitchAction{ActionCutAudio, ActionStrongHaptic, ActionAutostopLog}
}
