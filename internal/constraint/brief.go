package constraint

import (
	"fmt"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

// Warning pairs an exercise with the alternative suggested by an anatomical ban.
type Warning struct {
	Exercise    string
	Alternative string
	Reason      string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s → %s", w.Exercise, w.Alternative)
}

// Brief is the pre-session summary shown before training.
type Brief struct {
	Readiness int
	Band      domain.ReadinessBand
	Message   string
	CycleNote string
	Cycle     *CycleConstraint
	Warnings  []Warning
	Focus     string
}

// ReadinessBandFor maps a 0-100 readiness score to its band.
func ReadinessBandFor(readiness int) domain.ReadinessBand {
	switch {
	case readiness >= 80:
		return domain.ReadinessOptimal
	case readiness >= 60:
		return domain.ReadinessModerate
	case readiness >= 35:
		return domain.ReadinessLow
	default:
		return domain.ReadinessCritical
	}
}

var readinessMessages = map[domain.ReadinessBand]string{
	domain.ReadinessOptimal:  "Readiness is optimal. Train as prescribed.",
	domain.ReadinessModerate: "Readiness is moderate. Keep the plan but stop a rep short of the RPE target.",
	domain.ReadinessLow:      "Readiness is low. Trim a set from each exercise and keep RPE conservative.",
	domain.ReadinessCritical: "Readiness is critical. Swap today's session for mobility and light aerobic work.",
}

func focusFor(readiness int) string {
	switch {
	case readiness < 35:
		return "Recovery: mobility, light cardio and sleep."
	case readiness < 60:
		return "Technique: moderate loads with clean reps and full range of motion."
	default:
		return "Progressive overload: push load or reps on the priority lifts."
	}
}

// GenerateBrief combines readiness, cycle phase and anatomical warnings for the
// exercises of a session.
func GenerateBrief(readiness int, phase domain.CyclePhase, profile *domain.AnatomicalProfile, exerciseNames []string) Brief {
	band := ReadinessBandFor(readiness)
	b := Brief{
		Readiness: readiness,
		Band:      band,
		Message:   readinessMessages[band],
		Focus:     focusFor(readiness),
	}
	if c := EvaluateCyclePhaseConstraint(phase); c != nil {
		b.Cycle = c
		b.CycleNote = c.Note
	}
	for _, name := range exerciseNames {
		if d := EvaluateAnatomicalConstraint(profile, name); d != nil {
			b.Warnings = append(b.Warnings, Warning{Exercise: name, Alternative: d.Alternative, Reason: d.Reason})
		}
	}
	return b
}
