package domain

import (
	"fmt"
	"time"
)

// SetLog is the completion record for one performed set. It references a
// prescribed exercise by position and never modifies the program template.
type SetLog struct {
	ID              string
	ProgramID       string
	PeriodNumber    int
	DayIndex        int
	ExerciseOrder   int
	SetNumber       int
	Reps            int
	RPE             *float64
	VelocityLossPct *float64
	Autostopped     bool
	LoggedAt        time.Time
}

// Validate checks position and count fields.
func (l *SetLog) Validate() error {
	if l.ProgramID == "" {
		return fmt.Errorf("program ID is required")
	}
	if l.PeriodNumber < 1 || l.PeriodNumber > PeriodsPerProgram {
		return fmt.Errorf("period %d out of range 1-%d", l.PeriodNumber, PeriodsPerProgram)
	}
	if l.DayIndex < 0 || l.DayIndex >= DaysPerPeriod {
		return fmt.Errorf("day %d out of range 0-%d", l.DayIndex, DaysPerPeriod-1)
	}
	if l.SetNumber < 1 {
		return fmt.Errorf("set number must be positive")
	}
	if l.Reps < 0 {
		return fmt.Errorf("reps cannot be negative")
	}
	if l.RPE != nil && (*l.RPE < 1 || *l.RPE > 10) {
		return fmt.Errorf("rpe %.1f out of range 1-10", *l.RPE)
	}
	return nil
}
