package domain

import "time"

// DaysPerPeriod is fixed: every period is one calendar week.
const DaysPerPeriod = 7

// PeriodsPerProgram is the length of one mesocycle.
const PeriodsPerProgram = 12

type TrainingProgram struct {
	ID                 string
	GoalID             string
	GoalName           string
	Frequency          Frequency
	Sex                Sex
	MorphotypeSnapshot Morphotype
	WeeklySets         int
	StartDate          time.Time
	EndDate            time.Time
	Periods            []Period
	CreatedAt          time.Time
}

type Period struct {
	Number            int
	Type              PeriodType
	VolumeModifier    float64
	IntensityModifier float64
	StartDate         time.Time
	Days              []Day
}

type Day struct {
	Index            int
	Label            DayLabel
	Rest             bool
	SessionSets      int
	PrioritySets     int
	MaintenanceSets  int
	EstimatedMinutes int
	Exercises        []PrescribedExercise
}

type PrescribedExercise struct {
	ExerciseID            string
	ExerciseName          string
	Muscle                string
	Order                 int
	Sets                  int
	RepRange              string
	RPE                   float64
	RestSeconds           int
	Tempo                 string
	IsPriority            bool
	Why                   string
	PriorityJustification string
}

// TrainingDays returns the number of non-rest days in the period.
func (p *Period) TrainingDays() int {
	n := 0
	for _, d := range p.Days {
		if !d.Rest {
			n++
		}
	}
	return n
}

// Period returns the period with the given 1-based number, or nil.
func (p *TrainingProgram) Period(number int) *Period {
	for i := range p.Periods {
		if p.Periods[i].Number == number {
			return &p.Periods[i]
		}
	}
	return nil
}

// Day returns the day at index within the numbered period, or nil.
func (p *TrainingProgram) Day(periodNumber, dayIndex int) *Day {
	period := p.Period(periodNumber)
	if period == nil {
		return nil
	}
	for i := range period.Days {
		if period.Days[i].Index == dayIndex {
			return &period.Days[i]
		}
	}
	return nil
}

// ExerciseCount returns the number of prescribed exercises across all periods.
func (p *TrainingProgram) ExerciseCount() int {
	n := 0
	for _, period := range p.Periods {
		for _, d := range period.Days {
			n += len(d.Exercises)
		}
	}
	return n
}

// Clone returns a deep copy. User edits are applied to a clone, never to the
// assembled template.
func (p *TrainingProgram) Clone() *TrainingProgram {
	if p == nil {
		return nil
	}
	out := *p
	out.Periods = make([]Period, len(p.Periods))
	for i, period := range p.Periods {
		out.Periods[i] = period
		out.Periods[i].Days = make([]Day, len(period.Days))
		for j, d := range period.Days {
			out.Periods[i].Days[j] = d
			if d.Exercises != nil {
				out.Periods[i].Days[j].Exercises = append([]PrescribedExercise(nil), d.Exercises...)
			}
		}
	}
	return &out
}
