package contract

import (
	"time"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

// Ratios carries optional limb-ratio measurements. Nil means not measured.
type Ratios struct {
	FemurToTorso   *float64 `json:"femur_to_torso,omitempty"`
	HumerusToTorso *float64 `json:"humerus_to_torso,omitempty"`
	TibiaToFemur   *float64 `json:"tibia_to_femur,omitempty"`
	ShoulderToHip  *float64 `json:"shoulder_to_hip,omitempty"`
}

// Empty reports whether no ratio is set.
func (r Ratios) Empty() bool {
	return r.FemurToTorso == nil && r.HumerusToTorso == nil && r.TibiaToFemur == nil && r.ShoulderToHip == nil
}

// Profile builds the anatomical profile for a morphotype and ratios, or nil
// when neither is given.
func Profile(morphotype string, r Ratios) *domain.AnatomicalProfile {
	if morphotype == "" && r.Empty() {
		return nil
	}
	return &domain.AnatomicalProfile{
		FemurToTorso:   r.FemurToTorso,
		HumerusToTorso: r.HumerusToTorso,
		TibiaToFemur:   r.TibiaToFemur,
		ShoulderToHip:  r.ShoulderToHip,
		Morphotype:     domain.Morphotype(morphotype),
	}
}

// GenerateProgramRequest is the input to program synthesis.
type GenerateProgramRequest struct {
	Goal       string   `json:"goal"`
	Frequency  string   `json:"frequency"`
	Sex        string   `json:"sex"`
	Equipment  []string `json:"equipment,omitempty"`
	Brands     []string `json:"brands,omitempty"`
	Morphotype string   `json:"morphotype,omitempty"`
	Ratios     Ratios   `json:"ratios"`

	// DryRun assembles without persisting.
	DryRun bool `json:"dry_run,omitempty"`

	// Now overrides the clock used for the start date. Nil uses wall time.
	Now *time.Time `json:"-"`
}

// NewGenerateProgramRequest returns a request with no equipment
// restrictions and no anatomical data.
func NewGenerateProgramRequest(goal, frequency, sex string) GenerateProgramRequest {
	return GenerateProgramRequest{
		Goal:      goal,
		Frequency: frequency,
		Sex:       sex,
	}
}

type GenerateProgramResponse struct {
	Program   *ProgramView `json:"program"`
	Persisted bool         `json:"persisted"`
}

// ProgramSummary is a program header for listings.
type ProgramSummary struct {
	ID         string    `json:"id"`
	GoalID     string    `json:"goal_id"`
	GoalName   string    `json:"goal_name"`
	Frequency  string    `json:"frequency"`
	Sex        string    `json:"sex"`
	Morphotype string    `json:"morphotype,omitempty"`
	WeeklySets int       `json:"weekly_sets"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewProgramSummary(p *domain.TrainingProgram) ProgramSummary {
	return ProgramSummary{
		ID:         p.ID,
		GoalID:     p.GoalID,
		GoalName:   p.GoalName,
		Frequency:  string(p.Frequency),
		Sex:        string(p.Sex),
		Morphotype: string(p.MorphotypeSnapshot),
		WeeklySets: p.WeeklySets,
		StartDate:  p.StartDate.Format(DateLayout),
		EndDate:    p.EndDate.Format(DateLayout),
		CreatedAt:  p.CreatedAt,
	}
}

// DateLayout is the calendar-date format used on the wire.
const DateLayout = "2006-01-02"

type ProgramView struct {
	ProgramSummary
	ExerciseCount int          `json:"exercise_count"`
	Periods       []PeriodView `json:"periods"`
}

type PeriodView struct {
	Number            int       `json:"number"`
	Type              string    `json:"type"`
	VolumeModifier    float64   `json:"volume_modifier"`
	IntensityModifier float64   `json:"intensity_modifier"`
	StartDate         string    `json:"start_date"`
	Days              []DayView `json:"days"`
}

type DayView struct {
	Index            int            `json:"index"`
	Label            string         `json:"label"`
	Rest             bool           `json:"rest"`
	SessionSets      int            `json:"session_sets"`
	PrioritySets     int            `json:"priority_sets"`
	MaintenanceSets  int            `json:"maintenance_sets"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Exercises        []ExerciseView `json:"exercises"`
}

type ExerciseView struct {
	Order                 int     `json:"order"`
	ExerciseID            string  `json:"exercise_id"`
	Name                  string  `json:"name"`
	Muscle                string  `json:"muscle"`
	Sets                  int     `json:"sets"`
	RepRange              string  `json:"rep_range"`
	RPE                   float64 `json:"rpe"`
	RestSeconds           int     `json:"rest_seconds"`
	Tempo                 string  `json:"tempo"`
	IsPriority            bool    `json:"is_priority"`
	Why                   string  `json:"why"`
	PriorityJustification string  `json:"priority_justification,omitempty"`
}

// NewProgramView converts the program tree for output. A nil program yields
// nil.
func NewProgramView(p *domain.TrainingProgram) *ProgramView {
	if p == nil {
		return nil
	}
	v := &ProgramView{
		ProgramSummary: NewProgramSummary(p),
		ExerciseCount:  p.ExerciseCount(),
		Periods:        make([]PeriodView, 0, len(p.Periods)),
	}
	for _, period := range p.Periods {
		v.Periods = append(v.Periods, NewPeriodView(period))
	}
	return v
}

func NewPeriodView(p domain.Period) PeriodView {
	v := PeriodView{
		Number:            p.Number,
		Type:              string(p.Type),
		VolumeModifier:    p.VolumeModifier,
		IntensityModifier: p.IntensityModifier,
		StartDate:         p.StartDate.Format(DateLayout),
		Days:              make([]DayView, 0, len(p.Days)),
	}
	for _, d := range p.Days {
		v.Days = append(v.Days, NewDayView(d))
	}
	return v
}

func NewDayView(d domain.Day) DayView {
	v := DayView{
		Index:            d.Index,
		Label:            string(d.Label),
		Rest:             d.Rest,
		SessionSets:      d.SessionSets,
		PrioritySets:     d.PrioritySets,
		MaintenanceSets:  d.MaintenanceSets,
		EstimatedMinutes: d.EstimatedMinutes,
		Exercises:        make([]ExerciseView, 0, len(d.Exercises)),
	}
	for _, e := range d.Exercises {
		v.Exercises = append(v.Exercises, NewExerciseView(e))
	}
	return v
}

func NewExerciseView(e domain.PrescribedExercise) ExerciseView {
	return ExerciseView{
		Order:                 e.Order,
		ExerciseID:            e.ExerciseID,
		Name:                  e.ExerciseName,
		Muscle:                e.Muscle,
		Sets:                  e.Sets,
		RepRange:              e.RepRange,
		RPE:                   e.RPE,
		RestSeconds:           e.RestSeconds,
		Tempo:                 e.Tempo,
		IsPriority:            e.IsPriority,
		Why:                   e.Why,
		PriorityJustification: e.PriorityJustification,
	}
}
