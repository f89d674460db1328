package testutil

import (
	"time"

	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/google/uuid"
)

// Exercise options
type ExerciseOption func(*domain.Exercise)

func WithEquipment(t string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.EquipmentType = t
	}
}

func WithCategory(c string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Category = c
	}
}

func WithStretchBonus() ExerciseOption {
	return func(e *domain.Exercise) {
		e.StretchBonus = true
	}
}

func WithTags(tags ...string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Tags = tags
	}
}

func WithSecondary(muscles ...string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.SecondaryMuscles = muscles
	}
}

func WithMachine(brand, profile string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.EquipmentType = "machine"
		e.Machine = &domain.MachineSpec{ExerciseID: e.ID, Brand: brand, ResistanceProfile: profile}
	}
}

func NewTestExercise(name, muscle string, opts ...ExerciseOption) *domain.Exercise {
	now := time.Now().UTC()
	e := &domain.Exercise{
		ID:            uuid.New().String(),
		Name:          name,
		Category:      "strength",
		PrimaryMuscle: muscle,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Goal options
type GoalOption func(*domain.GoalArchetype)

func WithBanned(fragments ...string) GoalOption {
	return func(g *domain.GoalArchetype) {
		g.BannedFragments = fragments
	}
}

func WithFemaleBanned(fragments ...string) GoalOption {
	return func(g *domain.GoalArchetype) {
		g.FemaleBannedFragments = fragments
	}
}

func WithWeeklySets(n int) GoalOption {
	return func(g *domain.GoalArchetype) {
		g.WeeklySets = n
	}
}

func NewTestGoal(id string, priority, maintenance []string, opts ...GoalOption) domain.GoalArchetype {
	g := domain.GoalArchetype{
		ID:                 id,
		Name:               id,
		PriorityMuscles:    priority,
		MaintenanceMuscles: maintenance,
		WeeklySets:         60,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// SetLog options
type SetLogOption func(*domain.SetLog)

func WithRPE(v float64) SetLogOption {
	return func(l *domain.SetLog) {
		l.RPE = &v
	}
}

func WithVelocityLoss(v float64) SetLogOption {
	return func(l *domain.SetLog) {
		l.VelocityLossPct = &v
	}
}

func NewTestSetLog(programID string, period, day, order, set, reps int, opts ...SetLogOption) *domain.SetLog {
	l := &domain.SetLog{
		ID:            uuid.New().String(),
		ProgramID:     programID,
		PeriodNumber:  period,
		DayIndex:      day,
		ExerciseOrder: order,
		SetNumber:     set,
		Reps:          reps,
		LoggedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SampleCatalog returns a small catalog covering every region, with tagged
// and untagged entries, one branded machine and a few banned movements.
func SampleCatalog() []*domain.Exercise {
	return []*domain.Exercise{
		NewTestExercise("Barbell Bench Press", "chest", WithEquipment("barbell"), WithTags("barbell_bench")),
		NewTestExercise("Dumbbell Bench Press", "chest", WithEquipment("dumbbell"), WithStretchBonus()),
		NewTestExercise("Cable Fly", "chest", WithEquipment("cable"), WithStretchBonus()),
		NewTestExercise("Overhead Press", "shoulders", WithEquipment("barbell"), WithTags("overhead_barbell")),
		NewTestExercise("Dumbbell Lateral Raise", "shoulders", WithEquipment("dumbbell")),
		NewTestExercise("Machine Shoulder Press", "shoulders", WithMachine("Hammer Strength", "ascending")),
		NewTestExercise("Lat Pulldown", "lats", WithEquipment("cable")),
		NewTestExercise("Pull Up", "lats", WithEquipment("bodyweight"), WithStretchBonus()),
		NewTestExercise("Chest Supported Row", "back", WithEquipment("machine")),
		NewTestExercise("Barbell Row", "back", WithEquipment("barbell")),
		NewTestExercise("Face Pull", "rear delts", WithEquipment("cable")),
		NewTestExercise("Incline Dumbbell Curl", "biceps", WithEquipment("dumbbell"), WithStretchBonus()),
		NewTestExercise("Overhead Cable Extension", "triceps", WithEquipment("cable"), WithStretchBonus()),
		NewTestExercise("Back Squat", "quads", WithEquipment("barbell"), WithTags("squat", "back_squat")),
		NewTestExercise("Leg Press", "quads", WithEquipment("machine")),
		NewTestExercise("Bulgarian Split Squat", "quads", WithEquipment("dumbbell"), WithStretchBonus()),
		NewTestExercise("Romanian Deadlift", "hamstrings", WithEquipment("barbell"), WithStretchBonus()),
		NewTestExercise("Lying Leg Curl", "hamstrings", WithEquipment("machine")),
		NewTestExercise("Barbell Hip Thrust", "glutes", WithEquipment("barbell")),
		NewTestExercise("Cable Kickback", "glutes", WithEquipment("cable")),
		NewTestExercise("Standing Calf Raise", "calves", WithEquipment("machine"), WithStretchBonus()),
		NewTestExercise("Barbell Shrug", "traps", WithEquipment("barbell")),
		NewTestExercise("Dumbbell Side Bend", "obliques", WithEquipment("dumbbell")),
		NewTestExercise("Pallof Press", "core", WithEquipment("cable")),
	}
}
