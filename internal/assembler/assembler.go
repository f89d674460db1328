// Package assembler builds a complete TrainingProgram from a goal, a
// frequency and a catalog snapshot.
package assembler

import (
	"time"

	"github.com/alexanderramin/mesoforge/internal/catalog"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/periodization"
	"github.com/alexanderramin/mesoforge/internal/scheduler"
	"github.com/alexanderramin/mesoforge/internal/selector"
)

// Options tune allocation and duration. Zero values fall back to defaults.
type Options struct {
	PriorityRatio float64
	Duration      scheduler.DurationBounds
}

func (o Options) withDefaults() Options {
	if o.PriorityRatio <= 0 || o.PriorityRatio > 1 {
		o.PriorityRatio = scheduler.DefaultPriorityRatio
	}
	if o.Duration == (scheduler.DurationBounds{}) {
		o.Duration = scheduler.DefaultDurationBounds()
	}
	return o
}

// Request carries the user inputs for one synthesis call.
type Request struct {
	Goal      domain.GoalArchetype
	Frequency domain.Frequency
	Sex       domain.Sex
	Equipment domain.EquipmentContext
	Profile   *domain.AnatomicalProfile
	Now       time.Time
}

type Assembler struct {
	catalog catalog.Reader
	opts    Options
}

func New(reader catalog.Reader, opts Options) *Assembler {
	return &Assembler{catalog: reader, opts: opts.withDefaults()}
}

// Assemble builds the whole program in memory. Missing catalog data yields
// sparser days, never an error; the only error is an unknown frequency.
func (a *Assembler) Assemble(req Request) (*domain.TrainingProgram, error) {
	layout, err := periodization.LayoutFor(req.Frequency)
	if err != nil {
		return nil, err
	}

	sel := selector.New(a.catalog, selector.NewExclusionRules(req.Goal, req.Sex))
	priority := sel.SelectExercises(req.Goal.PriorityMuscles, true, req.Equipment, req.Profile)
	maintenance := sel.SelectExercises(req.Goal.MaintenanceMuscles, false, req.Equipment, req.Profile)

	trainingDays := layout.TrainingDays()
	labels := make([]domain.DayLabel, len(trainingDays))
	for i, d := range trainingDays {
		labels[i] = layout.Labels[d]
	}
	priorityByDay := scheduler.Distribute(musclesOf(priority), labels)
	maintenanceByDay := scheduler.Distribute(musclesOf(maintenance), labels)

	start := periodization.NextMonday(req.Now)
	periods := periodization.Plan(layout, start)
	for pi := range periods {
		period := &periods[pi]
		alloc := scheduler.AllocateSession(req.Goal.WeeklySets, layout.DaysPerWeek(), period.VolumeModifier, a.opts.PriorityRatio)
		for k, dayIndex := range trainingDays {
			a.fillDay(&period.Days[dayIndex], period.Type, alloc, req,
				pick(priority, priorityByDay[k]), pick(maintenance, maintenanceByDay[k]))
		}
	}

	prog := &domain.TrainingProgram{
		GoalID:     req.Goal.ID,
		GoalName:   req.Goal.Name,
		Frequency:  req.Frequency,
		Sex:        req.Sex,
		WeeklySets: req.Goal.WeeklySets,
		StartDate:  start,
		EndDate:    periodization.EndDate(start),
		Periods:    periods,
		CreatedAt:  req.Now.UTC(),
	}
	if req.Profile != nil {
		prog.MorphotypeSnapshot = req.Profile.Morphotype
	}
	return prog, nil
}

type indexedSelection struct {
	seq int
	selector.Selection
}

func (a *Assembler) fillDay(day *domain.Day, periodType domain.PeriodType, alloc scheduler.SessionAllocation, req Request, prio, maint []indexedSelection) {
	if len(prio) == 0 && len(maint) == 0 {
		day.Rest = true
		return
	}

	prioSets := scheduler.SetsPerExercise(alloc.PrioritySets, len(prio))
	maintSets := scheduler.SetsPerExercise(alloc.MaintenanceSets, len(maint))

	slots := make([]scheduler.Slot, 0, len(prio)+len(maint))
	bySlot := make(map[scheduler.Slot]indexedSelection, cap(slots))
	for _, group := range [][]indexedSelection{prio, maint} {
		for _, s := range group {
			slot := scheduler.Slot{
				ExerciseID: s.Exercise.ID,
				Name:       s.Exercise.Name,
				Muscle:     s.Muscle,
				Priority:   s.IsPriority,
				Secondary:  s.Secondary,
				Sequence:   s.seq,
			}
			slots = append(slots, slot)
			bySlot[slot] = s
		}
	}
	scheduler.CanonicalSort(slots)

	day.SessionSets = alloc.SessionSets
	day.PrioritySets = alloc.PrioritySets
	day.MaintenanceSets = alloc.MaintenanceSets

	blocks := make([]scheduler.SetBlock, 0, len(slots))
	for order, slot := range slots {
		s := bySlot[slot]
		sets := maintSets
		if s.IsPriority {
			sets = prioSets
		}
		pe := domain.PrescribedExercise{
			ExerciseID:            s.Exercise.ID,
			ExerciseName:          s.Exercise.Name,
			Muscle:                s.Muscle,
			Order:                 order + 1,
			Sets:                  sets,
			RepRange:              repRange(s.IsPriority),
			RPE:                   TargetRPE(periodType),
			RestSeconds:           restSeconds(s.IsPriority),
			Tempo:                 tempo(periodType),
			IsPriority:            s.IsPriority,
			Why:                   why(s.Selection, periodType, req.Profile),
			PriorityJustification: priorityJustification(req.Goal, s.Muscle, s.IsPriority, a.opts.PriorityRatio),
		}
		day.Exercises = append(day.Exercises, pe)
		blocks = append(blocks, scheduler.SetBlock{Sets: pe.Sets, RestSeconds: pe.RestSeconds})
	}
	day.EstimatedMinutes = scheduler.EstimateMinutes(blocks, a.opts.Duration)
}

func musclesOf(sel []selector.Selection) []string {
	out := make([]string, len(sel))
	for i, s := range sel {
		out[i] = s.Muscle
	}
	return out
}

func pick(sel []selector.Selection, idx []int) []indexedSelection {
	out := make([]indexedSelection, 0, len(idx))
	for _, i := range idx {
		out = append(out, indexedSelection{seq: i, Selection: sel[i]})
	}
	return out
}

