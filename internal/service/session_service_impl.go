package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/mesoforge/internal/constraint"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/alexanderramin/mesoforge/internal/db"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/repository"
	"github.com/alexanderramin/mesoforge/internal/scheduler"
	"github.com/google/uuid"
)

type sessionService struct {
	programs repository.ProgramRepo
	setLogs  repository.SetLogRepo
	uow      db.UnitOfWork
	duration scheduler.DurationBounds
	observer UseCaseObserver
	now      func() time.Time
}

func NewSessionService(
	programs repository.ProgramRepo,
	setLogs repository.SetLogRepo,
	uow db.UnitOfWork,
	duration scheduler.DurationBounds,
	observers ...UseCaseObserver,
) SessionService {
	if duration == (scheduler.DurationBounds{}) {
		duration = scheduler.DefaultDurationBounds()
	}
	return &sessionService{
		programs: programs,
		setLogs:  setLogs,
		uow:      uow,
		duration: duration,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *sessionService) Brief(ctx context.Context, req contract.BriefRequest) (resp *contract.BriefResponse, err error) {
	fields := map[string]any{
		"readiness": req.Readiness,
		"phase":     req.Phase,
		"exercises": len(req.Exercises),
	}
	defer observe(ctx, s.observer, "session-brief", time.Now(), fields, &err)

	phase, err := parseBriefInputs(req.Readiness, req.Phase)
	if err != nil {
		return nil, err
	}
	b := constraint.GenerateBrief(req.Readiness, phase, contract.Profile("", req.Ratios), req.Exercises)
	out := contract.NewBriefResponse(b)
	fields["band"] = out.Band
	return &out, nil
}

func parseBriefInputs(readiness int, phase string) (domain.CyclePhase, error) {
	if readiness < 0 || readiness > 100 {
		return "", invalidf("readiness %d out of range 0-100", readiness)
	}
	if phase != "" && !domain.ValidCyclePhases[phase] {
		return "", invalidf("cycle phase %q", phase)
	}
	return domain.CyclePhase(phase), nil
}

// Plan returns one day of a stored program with the cycle-phase constraint
// applied to a copy: RPE is capped and sets are cut by the volume reduction,
// never below the per-exercise floor.
func (s *sessionService) Plan(ctx context.Context, req contract.SessionPlanRequest) (resp *contract.SessionPlanResponse, err error) {
	fields := map[string]any{
		"program_id": req.ProgramID,
		"period":     req.Period,
		"day":        req.Day,
		"phase":      req.Phase,
	}
	defer observe(ctx, s.observer, "plan-session", time.Now(), fields, &err)

	phase, err := parseBriefInputs(req.Readiness, req.Phase)
	if err != nil {
		return nil, err
	}

	stored, err := s.programs.GetByID(ctx, req.ProgramID)
	if err != nil {
		return nil, err
	}
	prog := stored.Clone()
	period := prog.Period(req.Period)
	day := prog.Day(req.Period, req.Day)
	if period == nil || day == nil {
		return nil, invalidf("program has no day %d in period %d", req.Day, req.Period)
	}

	cycle := constraint.EvaluateCyclePhaseConstraint(phase)
	if cycle != nil && !day.Rest {
		applyCycleConstraint(day, cycle, s.duration)
	}

	names := make([]string, len(day.Exercises))
	for i, e := range day.Exercises {
		names[i] = e.ExerciseName
	}
	brief := constraint.GenerateBrief(req.Readiness, phase, contract.Profile(string(prog.MorphotypeSnapshot), req.Ratios), names)

	return &contract.SessionPlanResponse{
		ProgramID:     prog.ID,
		Period:        period.Number,
		PeriodType:    string(period.Type),
		Day:           contract.NewDayView(*day),
		CycleAdjusted: cycle != nil && !day.Rest,
		Brief:         contract.NewBriefResponse(brief),
	}, nil
}

func applyCycleConstraint(day *domain.Day, c *constraint.CycleConstraint, bounds scheduler.DurationBounds) {
	day.SessionSets, day.PrioritySets, day.MaintenanceSets = 0, 0, 0
	blocks := make([]scheduler.SetBlock, 0, len(day.Exercises))
	for i := range day.Exercises {
		e := &day.Exercises[i]
		e.RPE = math.Min(e.RPE, c.MaxRPE)
		reduced := int(math.Round(float64(e.Sets) * (1 - c.VolumeReduction)))
		if reduced < scheduler.MinSetsPerExercise {
			reduced = min(e.Sets, scheduler.MinSetsPerExercise)
		}
		e.Sets = reduced

		day.SessionSets += e.Sets
		if e.IsPriority {
			day.PrioritySets += e.Sets
		} else {
			day.MaintenanceSets += e.Sets
		}
		blocks = append(blocks, scheduler.SetBlock{Sets: e.Sets, RestSeconds: e.RestSeconds})
	}
	day.EstimatedMinutes = scheduler.EstimateMinutes(blocks, bounds)
}

// LogSet records a performed set. A velocity loss above the fatigue limit
// trips the kill switch and the set is stored as autostopped.
func (s *sessionService) LogSet(ctx context.Context, req contract.LogSetRequest) (resp *contract.LogSetResponse, err error) {
	fields := map[string]any{
		"program_id": req.ProgramID,
		"period":     req.Period,
		"day":        req.Day,
		"order":      req.ExerciseOrder,
	}
	defer observe(ctx, s.observer, "log-set", time.Now(), fields, &err)

	loggedAt := s.now().UTC()
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}
	l := &domain.SetLog{
		ID:              uuid.New().String(),
		ProgramID:       req.ProgramID,
		PeriodNumber:    req.Period,
		DayIndex:        req.Day,
		ExerciseOrder:   req.ExerciseOrder,
		SetNumber:       req.SetNumber,
		Reps:            req.Reps,
		RPE:             req.RPE,
		VelocityLossPct: req.VelocityLossPct,
		LoggedAt:        loggedAt,
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if l.VelocityLossPct != nil {
		l.Autostopped = constraint.EvaluateFatigueKillSwitch(*l.VelocityLossPct)
	}
	fields["autostopped"] = l.Autostopped

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		prog, err := repository.NewSQLiteProgramRepo(tx).GetByID(ctx, l.ProgramID)
		if err != nil {
			return err
		}
		if !hasPrescription(prog, l.PeriodNumber, l.DayIndex, l.ExerciseOrder) {
			return invalidf("no exercise %d on day %d of period %d", l.ExerciseOrder, l.DayIndex, l.PeriodNumber)
		}
		return repository.NewSQLiteSetLogRepo(tx).Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	resp = &contract.LogSetResponse{ID: l.ID, Autostopped: l.Autostopped}
	if l.Autostopped {
		resp.Actions = contract.KillSwitchActionNames()
	}
	return resp, nil
}

func hasPrescription(p *domain.TrainingProgram, period, day, order int) bool {
	d := p.Day(period, day)
	if d == nil {
		return false
	}
	for _, e := range d.Exercises {
		if e.Order == order {
			return true
		}
	}
	return false
}

func (s *sessionService) ListSets(ctx context.Context, programID string, period, day int) ([]*domain.SetLog, error) {
	return s.setLogs.ListByDay(ctx, programID, period, day)
}
