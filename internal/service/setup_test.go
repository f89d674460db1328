package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/mesoforge/internal/assembler"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/alexanderramin/mesoforge/internal/db"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/goals"
	"github.com/alexanderramin/mesoforge/internal/repository"
	"github.com/alexanderramin/mesoforge/internal/scheduler"
	"github.com/alexanderramin/mesoforge/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Thursday; programs generated at it start on 2026-10-19.
var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type serviceEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	exercises *repository.SQLiteExerciseRepo
	programs  *repository.SQLiteProgramRepo
	setLogs   *repository.SQLiteSetLogRepo
	goals     *goals.Registry
}

func newServiceEnv(t *testing.T) serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := serviceEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		exercises: repository.NewSQLiteExerciseRepo(database),
		programs:  repository.NewSQLiteProgramRepo(database),
		setLogs:   repository.NewSQLiteSetLogRepo(database),
	}
	reg, err := goals.Builtin()
	require.NoError(t, err)
	env.goals = reg

	ctx := context.Background()
	for _, e := range testutil.SampleCatalog() {
		require.NoError(t, env.exercises.Create(ctx, e))
	}
	return env
}

func (e serviceEnv) programService(uow db.UnitOfWork, observers ...UseCaseObserver) ProgramService {
	return NewProgramService(e.exercises, e.programs, e.goals, uow, assembler.Options{}, observers...)
}

func (e serviceEnv) sessionService(observers ...UseCaseObserver) SessionService {
	return NewSessionService(e.programs, e.setLogs, e.uow, scheduler.DefaultDurationBounds(), observers...)
}

func generateRequest(goal, freq, sex string) contract.GenerateProgramRequest {
	req := contract.NewGenerateProgramRequest(goal, freq, sex)
	now := fixedNow
	req.Now = &now
	return req
}

// generateProgram persists a v_taper three-day program and returns it as
// stored.
func (e serviceEnv) generateProgram(t *testing.T) *domain.TrainingProgram {
	t.Helper()
	ctx := context.Background()
	resp, err := e.programService(e.uow).Generate(ctx, generateRequest("v_taper", "3_full_body", "male"))
	require.NoError(t, err)
	prog, err := e.programs.GetByID(ctx, resp.Program.ID)
	require.NoError(t, err)
	return prog
}

// firstTrainingDay returns the index of the first day in the period that
// holds prescriptions.
func firstTrainingDay(t *testing.T, p *domain.TrainingProgram, period int) *domain.Day {
	t.Helper()
	per := p.Period(period)
	require.NotNil(t, per)
	for i := range per.Days {
		if !per.Days[i].Rest && len(per.Days[i].Exercises) > 0 {
			return &per.Days[i]
		}
	}
	t.Fatalf("period %d has no training day", period)
	return nil
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) Events() []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]UseCaseEvent(nil), r.events...)
}
