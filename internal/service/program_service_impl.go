package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mesoforge/internal/assembler"
	"github.com/alexanderramin/mesoforge/internal/catalog"
	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/alexanderramin/mesoforge/internal/db"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/periodization"
	"github.com/alexanderramin/mesoforge/internal/repository"
	"github.com/google/uuid"
)

type programService struct {
	exercises repository.ExerciseRepo
	programs  repository.ProgramRepo
	goals     GoalLookup
	uow       db.UnitOfWork
	opts      assembler.Options
	observer  UseCaseObserver
	now       func() time.Time
}

func NewProgramService(
	exercises repository.ExerciseRepo,
	programs repository.ProgramRepo,
	goals GoalLookup,
	uow db.UnitOfWork,
	opts assembler.Options,
	observers ...UseCaseObserver,
) ProgramService {
	return &programService{
		exercises: exercises,
		programs:  programs,
		goals:     goals,
		uow:       uow,
		opts:      opts,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

// Generate snapshots the catalog, assembles the program and, unless DryRun is
// set, persists the whole tree in one transaction.
func (s *programService) Generate(ctx context.Context, req contract.GenerateProgramRequest) (resp *contract.GenerateProgramResponse, err error) {
	fields := map[string]any{
		"goal":      req.Goal,
		"frequency": req.Frequency,
		"dry_run":   req.DryRun,
	}
	defer observe(ctx, s.observer, "generate-program", time.Now(), fields, &err)

	areq, err := s.buildRequest(req)
	if err != nil {
		return nil, err
	}

	snap, err := catalog.Load(ctx, s.exercises)
	if err != nil {
		return nil, err
	}
	fields["catalog_size"] = snap.Len()

	prog, err := assembler.New(snap, s.opts).Assemble(areq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFrequency, err)
	}
	prog.ID = uuid.New().String()
	fields["program_id"] = prog.ID
	fields["exercise_count"] = prog.ExerciseCount()

	if !req.DryRun {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteProgramRepo(tx).Create(ctx, prog)
		})
		if err != nil {
			return nil, fmt.Errorf("saving program: %w", err)
		}
	}

	return &contract.GenerateProgramResponse{
		Program:   contract.NewProgramView(prog),
		Persisted: !req.DryRun,
	}, nil
}

func (s *programService) buildRequest(req contract.GenerateProgramRequest) (assembler.Request, error) {
	goal, ok := s.goals.Get(req.Goal)
	if !ok {
		return assembler.Request{}, fmt.Errorf("%w: %q", ErrUnknownGoal, req.Goal)
	}
	freq := domain.Frequency(req.Frequency)
	if _, err := periodization.LayoutFor(freq); err != nil {
		return assembler.Request{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, req.Frequency)
	}
	if req.Morphotype != "" && !domain.ValidMorphotypes[req.Morphotype] {
		return assembler.Request{}, invalidf("morphotype %q", req.Morphotype)
	}
	if err := validateRatios(req.Ratios); err != nil {
		return assembler.Request{}, err
	}

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}
	return assembler.Request{
		Goal:      goal,
		Frequency: freq,
		Sex:       domain.ParseSex(req.Sex),
		Equipment: domain.EquipmentContext{Equipment: req.Equipment, Brands: req.Brands},
		Profile:   contract.Profile(req.Morphotype, req.Ratios),
		Now:       now,
	}, nil
}

func validateRatios(r contract.Ratios) error {
	ratios := []struct {
		name  string
		value *float64
	}{
		{"femur_to_torso", r.FemurToTorso},
		{"humerus_to_torso", r.HumerusToTorso},
		{"tibia_to_femur", r.TibiaToFemur},
		{"shoulder_to_hip", r.ShoulderToHip},
	}
	for _, rt := range ratios {
		if rt.value != nil && *rt.value <= 0 {
			return invalidf("%s must be positive, got %.2f", rt.name, *rt.value)
		}
	}
	return nil
}

func (s *programService) GetByID(ctx context.Context, id string) (*domain.TrainingProgram, error) {
	return s.programs.GetByID(ctx, id)
}

func (s *programService) List(ctx context.Context) ([]*domain.TrainingProgram, error) {
	return s.programs.List(ctx)
}

func (s *programService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-program", time.Now(), map[string]any{"program_id": id}, &err)
	err = s.programs.Delete(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		err = fmt.Errorf("deleting program: %w", err)
	}
	return err
}
