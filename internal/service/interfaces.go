package service

import (
	"context"

	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/importer"
)

// GoalLookup resolves goal archetypes by id.
type GoalLookup interface {
	Get(id string) (domain.GoalArchetype, bool)
	List() []domain.GoalArchetype
}

type ProgramService interface {
	Generate(ctx context.Context, req contract.GenerateProgramRequest) (*contract.GenerateProgramResponse, error)
	GetByID(ctx context.Context, id string) (*domain.TrainingProgram, error)
	List(ctx context.Context) ([]*domain.TrainingProgram, error)
	Delete(ctx context.Context, id string) error
}

type SessionService interface {
	Brief(ctx context.Context, req contract.BriefRequest) (*contract.BriefResponse, error)
	Plan(ctx context.Context, req contract.SessionPlanRequest) (*contract.SessionPlanResponse, error)
	LogSet(ctx context.Context, req contract.LogSetRequest) (*contract.LogSetResponse, error)
	ListSets(ctx context.Context, programID string, period, day int) ([]*domain.SetLog, error)
}

type CatalogService interface {
	Import(ctx context.Context, filePath string) (*contract.ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.CatalogSchema) (*contract.ImportResult, error)
	List(ctx context.Context, muscle string) ([]*domain.Exercise, error)
}

type GoalService interface {
	List(ctx context.Context) []domain.GoalArchetype
}
