package repository

import (
	"context"

	"github.com/alexanderramin/mesoforge/internal/domain"
)

// ExerciseRepo stores the exercise catalog. Listings are ordered by name.
type ExerciseRepo interface {
	Create(ctx context.Context, e *domain.Exercise) error
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	GetByName(ctx context.Context, name string) (*domain.Exercise, error)
	List(ctx context.Context) ([]*domain.Exercise, error)
	ListByPrimaryMuscle(ctx context.Context, muscle string) ([]*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// ProgramRepo persists whole program trees. Create writes every period, day
// and prescription; List returns headers without periods.
type ProgramRepo interface {
	Create(ctx context.Context, p *domain.TrainingProgram) error
	GetByID(ctx context.Context, id string) (*domain.TrainingProgram, error)
	List(ctx context.Context) ([]*domain.TrainingProgram, error)
	Delete(ctx context.Context, id string) error
}

type SetLogRepo interface {
	Create(ctx context.Context, l *domain.SetLog) error
	ListByProgram(ctx context.Context, programID string) ([]*domain.SetLog, error)
	ListByDay(ctx context.Context, programID string, period, day int) ([]*domain.SetLog, error)
}
