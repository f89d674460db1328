package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mesoforge/internal/contract"
	"github.com/alexanderramin/mesoforge/internal/db"
	"github.com/alexanderramin/mesoforge/internal/domain"
	"github.com/alexanderramin/mesoforge/internal/importer"
	"github.com/alexanderramin/mesoforge/internal/repository"
)

type catalogService struct {
	exercises repository.ExerciseRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewCatalogService(exercises repository.ExerciseRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		exercises: exercises,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Import(ctx context.Context, filePath string) (*contract.ImportResult, error) {
	schema, err := importer.LoadCatalogSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema inserts every entry or none. Names already in the catalog are
// rejected.
func (s *catalogService) ImportSchema(ctx context.Context, schema *importer.CatalogSchema) (result *contract.ImportResult, err error) {
	fields := map[string]any{"entries": len(schema.Exercises)}
	defer observe(ctx, s.observer, "import-catalog", time.Now(), fields, &err)

	if errs := importer.ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors("catalog", errs)
	}
	exercises := importer.Convert(schema)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteExerciseRepo(tx)
		for _, e := range exercises {
			existing, err := repo.GetByName(ctx, e.Name)
			switch {
			case err == nil:
				return invalidf("exercise %q already exists (id %s)", e.Name, existing.ID)
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}
			if err := repo.Create(ctx, e); err != nil {
				return fmt.Errorf("creating exercise %q: %w", e.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &contract.ImportResult{Imported: len(exercises), Names: make([]string, len(exercises))}
	for i, e := range exercises {
		result.Names[i] = e.Name
	}
	return result, nil
}

func (s *catalogService) List(ctx context.Context, muscle string) ([]*domain.Exercise, error) {
	if muscle == "" {
		return s.exercises.List(ctx)
	}
	return s.exercises.ListByPrimaryMuscle(ctx, muscle)
}
