package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/mesoforge/internal/assembler"
	"github.com/alexanderramin/mesoforge/internal/cli"
	"github.com/alexanderramin/mesoforge/internal/config"
	"github.com/alexanderramin/mesoforge/internal/db"
	"github.com/alexanderramin/mesoforge/internal/goals"
	"github.com/alexanderramin/mesoforge/internal/repository"
	"github.com/alexanderramin/mesoforge/internal/scheduler"
	"github.com/alexanderramin/mesoforge/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file is optional; env overrides apply either way.
	cfg, err := config.Load(os.Getenv("MESOFORGE_CONFIG"))
	if err != nil {
		return err
	}
	logger := cfg.Log.NewLogger(os.Stderr)

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	registry, err := goals.Load(cfg.Goals.File)
	if err != nil {
		return err
	}

	// Wire repositories
	exerciseRepo := repository.NewSQLiteExerciseRepo(database)
	programRepo := repository.NewSQLiteProgramRepo(database)
	setLogRepo := repository.NewSQLiteSetLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(logger)
	bounds := scheduler.DurationBounds{
		WarmupMinutes: cfg.Synthesis.WarmupMinutes,
		MaxMinutes:    cfg.Synthesis.MaxSessionMinutes,
	}
	opts := assembler.Options{PriorityRatio: cfg.Synthesis.PriorityRatio, Duration: bounds}

	app := &cli.App{
		Programs:      service.NewProgramService(exerciseRepo, programRepo, registry, uow, opts, observer),
		Sessions:      service.NewSessionService(programRepo, setLogRepo, uow, bounds, observer),
		Catalog:       service.NewCatalogService(exerciseRepo, uow, observer),
		Goals:         service.NewGoalService(registry),
		PriorityRatio: cfg.Synthesis.PriorityRatio,
		ServerAddr:    cfg.Server.Addr(),
		Logger:        logger,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
