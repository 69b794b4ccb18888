package main

import (
	"fmt"
	"os"

	"github.com/felixgrant/punchcard/internal/cli"
	"github.com/felixgrant/punchcard/internal/config"
	"github.com/felixgrant/punchcard/internal/db"
	"github.com/felixgrant/punchcard/internal/repository"
	"github.com/felixgrant/punchcard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger := service.NewLogger(os.Stderr, cfg.LogLevel)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Attendance: service.NewAttendanceService(eventRepo, userRepo, categoryRepo, uow, logger),
		Categories: service.NewCategoryService(categoryRepo, logger),
		Reports:    service.NewReportService(eventRepo, userRepo, categoryRepo, cfg.Location, logger),
		Config:     cfg,
		Logger:     logger,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
