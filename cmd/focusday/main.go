package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/focusday/internal/calendar"
	"github.com/alexanderramin/focusday/internal/cli"
	"github.com/alexanderramin/focusday/internal/config"
	"github.com/alexanderramin/focusday/internal/db"
	"github.com/alexanderramin/focusday/internal/repository"
	"github.com/alexanderramin/focusday/internal/service"
	"github.com/mattn/go-isatty"
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
		return fmt.Errorf("loading config: %w", err)
	}

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("preparing config directory: %w", err)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	prefsRepo := repository.NewSQLitePrefsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the calendar client when a source is configured.
	var fetcher service.BusyFetcher
	if cfg.Calendar.Enabled && len(cfg.Calendar.Sources) > 0 {
		gateway := calendar.NewICSGateway(cfg.Calendar.Sources)
		retryCfg := calendar.RetryConfig{
			MaxAttempts: cfg.Retry.MaxAttempts,
			BaseDelay:   time.Duration(cfg.Retry.BaseDelayMs) * time.Millisecond,
			MaxDelay:    time.Duration(cfg.Retry.MaxDelayMs) * time.Millisecond,
			JitterMax:   time.Duration(cfg.Retry.JitterMaxMs) * time.Millisecond,
		}
		var observer calendar.Observer = calendar.NoopObserver{}
		if os.Getenv("FOCUSDAY_DEBUG") != "" {
			observer = calendar.NewLogObserver(os.Stderr)
		}
		fetcher = calendar.NewRetryClient(gateway, retryCfg, observer)
	}

	var observers []service.UseCaseObserver
	if os.Getenv("FOCUSDAY_DEBUG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Plan:     service.NewPlanService(taskRepo, depRepo, prefsRepo, fetcher, observers...),
		Tasks:    service.NewTaskService(taskRepo, depRepo, uow, observers...),
		Prefs:    service.NewPrefsService(prefsRepo, observers...),
		Calendar: fetcher,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
