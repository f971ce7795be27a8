package cli

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starlanes-go/internal/adapters/metrics"
	"github.com/andrescamacho/starlanes-go/internal/adapters/persistence"
	"github.com/andrescamacho/starlanes-go/internal/application/common"
	"github.com/andrescamacho/starlanes-go/internal/application/setup"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/config"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/database"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/logging"
)

// app is the per-invocation container: config, database, logger and a mediator
// with every handler registered.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	logger   *logging.Logger
	mediator common.Mediator
	engines  *common.Engines
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Close()
		database.Close(db)
		return nil, err
	}

	var commandMetrics *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		commandMetrics = metrics.NewCommandMetricsCollector()
		turnMetrics := metrics.NewTurnMetricsCollector()
		if err := errors.Join(commandMetrics.Register(), turnMetrics.Register()); err != nil {
			logger.Close()
			database.Close(db)
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		metrics.SetGlobalTurnCollector(turnMetrics)
	}

	engines := common.NewEngines(cfg.Game.Rules(), cfg.Game.Governor(), galaxy.NewRadialHabitability())
	repo := persistence.NewGormGameRepository(db)

	registry := setup.NewHandlerRegistry(repo, engines)
	m, err := registry.CreateConfiguredMediator(metrics.PrometheusMiddleware(commandMetrics))
	if err != nil {
		logger.Close()
		database.Close(db)
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return &app{cfg: cfg, db: db, logger: logger, mediator: m, engines: engines}, nil
}

// send dispatches a request with the app logger on the context
func (a *app) send(request common.Request) (common.Response, error) {
	ctx := common.WithLogger(context.Background(), a.logger)
	return a.mediator.Send(ctx, request)
}

// close flushes metrics and releases the database and log file
func (a *app) close() {
	if a.cfg.Metrics.Enabled {
		if err := metrics.WriteTextfile(a.cfg.Metrics.TextfilePath); err != nil {
			a.logger.Log("WARN", "Metrics export failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if err := database.Close(a.db); err != nil {
		a.logger.Log("WARN", "Database close failed", map[string]interface{}{"error": err.Error()})
	}
	a.logger.Close()
}

// withApp runs fn against a fresh container and closes it afterwards
func withApp(fn func(a *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}
