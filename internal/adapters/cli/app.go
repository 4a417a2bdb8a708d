package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"gorm.io/gorm"

	"github.com/andrescamacho/prun-cogm/internal/adapters/fio"
	"github.com/andrescamacho/prun-cogm/internal/adapters/metrics"
	"github.com/andrescamacho/prun-cogm/internal/adapters/persistence"
	"github.com/andrescamacho/prun-cogm/internal/application/cost/queries"
	"github.com/andrescamacho/prun-cogm/internal/application/logging"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/market"
	"github.com/andrescamacho/prun-cogm/internal/infrastructure/config"
	"github.com/andrescamacho/prun-cogm/internal/infrastructure/database"
)

// app is the wiring shared by every command that talks to the engine
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	mediator mediator.Mediator
	logger   logging.Logger
	logFile  *os.File
}

// newApp loads configuration, applies global flag overrides, connects to
// the catalog database and registers the cost queries.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlagOverrides(cfg); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	logOutput, err := a.openLogOutput()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	a.logger = logging.NewStdLogger(logOutput, level, cfg.Logging.Format)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db

	a.mediator = mediator.NewMediator()
	a.mediator.RegisterMiddleware(logging.Middleware())
	if cfg.Metrics.Enabled {
		requestCollector, err := initMetrics()
		if err != nil {
			a.Close()
			return nil, err
		}
		a.mediator.RegisterMiddleware(metrics.PrometheusMiddleware(requestCollector))
	}

	err = queries.RegisterHandlers(a.mediator, queries.Dependencies{
		Catalog:         persistence.NewCatalogRepository(db),
		Planets:         persistence.NewPlanetRepository(db),
		Workforce:       persistence.NewWorkforceRepository(db),
		Prices:          a.priceRepository(),
		DaysSinceRepair: *cfg.Pricing.DaysSinceRepair,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return a, nil
}

// applyFlagOverrides lets global flags win over file and environment
// settings, then revalidates.
func applyFlagOverrides(cfg *config.Config) error {
	if exchangeCode != "" {
		cfg.Pricing.Exchange = exchangeCode
	}
	if priceSource != "" {
		cfg.Pricing.Source = priceSource
	}
	if metricsEnabled {
		cfg.Metrics.Enabled = true
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (a *app) openLogOutput() (io.Writer, error) {
	switch a.cfg.Logging.Output {
	case "stdout":
		return os.Stdout, nil
	case "file":
		f, err := os.OpenFile(a.cfg.Logging.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		return f, nil
	default:
		return os.Stderr, nil
	}
}

func (a *app) priceRepository() market.PriceRepository {
	if a.cfg.Pricing.Source == config.PriceSourceFIO {
		return fio.NewClient(fio.Config{
			BaseURL:           a.cfg.FIO.BaseURL,
			Timeout:           a.cfg.FIO.Timeout,
			RequestsPerSecond: a.cfg.FIO.RateLimit.Requests,
			Burst:             a.cfg.FIO.RateLimit.Burst,
			CacheTTL:          a.cfg.FIO.CacheTTL,
		})
	}
	return persistence.NewExchangePriceRepository(a.db)
}

// initMetrics creates the registry and the collectors
func initMetrics() (*metrics.RequestMetricsCollector, error) {
	metrics.InitRegistry()

	costCollector := metrics.NewCostMetricsCollector()
	if err := costCollector.Register(); err != nil {
		return nil, fmt.Errorf("failed to register cost metrics: %w", err)
	}
	metrics.SetGlobalCostCollector(costCollector)

	requestCollector := metrics.NewRequestMetricsCollector()
	if err := requestCollector.Register(); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}
	return requestCollector, nil
}

// send dispatches a query with the logger attached to the context
func (a *app) send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return a.mediator.Send(logging.WithLogger(ctx, a.logger), request)
}

// exchange returns the effective exchange code
func (a *app) exchange() string {
	return a.cfg.Pricing.Exchange
}

// Close flushes metrics and releases the database and log file
func (a *app) Close() {
	if a.cfg != nil && a.cfg.Metrics.Enabled && metrics.IsEnabled() {
		if err := metrics.WriteText(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write metrics: %v\n", err)
		}
	}
	if a.db != nil {
		_ = database.Close(a.db)
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}
