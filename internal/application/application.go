// Package application wires configuration into the DataAccess, reply and
// router components shared by the API server and the CLI.
package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"support-router/config"
	"support-router/internal/customer"
	"support-router/internal/customer/repository"
	"support-router/internal/customer/repository/memory"
	"support-router/internal/customer/repository/postgre"
	customerUC "support-router/internal/customer/usecase"
	"support-router/internal/reply"
	"support-router/internal/router"
	"support-router/internal/support"
	"support-router/internal/support/strategy"
	supportUC "support-router/internal/support/usecase"
	"support-router/pkg/kafka"
	"support-router/pkg/llmprovider"
	"support-router/pkg/log"
	"support-router/pkg/postgres"
)

// App holds the built components and the resources they own.
type App struct {
	Customer customer.UseCase
	Support  support.UseCase
	Router   *router.QueryRouter
	DB       *sql.DB

	producer *kafka.Producer
	l        log.Logger
}

// New builds every component from cfg. Call Close when done.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	app := &App{l: l}

	repo, err := app.openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app.producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TicketTopic)
	if app.producer.Enabled() {
		l.Infof(ctx, "Ticket events published to %s", cfg.Kafka.TicketTopic)
	}
	app.Customer = customerUC.New(repo, app.producer, l)

	s, err := newStrategy(ctx, cfg, l)
	if err != nil {
		app.Close()
		return nil, err
	}
	l.Infof(ctx, "Reply strategy: %s", s.Name())
	app.Support = supportUC.New(app.Customer, s, l)

	app.Router = router.New(app.Customer, app.Support, router.Config{
		FallbackScenario:  router.Scenario(cfg.Router.FallbackScenario),
		DefaultCustomerID: cfg.Router.DefaultCustomerID,
		PremiumListLimit:  cfg.Router.PremiumListLimit,
		HistoryFanOut:     cfg.Router.HistoryFanOut,
	}, l)

	return app, nil
}

func (app *App) openRepository(ctx context.Context, cfg *config.Config) (repository.Repository, error) {
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		store := memory.New(app.l)
		store.Seed()
		app.l.Info(ctx, "Storage: in-memory demo dataset")
		return store, nil
	}

	db, err := postgres.Open(ctx, postgres.Config{
		DSN:             cfg.PostgresDSN(),
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Postgres.AutoMigrate {
		applied, err := postgres.MigrateUp(db)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		app.l.Infof(ctx, "Migrations applied: %v", applied)
	}
	app.DB = db
	app.l.Infof(ctx, "Storage: postgres %s/%s", cfg.Postgres.Host, cfg.Postgres.Database)
	return postgre.New(db, app.l), nil
}

func newStrategy(ctx context.Context, cfg *config.Config, l log.Logger) (strategy.Strategy, error) {
	if cfg.Reply.Strategy != config.ReplyStrategyLLM {
		return strategy.NewTemplate(), nil
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.NewConfig(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	for _, p := range providers {
		l.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}

	gen := reply.New(llmprovider.NewManager(providers, managerCfg, l), reply.Config{Timeout: cfg.Reply.Timeout}, l)
	return strategy.New(strategy.NameLLM, gen, l)
}

// Close releases the database and the Kafka writer.
func (app *App) Close() error {
	var errs []error
	if app.producer != nil {
		errs = append(errs, app.producer.Close())
	}
	if app.DB != nil {
		errs = append(errs, app.DB.Close())
	}
	return errors.Join(errs...)
}
