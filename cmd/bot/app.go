package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/diegoclair/slack-send-later/internal/cache"
	"github.com/diegoclair/slack-send-later/internal/config"
	"github.com/diegoclair/slack-send-later/internal/database"
	"github.com/diegoclair/slack-send-later/internal/domain/contract"
	"github.com/diegoclair/slack-send-later/internal/domain/service"
	"github.com/diegoclair/slack-send-later/internal/dynamo"
	"github.com/diegoclair/slack-send-later/internal/logger"
	"github.com/diegoclair/slack-send-later/internal/metrics"
	"github.com/diegoclair/slack-send-later/internal/slack"
	"github.com/diegoclair/slack-send-later/migrator/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

// app holds everything a command needs, built from the loaded config.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	dm       contract.DataManager
	cache    *cache.CredentialCache
	registry *prometheus.Registry
	services *service.Instance
}

func newApp(ctx context.Context, cfg *config.Config, component string) (*app, error) {
	a := &app{
		cfg:      cfg,
		log:      logger.New(cfg.Logging, component),
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	dm, err := openStore(ctx, cfg, a.log)
	if err != nil {
		return nil, err
	}
	a.dm = dm

	// a nil *CredentialCache must not end up inside the interface
	var credCache contract.CredentialCache
	if cfg.Redis.Enabled() {
		a.cache = cache.New(cfg.Redis)
		if err := a.cache.Ping(ctx); err != nil {
			a.log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("credential cache unreachable, lookups fall through to the store")
		}
		credCache = a.cache
	}

	recorder, err := metrics.New(a.registry)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	sender := slack.NewSender(cfg.Slack.APIURL, &http.Client{Timeout: cfg.Scheduler.SendTimeout})

	a.services = service.NewInstance(dm, sender, service.Options{
		Location:     cfg.Location(),
		OffsetPolicy: cfg.Scheduler.OffsetPolicy,
		Cache:        credCache,
		Metrics:      recorder,
		Logger:       a.log,
		Delivery: service.DeliveryOptions{
			LookbackDays:   cfg.Scheduler.LookbackDays,
			SendTimeout:    cfg.Scheduler.SendTimeout,
			SendRatePerSec: cfg.Scheduler.SendRatePerSec,
		},
	})

	return a, nil
}

// openStore opens the configured backend. SQLite is migrated on open.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (contract.DataManager, error) {
	switch cfg.Storage.Backend {
	case config.BackendDynamoDB:
		client, err := dynamo.New(ctx, cfg.Storage.DynamoDB)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("messages_table", cfg.Storage.DynamoDB.MessagesTable).
			Str("region", cfg.Storage.DynamoDB.Region).
			Msg("using dynamodb store")
		return dynamo.NewInstance(client), nil

	default:
		db, err := database.New(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info().Str("path", cfg.Storage.SQLite.Path).Msg("using sqlite store")
		return database.NewInstance(db), nil
	}
}

func (a *app) Close() error {
	var errs []error
	if a.cache != nil {
		errs = append(errs, a.cache.Close())
	}
	if a.dm != nil {
		errs = append(errs, a.dm.Close())
	}
	return errors.Join(errs...)
}
