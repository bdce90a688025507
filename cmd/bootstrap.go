package cmd

import (
	"time"

	"example.com/scanbridge/config"
	"example.com/scanbridge/internal/cache"
	"example.com/scanbridge/internal/dispatch"
	"example.com/scanbridge/internal/history"
	"example.com/scanbridge/internal/migration"
	"example.com/scanbridge/internal/presets"
	"example.com/scanbridge/internal/records"
	"example.com/scanbridge/internal/schema"
	"example.com/scanbridge/internal/search"
	"example.com/scanbridge/internal/service"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/storage"
	"example.com/scanbridge/internal/webhooks"
)

// app bundles the wired components every command works with.
type app struct {
	cfg   *config.Config
	kv    storage.Store
	redis cache.RedisClient

	types    *schema.Store
	records  *records.Store
	presets  *presets.Store
	webhooks *webhooks.Store
	history  *history.Store
	settings *settings.Store

	search   *search.Client
	scanner  *service.Scanner
	pipeline *dispatch.Pipeline
	migrator *migration.Migrator
}

// initApp opens storage and builds the store and service graph. The returned
// app must be closed.
func initApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, kv: kv}

	// Optional Redis partition cache, fail-open.
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warnf("Failed to connect to Redis, continuing without cache: %v", err)
		} else {
			a.redis = redisClient
			a.kv = cache.NewPartitionCache(kv, redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
		}
	}

	// Optional Elasticsearch history index.
	if cfg.Elasticsearch.Enabled {
		searchClient, err := search.NewClient(cfg.Elasticsearch, log)
		if err != nil {
			log.Warnf("Failed to initialize Elasticsearch, continuing without search: %v", err)
		} else {
			a.search = searchClient
		}
	}

	a.types = schema.NewStore(a.kv, log)
	a.records = records.NewStore(a.kv, log)
	a.presets = presets.NewStore(a.kv, log)
	a.webhooks = webhooks.NewStore(a.kv, log)
	a.history = history.NewStore(a.kv, log)
	a.settings = settings.NewStore(a.kv, log)

	a.scanner = service.NewScanner(a.types, a.records, log)
	a.pipeline = dispatch.NewPipeline(dispatch.NewClient(log), a.history, a.search, log)
	a.migrator = migration.NewMigrator(a.kv, a.types, a.presets, a.webhooks, log)

	return a, nil
}

// close releases storage and the Redis connection.
func (a *app) close() {
	if err := a.kv.Close(); err != nil {
		log.WithError(err).Error("Error closing storage")
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.WithError(err).Error("Error closing Redis connection")
		}
	}
}

// prepareData seeds the built-in types and runs pending migrations.
func (a *app) prepareData() error {
	if err := a.types.EnsureSeeded(); err != nil {
		return err
	}
	if err := a.migrator.Run(a.settings.Load()); err != nil {
		return err
	}
	if _, err := a.presets.EnsureDefaultsSeeded(a.types.GetAll(), a.webhooks.GetAll(), a.settings.Load()); err != nil {
		return err
	}
	return nil
}
