package cmd

import (
	"fmt"
	"time"

	"figurine-manager/core/config"
	"figurine-manager/core/database"
	"figurine-manager/core/logger"
	"figurine-manager/core/storage"
	"figurine-manager/feature/collection"
	"figurine-manager/feature/roster"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env bundles what a command needs from configuration.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log, zap.String("service", cfg.Telemetry.ServiceName))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &env{cfg: cfg, logger: l}, nil
}

// connect opens the collection database without touching its schema.
func (e *env) connect() (*gorm.DB, error) {
	db, err := database.Connect(e.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}
	return db, nil
}

// database connects and migrates the collection tables.
func (e *env) database() (*gorm.DB, error) {
	db, err := e.connect()
	if err != nil {
		return nil, err
	}
	if err := collection.NewRepository(db).Migrate(); err != nil {
		return nil, err
	}
	return db, nil
}

func (e *env) storage() (storage.Client, error) {
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

func (e *env) rosterProvider(client storage.Client, ttl time.Duration) *roster.Provider {
	return roster.NewProvider(client, e.cfg.Storage.Bucket, e.cfg.Reconcile.RosterPrefix, ttl, nil)
}

