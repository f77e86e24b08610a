package inventory

import (
	"context"
	"fmt"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/repository"
	"github.com/tair/stockwatch/pkg/config"
	"github.com/tair/stockwatch/pkg/database"
	"github.com/tair/stockwatch/pkg/logger"
)

// Storage is an opened item store with its lifecycle hooks
type Storage struct {
	Repo  domain.ItemRepository
	Ping  func(ctx context.Context) error
	Close func() error
}

// OpenStorage connects the configured storage driver, migrates it and wraps it with tracing.
// Sample items are seeded when the store is empty and seeding is enabled.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var (
		repo  domain.ItemRepository
		store = &Storage{
			Ping:  func(context.Context) error { return nil },
			Close: func() error { return nil },
		}
	)

	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewGormConnection(database.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			DBName:   cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}

		gormRepo := repository.NewGormItemRepository(db)
		if err := gormRepo.AutoMigrate(); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		repo = gormRepo
		store.Ping = sqlDB.PingContext
		store.Close = sqlDB.Close

	case "sqlite":
		db, err := database.NewSQLiteConnection(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}

		sqliteRepo := repository.NewSQLiteItemRepository(db)
		if err := sqliteRepo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		repo = sqliteRepo
		store.Ping = db.PingContext
		store.Close = db.Close

	case "memory":
		repo = repository.NewMemoryItemRepository()

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	store.Repo = repository.NewTracingItemRepository(repo, cfg.Storage.Driver)

	logger.Logger.Info().Str("driver", cfg.Storage.Driver).Msg("Storage initialized")

	if cfg.Storage.Seed {
		if _, err := repository.SeedIfEmpty(ctx, store.Repo); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	return store, nil
}
