// Package db opens the persistence backend selected by configuration and
// exposes its repositories behind the ports interfaces.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/littlelemon/restaurant-system/internal/core/ports"
	"github.com/littlelemon/restaurant-system/internal/infrastructure/db/mongo"
	"github.com/littlelemon/restaurant-system/internal/infrastructure/db/sqldb"
	"github.com/littlelemon/restaurant-system/internal/pkg/config"
)

// Store bundles the repositories of one storage backend.
type Store struct {
	Driver   string
	Users    ports.UserRepository
	Menu     ports.MenuItemRepository
	Bookings ports.BookingRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks backend connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

// Open connects to the backend named by cfg.Storage.Driver and prepares its
// schema: indexes for MongoDB, embedded migrations for SQL backends.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		return openMongo(ctx, cfg, log)
	case config.StoragePostgres:
		return openSQL(ctx, sqldb.DialectPostgres, cfg.Postgres.DSN, log)
	case config.StorageSQLite:
		return openSQL(ctx, sqldb.DialectSQLite, cfg.SQLite.Path, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	client, database, err := mongo.Connect(ctx, mongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		return nil, err
	}

	users := mongo.NewUserRepository(database)
	if err := users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
	return &Store{
		Driver:   config.StorageMongo,
		Users:    users,
		Menu:     mongo.NewMenuItemRepository(database),
		Bookings: mongo.NewBookingRepository(database),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: client.Disconnect,
	}, nil
}

func openSQL(ctx context.Context, dialect sqldb.Dialect, dsn string, log zerolog.Logger) (*Store, error) {
	database, err := sqldb.Open(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		_ = database.Close()
		return nil, err
	}

	log.Info().Str("dialect", string(dialect)).Msg("connected to SQL database")
	return &Store{
		Driver:   string(dialect),
		Users:    sqldb.NewUserRepository(database),
		Menu:     sqldb.NewMenuItemRepository(database),
		Bookings: sqldb.NewBookingRepository(database),
		ping:     database.Ping,
		close: func(context.Context) error {
			return database.Close()
		},
	}, nil
}
