package main

import (
	"context"
	"fmt"

	"github.com/rothkoai/annotation-service/internal/core/ports"
	"github.com/rothkoai/annotation-service/internal/infrastructure/config"
	mongostore "github.com/rothkoai/annotation-service/internal/infrastructure/db/mongo"
	"github.com/rothkoai/annotation-service/internal/infrastructure/db/sqlstore"
)

// store bundles the repositories of the configured backend with its
// lifecycle hooks.
type store struct {
	users       ports.UserRepository
	annotations ports.AnnotationRepository
	ping        func(context.Context) error
	close       func(context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &store{
			users:       mongostore.NewUserRepository(db),
			annotations: mongostore.NewAnnotationRepository(db),
			ping:        func(ctx context.Context) error { return mongostore.Ping(ctx, db) },
			close:       client.Disconnect,
		}, nil

	case config.BackendPostgres, config.BackendSQLite:
		db, err := sqlstore.Open(ctx, sqlstore.Config{
			Driver: cfg.Store.Backend,
			DSN:    cfg.Store.DatabaseURL,
		})
		if err != nil {
			return nil, err
		}
		return &store{
			users:       sqlstore.NewUserRepository(db),
			annotations: sqlstore.NewAnnotationRepository(db),
			ping:        func(ctx context.Context) error { return sqlstore.Ping(ctx, db) },
			close:       func(context.Context) error { return sqlstore.Close(db) },
		}, nil
	}

	return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
}
