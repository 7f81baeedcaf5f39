package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/config"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// Module provides the journal repository. Without DATABASE_URI the journal
// is a no-op and no connection is made.
var Module = fx.Provide(newJournalRepository)

type storageParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newJournalRepository(p storageParams) (repository.JournalRepository, error) {
	if !p.Config.JournalEnabled() {
		p.Logger.Info("journal disabled")
		return repository.NopJournal{}, nil
	}

	storage, err := New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	registerLifecycle(p.Lifecycle, storage)
	p.Logger.Info("journal enabled")
	return storage, nil
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return fmt.Errorf("journal database: %w", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
