package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/config"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/worker"
)

// Module wires the admin facade, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewAdminFacade,
		newHTTPServer,
		newJournalFlusher,
		func(f *worker.JournalFlusher) repository.JournalSink { return f },
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type flusherParams struct {
	fx.In

	Repository repository.JournalRepository
	Config     *config.Config
	Logger     *slog.Logger
}

func newJournalFlusher(p flusherParams) *worker.JournalFlusher {
	return worker.NewJournalFlusher(
		p.Repository,
		p.Config.JournalFlushInterval,
		p.Config.JournalBatchSize,
		p.Config.JournalWorkers,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Journal    *worker.JournalFlusher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting admin panel", slog.String("addr", p.Server.Addr))
			p.Journal.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			err := p.Server.Shutdown(shutdownCtx)
			p.Journal.Stop()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("admin panel stopped")
			return nil
		},
	})
}
