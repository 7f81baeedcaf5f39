package di

import (
	"go.uber.org/fx"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/app"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/config"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/logger"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/seed"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/handlers"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/router"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/storage/postgres"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/store"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		seed.Module,
		postgres.Module,
		store.Module,
		usecase.Module,
		fx.Provide(func(f *app.AdminFacade) handlers.AdminFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
