package app

import (
	"github.com/procargo/backoffice/backoffice/repository"
	"github.com/procargo/backoffice/backoffice/rest"
	"github.com/procargo/backoffice/backoffice/service"
	"github.com/procargo/backoffice/config"
	"go.uber.org/fx"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitBackofficeConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.BackofficeConfig {
			return cfg
		}),
		fx.Provide(func(c config.BackofficeConfig) config.MongoDBConfig {
			return c.MongoDB
		}),
		fx.Provide(func(c config.BackofficeConfig) config.ServerConfig {
			return c.Server
		}),
		fx.Provide(func(c config.BackofficeConfig) config.KeyConfig {
			return c.Key
		}),
		fx.Provide(func(c config.BackofficeConfig) config.TokenConfig {
			return c.Token
		}),
		fx.Provide(func(c config.BackofficeConfig) config.CacheConfig {
			return c.Cache
		}),
		fx.Provide(func(c config.BackofficeConfig) config.AccountConfig {
			return c.Account
		}),
	), nil
}

// RepoModule provides domain.Repository backed by MongoDB.
func RepoModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(repository.NewRepository),
	), nil
}

// ServiceModule provides domain.Service.
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	repoModule, err := RepoModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		repoModule,
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule provides *rest.Handler and its metrics.
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewMetrics),
		fx.Provide(rest.NewHandler),
	), nil
}
