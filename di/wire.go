//go:build wireinject
// +build wireinject

package di

import (
	"todoboard/config"
	"todoboard/infras/kafka"
	"todoboard/infras/otel"
	"todoboard/infras/postgres"
	"todoboard/infras/redis"
	"todoboard/internal/domains/activity"
	todoHandler "todoboard/internal/handlers/todo"
	"todoboard/shared/cache"
	"todoboard/transport/http"
	"todoboard/transport/http/middleware"
	"todoboard/transport/http/router"

	commentRepository "todoboard/internal/domains/comment/repository"
	todoRepository "todoboard/internal/domains/todo/repository"
	todoService "todoboard/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	activity.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	commentRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

// InitializeActivityListener wires the Kafka client used by the activity tail.
func InitializeActivityListener() kafka.Client {
	wire.Build(
		configurations,
		kafka.New,
	)

	return nil
}
