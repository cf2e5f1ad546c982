//go:build wireinject
// +build wireinject

package di

import (
	"ohanna/config"
	"ohanna/infras/jwt"
	"ohanna/infras/kafka"
	"ohanna/infras/otel"
	"ohanna/infras/postgres"
	"ohanna/infras/redis"
	"ohanna/infras/s3"
	"ohanna/permissions"
	"ohanna/shared/cache"
	"ohanna/transport/http"
	"ohanna/transport/http/middleware"
	"ohanna/transport/http/router"

	bookingRepository "ohanna/internal/domains/booking/repository"
	bookingService "ohanna/internal/domains/booking/service"
	draftRepository "ohanna/internal/domains/draft/repository"
	draftService "ohanna/internal/domains/draft/service"

	"github.com/google/wire"

	authService "ohanna/internal/domains/auth/service"
	calendarService "ohanna/internal/domains/calendar/service"
	authHandler "ohanna/internal/handlers/auth"
	bookingHandler "ohanna/internal/handlers/booking"
	calendarHandler "ohanna/internal/handlers/calendar"
	draftHandler "ohanna/internal/handlers/draft"
	healthHandler "ohanna/internal/handlers/health"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	ProvideTariffTable,
	ProvideFormatter,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	ProvideLedger,
	bookingService.New,
)

var draftDomain = wire.NewSet(
	draftRepository.New,
	draftService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	draftDomain,
	calendarService.New,
	authService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	draftHandler.New,
	calendarHandler.New,
	healthHandler.New,
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
