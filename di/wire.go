//go:build wireinject
// +build wireinject

package di

import (
	"catering/config"
	"catering/infras/jwt"
	"catering/infras/kafka"
	"catering/infras/otel"
	"catering/infras/postgres"
	"catering/infras/redis"
	"catering/infras/s3"
	"catering/infras/websocket"
	"catering/internal/domains/notification"
	"catering/permissions"
	"catering/shared/cache"
	"catering/transport/http"
	"catering/transport/http/middleware"
	"catering/transport/http/router"
	"catering/transport/stream"

	"github.com/google/wire"

	activityRepository "catering/internal/domains/activity/repository"
	activityService "catering/internal/domains/activity/service"
	authService "catering/internal/domains/auth/service"
	bookingRepository "catering/internal/domains/booking/repository"
	bookingService "catering/internal/domains/booking/service"
	employeeRepository "catering/internal/domains/employee/repository"
	employeeService "catering/internal/domains/employee/service"
	menuRepository "catering/internal/domains/menu/repository"
	menuService "catering/internal/domains/menu/service"
	orderRepository "catering/internal/domains/order/repository"
	orderService "catering/internal/domains/order/service"
	payrollService "catering/internal/domains/payroll/service"
	reportRepository "catering/internal/domains/report/repository"
	reportService "catering/internal/domains/report/service"
	userRepository "catering/internal/domains/user/repository"
	userService "catering/internal/domains/user/service"

	authHandler "catering/internal/handlers/auth"
	bookingHandler "catering/internal/handlers/booking"
	employeeHandler "catering/internal/handlers/employee"
	menuHandler "catering/internal/handlers/menu"
	orderHandler "catering/internal/handlers/order"
	payrollHandler "catering/internal/handlers/payroll"
	reportHandler "catering/internal/handlers/report"
	userHandler "catering/internal/handlers/user"
	wsHandler "catering/internal/handlers/ws"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	websocket.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	wire.Bind(new(wsHandler.Authenticator), new(middleware.AuthRole)),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notification.New,
	wire.Bind(new(notification.Notifier), new(*notification.Fanout)),
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	activityRepository.New,
	activityService.New,
	payrollService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	userDomain,
	employeeDomain,
	menuDomain,
	bookingDomain,
	orderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	employeeHandler.New,
	menuHandler.New,
	bookingHandler.New,
	payrollHandler.New,
	orderHandler.New,
	reportHandler.New,
	wsHandler.New,
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

func InitializeConsumer() *stream.Consumer {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		postgres.New,
		activityRepository.New,
		activityService.New,
		stream.New,
	)

	return &stream.Consumer{}
}
