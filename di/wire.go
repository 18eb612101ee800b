//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/jwt"
	"github.com/reagan13/beach-management-system-java-sub000/infras/kafka"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	"github.com/reagan13/beach-management-system-java-sub000/infras/redis"
	"github.com/reagan13/beach-management-system-java-sub000/infras/s3"
	"github.com/reagan13/beach-management-system-java-sub000/internal/events"
	"github.com/reagan13/beach-management-system-java-sub000/permissions"
	"github.com/reagan13/beach-management-system-java-sub000/shared/cache"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http/middleware"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http/router"

	absenceRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/repository"
	absenceService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/service"
	auditRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/repository"
	auditService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/service"
	authService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/auth/service"
	bookingRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/repository"
	bookingService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/service"
	checkInOutRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/repository"
	checkInOutService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/service"
	inventoryRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/inventory/repository"
	inventoryService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/inventory/service"
	paymentRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/repository"
	paymentService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/service"
	reportService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/report/service"
	roomRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/repository"
	roomService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/room/service"
	userRepository "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/repository"
	userService "github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/service"

	absenceHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/absence"
	auditHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/audit"
	authHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/auth"
	bookingHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/booking"
	checkInOutHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/checkinout"
	inventoryHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/inventory"
	paymentHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/payment"
	reportHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/report"
	roomHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/room"
	userHandler "github.com/reagan13/beach-management-system-java-sub000/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewOwner,
	userRepository.NewCustomer,
	userRepository.NewStaff,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditRepository.NewRoomAudit,
	auditRepository.NewBookingAudit,
	auditService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var checkInOutDomain = wire.NewSet(
	checkInOutRepository.New,
	checkInOutService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var absenceDomain = wire.NewSet(
	absenceRepository.New,
	absenceService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	auditDomain,
	roomDomain,
	bookingDomain,
	checkInOutDomain,
	paymentDomain,
	inventoryDomain,
	absenceDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	checkInOutHandler.New,
	paymentHandler.New,
	auditHandler.New,
	inventoryHandler.New,
	absenceHandler.New,
	reportHandler.New,
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
