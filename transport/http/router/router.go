package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/absence"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/audit"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/auth"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/booking"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/checkinout"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/inventory"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/payment"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/report"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/room"
	"github.com/reagan13/beach-management-system-java-sub000/internal/handlers/user"
	"github.com/reagan13/beach-management-system-java-sub000/transport/http/middleware"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Room       room.Handler
	Booking    booking.Handler
	CheckInOut checkinout.Handler
	Payment    payment.Handler
	Audit      audit.Handler
	Inventory  inventory.Handler
	Absence    absence.Handler
	Report     report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.CheckInOut.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Absence.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
		Config:         cfg,
	}
}
