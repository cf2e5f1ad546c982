package router

import (
	"net/http"
	"ohanna/internal/handlers/auth"
	"ohanna/internal/handlers/booking"
	"ohanna/internal/handlers/calendar"
	"ohanna/internal/handlers/draft"
	"ohanna/internal/handlers/health"
	"ohanna/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "ohanna/docs" // swagger docs
)

type DomainHandlers struct {
	Auth     auth.Handler
	Booking  booking.Handler
	Draft    draft.Handler
	Calendar calendar.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes registers the middleware chain, the swagger UI and every /v1 route.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.App.Tracing,
		r.App.CORS(),
		r.App.RateLimit(),
		r.AuthRole.Auth,
		r.AuthRole.RBAC,
	)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Draft.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
	})
}

// Handler builds a chi mux with every route registered.
func (r *Router) Handler() http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
