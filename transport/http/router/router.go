package router

import (
	"catering/internal/handlers/auth"
	"catering/internal/handlers/booking"
	"catering/internal/handlers/employee"
	"catering/internal/handlers/menu"
	"catering/internal/handlers/order"
	"catering/internal/handlers/payroll"
	"catering/internal/handlers/report"
	"catering/internal/handlers/user"
	"catering/internal/handlers/ws"
	"catering/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Employee employee.Handler
	Menu     menu.Handler
	Booking  booking.Handler
	Payroll  payroll.Handler
	Order    order.Handler
	Report   report.Handler
	WS       ws.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1 behind the API key, JWT and role checks.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payroll.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.WS.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
