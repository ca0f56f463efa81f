// Package dashboard serves the Social CRM overview page: metric cards, the
// customer growth chart and the recent activity feed.
package dashboard

import (
	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
)

// Prefix is where the dashboard mounts.
const Prefix = "/dashboard"

// Module provides dashboard routes.
type Module struct {
	gateway DashboardGateway
}

// New returns a dashboard module backed by the fixture gateway.
func New() Module {
	return Module{}
}

// NewWithGateway returns a dashboard module backed by gateway.
func NewWithGateway(gateway DashboardGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil {
		gateway = NewFixtureGateway(deps.Clock)
	}
	router := chi.NewRouter()
	registerRoutes(router, newHandlers(newService(gateway), deps))
	return module.Mount{Prefix: Prefix, Handler: router}, nil
}
