// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	"github.com/louisbranch/socialcrm/internal/services/web/modules/dashboard"
	"github.com/louisbranch/socialcrm/internal/services/web/modules/public"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies aliases the shared module dependencies.
type Dependencies = module.Dependencies

// DefaultModules returns the stable web modules in mount order.
func DefaultModules() []Module {
	return []Module{
		public.New(),
		dashboard.New(),
	}
}
