// Package public serves the unauthenticated entry routes: the root redirect
// and the health probe.
package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/httpx"
)

const (
	// Prefix is where the public routes mount.
	Prefix = "/"
	// HomePath is where the root redirects.
	HomePath = "/dashboard"
)

// Module provides root routes.
type Module struct{}

// New returns a public module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the root redirect and health probe.
func (Module) Mount(module.Dependencies) (module.Mount, error) {
	router := chi.NewRouter()
	router.Get("/", handleRoot)
	router.Get("/health", handleHealth)
	return module.Mount{Prefix: Prefix, Handler: router}, nil
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, HomePath)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}
