package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/httpx"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/weberror"
)

func registerRoutes(r chi.Router, h handlers) {
	if r == nil {
		return
	}
	r.Use(httpx.RecoverPanicWith(h.deps.Log(), weberror.PanicRenderer(weberror.ScopeModule, h.deps)))
	r.Get("/", h.handleIndex)
	r.NotFound(h.handleNotFound)
}
