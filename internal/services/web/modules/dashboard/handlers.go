package dashboard

import (
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	webi18n "github.com/louisbranch/socialcrm/internal/services/web/platform/i18n"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/pagerender"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/weberror"
)

const pageTitleKey = "web.dashboard.page_title"

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.loadDashboard(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	now := h.deps.Clock()
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		TitleKey: pageTitleKey,
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return dashboardPage(view, loc, now)
		},
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, weberror.ScopeModule, h.deps)
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}
