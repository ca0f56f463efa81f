// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	apperrors "github.com/louisbranch/socialcrm/internal/services/web/platform/errors"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/socialcrm/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/socialcrm/internal/services/web/templates"
)

// Scope tells the error boundary where the failure happened.
type Scope int

const (
	// ScopeModule is a failure inside a page module; the boundary offers
	// history.back().
	ScopeModule Scope = iota
	// ScopeRoot is a failure outside any module; the boundary links home.
	ScopeRoot
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message. Without a
// localizer keyed errors use the base-locale catalog text.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(webtemplates.T(loc, key)); localized != "" && localized != key {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized app-shell error response for full-page and
// HTMX requests: the not-found page for 404, the catch boundary otherwise.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, scope Scope, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	statusCode = webtemplates.NormalizeAppErrorStatus(statusCode)

	loc, lang := webi18n.ResolveLocalizer(w, r, deps.DefaultLocale)
	var fragment templ.Component
	if statusCode == http.StatusNotFound {
		fragment = webtemplates.NotFound(loc)
	} else {
		fragment = webtemplates.CatchBoundary(webtemplates.CatchBoundaryOptions{Root: scope == ScopeRoot, Loc: loc})
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	var err error
	if httpx.IsHTMXRequest(r) {
		err = fragment.Render(ctx, &buf)
	} else {
		title := webtemplates.AppErrorPageTitle(statusCode, loc)
		err = webtemplates.Document(webtemplates.DocumentOptions{Title: title, Lang: lang, Loc: loc}).
			Render(templ.WithChildren(ctx, webtemplates.AppMain(fragment)), &buf)
	}
	if err != nil {
		deps.Log().Printf("render error page failed status=%d path=%s request_id=%s err=%v", statusCode, requestPath(r), httpx.RequestIDFrom(r), err)
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	_ = httpx.WriteHTML(w, statusCode, buf.String())
}

// WriteNotFound renders the not-found page with status 404.
func WriteNotFound(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	WriteAppError(w, r, http.StatusNotFound, ScopeRoot, deps)
}

// WriteModuleError writes a module-safe localized error response. Server
// errors are logged with their cause; the client only sees public copy.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Printf("module error status=%d path=%s request_id=%s err=%v", statusCode, requestPath(r), httpx.RequestIDFrom(r), err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, ScopeModule, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, deps.DefaultLocale)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// PanicRenderer renders the catch boundary for a panic recovered at scope.
func PanicRenderer(scope Scope, deps module.Dependencies) httpx.PanicRenderer {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusInternalServerError, scope, deps)
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
