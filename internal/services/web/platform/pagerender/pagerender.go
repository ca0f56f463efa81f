// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/socialcrm/internal/platform/otel"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/socialcrm/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/socialcrm/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title string
	// TitleKey is localized into Title when Title is empty.
	TitleKey   string
	StatusCode int
	// Fragment builds the page body once the request localizer is known.
	Fragment func(loc webi18n.Localizer) templ.Component
}

// WriteModulePage renders page into a buffer and writes it only when
// rendering succeeds, so a failing component never leaves a partial page.
// HTMX requests receive the fragment alone; others get the full app layout.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, lang := webi18n.ResolveLocalizer(w, r, deps.DefaultLocale)
	title := page.Title
	if title == "" && page.TitleKey != "" {
		title = loc.Sprintf(page.TitleKey)
	}
	fragment := templ.Component(templ.NopComponent)
	if page.Fragment != nil {
		fragment = page.Fragment(loc)
	}
	htmx := httpx.IsHTMXRequest(r)

	ctx, span := otel.Tracer("pagerender").Start(httpx.RequestContext(r), "render page")
	defer span.End()
	span.SetAttributes(
		attribute.String("page.title", title),
		attribute.Bool("page.htmx", htmx),
		attribute.String("page.lang", lang),
	)

	var buf bytes.Buffer
	var err error
	if htmx {
		err = fragment.Render(ctx, &buf)
	} else {
		layout := webtemplates.AppLayout(webtemplates.DocumentOptions{Title: title, Lang: lang, Loc: loc})
		err = layout.Render(templ.WithChildren(ctx, fragment), &buf)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return err
	}
	if htmx {
		w.Header().Set("Vary", "HX-Request")
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}
