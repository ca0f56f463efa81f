package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	webi18n "github.com/louisbranch/socialcrm/internal/services/web/platform/i18n"
)

func textFragment(markup string) func(webi18n.Localizer) templ.Component {
	return func(webi18n.Localizer) templ.Component {
		return templ.Raw(markup)
	}
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, module.Dependencies{}, ModulePage{
		Title:      "Dashboard",
		StatusCode: http.StatusCreated,
		Fragment:   textFragment(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if body != `<section id="fragment-root">ok</section>` {
		t.Fatalf("body = %q, want fragment only", body)
	}
	if got := rr.Header().Get("Vary"); got != "HX-Request" {
		t.Fatalf("Vary = %q, want HX-Request", got)
	}
}

func TestWriteModulePageRendersFullPageWithAppShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, module.Dependencies{DefaultLocale: "en-US"}, ModulePage{
		Title:    "Dashboard",
		Fragment: textFragment(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", `<html lang="en-US">`, `<title>Dashboard | Social CRM</title>`, `id="main"`, `id="fragment-root"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageLocalizesFromRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard?lang=de-DE", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, module.Dependencies{DefaultLocale: "en-US"}, ModulePage{
		TitleKey: "web.dashboard.page_title",
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return templ.Raw(`<h2>` + loc.Sprintf("web.dashboard.recent_activities") + `</h2>`)
		},
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<html lang="de-DE">`) || !strings.Contains(body, "<h2>Letzte Aktivitäten</h2>") {
		t.Fatalf("body not localized: %q", body)
	}
	if !strings.Contains(body, "<title>Übersicht | Social CRM</title>") {
		t.Fatalf("body not localized: %q", body)
	}
}

func TestWriteModulePageRenderErrorWritesNothing(t *testing.T) {
	t.Parallel()

	renderErr := errors.New("chart exploded")
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil), module.Dependencies{}, ModulePage{
		Fragment: func(webi18n.Localizer) templ.Component {
			return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
				_, _ = io.WriteString(w, "partial")
				return renderErr
			})
		},
	})
	if !errors.Is(err, renderErr) {
		t.Fatalf("WriteModulePage() error = %v, want %v", err, renderErr)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want nothing written", rr.Body.String())
	}
}

func TestWriteModulePageNilWriter(t *testing.T) {
	t.Parallel()

	if err := WriteModulePage(nil, nil, module.Dependencies{}, ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage(nil) error = %v", err)
	}
}
