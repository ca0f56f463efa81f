package app

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	"github.com/louisbranch/socialcrm/internal/services/web/modules"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/observability"
)

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func testDependencies() module.Dependencies {
	return module.Dependencies{
		DefaultLocale: "en-US",
		Logger:        log.New(io.Discard, "", 0),
		Now: func() time.Time {
			return time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one", Handler: okHandler("one")}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one", Handler: okHandler("two")}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsReservedPrefixes(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Static: http.FileServerFS(fstest.MapFS{}),
		Modules: []module.Module{
			stubModule{id: "assets", mount: module.Mount{Prefix: StaticPrefix, Handler: okHandler("assets")}},
		},
	})
	if err == nil {
		t.Fatalf("expected static prefix collision error")
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "app/x"},
		{name: "trailing slash", prefix: "/app/x/"},
		{name: "contains surrounding whitespace", prefix: "/app/x "},
		{name: "pattern", prefix: "/app/{id}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: okHandler("bad")}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{nil}})
	if err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsNilHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("err = %v, want handler is required", err)
	}
}

func TestComposePropagatesMountError(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "broken", err: io.ErrUnexpectedEOF}},
	})
	if err == nil || !strings.Contains(err.Error(), `mount module "broken"`) {
		t.Fatalf("err = %v, want wrapped mount error", err)
	}
}

func TestComposeRoutesModulesByPrefix(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: okHandler("root")}},
			stubModule{id: "reports", mount: module.Mount{Prefix: "/reports", Handler: okHandler("reports")}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for path, want := range map[string]string{
		"/":              "root",
		"/reports":       "reports",
		"/reports/daily": "reports",
		"/anything":      "root",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Body.String() != want {
			t.Fatalf("GET %s body = %q, want %q", path, rr.Body.String(), want)
		}
	}
}

func newDefaultHandler(t *testing.T, metrics *observability.Metrics) http.Handler {
	t.Helper()
	h, err := Compose(ComposeInput{
		Dependencies: testDependencies(),
		Modules:      modules.DefaultModules(),
		Static: http.FileServerFS(fstest.MapFS{
			"app.css": {Data: []byte(".flex{display:flex}")},
		}),
		Metrics:      metrics,
		ServeMetrics: metrics != nil,
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	return h
}

func TestComposeUnknownRouteRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	h := newDefaultHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing/page", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", "data-not-found", "The page you are looking for does not exist.", `href="/"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %s", marker, body)
		}
	}
}

func TestComposeRootRedirectsToDashboard(t *testing.T) {
	t.Parallel()

	h := newDefaultHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/dashboard" {
		t.Fatalf("Location = %q, want %q", got, "/dashboard")
	}
}

func TestComposeServesHealth(t *testing.T) {
	t.Parallel()

	h := newDefaultHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("GET /health = %d %q, want 200 ok", rr.Code, rr.Body.String())
	}
}

func TestComposeServesDashboard(t *testing.T) {
	t.Parallel()

	h := newDefaultHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Total Clients") {
		t.Fatalf("dashboard body missing metric card: %s", body)
	}
}

func TestComposeServesStaticAssets(t *testing.T) {
	t.Parallel()

	h := newDefaultHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != ".flex{display:flex}" {
		t.Fatalf("body = %q", got)
	}
	if got := rr.Header().Get("Cache-Control"); got == "" {
		t.Fatalf("expected Cache-Control header on static asset")
	}
}

func TestComposeRejectsUnsupportedMethod(t *testing.T) {
	t.Parallel()

	h := newDefaultHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/health", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); !strings.Contains(got, http.MethodGet) {
		t.Fatalf("Allow = %q, want GET", got)
	}
}

func TestComposeExposesMetricsWhenEnabled(t *testing.T) {
	t.Parallel()

	metrics := observability.NewMetrics()
	h := newDefaultHandler(t, metrics)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "socialcrm_web_requests_total") || !strings.Contains(body, `route="/dashboard"`) {
		t.Fatalf("metrics body missing dashboard request series: %s", body)
	}
}

func TestComposeOmitsMetricsRouteWhenDisabled(t *testing.T) {
	t.Parallel()

	h := newDefaultHandler(t, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return s.mount, s.err
}
