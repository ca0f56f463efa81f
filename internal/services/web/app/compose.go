// Package app composes page modules behind the chi router outlet.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/observability"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/weberror"
)

const (
	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static"
	// MetricsPath exposes Prometheus metrics when enabled.
	MetricsPath = "/metrics"
)

// ComposeInput carries modules and shared composition contracts.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	// Static serves files below StaticPrefix; nil disables it.
	Static http.Handler
	// Metrics instruments every routed request; nil disables it.
	Metrics *observability.Metrics
	// ServeMetrics mounts the Metrics handler on this router.
	ServeMetrics bool
}

// Compose builds the root router. Unknown routes render the not-found page;
// unsupported methods get 405 with an Allow header.
func Compose(input ComposeInput) (http.Handler, error) {
	root := chi.NewRouter()
	root.Use(middleware.GetHead)
	if input.Metrics != nil {
		root.Use(input.Metrics.Middleware())
	}
	root.Use(observability.Trace())

	deps := input.Dependencies
	// Set before mounting so sub-routers inherit it.
	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteNotFound(w, r, deps)
	})

	seen := map[string]string{}
	if input.Static != nil {
		seen[StaticPrefix] = "static"
		root.Handle(StaticPrefix+"/*", http.StripPrefix(StaticPrefix+"/", cacheStatic(input.Static)))
	}
	if input.ServeMetrics && input.Metrics != nil {
		seen[MetricsPath] = "metrics"
		root.Handle(MetricsPath, input.Metrics.Handler())
	}

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, deps)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Mount(prefix, mount.Handler)
	}
	return root, nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if prefix != "/" && strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must not end with /")
	}
	if strings.ContainsAny(prefix, "{}*") {
		return fmt.Errorf("prefix must be a literal path")
	}
	return nil
}

func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
