// Package web hosts the Social CRM dashboard HTTP surface and lifecycle.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/louisbranch/socialcrm/internal/platform/timeouts"
	webapp "github.com/louisbranch/socialcrm/internal/services/web/app"
	module "github.com/louisbranch/socialcrm/internal/services/web/module"
	"github.com/louisbranch/socialcrm/internal/services/web/modules"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/httpx"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/observability"
	"github.com/louisbranch/socialcrm/internal/services/web/platform/weberror"
	webstatic "github.com/louisbranch/socialcrm/internal/services/web/static"
	"golang.org/x/sync/errgroup"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// MetricsAddr serves /metrics on a separate listener. Empty keeps
	// /metrics on the main router when metrics are enabled.
	MetricsAddr   string
	EnableMetrics bool
	DefaultLocale string
	Logger        *log.Logger
	Now           func() time.Time
	// Modules overrides the default registry; nil uses DefaultModules.
	Modules []module.Module
}

// Server hosts the web HTTP surface and its optional metrics listener.
type Server struct {
	httpAddr      string
	httpServer    *http.Server
	metricsServer *http.Server
}

// NewHandler builds the root handler from the module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	var metrics *observability.Metrics
	if cfg.EnableMetrics {
		metrics = observability.NewMetrics()
	}
	return newHandler(cfg, metrics)
}

func newHandler(cfg Config, metrics *observability.Metrics) (http.Handler, error) {
	deps := module.Dependencies{
		DefaultLocale: strings.TrimSpace(cfg.DefaultLocale),
		Logger:        cfg.Logger,
		Now:           cfg.Now,
	}
	features := cfg.Modules
	if features == nil {
		features = modules.DefaultModules()
	}
	rootHandler, err := webapp.Compose(webapp.ComposeInput{
		Dependencies: deps,
		Modules:      features,
		Static:       http.FileServerFS(webstatic.FS),
		Metrics:      metrics,
		ServeMetrics: strings.TrimSpace(cfg.MetricsAddr) == "",
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(
		rootHandler,
		httpx.RequestID(),
		middleware.RealIP,
		observability.RequestLogger(deps.Log()),
		httpx.RecoverPanicWith(deps.Log(), weberror.PanicRenderer(weberror.ScopeRoot, deps)),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	var metrics *observability.Metrics
	if cfg.EnableMetrics {
		metrics = observability.NewMetrics()
	}
	handler, err := newHandler(cfg, metrics)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	server := &Server{
		httpAddr:   httpAddr,
		httpServer: newHTTPServer(httpAddr, handler),
	}
	if metricsAddr := strings.TrimSpace(cfg.MetricsAddr); metrics != nil && metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle(webapp.MetricsPath, metrics.Handler())
		server.metricsServer = newHTTPServer(metricsAddr, mux)
	}
	return server, nil
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
	}
}

// Addr returns the main listener address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server
// stop. Any listener returning, including after Close, stops the others.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()
	group, groupCtx := errgroup.WithContext(ctx)
	servers := []*http.Server{s.httpServer}
	if s.metricsServer != nil {
		servers = append(servers, s.metricsServer)
	}
	for _, srv := range servers {
		group.Go(func() error {
			defer stop()
			log.Printf("web listening addr=%s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve web http %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		var shutdownErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, fmt.Errorf("shutdown web http %s: %w", srv.Addr, err))
			}
		}
		return shutdownErr
	})
	return group.Wait()
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.metricsServer != nil {
		_ = s.metricsServer.Close()
	}
}
