// Package server is the NetVantage HTTP front end. It mounts each
// module's routes under /api/v1/{module}, serves the operational
// probes and metrics, and wraps everything in the shared middleware
// chain.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HerbHall/netvantage/internal/version"
	"github.com/HerbHall/netvantage/pkg/plugin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// PluginSource supplies module metadata and routes. The registry
// satisfies it; the interface lives here to avoid importing it.
type PluginSource interface {
	AllRoutes() map[string][]plugin.Route
	All() []plugin.Plugin
}

// ReadinessChecker reports whether the service can take traffic, for
// example by probing the configured NetBox endpoint. Nil error means
// ready.
type ReadinessChecker func(ctx context.Context) error

// Options tunes optional server behavior.
type Options struct {
	// DevMode serves the Swagger UI at /swagger/.
	DevMode bool
}

// quietPaths are probe and scrape endpoints: hit constantly, never
// rate limited, excluded from request logging.
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

// Server owns the HTTP listener and the mounted route set.
type Server struct {
	httpServer *http.Server
	plugins    PluginSource
	logger     *zap.Logger
	mux        *http.ServeMux
	ready      ReadinessChecker
}

// New builds a Server: core routes, module routes, optional swagger,
// and the middleware chain. Pass nil opts for defaults.
func New(addr string, plugins PluginSource, logger *zap.Logger, ready ReadinessChecker, opts *Options) *Server {
	if opts == nil {
		opts = &Options{}
	}

	s := &Server{
		plugins: plugins,
		logger:  logger,
		mux:     http.NewServeMux(),
		ready:   ready,
	}

	s.mountCoreRoutes()
	s.mountModuleRoutes()
	if opts.DevMode {
		s.mux.Handle("GET /swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
		logger.Info("swagger UI enabled (dev_mode)", zap.String("path", "/swagger/"))
	}

	// Outermost listed first.
	handler := Chain(s.mux,
		RecoveryMiddleware(logger),
		RequestIDMiddleware,
		LoggingMiddleware(logger, quietPaths),
		SecurityHeadersMiddleware,
		VersionHeaderMiddleware,
		RateLimitMiddleware(100, 200, quietPaths),
	)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// mountCoreRoutes registers the probes, metrics, and system API.
func (s *Server) mountCoreRoutes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.HandleFunc("GET /readyz", s.handleReadyz)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/plugins", s.handlePlugins)
}

// mountModuleRoutes places each module's routes under /api/v1/{name},
// so the topology module's POST /discover becomes
// POST /api/v1/topology/discover.
func (s *Server) mountModuleRoutes() {
	for name, routes := range s.plugins.AllRoutes() {
		for _, route := range routes {
			pattern := fmt.Sprintf("%s /api/v1/%s%s", route.Method, name, route.Path)
			s.mux.HandleFunc(pattern, route.Handler)
			s.logger.Debug("mounted route",
				zap.String("module", name),
				zap.String("pattern", pattern),
			)
		}
	}
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// handleHealthz is the liveness probe: 200 whenever the process runs.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// handleReadyz runs the injected readiness check. Without one, a live
// process is considered ready.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status  string            `json:"status" example:"ok"`
	Service string            `json:"service" example:"netvantage"`
	Version map[string]string `json:"version"`
}

// PluginResponse describes one registered module.
type PluginResponse struct {
	Name        string `json:"name" example:"topology"`
	Version     string `json:"version" example:"0.1.0"`
	Description string `json:"description" example:"NetBox topology adaptation and link inference"`
}

// handleHealth returns service identity and build version.
//
//	@Summary		Health check
//	@Description	Returns service health status with version information.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "netvantage",
		Version: version.Map(),
	})
}

// handlePlugins lists the active module composition.
//
//	@Summary		List plugins
//	@Description	Returns all registered plugins with their metadata.
//	@Tags			system
//	@Produce		json
//	@Success		200	{array}	PluginResponse
//	@Router			/plugins [get]
func (s *Server) handlePlugins(w http.ResponseWriter, _ *http.Request) {
	active := s.plugins.All()
	listed := make([]PluginResponse, 0, len(active))
	for _, p := range active {
		info := p.Info()
		listed = append(listed, PluginResponse{
			Name:        info.Name,
			Version:     info.Version,
			Description: info.Description,
		})
	}
	s.writeJSON(w, http.StatusOK, listed)
}
