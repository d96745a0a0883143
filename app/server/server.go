// Package server provides HTTP server for the themed page shell and its API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/delta/app/enum"
	"github.com/umputun/delta/app/server/api"
	"github.com/umputun/delta/app/server/web"
	"github.com/umputun/delta/app/store"
	"github.com/umputun/delta/app/theme"
)

// Server represents the HTTP server.
type Server struct {
	sessions   SessionStore
	table      ThemeTable
	cfg        Config
	version    string
	baseURL    string
	apiHandler *api.Handler
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// SessionStore defines the interface for the per-visitor controller registry.
// Defined here (consumer side) to allow different registry implementations.
type SessionStore interface {
	Controller(id string) (*theme.Controller, error)
	Peek(id string) (*theme.Controller, error)
	Delete(id string)
	TTL() time.Duration
	Len() int
	Stats() store.Stats
}

// ThemeTable defines the interface for theme palettes lookup and reload.
type ThemeTable interface {
	Resolve(th enum.Theme) theme.Palette
	Palettes() map[string]theme.Palette
	Path() string
	StartWatcher(ctx context.Context) error
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string // base URL path for reverse proxy (e.g., /delta)
	ThemeHotReload  bool   // watch theme file for changes and reload

	// page settings
	Title        string
	LinkURL      string
	LinkText     string
	TemplatesDir string // serve templates from disk, reparsed on each request

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance.
func New(ss SessionStore, tbl ThemeTable, cfg Config) (*Server, error) {
	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	s := &Server{
		sessions: ss,
		table:    tbl,
		cfg:      cfg,
		version:  cfg.Version,
		baseURL:  cfg.BaseURL,
		staticFS: staticContent,
	}

	// create web handler
	webHandler, err := web.New(ss, tbl, web.Config{
		BaseURL:      cfg.BaseURL,
		Title:        cfg.Title,
		LinkURL:      cfg.LinkURL,
		LinkText:     cfg.LinkText,
		TemplatesDir: cfg.TemplatesDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler

	// create api handler
	s.apiHandler = api.New(ss, tbl, cfg.BaseURL)

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	// start theme file watcher if enabled
	if s.cfg.ThemeHotReload && s.table.Path() != "" {
		if err := s.table.StartWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start theme file watcher: %w", err)
		}
		log.Printf("[INFO] theme file hot-reload enabled for %s", s.table.Path())
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("delta", "umputun", s.version),
		rest.Ping,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))

	// page shell
	s.webHandler.Register(router)

	// json api
	router.Mount("/api/v1").Route(func(apiRouter *routegroup.Bundle) {
		s.apiHandler.Register(apiRouter)
		apiRouter.HandleFunc("GET /status", s.handleStatus)
	})

	return router
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024 // 64KB default, no endpoint takes a body
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// shutdownTimeout returns the configured shutdown timeout, or default 5s if not set.
func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}
