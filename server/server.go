// Package server exposes categorized playlists over a JSON API
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/playsort/pkg/config"
	"github.com/umputun/playsort/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/categorizer.go -pkg mocks -skip-ensure -fmt goimports . Categorizer
//go:generate moq -out mocks/video_source.go -pkg mocks -skip-ensure -fmt goimports . VideoSource
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	db          Database
	categorizer Categorizer
	videos      VideoSource
	scheduler   Scheduler
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database provides cached playlists and sync history
type Database interface {
	GetPlaylists(ctx context.Context) ([]domain.Playlist, error)
	GetPlaylist(ctx context.Context, id string) (domain.Playlist, error)
	LastRun(ctx context.Context) (domain.SyncRun, error)
}

// Categorizer assigns categories and accepts manual overrides
type Categorizer interface {
	Categorize(p domain.Playlist) domain.CategorizedPlaylist
	CategorizeAll(playlists []domain.Playlist) []domain.CategorizedPlaylist
	Summarize(playlists []domain.Playlist) domain.Summary
	SuggestReview(playlists []domain.Playlist) []domain.CategorizedPlaylist
	Override(playlistID, label string) (domain.Category, error)
}

// VideoSource lists playlist videos, fetched live from the source
type VideoSource interface {
	Videos(ctx context.Context, ref string, limit int) ([]domain.Video, error)
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	TriggerSync()
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetSourceConfig() config.SourceConfig
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, categorizer Categorizer, videos VideoSource, scheduler Scheduler,
	version string, debug bool) *Server {
	s := &Server{
		config:      cfg,
		db:          db,
		categorizer: categorizer,
		videos:      videos,
		scheduler:   scheduler,
		version:     version,
		debug:       debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router with all middlewares and routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("playsort", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // request bodies are tiny json documents
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /info", s.infoHandler)
		r.HandleFunc("GET /categories", s.categoriesHandler)
		r.HandleFunc("GET /playlists", s.playlistsHandler)
		r.HandleFunc("GET /playlists/{id}", s.playlistHandler)
		r.HandleFunc("GET /playlists/{id}/videos", s.videosHandler)
		r.HandleFunc("POST /playlists/{id}/category", s.overrideHandler)
		r.HandleFunc("GET /summary", s.summaryHandler)
		r.HandleFunc("GET /review", s.reviewHandler)
		r.HandleFunc("POST /sync", s.syncHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
}
