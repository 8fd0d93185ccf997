// Package server provides the REST API and the HTML admin page for article freshness.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	scheduler Scheduler
	version   string
	debug     bool
	templates *template.Template
	now       func() time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	GetArticles(ctx context.Context, limit, offset int) ([]*domain.Article, error)
	CountArticles(ctx context.Context) (int, error)
	SetReviewInterval(ctx context.Context, id int64, interval freshness.Interval) error
	DeleteArticle(ctx context.Context, id int64) error

	GetSources(ctx context.Context, enabledOnly bool) ([]*domain.Source, error)
	CreateSource(ctx context.Context, src *domain.Source) error
	UpdateSourceStatus(ctx context.Context, id int64, enabled bool) error
	DeleteSource(ctx context.Context, id int64) error

	GetThreshold(ctx context.Context, def int) (int, error)
	SetThreshold(ctx context.Context, days int) (int, error)
}

// Scheduler interface for on-demand imports
type Scheduler interface {
	SyncNow(ctx context.Context, sourceID int64) (int, error)
}

// ConfigProvider provides server and freshness configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetPageSize() int
	GetFreshnessConfig() config.FreshnessConfig
	Evaluator() freshness.Evaluator
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, scheduler Scheduler, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		scheduler: scheduler,
		version:   version,
		debug:     debug,
		now:       time.Now,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.templates = template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html"))

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
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("freshness", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/stale", s.staleArticlesHandler)
		r.HandleFunc("GET /articles/{id}/freshness", s.articleFreshnessHandler)
		r.HandleFunc("GET /articles/{id}/interval", s.getIntervalHandler)
		r.HandleFunc("PUT /articles/{id}/interval", s.setIntervalHandler)
		r.HandleFunc("DELETE /articles/{id}", s.deleteArticleHandler)

		r.HandleFunc("GET /settings/threshold", s.getThresholdHandler)
		r.HandleFunc("PUT /settings/threshold", s.setThresholdHandler)

		r.HandleFunc("GET /sources", s.listSourcesHandler)
		r.HandleFunc("POST /sources", s.createSourceHandler)
		r.HandleFunc("PUT /sources/{id}/status", s.sourceStatusHandler)
		r.HandleFunc("DELETE /sources/{id}", s.deleteSourceHandler)
		r.HandleFunc("POST /sources/{id}/sync", s.syncSourceHandler)
	})

	// admin page
	s.router.HandleFunc("GET /{$}", s.adminPageHandler)
	s.router.HandleFunc("POST /articles/{id}/interval", s.adminIntervalHandler)
	s.router.HandleFunc("POST /settings/threshold", s.adminThresholdHandler)
}

// threshold returns the saved site-wide threshold, falling back to the configured default
func (s *Server) threshold(ctx context.Context) int {
	def := s.config.GetFreshnessConfig().DefaultThreshold
	days, err := s.db.GetThreshold(ctx, def)
	if err != nil {
		log.Printf("[WARN] failed to get staleness threshold, using %d: %v", def, err)
		return freshness.NormalizeThreshold(def)
	}
	return days
}

// withFreshness computes freshness for each article at the same instant
func (s *Server) withFreshness(articles []*domain.Article, threshold int) []domain.ArticleFreshness {
	now := s.now()
	evaluator := s.config.Evaluator()
	res := make([]domain.ArticleFreshness, 0, len(articles))
	for _, a := range articles {
		res = append(res, domain.ArticleFreshness{
			Article:   a,
			Freshness: evaluator.Evaluate(a.Modified, a.ReviewInterval, now),
			Stale:     freshness.IsStale(a.Modified, now, threshold),
		})
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
