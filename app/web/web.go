// Package web implements the web server for jobboard application
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/robfig/cron/v3"

	"github.com/umputun/jobboard/app/health"
	"github.com/umputun/jobboard/app/web/persistence"
	"github.com/umputun/jobboard/app/web/session"
)

//go:embed templates/*.html templates/partials/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// pages rendered inside the base layout
var pageNames = []string{"index.html", "dashboard.html", "create.html", "view.html", "update.html", "delete.html", "error.html"}

// Server represents the web server
type Server struct {
	store          Persistence
	hasher         Hasher
	notifier       Notifier
	health         HealthChecker
	sessions       *session.Manager
	templates      map[string]*template.Template
	csrfProtection *http.CrossOriginProtection // csrf protection for POST endpoints
	version        string
	loginLimit     float64        // login and register requests per second per ip, 0 disables
	notifyWG       sync.WaitGroup // in-flight volunteer notifications
}

//go:generate moq -out mocks/persistence.go -pkg mocks -skip-ensure -fmt goimports . Persistence
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/hasher.go -pkg mocks -skip-ensure -fmt goimports . Hasher

// Persistence defines storage operations for users, jobs and volunteers
type Persistence interface {
	CreateUser(ctx context.Context, user persistence.User) (persistence.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UserByEmail(ctx context.Context, email string) (persistence.User, error)
	UserByID(ctx context.Context, id int64) (persistence.User, error)

	CreateJob(ctx context.Context, job persistence.Job) (persistence.Job, error)
	JobByID(ctx context.Context, id int64) (persistence.Job, error)
	UpdateJob(ctx context.Context, job persistence.Job) error
	DeleteJob(ctx context.Context, id int64) error
	AllJobs(ctx context.Context) ([]persistence.Job, error)
	JobsByPoster(ctx context.Context, userID int64) ([]persistence.Job, error)
	JobsNotByPoster(ctx context.Context, userID int64) ([]persistence.Job, error)
	JobsByWorker(ctx context.Context, userID int64) ([]persistence.Job, error)

	JobWorkers(ctx context.Context, jobID int64) ([]persistence.User, error)
	AddWorker(ctx context.Context, jobID, userID int64) error
	RemoveWorker(ctx context.Context, jobID, userID int64) error
}

// Notifier tells a job poster about a new volunteer
type Notifier interface {
	Volunteered(ctx context.Context, job persistence.Job, poster, worker persistence.User) error
}

// HealthChecker reports database and host conditions
type HealthChecker interface {
	Check(ctx context.Context) health.Report
}

// Config holds server configuration
type Config struct {
	Store          Persistence
	Hasher         Hasher        // bcrypt with default cost if nil
	Notifier       Notifier      // optional, nil disables volunteer notifications
	Health         HealthChecker // optional, store ping only if nil
	Version        string        // application version
	SessionTTL     time.Duration // session inactivity timeout, defaults to 24h if not set
	MaxSessions    int           // max live sessions, 0 for unlimited
	LoginRateLimit float64       // login and register requests per second per ip, 0 disables
}

// TemplateData holds data for templates
type TemplateData struct {
	User        *persistence.User // authenticated user, nil for anonymous visitors
	Flashes     []session.Flash
	Errors      []string          // validation errors for the current form
	Form        map[string]string // submitted or stashed form values
	Job         persistence.Job
	Workers     []persistence.User
	IsWorker    bool // current user volunteers for Job
	PostedJobs  []persistence.Job
	OtherJobs   []persistence.Job
	WorkJobs    []persistence.Job
	Working     map[int64]bool // ids of jobs the current user volunteers for
	Status      int            // for error page
	Message     string         // for error page
	Version     string
	CurrentYear int
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("web server initialization failed: store is required")
	}

	hasher := cfg.Hasher
	if hasher == nil {
		hasher = BcryptHasher{}
	}

	// set default SessionTTL if not specified
	sessionTTL := cfg.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = 24 * time.Hour
	}

	healthChecker := cfg.Health
	if healthChecker == nil {
		pinger, _ := cfg.Store.(health.Pinger)
		healthChecker = health.NewChecker(pinger, health.Thresholds{})
	}

	s := &Server{
		store:          cfg.Store,
		hasher:         hasher,
		notifier:       cfg.Notifier,
		health:         healthChecker,
		sessions:       session.NewManager(session.Options{TTL: sessionTTL, MaxKeys: cfg.MaxSessions}),
		csrfProtection: http.NewCrossOriginProtection(),
		version:        cfg.Version,
		loginLimit:     cfg.LoginRateLimit,
	}

	templates, err := s.parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("web server initialization failed: failed to parse HTML templates: %w", err)
	}
	s.templates = templates

	return s, nil
}

// Run starts the web server and blocks until ctx is canceled
func (s *Server) Run(ctx context.Context, address string) error {
	// purge expired sessions in background
	purger := cron.New()
	if _, err := purger.AddFunc("@every 10m", s.sessions.DeleteExpired); err != nil {
		return fmt.Errorf("failed to schedule session purge: %w", err)
	}
	purger.Start()
	defer purger.Stop()

	server := &http.Server{
		Addr:              address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	err := server.ListenAndServe()
	s.notifyWG.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware - applied to all routes
	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("jobboard", "umputun", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(64*1024), // 64KB max request size
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	// html pages, all with session and csrf protection for POST
	router.Group().Route(func(pages *routegroup.Bundle) {
		pages.Use(s.csrfProtection.Handler, rest.NoCache, s.withSession)

		credentialsLimiter := s.loginLimiter()
		pages.HandleFunc("GET /{$}", s.handleIndex)
		pages.With(credentialsLimiter).HandleFunc("POST /register", s.handleRegister)
		pages.With(credentialsLimiter).HandleFunc("POST /login", s.handleLogin)
		pages.HandleFunc("GET /logout", s.handleLogout)
		pages.HandleFunc("POST /logout", s.handleLogout)
		pages.HandleFunc("GET /view/{job_id}", s.handleView)

		// pages for authenticated users only
		pages.Group().Route(func(auth *routegroup.Bundle) {
			auth.Use(s.requireUser)
			auth.HandleFunc("GET /dashboard", s.handleDashboard)
			auth.HandleFunc("GET /create", s.handleCreate)
			auth.HandleFunc("POST /createProcess", s.handleCreateProcess)
			auth.HandleFunc("GET /update/{job_id}", s.handleUpdate)
			auth.HandleFunc("POST /updateProcess/{job_id}", s.handleUpdateProcess)
			auth.HandleFunc("GET /delete/{job_id}", s.handleDelete)
			auth.HandleFunc("GET /delete/{job_id}/confirm", s.handleConfirm)
			auth.HandleFunc("POST /delete/{job_id}/confirm", s.handleConfirm)
			auth.HandleFunc("GET /work/{job_id}", s.handleWork)
			auth.HandleFunc("GET /done/{job_id}", s.handleDone)
		})
	})

	// JSON API for programmatic read access
	router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		api.HandleFunc("GET /jobs", s.handleAPIJobs)
		api.HandleFunc("GET /jobs/{job_id}", s.handleAPIJob)
		api.HandleFunc("GET /health", s.handleAPIHealth)
	})

	// static files with proper error handling
	fsys, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Printf("[ERROR] failed to create static file system: %v", err)
		// fallback to direct FileServer if Sub fails
		router.Handle("GET /static/", http.FileServer(http.FS(staticFS)))
	} else {
		router.HandleFiles("/static/", http.FS(fsys))
	}

	return router
}

// loginLimiter returns per-ip rate limiting middleware for credential endpoints, pass-through if disabled
func (s *Server) loginLimiter() func(http.Handler) http.Handler {
	if s.loginLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	lmt := tollbooth.NewLimiter(s.loginLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
	lmt.SetMessage("Too many login attempts, please try again later.")
	lmt.SetMessageContentType("text/plain; charset=utf-8")
	return tollbooth.HTTPMiddleware(lmt)
}

// render executes page template into buffer and writes it with given status
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data TemplateData) {
	tmpl, ok := s.templates[page]
	if !ok {
		log.Printf("[WARN] template %s not found", page)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	if user, ok := userFrom(r); ok {
		data.User = &user
	}
	if sess := sessionFrom(r); sess != nil {
		data.Flashes = sess.Flashes()
	}
	if data.Form == nil {
		data.Form = map[string]string{}
	}
	data.Version = s.version
	data.CurrentYear = time.Now().Year()

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		log.Printf("[WARN] failed to execute template %s: %v", page, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// renderError renders error page with given status and message
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.render(w, r, status, "error.html", TemplateData{Status: status, Message: msg})
}

// renderStoreError maps store errors to error pages, logs unexpected ones
func (s *Server) renderStoreError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if errors.Is(err, persistence.ErrNotFound) {
		s.renderError(w, r, http.StatusNotFound, "Job not found.")
		return
	}
	log.Printf("[ERROR] failed to %s: %v", action, err)
	s.renderError(w, r, http.StatusInternalServerError, "Something went wrong, please try again later.")
}

// parseTemplates parses every page together with base layout and partials
func (s *Server) parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)

	funcMap := template.FuncMap{
		"humanTime": humanTime,
		"truncate":  truncate,
	}

	for _, page := range pageNames {
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(templatesFS,
			"templates/base.html", "templates/partials/*.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return templates, nil
}

// template helper functions

func humanTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

func truncate(str string, n int) string {
	runes := []rune(str)
	if len(runes) <= n {
		return str
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
