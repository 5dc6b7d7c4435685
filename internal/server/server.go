// Package server hosts the live deck viewer: the rendered presentation,
// a WebSocket channel that drives scroll tracking and navigation, and,
// in edit mode, the commit path that mutates the live deck document.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/deckview/internal/deck"
	"github.com/ziadkadry99/deckview/internal/editsession"
	"github.com/ziadkadry99/deckview/internal/render"
	"github.com/ziadkadry99/deckview/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Theme    string
	Edit     bool // install edit wiring; read once at startup
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server serves one live deck.
type Server struct {
	cfg        Config
	store      *deck.Store
	session    *editsession.Session
	title      string
	loadErr    string // non-empty puts the server in the terminal error state
	router     chi.Router
	httpServer *http.Server
}

// New creates a live server over the given store. A non-nil loadErr puts
// the server in the terminal load-failure state: a single error slide,
// with no navigation or edit wiring.
func New(cfg Config, store *deck.Store, title string, loadErr error) *Server {
	s := &Server{
		cfg:     cfg,
		store:   store,
		session: editsession.New(store, cfg.Edit),
		title:   title,
	}
	if loadErr != nil {
		s.loadErr = loadErr.Error()
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Page routes get a request timeout; the WebSocket route must not,
	// since its connection outlives any sensible deadline.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/", s.handlePage)
		r.Get("/style.css", s.handleCSS)
		r.Get("/viewer.js", s.handleJS)
		r.Get("/deck.json", s.handleExport)
	})
	r.Get("/ws", s.handleWebSocket)

	return r
}

// handlePage serves the rendered deck, or the terminal error page when
// the deck document could not be loaded.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if s.loadErr != "" {
		deckHTML := render.HTML([]*render.Node{render.ErrorSlide(s.loadErr)})
		page, err := site.ErrorPage(s.cfg.Theme, deckHTML)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(page))
		return
	}

	// Render under the store lock: the WebSocket goroutine mutates the
	// same slide maps through Apply on every commit.
	var page string
	var err error
	s.store.View(func(d *deck.Deck) {
		nodes := render.Deck(d, render.Options{Editable: s.cfg.Edit})
		page, err = site.RenderPage(s.title, s.cfg.Theme, render.HTML(nodes), len(nodes), s.cfg.Edit)
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Write([]byte(page))
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.CSS()))
}

func (s *Server) handleJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(site.JS()))
}

// handleExport serializes the live deck, including every mutation applied
// through the edit session. The exported object is the same instance the
// mutator writes to.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.loadErr != "" {
		http.Error(w, `{"error":"deck not loaded"}`, http.StatusServiceUnavailable)
		return
	}
	data, err := s.store.ExportJSON()
	if err != nil {
		http.Error(w, `{"error":"export failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="deck.json"`)
	w.Write(data)
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("deckview server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("server: opening browser: %v", err)
	}
}
