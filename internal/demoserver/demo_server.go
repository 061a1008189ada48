package demoserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/net/netutil"

	_ "github.com/raysh454/scrapedemo/docs/swagger" // registers the OpenAPI document

	"github.com/raysh454/scrapedemo/internal/logging"
)

const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// DemoServer serves the frontend's static files and answers the scraping
// API with canned payloads.
type DemoServer struct {
	cfg     Config
	router  chi.Router
	logger  logging.Logger
	preview string
}

// NewDemoServer validates the static root, prepares the canned preview
// and builds the routing table.
func NewDemoServer(cfg Config, logger logging.Logger) (*DemoServer, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("checking static root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static root %s is not a directory", cfg.Root)
	}

	preview, err := SanitizePreview(previewFragment)
	if err != nil {
		return nil, fmt.Errorf("preparing preview: %w", err)
	}

	s := &DemoServer{
		cfg:     cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		preview: preview,
	}
	s.routes()
	return s, nil
}

func (s *DemoServer) routes() {
	r := s.router

	r.Use(s.requestLogger)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Recoverer)

	r.MethodNotAllowed(s.handleUnsupportedMethod)

	api := r.With(s.exactAPIPath)
	api.Post("/api/preview", s.handlePreview)
	api.Post("/api/scrape", s.handleScrape)
	if s.cfg.EnableDownloads {
		api.Post("/api/download/csv", s.handleDownloadCSV)
		api.Post("/api/download/excel", s.handleDownloadExcel)
	}
	r.Post("/*", s.handleUnknownAPI)

	if s.cfg.EnableDocs {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	static := http.FileServer(http.Dir(s.cfg.Root))
	r.Get("/*", static.ServeHTTP)
	r.Head("/*", static.ServeHTTP)
}

// corsMiddleware stamps the allow-origin header on every response and
// answers preflight requests for any path itself.
func (s *DemoServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one line per request once the response is done.
func (s *DemoServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.logger.Info("http_request",
			logging.Field{Key: "request_id", Value: id},
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path},
			logging.Field{Key: "status", Value: status},
			logging.Field{Key: "bytes", Value: ww.BytesWritten()},
			logging.Field{Key: "duration", Value: time.Since(start).String()},
			logging.Field{Key: "remote", Value: r.RemoteAddr},
		)
	})
}

// ServeHTTP implements http.Handler.
func (s *DemoServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server for this demo. Keep-alives are off
// so every connection carries exactly one request.
func (s *DemoServer) HTTPServer() *http.Server {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
	}
	srv.SetKeepAlivesEnabled(false)
	return srv
}

// ListenAndServe binds the configured address and serves until ctx is
// cancelled.
func (s *DemoServer) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles connections from ln, at most MaxConnections at a time,
// until ctx is cancelled. It then shuts the server down, waiting up to
// ShutdownTimeout for in-flight requests.
func (s *DemoServer) Serve(ctx context.Context, ln net.Listener) error {
	limit := s.cfg.MaxConnections
	if limit < 1 {
		limit = 1
	}
	ln = netutil.LimitListener(ln, limit)

	srv := s.HTTPServer()
	s.logger.Info("listening",
		logging.Field{Key: "address", Value: ln.Addr().String()},
		logging.Field{Key: "root", Value: s.cfg.Root},
		logging.Field{Key: "max_connections", Value: limit},
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutting down", logging.Field{Key: "error", Value: err})
		return fmt.Errorf("shutting down http server: %w", err)
	}
	<-errCh

	s.logger.Info("server stopped")
	return nil
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
