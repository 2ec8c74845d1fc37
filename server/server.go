// Package server exposes chart rendering over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/sartorproj/seriesview/chart"
	"github.com/sartorproj/seriesview/logger"
	"github.com/sartorproj/seriesview/render"
)

const (
	maxBodyBytes = 8 << 20
	requestIDKey = "X-Request-ID"
)

// Config configures a Server.
type Config struct {
	// Chart holds the defaults for building charts; the tz query parameter
	// overrides its Location.
	Chart chart.Options
	// AccessLog receives combined access log lines. Defaults to stdout.
	AccessLog io.Writer
	Logger    *logger.Logger
}

// Server renders posted chart configs.
type Server struct {
	*logger.Logger
	chartOpts chart.Options
	accessLog io.Writer
}

// New returns a Server.
func New(cfg Config) *Server {
	s := &Server{
		Logger:    cfg.Logger,
		chartOpts: cfg.Chart,
		accessLog: cfg.AccessLog,
	}
	if s.Logger == nil {
		s.Logger = logger.New().With("component", "server")
	}
	if s.accessLog == nil {
		s.accessLog = os.Stdout
	}
	return s
}

// NewRouter returns the API routes.
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)

	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/render/{format}", s.renderHandler).Methods(http.MethodPost)

	return r
}

// Handler returns the routes wrapped with access logging and panic recovery.
func (s *Server) Handler() http.Handler {
	recovered := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(s.NewRouter())
	return handlers.LoggingHandler(s.accessLog, recovered)
}

// Run serves on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.Slog().Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.Infof("render API listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDKey)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDKey, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) renderHandler(w http.ResponseWriter, r *http.Request) {
	id := w.Header().Get(requestIDKey)

	renderer, err := render.ByName(mux.Vars(r)["format"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	cfg, err := chart.ParseJSON(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := s.chartOpts
	opts.Logger = s.Logger.With("request_id", id)
	if tz := r.URL.Query().Get("tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			http.Error(w, "unknown time zone: "+tz, http.StatusBadRequest)
			return
		}
		opts.Location = loc
		opts.FixedOffset = nil
	}

	c, err := chart.Build(r.Context(), cfg, opts)
	if err != nil {
		s.Errorf("request %s: build chart: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, c); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, render.ErrNothingToDraw) {
			status = http.StatusUnprocessableEntity
		} else {
			s.Errorf("request %s: render: %v", id, err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
