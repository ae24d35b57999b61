package httpserver

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"ekuboswap/internal/config"
	"ekuboswap/internal/logger"
	"ekuboswap/internal/swapper"
)

// Server is the HTTP transport over the swap service.
type Server struct {
	svc swapper.Swapper
	cfg *config.Config
	mux *http.ServeMux
}

// New creates the HTTP server with registered routes.
func New(svc swapper.Swapper, cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	s := &Server{
		svc: svc,
		cfg: cfg,
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("/swap", s.handleSwap)
	s.mux.HandleFunc("/estimate", s.handleEstimate)
	s.mux.HandleFunc("/balance", s.handleBalance)
	s.mux.HandleFunc("/allowance", s.handleAllowance)
	s.mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			logger.Warnf("ping write error: %v", err)
		}
	})

	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.logMiddleware(s.mux)
}

// ListenAndServe starts the HTTP server and enables graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("http server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "srv.ListenAndServe")
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.GraceTimeout)
	defer cancel()

	logger.Infof("http server shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "srv.Shutdown")
	}
	return nil
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debugf("%s %s took %s", r.Method, r.URL.Path, time.Since(start))
	})
}
