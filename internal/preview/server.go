// Package preview serves a built site locally and rebuilds it when the
// source notes change.
package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
)

// Server serves the output directory over HTTP.
type Server struct {
	cfg       *config.PreviewConfig
	outputDir string
	registry  *prometheus.Registry
	srv       *http.Server
}

// NewServer creates a preview server for outputDir. registry may be nil; the
// /metrics endpoint is exposed only when metrics are enabled and a registry
// is provided.
func NewServer(cfg *config.PreviewConfig, outputDir string, registry *prometheus.Registry) *Server {
	s := &Server{cfg: cfg, outputDir: outputDir, registry: registry}
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler builds the route table: the site under /, a health probe, and the
// optional Prometheus endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.outputDir)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	if s.cfg.Metrics && s.registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return mux
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening",
			slog.String("addr", fmt.Sprintf("http://localhost:%d", s.cfg.Port)))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
