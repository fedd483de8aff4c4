// Package server exposes the signature verifier over HTTP.
//
// Request flow:
//   - The request body is the payload whose authenticity is being checked.
//   - The signature travels in a header (X-Signature by default) as a
//     hex-encoded 65-byte r||s||v value.
//   - The response is text/plain: the recovered signer address on success,
//     a failure description otherwise. Requests without the signature header
//     are answered with a distinct message and never reach the verifier.
//
// Supporting endpoints: /healthz for liveness, /metrics for Prometheus.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/liamren/verisig/pkg/config"
	"github.com/liamren/verisig/pkg/verifier"
)

// Server handles HTTP requests for signature verification
type Server struct {
	cfg        *config.ServerConfig
	verifier   *verifier.Verifier
	logger     *zap.Logger
	metrics    *Metrics
	httpServer *http.Server
}

// NewServer creates a new server instance. Each server carries its own
// metrics registry so multiple instances can coexist in one process.
func NewServer(cfg *config.ServerConfig, v *verifier.Verifier, logger *zap.Logger) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		cfg:      cfg,
		verifier: v,
		logger:   logger,
		metrics:  NewMetricsWithRegistry(registry),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Verification is served on every remaining path.
	mux.HandleFunc("/", s.handleVerify)

	s.httpServer = &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: mux,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	go func() {
		s.logger.Sugar().Infow("Starting HTTP server",
			"addr", s.httpServer.Addr,
			"signature_header", s.cfg.SignatureHeader,
			"payload_encoding", s.verifier.Encoding().String())
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Sugar().Errorw("HTTP server error", "addr", s.httpServer.Addr, "error", err)
		}
	}()
	return nil
}

// Stop stops the HTTP server
func (s *Server) Stop() error {
	return s.httpServer.Close()
}

// GetHandler returns the HTTP handler (for testing)
func (s *Server) GetHandler() http.Handler {
	return s.httpServer.Handler
}
